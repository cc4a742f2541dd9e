package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// ImageProcessingJob asks the image service to render the variants of an uploaded hotel image.
type ImageProcessingJob struct {
	ImageID   string   `json:"imageId"`
	HotelID   string   `json:"hotelId"`
	SourceURL string   `json:"sourceUrl"`
	Variants  []string `json:"variants,omitempty"`
}

func (j ImageProcessingJob) Validate() error {
	if j.ImageID == "" || j.SourceURL == "" {
		return errors.New("image job requires imageId and sourceUrl")
	}

	return nil
}

// HotelSearchSnapshotEvent carries a search result snapshot to be indexed.
type HotelSearchSnapshotEvent struct {
	SnapshotID string          `json:"snapshotId"`
	SearchID   string          `json:"searchId"`
	CapturedAt time.Time       `json:"capturedAt"`
	Hotels     []HotelSnapshot `json:"hotels"`
}

type HotelSnapshot struct {
	HotelID   string  `json:"hotelId"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Available bool    `json:"available"`
}

func (e HotelSearchSnapshotEvent) Validate() error {
	if e.SnapshotID == "" {
		return errors.New("snapshot event requires snapshotId")
	}

	return nil
}

// PaymentNotification is sent to the guest after a payment event was applied.
type PaymentNotification struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	EventType string `json:"eventType"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// PublishRequest is one message submitted through the publishing API.
type PublishRequest struct {
	Queue     string
	Payload   json.RawMessage
	Priority  *int
	MessageID string
}

// BatchPublishRequest submits several payloads to the same queue.
type BatchPublishRequest struct {
	Queue    string
	Payloads []json.RawMessage
	Priority *int
}
