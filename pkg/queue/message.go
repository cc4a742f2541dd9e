package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RetryCountHeader    = "x-retry-count"
	OriginalQueueHeader = "x-original-queue"
	LastErrorHeader     = "x-last-error"
	FailedAtHeader      = "x-failed-at"
	PublishedAtHeader   = "x-published-at"
	ReplayedAtHeader    = "x-replayed-at"

	ContentTypeJSON = "application/json"

	maxErrorHeaderLength = 1024
)

// delivery interface for testing purposes
type delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
	Reject(requeue bool) error
}

// Message is a consumed message together with its envelope properties.
type Message struct {
	ID          string
	Queue       string
	Body        []byte
	ContentType string
	Priority    uint8
	Timestamp   time.Time
	Persistent  bool
	RetryCount  int
	Headers     amqp.Table

	delivery delivery
}

func newMessage(queue string, d amqp.Delivery) Message {
	timestamp := d.Timestamp
	if ms, ok := int64Header(d.Headers, PublishedAtHeader); ok {
		timestamp = time.UnixMilli(ms)
	}

	return Message{
		ID:          d.MessageId,
		Queue:       queue,
		Body:        d.Body,
		ContentType: d.ContentType,
		Priority:    d.Priority,
		Timestamp:   timestamp,
		Persistent:  d.DeliveryMode == amqp.Persistent,
		RetryCount:  RetryCount(d.Headers),
		Headers:     d.Headers,
		delivery:    d,
	}
}

// Unmarshal parses the JSON body and stores the result in the value pointed to by target.
func (m Message) Unmarshal(target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.New("target must be a non-nil pointer")
	}

	if err := json.Unmarshal(m.Body, target); err != nil {
		return fmt.Errorf("could not unmarshal into target: %w", err)
	}

	return nil
}

// RetryCount reads the x-retry-count header. A missing or malformed header counts as zero.
func RetryCount(headers amqp.Table) int {
	n, ok := int64Header(headers, RetryCountHeader)
	if !ok || n < 0 {
		return 0
	}

	return int(n)
}

func int64Header(headers amqp.Table, key string) (int64, bool) {
	val, ok := headers[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

// ClampPriority maps any priority into the 0..10 range supported by the queues.
func ClampPriority(priority int) uint8 {
	return uint8(min(max(priority, 0), MaxPriority))
}

func newMessageID() string {
	return uuid.NewString()
}

func copyHeaders(headers amqp.Table) amqp.Table {
	out := make(amqp.Table, len(headers)+4)
	for k, v := range headers {
		out[k] = v
	}

	return out
}

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorHeaderLength {
		return msg[:maxErrorHeaderLength]
	}

	return msg
}

// republishing rebuilds a publishing from a consumed message, preserving its envelope.
func republishing(m Message, headers amqp.Table) amqp.Publishing {
	contentType := m.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}

	return amqp.Publishing{
		Headers:      headers,
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		Priority:     m.Priority,
		MessageId:    m.ID,
		Timestamp:    m.Timestamp,
		Body:         m.Body,
	}
}
