package repos

import "github.com/google/uuid"

var (
	// WebhookEventNamespace is the UUID V5 namespace for webhook idempotency records.
	// Generated via: uuid_generate_v5('6ba7b811-9dad-11d1-80b4-00c04fd430c8', 'svc-booking-messaging:webhook-event')
	WebhookEventNamespace = uuid.MustParse("c2d7e8f9-1a3b-5c4d-8e6f-7a8b9c0d1e2f")
)

// WebhookEventID derives the stable record id of a provider event.
func WebhookEventID(provider, eventID string) uuid.UUID {
	return uuid.NewSHA1(WebhookEventNamespace, []byte(provider+"::"+eventID))
}
