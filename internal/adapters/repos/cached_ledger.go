package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

const ledgerKeyPrefix = "webhook_event:"

// CachedLedger is a read-through KeyDB cache in front of the ledger. Only terminal records are
// cached, so a record still in processing is always read from the database.
type CachedLedger struct {
	next   ports.IdempotencyLedger
	cache  redis.Cmdable
	ttl    time.Duration
	logger infrastructure.Logger
}

func NewCachedLedger(
	next ports.IdempotencyLedger,
	cache redis.Cmdable,
	ttl time.Duration,
	logger infrastructure.Logger,
) *CachedLedger {
	return &CachedLedger{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Component("ledger_cache"),
	}
}

func (c *CachedLedger) FindByEventID(ctx context.Context, eventID string) (*domain.WebhookEvent, error) {
	if event, ok := c.get(ctx, eventID); ok {
		return event, nil
	}

	event, err := c.next.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status.IsTerminal() {
		c.set(ctx, event)
	}

	return event, nil
}

func (c *CachedLedger) Create(ctx context.Context, event *domain.WebhookEvent) error {
	return c.next.Create(ctx, event)
}

func (c *CachedLedger) UpdateStatus(
	ctx context.Context,
	eventID string,
	status domain.WebhookEventStatus,
	errorMessage *string,
) error {
	if err := c.next.UpdateStatus(ctx, eventID, status, errorMessage); err != nil {
		return err
	}

	if err := c.cache.Del(ctx, ledgerKey(eventID)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("event_id", eventID).Msg("failed to invalidate cached webhook event")
	}

	return nil
}

func (c *CachedLedger) get(ctx context.Context, eventID string) (*domain.WebhookEvent, bool) {
	raw, err := c.cache.Get(ctx, ledgerKey(eventID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("event_id", eventID).Msg("failed to read webhook event from cache")
		}

		return nil, false
	}

	var event domain.WebhookEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		c.logger.Warn().Err(err).Str("event_id", eventID).Msg("dropping undecodable cached webhook event")
		c.cache.Del(ctx, ledgerKey(eventID))

		return nil, false
	}

	return &event, true
}

func (c *CachedLedger) set(ctx context.Context, event *domain.WebhookEvent) {
	raw, err := json.Marshal(event)
	if err != nil {
		c.logger.Warn().Err(err).Str("event_id", event.EventID).Msg("failed to encode webhook event for cache")

		return
	}

	if err := c.cache.Set(ctx, ledgerKey(event.EventID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("event_id", event.EventID).Msg("failed to cache webhook event")
	}
}

func ledgerKey(eventID string) string {
	return fmt.Sprintf("%s%s", ledgerKeyPrefix, eventID)
}

var _ ports.IdempotencyLedger = (*CachedLedger)(nil)
