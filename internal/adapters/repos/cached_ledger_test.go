package repos

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/mocks"
)

// unreachableCache points at a closed port so every command fails fast.
func unreachableCache(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestCachedLedger_FindFallsBackToStore(t *testing.T) {
	t.Parallel()

	stored := &domain.WebhookEvent{
		EventID: "evt_1",
		Status:  domain.WebhookEventStatusProcessed,
	}

	store := &mocks.FakeIdempotencyLedger{}
	store.FindByEventIDReturns(stored, nil)

	ledger := NewCachedLedger(store, unreachableCache(t), time.Hour, infrastructure.NewTestLogger())

	event, err := ledger.FindByEventID(context.Background(), "evt_1")
	require.NoError(t, err)

	assert.Same(t, stored, event)
	assert.Equal(t, 1, store.FindByEventIDCallCount())

	_, eventID := store.FindByEventIDArgsForCall(0)
	assert.Equal(t, "evt_1", eventID)
}

func TestCachedLedger_FindPropagatesNotFound(t *testing.T) {
	t.Parallel()

	store := &mocks.FakeIdempotencyLedger{}
	store.FindByEventIDReturns(nil, domain.ErrEventNotFound)

	ledger := NewCachedLedger(store, unreachableCache(t), time.Hour, infrastructure.NewTestLogger())

	event, err := ledger.FindByEventID(context.Background(), "evt_missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Nil(t, event)
}

func TestCachedLedger_WritesGoToStore(t *testing.T) {
	t.Parallel()

	store := &mocks.FakeIdempotencyLedger{}
	store.CreateReturns(domain.ErrDuplicateEvent)

	ledger := NewCachedLedger(store, unreachableCache(t), time.Hour, infrastructure.NewTestLogger())
	ctx := context.Background()

	err := ledger.Create(ctx, &domain.WebhookEvent{EventID: "evt_1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)
	assert.Equal(t, 1, store.CreateCallCount())

	msg := "declined"
	require.NoError(t, ledger.UpdateStatus(ctx, "evt_1", domain.WebhookEventStatusFailed, &msg))
	require.Equal(t, 1, store.UpdateStatusCallCount())

	_, eventID, status, errorMessage := store.UpdateStatusArgsForCall(0)
	assert.Equal(t, "evt_1", eventID)
	assert.Equal(t, domain.WebhookEventStatusFailed, status)
	assert.Equal(t, &msg, errorMessage)
}

func TestCachedLedger_UpdateStatusPropagatesStoreError(t *testing.T) {
	t.Parallel()

	store := &mocks.FakeIdempotencyLedger{}
	store.UpdateStatusReturns(domain.ErrEventNotFound)

	ledger := NewCachedLedger(store, unreachableCache(t), time.Hour, infrastructure.NewTestLogger())

	err := ledger.UpdateStatus(context.Background(), "evt_1", domain.WebhookEventStatusProcessed, nil)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestLedgerKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "webhook_event:evt_1", ledgerKey("evt_1"))
}
