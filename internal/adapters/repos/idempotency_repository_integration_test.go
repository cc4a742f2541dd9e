//go:build integration

package repos

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
)

type IdempotencyRepositoryTestSuite struct {
	suite.Suite

	container *postgres.PostgresContainer
	db        *sqlx.DB
	repo      *IdempotencyRepository
}

func TestIdempotencyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(IdempotencyRepositoryTestSuite))
}

func (s *IdempotencyRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("booking_messaging"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithInitScripts(filepath.Join("..", "..", "..", "migrations", "0001_webhook_events.sql")),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(s.T(), container)
	s.Require().NoError(err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	s.Require().NoError(err)

	s.container = container
	s.db = db
	s.repo = NewIdempotencyRepository(db)
}

func (s *IdempotencyRepositoryTestSuite) TearDownSuite() {
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
}

func (s *IdempotencyRepositoryTestSuite) SetupTest() {
	_, err := s.db.Exec("TRUNCATE webhook_events")
	s.Require().NoError(err)
}

func (s *IdempotencyRepositoryTestSuite) newEvent(eventID string) *domain.WebhookEvent {
	return &domain.WebhookEvent{
		EventID:   eventID,
		EventType: domain.PaymentSucceeded,
		Provider:  "stripe",
		Payload:   `{"id":"` + eventID + `"}`,
	}
}

func (s *IdempotencyRepositoryTestSuite) TestCreateAndFind() {
	ctx := context.Background()

	event := s.newEvent("evt_create")
	s.Require().NoError(s.repo.Create(ctx, event))

	found, err := s.repo.FindByEventID(ctx, "evt_create")
	s.Require().NoError(err)

	s.Equal(WebhookEventID("stripe", "evt_create"), found.ID)
	s.Equal(domain.WebhookEventStatusProcessing, found.Status)
	s.Equal(event.Payload, found.Payload)
	s.Nil(found.ProcessedAt)
}

func (s *IdempotencyRepositoryTestSuite) TestFindMissing() {
	_, err := s.repo.FindByEventID(context.Background(), "evt_missing")
	s.ErrorIs(err, domain.ErrEventNotFound)
}

func (s *IdempotencyRepositoryTestSuite) TestCreateDuplicate() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Create(ctx, s.newEvent("evt_dup")))

	err := s.repo.Create(ctx, s.newEvent("evt_dup"))
	s.ErrorIs(err, domain.ErrDuplicateEvent)
}

func (s *IdempotencyRepositoryTestSuite) TestConcurrentCreateKeepsOneRecord() {
	ctx := context.Background()

	const writers = 8

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		created    int
		duplicates int
	)

	for range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := s.repo.Create(ctx, s.newEvent("evt_race"))

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				created++
			case assert.ErrorIs(s.T(), err, domain.ErrDuplicateEvent):
				duplicates++
			}
		}()
	}

	wg.Wait()

	s.Equal(1, created)
	s.Equal(writers-1, duplicates)

	var count int
	s.Require().NoError(s.db.Get(&count, "SELECT COUNT(*) FROM webhook_events WHERE event_id = $1", "evt_race"))
	s.Equal(1, count)
}

func (s *IdempotencyRepositoryTestSuite) TestUpdateStatus() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Create(ctx, s.newEvent("evt_update")))

	msg := "booking service returned 503"
	s.Require().NoError(s.repo.UpdateStatus(ctx, "evt_update", domain.WebhookEventStatusFailed, &msg))

	found, err := s.repo.FindByEventID(ctx, "evt_update")
	s.Require().NoError(err)

	s.Equal(domain.WebhookEventStatusFailed, found.Status)
	require.NotNil(s.T(), found.ErrorMessage)
	s.Equal(msg, *found.ErrorMessage)
	s.NotNil(found.ProcessedAt)
}

func (s *IdempotencyRepositoryTestSuite) TestUpdateStatusMissing() {
	err := s.repo.UpdateStatus(context.Background(), "evt_missing", domain.WebhookEventStatusProcessed, nil)
	s.ErrorIs(err, domain.ErrEventNotFound)
}
