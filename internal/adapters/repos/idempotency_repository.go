package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

const (
	webhookEventsTable = "webhook_events"

	uniqueViolationCode = "23505"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var webhookEventColumns = []string{
	"id", "event_id", "event_type", "provider", "payload", "status",
	"error_message", "processed_at", "created_at",
}

type (
	IdempotencyRepository struct {
		conn *sqlx.DB
		now  func() time.Time
	}

	webhookEventRow struct {
		ID           string         `db:"id"`
		EventID      string         `db:"event_id"`
		EventType    string         `db:"event_type"`
		Provider     string         `db:"provider"`
		Payload      string         `db:"payload"`
		Status       string         `db:"status"`
		ErrorMessage sql.NullString `db:"error_message"`
		ProcessedAt  sql.NullTime   `db:"processed_at"`
		CreatedAt    time.Time      `db:"created_at"`
	}
)

func NewIdempotencyRepository(db *sqlx.DB) *IdempotencyRepository {
	return &IdempotencyRepository{
		conn: db,
		now:  time.Now,
	}
}

func (r *IdempotencyRepository) FindByEventID(ctx context.Context, eventID string) (*domain.WebhookEvent, error) {
	query, args, err := psql.Select(webhookEventColumns...).
		From(webhookEventsTable).
		Where(sq.Eq{"event_id": eventID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row webhookEventRow
	if err := r.conn.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to query webhook event %s: %w", eventID, err)
	}

	return row.toDomain()
}

func (r *IdempotencyRepository) Create(ctx context.Context, event *domain.WebhookEvent) error {
	if event.ID == uuid.Nil {
		event.ID = WebhookEventID(event.Provider, event.EventID)
	}

	if event.CreatedAt.IsZero() {
		event.CreatedAt = r.now().UTC()
	}

	if event.Status == "" {
		event.Status = domain.WebhookEventStatusProcessing
	}

	query, args, err := psql.Insert(webhookEventsTable).
		Columns("id", "event_id", "event_type", "provider", "payload", "status", "created_at").
		Values(event.ID, event.EventID, event.EventType, event.Provider, event.Payload, event.Status, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEvent
		}

		return fmt.Errorf("failed to insert webhook event %s: %w", event.EventID, err)
	}

	return nil
}

func (r *IdempotencyRepository) UpdateStatus(
	ctx context.Context,
	eventID string,
	status domain.WebhookEventStatus,
	errorMessage *string,
) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid webhook event status %q", status)
	}

	update := psql.Update(webhookEventsTable).
		Set("status", status).
		Set("error_message", errorMessage).
		Where(sq.Eq{"event_id": eventID})

	if status.IsTerminal() {
		update = update.Set("processed_at", r.now().UTC())
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update webhook event %s: %w", eventID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (row webhookEventRow) toDomain() (*domain.WebhookEvent, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse webhook event id: %w", err)
	}

	event := &domain.WebhookEvent{
		ID:        id,
		EventID:   row.EventID,
		EventType: row.EventType,
		Provider:  row.Provider,
		Payload:   row.Payload,
		Status:    domain.WebhookEventStatus(row.Status),
		CreatedAt: row.CreatedAt,
	}

	if row.ErrorMessage.Valid {
		msg := row.ErrorMessage.String
		event.ErrorMessage = &msg
	}

	if row.ProcessedAt.Valid {
		processedAt := row.ProcessedAt.Time
		event.ProcessedAt = &processedAt
	}

	return event, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}

	return false
}

var _ ports.IdempotencyLedger = (*IdempotencyRepository)(nil)
