package kafka

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

const (
	insertOutboxSQL = `
INSERT INTO outbox_events (
	id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status,
	retry_count, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, NOW(), NOW())`

	selectDueOutboxSQL = `
SELECT id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id::text,
	event_type, topic, payload, status, retry_count, COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status IN ($1, $2)
	AND retry_count < $3
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $4`

	markOutboxSentSQL = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

	// next_retry_at dihitung di database: 15s * 2^retry_count, maksimal 600s
	markOutboxFailedSQL = `
UPDATE outbox_events
SET status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + LEAST(15 * POWER(2, retry_count), 600) * INTERVAL '1 second',
	updated_at = NOW()
WHERE id = $1`
)

type sqlExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) execer() sqlExecer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	_, err := r.execer().ExecContext(ctx, insertOutboxSQL,
		event.ID, event.RequestID, event.AggregateType,
		event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, selectDueOutboxSQL,
		OutboxStatusPending, OutboxStatusFailed, MaxOutboxRetries, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		e, err := scanOutboxEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanOutboxEvent(rows *sql.Rows) (OutboxEvent, error) {
	var e OutboxEvent
	err := rows.Scan(
		&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID, &e.EventType,
		&e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt,
	)
	return e, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.execer().ExecContext(ctx, markOutboxSentSQL, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.execer().ExecContext(ctx, markOutboxFailedSQL, id, OutboxStatusFailed, reason)
	return err
}
