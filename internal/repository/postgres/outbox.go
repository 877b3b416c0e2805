package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/repository"
)

type outboxRepository struct {
	pools *TenantPools
}

func NewOutboxRepository(pools *TenantPools) repository.OutboxRepository {
	return &outboxRepository{pools: pools}
}

func (r *outboxRepository) Create(ctx context.Context, event *model.OutboxEvent) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO outbox_events (id, entity_type, entity_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = run.ExecContext(ctx, query,
		event.ID, event.EntityType, event.EntityID, event.EventType, event.Payload, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}
	return nil
}

func (r *outboxRepository) FetchUnprocessed(ctx context.Context, limit int) ([]model.OutboxEvent, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, err
	}

	events := []model.OutboxEvent{}
	query := `
		SELECT id, entity_type, entity_id, event_type, payload, created_at, processed_at
		FROM outbox_events
		WHERE processed_at IS NULL
		ORDER BY created_at
		LIMIT $1
	`
	if err := sqlx.SelectContext(ctx, run, &events, query, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch outbox events: %w", err)
	}
	return events, nil
}

func (r *outboxRepository) MarkProcessed(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	query := `UPDATE outbox_events SET processed_at = NOW() WHERE id = ANY($1)`
	if _, err := run.ExecContext(ctx, query, pq.Array(raw)); err != nil {
		return fmt.Errorf("failed to mark outbox events processed: %w", err)
	}
	return nil
}
