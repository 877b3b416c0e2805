package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/docvisit/practice-api/internal/config"
	"github.com/docvisit/practice-api/internal/repository"
	"github.com/docvisit/practice-api/internal/tenant"
)

// OutboxProcessor drains every tenant's outbox table and publishes the rows
// to a per-tenant redis channel. It reuses the same ambient-tenant routing
// as request handling by seeding the context with each tenant id in turn.
type OutboxProcessor struct {
	repo     repository.OutboxRepository
	registry *tenant.Registry
	client   *redis.Client
	cfg      config.OutboxConfig
}

func NewOutboxProcessor(repo repository.OutboxRepository, registry *tenant.Registry, client *redis.Client, cfg config.OutboxConfig) *OutboxProcessor {
	return &OutboxProcessor{repo: repo, registry: registry, client: client, cfg: cfg}
}

func (p *OutboxProcessor) Start(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("outbox processor stopped")
			return
		case <-ticker.C:
			for _, id := range p.registry.IDs() {
				p.drainTenant(ctx, id)
			}
		}
	}
}

func (p *OutboxProcessor) drainTenant(ctx context.Context, tenantID string) {
	tctx := tenant.WithID(ctx, tenantID)

	events, err := p.repo.FetchUnprocessed(tctx, p.cfg.BatchSize)
	if err != nil {
		log.Error().Err(err).Str("tenant", tenantID).Msg("failed to fetch outbox events")
		return
	}
	if len(events) == 0 {
		return
	}

	channel := "events:" + tenantID
	published := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		body, err := json.Marshal(e)
		if err != nil {
			log.Error().Err(err).Str("event_id", e.ID.String()).Msg("failed to marshal outbox event")
			continue
		}
		if err := p.client.Publish(ctx, channel, body).Err(); err != nil {
			log.Error().Err(err).Str("tenant", tenantID).Msg("failed to publish outbox event")
			break
		}
		published = append(published, e.ID)
	}

	if len(published) == 0 {
		return
	}
	if err := p.repo.MarkProcessed(tctx, published); err != nil {
		// Rows stay unprocessed and will be re-published next tick;
		// subscribers must tolerate duplicates.
		log.Error().Err(err).Str("tenant", tenantID).Msg("failed to mark outbox events processed")
		return
	}
	log.Debug().Str("tenant", tenantID).Int("count", len(published)).Msg("published outbox events")
}
