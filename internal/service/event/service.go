// Package event records entity changes into the current tenant's outbox
// table. Rows are written in the same transaction as the mutation they
// describe and published to redis later by the outbox worker.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/repository"
)

// Recorder is what the entity services depend on.
type Recorder interface {
	Record(ctx context.Context, entityType string, entityID int64, eventType string, payload interface{}) error
}

type Service struct {
	repo repository.OutboxRepository
}

func NewService(repo repository.OutboxRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, entityType string, entityID int64, eventType string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	return s.repo.Create(ctx, &model.OutboxEvent{
		ID:         uuid.New(),
		EntityType: entityType,
		EntityID:   entityID,
		EventType:  eventType,
		Payload:    body,
		CreatedAt:  time.Now().UTC(),
	})
}
