package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// OutboxEvent is a pending entity-change notification, stored in the same
// tenant database and transaction as the mutation that produced it.
type OutboxEvent struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	EntityType  string     `json:"entity_type" db:"entity_type"`
	EntityID    int64      `json:"entity_id" db:"entity_id"`
	EventType   string     `json:"event_type" db:"event_type"`
	Payload     []byte     `json:"payload" db:"payload"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty" db:"processed_at"`
}
