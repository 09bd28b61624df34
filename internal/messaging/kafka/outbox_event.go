package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"

	// setelah MaxOutboxRetries kali gagal, event tidak diambil lagi oleh worker
	MaxOutboxRetries = 10
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

// OutboxSchema hanya dipakai untuk migrasi tabel outbox_events.
type OutboxSchema struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestID     string     `gorm:"size:64"`
	AggregateType string     `gorm:"size:50;not null"`
	AggregateID   uuid.UUID  `gorm:"type:uuid;not null"`
	EventType     string     `gorm:"size:100;not null"`
	Topic         string     `gorm:"size:200;not null"`
	Payload       []byte     `gorm:"not null"`
	Status        string     `gorm:"size:20;not null;default:pending;index:idx_outbox_events_status_created,priority:1"`
	RetryCount    int        `gorm:"not null;default:0"`
	ErrorMessage  *string    `gorm:"size:500"`
	NextRetryAt   *time.Time
	ProcessedAt   *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime;index:idx_outbox_events_status_created,priority:2"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (OutboxSchema) TableName() string {
	return "outbox_events"
}

// NewOutboxEvent membungkus payload menjadi event pending yang siap disimpan.
func NewOutboxEvent(requestID, aggregateType, aggregateID, eventType, topic string, payload any) (OutboxEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal outbox payload: %w", err)
	}

	event := OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       raw,
		Status:        OutboxStatusPending,
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return OutboxEvent{}, err
	}
	return event, nil
}

func ValidateOutboxEvent(event OutboxEvent) error {
	switch {
	case event.ID == "":
		return errors.New("outbox id is required")
	case event.Topic == "":
		return errors.New("outbox topic is required")
	case len(event.Payload) == 0:
		return errors.New("outbox payload is required")
	}

	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}

// RetryDelay: 15s, 30s, 60s, ... dibatasi 10 menit.
func RetryDelay(attempt int) time.Duration {
	const (
		base     = 15 * time.Second
		maxDelay = 10 * time.Minute
	)
	if attempt < 1 {
		attempt = 1
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}
	return delay
}
