package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/job-listings/internal/logger"
	"github.com/sbilibin2017/job-listings/internal/middlewares"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// Change event types.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ChangeEvent describes a successful write to a collection.
type ChangeEvent struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	Resource   string `json:"resource"`
	ResourceID string `json:"resource_id"`
	Timestamp  int64  `json:"timestamp"`
}

// eventPublisher publishes change events keyed by resource id. A nil writer
// disables publishing. Inside a request transaction the event waits for the
// commit and is dropped on rollback. Failures are logged and never returned.
type eventPublisher struct {
	writer KafkaWriter
}

func (p eventPublisher) publish(ctx context.Context, resource, action, id string) {
	id = strings.ToLower(id)
	middlewares.AfterCommit(ctx, func() {
		p.send(ctx, resource, action, id)
	})
}

func (p eventPublisher) send(ctx context.Context, resource, action, id string) {
	evt := ChangeEvent{
		EventID:    uuid.NewString(),
		Type:       resource + "." + action,
		Resource:   resource,
		ResourceID: id,
		Timestamp:  time.Now().Unix(),
	}

	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event", evt.Type, "resource_id", id)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal change event", "event", evt.Type, "resource_id", id, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(id),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish change event", "event", evt.Type, "resource_id", id, "error", err)
		return
	}
	logger.Log.Infow("Change event published", "event", evt.Type, "resource_id", id, "event_id", evt.EventID)
}
