package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Routing keys of the domain events.
const (
	EventVendorRegistered = "vendor.registered"
	EventOrderCreated     = "order.created"
	EventContactSubmitted = "contact.submitted"
)

// EventPublisher delivers an encoded event to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey, key string, body []byte) error
}

// Event is the envelope shared by every published event.
type Event struct {
	ID         string      `json:"eventId"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// publishEvent sends a best-effort notification. Failures are logged and
// never affect the outcome of the operation that produced the event.
func publishEvent(ctx context.Context, publisher EventPublisher, logger *zap.Logger, eventType, key string, payload interface{}) {
	if publisher == nil {
		return
	}
	event := Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}
	if err := publisher.Publish(ctx, eventType, key, body); err != nil {
		logger.Warn("failed to publish event",
			zap.String("type", eventType),
			zap.String("key", key),
			zap.Error(err))
		return
	}
	logger.Debug("event published", zap.String("type", eventType), zap.String("event_id", event.ID))
}
