// Package kafka adapts the shared Kafka producer to the domain's event
// publisher port.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/workbank/loan-service/internal/domain/event"
	pkgkafka "github.com/workbank/loan-service/pkg/kafka"
)

// EventPublisher publishes domain events as JSON messages to a single topic,
// keyed by aggregate ID so that events for one loan stay ordered within a
// partition.
type EventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewEventPublisher creates an EventPublisher on the given topic.
func NewEventPublisher(producer *pkgkafka.Producer, topic string, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serializes and sends the events. A failure on any event aborts the
// batch so the caller's transaction can roll back.
func (p *EventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]pkgkafka.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_id":   evt.EventID(),
				"event_type": evt.EventType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}

	for _, evt := range events {
		p.logger.Info("domain event published",
			"event_type", evt.EventType(),
			"event_id", evt.EventID(),
			"aggregate_id", evt.AggregateID(),
		)
	}
	return nil
}
