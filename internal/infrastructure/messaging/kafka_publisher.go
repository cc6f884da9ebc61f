package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/futureinfotechservice/finance/pkg/events"
	"github.com/futureinfotechservice/finance/pkg/kafka"
)

// Topic carrying every loan lifecycle event. Consumers dispatch on the
// envelope's event_type.
const loanEventsTopic = "loan.events"

// eventEnvelope is the wire format for a published domain event. The
// payload holds the concrete event's own fields.
type eventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	CompanyID     string          `json:"company_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// KafkaEventPublisher implements port.EventPublisher by writing events to
// Kafka, keyed by aggregate ID so all events of one loan stay ordered
// within a partition.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher on top of the shared producer.
func NewKafkaEventPublisher(producer *kafka.Producer, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		logger:   logger,
	}
}

// Publish serialises and sends domain events.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		envelope, err := json.Marshal(eventEnvelope{
			EventID:       evt.EventID(),
			EventType:     evt.EventType(),
			AggregateID:   evt.AggregateID(),
			AggregateType: evt.AggregateType(),
			CompanyID:     evt.CompanyID(),
			OccurredAt:    evt.OccurredAt(),
			Payload:       payload,
		})
		if err != nil {
			return fmt.Errorf("marshal envelope %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: envelope,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"company_id": evt.CompanyID(),
			},
		})

		p.logger.Debug("publishing domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"company_id", evt.CompanyID(),
		)
	}

	return p.producer.Publish(ctx, loanEventsTopic, messages...)
}
