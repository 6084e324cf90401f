package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra/monitoring"
	"sales-engine/internal/pkg/clock"
	"sales-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeSaleSaved   = "sale.saved"
	TypeSaleDeleted = "sale.deleted"
)

type SaleEvent struct {
	Type       string     `json:"type"`
	SaleID     uuid.UUID  `json:"sale_id"`
	Created    bool       `json:"created,omitempty"`
	Name       string     `json:"name,omitempty"`
	Enabled    bool       `json:"enabled,omitempty"`
	DateFrom   *time.Time `json:"date_from,omitempty"`
	DateTo     *time.Time `json:"date_to,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher keys every message by sale id so one sale's events stay ordered.
type KafkaPublisher struct {
	writer MessageWriter
	clock  clock.Clock
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(writer MessageWriter, clk clock.Clock) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, clock: clk}
}

func (p *KafkaPublisher) SaleSaved(ctx context.Context, s *sale.Sale, created bool) error {
	return p.publish(ctx, SaleEvent{
		Type:       TypeSaleSaved,
		SaleID:     s.ID(),
		Created:    created,
		Name:       s.Name(),
		Enabled:    s.Enabled(),
		DateFrom:   s.DateFrom(),
		DateTo:     s.DateTo(),
		OccurredAt: p.clock.Now(),
	})
}

func (p *KafkaPublisher) SaleDeleted(ctx context.Context, id uuid.UUID) error {
	return p.publish(ctx, SaleEvent{
		Type:       TypeSaleDeleted,
		SaleID:     id,
		OccurredAt: p.clock.Now(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, ev SaleEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal sale event")
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.SaleID.String()),
		Value: payload,
	})
	monitoring.RecordEventPublished(ev.Type, err)
	if err != nil {
		return errs.Wrapf(err, "publish %s for sale %s", ev.Type, ev.SaleID)
	}
	return nil
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) SaleSaved(ctx context.Context, s *sale.Sale, created bool) error {
	slog.DebugContext(ctx, "sale event dropped, no broker configured", "type", TypeSaleSaved, "sale_id", s.ID().String())
	return nil
}

func (NoopPublisher) SaleDeleted(ctx context.Context, id uuid.UUID) error {
	slog.DebugContext(ctx, "sale event dropped, no broker configured", "type", TypeSaleDeleted, "sale_id", id.String())
	return nil
}
