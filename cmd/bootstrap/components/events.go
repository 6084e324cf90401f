package components

import (
	"context"
	"log/slog"

	"sales-engine/internal/infra/events"
	"sales-engine/internal/pkg/clock"
	"sales-engine/internal/pkg/config"
	"sales-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewSaleEventPublisher,
	),
)

func NewSaleEventPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) shared.SaleEventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Info("KAFKA_BROKERS not set, sale events are disabled")
		return events.NoopPublisher{}
	}

	writer := events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.SaleTopic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return writer.Close()
		},
	})
	slog.Info("Sale events enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.SaleTopic)
	return events.NewKafkaPublisher(writer, clk)
}
