package bootstrap

import (
	"context"
	"time"

	"sales-engine/internal/infra/monitoring"
	"sales-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbMetricsInterval = 15 * time.Second

var MonitoringModule = fx.Module("monitoring",
	fx.Invoke(StartDBMetrics),
)

func StartDBMetrics(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool) {
	if !cfg.Metrics.Enabled {
		return
	}
	collector := monitoring.NewDBMetricsCollector(pool)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			collector.StartCollecting(ctx, dbMetricsInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
