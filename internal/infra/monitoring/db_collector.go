package monitoring

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DBMetricsCollector struct {
	pool *pgxpool.Pool
}

func NewDBMetricsCollector(pool *pgxpool.Pool) *DBMetricsCollector {
	return &DBMetricsCollector{pool: pool}
}

// StartCollecting samples pool stats every interval until ctx is done.
func (c *DBMetricsCollector) StartCollecting(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.collect()
			}
		}
	}()
}

func (c *DBMetricsCollector) collect() {
	stat := c.pool.Stat()
	DBConnectionsActive.Set(float64(stat.AcquiredConns()))
	DBConnectionsIdle.Set(float64(stat.IdleConns()))
}
