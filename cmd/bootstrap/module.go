package bootstrap

import (
	"sales-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MonitoringModule,
	components.PersistenceModule,
	components.EventsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
