package components

import (
	"log/slog"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra/matchhook"
	"sales-engine/internal/pkg/clock"
	"sales-engine/internal/pkg/config"
	"sales-engine/internal/usecase"
	"sales-engine/internal/usecase/commands"
	"sales-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewMatchHooks,
	sale.NewMatcher,
	NewPriceCalculator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSaleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSaleQueries,
		queries.NewPricingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewMatchHooks(cfg config.Config) (sale.MatchHooks, error) {
	hooks, err := matchhook.Load(cfg.Pricing.MatchHooksFile)
	if err != nil {
		return nil, err
	}
	if len(hooks) > 0 {
		slog.Info("Match hooks loaded", "file", cfg.Pricing.MatchHooksFile, "count", len(hooks))
	}
	return hooks, nil
}

func NewPriceCalculator(cfg config.Config) *sale.PriceCalculator {
	return sale.NewPriceCalculator(cfg.Pricing.CurrencyDecimals)
}
