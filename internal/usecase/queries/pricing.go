package queries

import (
	"context"
	"log/slog"
	"time"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra"
	"sales-engine/internal/infra/monitoring"
	"sales-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock

type PricingQueries interface {
	Matches(ctx context.Context, p sale.Purchasable, s *sale.Sale, mc sale.MatchContext) (bool, error)
	// SalesForPurchasable keeps the repository order of enabled sales.
	SalesForPurchasable(ctx context.Context, p sale.Purchasable, mc sale.MatchContext) ([]*sale.Sale, error)
	SalePrice(ctx context.Context, p sale.Purchasable, mc sale.MatchContext) (decimal.Decimal, error)
	Quote(ctx context.Context, req QuoteRequest) (*PriceQuote, error)
}

type pricingQueriesImpl struct {
	sales        SaleReadStore
	purchasables PurchasableReadStore
	orders       OrderReadStore
	matcher      *sale.Matcher
	calculator   *sale.PriceCalculator
}

func NewPricingQueries(
	sales SaleReadStore,
	purchasables PurchasableReadStore,
	orders OrderReadStore,
	matcher *sale.Matcher,
	calculator *sale.PriceCalculator,
) PricingQueries {
	return &pricingQueriesImpl{
		sales:        sales,
		purchasables: purchasables,
		orders:       orders,
		matcher:      matcher,
		calculator:   calculator,
	}
}

func (q *pricingQueriesImpl) Matches(ctx context.Context, p sale.Purchasable, s *sale.Sale, mc sale.MatchContext) (bool, error) {
	return q.matcher.Matches(ctx, p, s, mc)
}

func (q *pricingQueriesImpl) SalesForPurchasable(ctx context.Context, p sale.Purchasable, mc sale.MatchContext) ([]*sale.Sale, error) {
	start := time.Now()

	enabled, err := q.sales.GetAllEnabled(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*sale.Sale, 0, len(enabled))
	for _, s := range enabled {
		ok, err := q.matcher.Matches(ctx, p, s, mc)
		if err != nil {
			return nil, errs.Wrapf(err, "match sale %s", s.ID())
		}
		if ok {
			matched = append(matched, s)
		}
	}

	monitoring.RecordSaleMatch(start, len(matched))
	return matched, nil
}

func (q *pricingQueriesImpl) SalePrice(ctx context.Context, p sale.Purchasable, mc sale.MatchContext) (decimal.Decimal, error) {
	matched, err := q.SalesForPurchasable(ctx, p, mc)
	if err != nil {
		return decimal.Zero, err
	}
	return q.calculator.Calculate(p.Price(), matched), nil
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*PriceQuote, error) {
	p, err := q.purchasables.FindByID(ctx, req.PurchasableID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPurchasableNotFound
		}
		return nil, err
	}

	mc := sale.MatchContext{User: req.UserID}
	if req.OrderID != nil {
		order, err := q.orders.FindByID(ctx, *req.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrOrderNotFound
			}
			return nil, err
		}
		mc.Order = order
	}

	matched, err := q.SalesForPurchasable(ctx, p, mc)
	if err != nil {
		return nil, err
	}

	quote := &PriceQuote{
		PurchasableID: p.ID,
		OriginalPrice: p.Price(),
		SalePrice:     q.calculator.Calculate(p.Price(), matched),
		Sales:         matched,
	}
	slog.DebugContext(ctx, "price quoted",
		"purchasable_id", p.ID.String(),
		"sales", len(matched),
		"original", quote.OriginalPrice.String(),
		"price", quote.SalePrice.String())
	return quote, nil
}
