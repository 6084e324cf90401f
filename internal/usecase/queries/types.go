package queries

import (
	"context"
	"time"

	"sales-engine/internal/domain/sale"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=types.go -destination=../../../tests/mock/queries/stores.go -package=queriesmock

// PurchasableView is the catalog's read model of a purchasable. It satisfies sale.Purchasable.
type PurchasableView struct {
	ID               uuid.UUID       `json:"id"`
	Type             string          `json:"type"`
	BasePrice        decimal.Decimal `json:"price"`
	Promotable       bool            `json:"promotable"`
	RelationSourceID uuid.UUID       `json:"relation_source_id"`
}

func (v *PurchasableView) Price() decimal.Decimal             { return v.BasePrice }
func (v *PurchasableView) PurchasableID() uuid.UUID           { return v.ID }
func (v *PurchasableView) IsPromotable() bool                 { return v.Promotable }
func (v *PurchasableView) PromotionRelationSource() uuid.UUID { return v.RelationSourceID }

// OrderView satisfies sale.Order.
type OrderView struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Completed  bool       `json:"is_completed"`
	OrderedAt  *time.Time `json:"date_ordered,omitempty"`
}

func (v *OrderView) IsCompleted() bool  { return v.Completed }
func (v *OrderView) UserID() *uuid.UUID { return v.CustomerID }

func (v *OrderView) DateOrdered() time.Time {
	if v.OrderedAt == nil {
		return time.Time{}
	}
	return *v.OrderedAt
}

type PriceQuote struct {
	PurchasableID uuid.UUID
	OriginalPrice decimal.Decimal
	SalePrice     decimal.Decimal
	Sales         []*sale.Sale
}

type QuoteRequest struct {
	PurchasableID uuid.UUID
	OrderID       *uuid.UUID
	// UserID is the authenticated caller, if any.
	UserID *uuid.UUID
}

type SaleReadStore interface {
	GetAll(ctx context.Context) ([]*sale.Sale, error)
	GetAllEnabled(ctx context.Context) ([]*sale.Sale, error)
	// GetByID returns nil, nil when no sale has id.
	GetByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error)
	PopulateRelations(ctx context.Context, s *sale.Sale) error
}

type PurchasableReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchasableView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}
