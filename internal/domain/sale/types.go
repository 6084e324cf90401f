package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Purchasable interface {
	Price() decimal.Decimal
	PurchasableID() uuid.UUID
	IsPromotable() bool
	// PromotionRelationSource identifies the entity whose category relations apply.
	PromotionRelationSource() uuid.UUID
}

type Order interface {
	IsCompleted() bool
	// DateOrdered is meaningful only when the order is completed.
	DateOrdered() time.Time
	UserID() *uuid.UUID
}

//go:generate mockgen -source=types.go -destination=../../../tests/mock/sale/resolvers.go -package=salemock

type CategoryResolver interface {
	CategoryIDs(ctx context.Context, sourceID uuid.UUID) ([]uuid.UUID, error)
}

type UserGroupResolver interface {
	GroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
