package shared

import (
	"context"

	"sales-engine/internal/domain/sale"
	sqlc "sales-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: single-attempt ReadCommitted transaction; any error rolls everything back
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Sales() SaleRepository
	DB() sqlc.DBTX
}

type SaleRepository interface {
	// LockByID reports whether the sale exists and holds a row lock on it until the transaction ends.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	Create(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	// ReplaceAssociations swaps the whole id set of one relation for saleID.
	ReplaceAssociations(ctx context.Context, tx sqlc.DBTX, saleID uuid.UUID, rel sale.Relation, ids []uuid.UUID) error
}

type SaleEventPublisher interface {
	SaleSaved(ctx context.Context, s *sale.Sale, created bool) error
	SaleDeleted(ctx context.Context, id uuid.UUID) error
}
