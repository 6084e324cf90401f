package queries

import (
	"context"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=sale.go -destination=../../../tests/mock/queries/sale.go -package=queriesmock

type SaleQueries interface {
	List(ctx context.Context) ([]*sale.Sale, error)
	GetByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error)
}

type saleQueriesImpl struct {
	store SaleReadStore
}

func NewSaleQueries(store SaleReadStore) SaleQueries {
	return &saleQueriesImpl{store: store}
}

func (q *saleQueriesImpl) List(ctx context.Context) ([]*sale.Sale, error) {
	return q.store.GetAll(ctx)
}

// GetByID serves the cached sale with its associations re-read from storage.
func (q *saleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	s, err := q.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errs.ErrSaleNotFound
	}
	if err := q.store.PopulateRelations(ctx, s); err != nil {
		return nil, errs.Wrapf(err, "refresh relations of sale %s", id)
	}
	return s, nil
}
