package readstore

import (
	"context"

	"sales-engine/internal/infra"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/internal/pkg/pgconv"
	"sales-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order.go -package=readstoremock

type OrderQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
}

type OrderReadStore struct {
	queries OrderQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	return &queries.OrderView{
		ID:         row.ID,
		CustomerID: pgconv.UUIDPtrFromPgtype(row.UserID),
		Completed:  row.IsCompleted,
		OrderedAt:  pgconv.TimePtrFromPgtype(row.DateOrdered),
	}, nil
}
