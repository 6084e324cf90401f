package readstore

import (
	"context"

	"sales-engine/internal/infra"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/internal/pkg/pgconv"
	"sales-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/readstore/catalog.go -package=readstoremock

type CatalogQueries interface {
	GetPurchasableByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Purchasables, error)
	ListCategoryIDsBySource(ctx context.Context, db sqlc.DBTX, sourceID uuid.UUID) ([]uuid.UUID, error)
}

// CatalogReadStore reads purchasables and their category relations.
type CatalogReadStore struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PurchasableView, error) {
	row, err := r.queries.GetPurchasableByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchasable not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get purchasable by id", err)
	}
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid purchasable price", err)
	}
	return &queries.PurchasableView{
		ID:               row.ID,
		Type:             row.Type,
		BasePrice:        price,
		Promotable:       row.Promotable,
		RelationSourceID: row.RelationSourceID,
	}, nil
}

// CategoryIDs returns the categories related to sourceID; none is an empty slice.
func (r *CatalogReadStore) CategoryIDs(ctx context.Context, sourceID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListCategoryIDsBySource(ctx, r.db, sourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list category relations", err)
	}
	return ids, nil
}
