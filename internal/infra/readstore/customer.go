package readstore

import (
	"context"

	"sales-engine/internal/infra"
	sqlc "sales-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/readstore/customer.go -package=readstoremock

type UserGroupQueries interface {
	ListUserGroupIDsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]uuid.UUID, error)
}

type UserGroupReadStore struct {
	queries UserGroupQueries
	db      sqlc.DBTX
}

func NewUserGroupReadStore(queries UserGroupQueries, db sqlc.DBTX) *UserGroupReadStore {
	return &UserGroupReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserGroupReadStore) GroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListUserGroupIDsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user groups", err)
	}
	return ids, nil
}
