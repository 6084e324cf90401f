package repository

import (
	"context"
	"errors"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra"
	"sales-engine/internal/infra/repository/converter"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=sale.go -destination=../../../tests/mock/repository/sale.go -package=repositorymock

type SaleWriteQueries interface {
	GetSaleIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	CreateSale(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleParams) (uuid.UUID, error)
	UpdateSale(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSaleParams) (int64, error)
	DeleteSale(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteSalePurchasables(ctx context.Context, db sqlc.DBTX, saleID uuid.UUID) error
	DeleteSaleCategories(ctx context.Context, db sqlc.DBTX, saleID uuid.UUID) error
	DeleteSaleUserGroups(ctx context.Context, db sqlc.DBTX, saleID uuid.UUID) error
	InsertSalePurchasables(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSalePurchasablesParams) error
	InsertSaleCategories(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSaleCategoriesParams) error
	InsertSaleUserGroups(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSaleUserGroupsParams) error
	GetPurchasableType(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (string, error)
}

type SaleRepository struct {
	queries SaleWriteQueries
}

func NewSaleRepository(queries SaleWriteQueries) *SaleRepository {
	return &SaleRepository{queries: queries}
}

func (r *SaleRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	if _, err := r.queries.GetSaleIDForUpdate(ctx, tx, id); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to lock sale", err)
	}
	return true, nil
}

func (r *SaleRepository) Create(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) (uuid.UUID, error) {
	id, err := r.queries.CreateSale(ctx, tx, converter.SaleToCreateParams(s))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create sale", err)
	}
	return id, nil
}

func (r *SaleRepository) Update(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) error {
	affected, err := r.queries.UpdateSale(ctx, tx, converter.SaleToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update sale", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("sale not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	affected, err := r.queries.DeleteSale(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete sale", err)
	}
	return affected > 0, nil
}

func (r *SaleRepository) ReplaceAssociations(ctx context.Context, tx sqlc.DBTX, saleID uuid.UUID, rel sale.Relation, ids []uuid.UUID) error {
	switch rel {
	case sale.RelationPurchasable:
		return r.replaceAssociations(ctx, tx, saleID, ids, association{
			name:  "purchasables",
			clear: r.queries.DeleteSalePurchasables,
			insert: func(ctx context.Context, tx sqlc.DBTX, saleID uuid.UUID, ids []uuid.UUID) error {
				types, err := r.purchasableTypes(ctx, tx, ids)
				if err != nil {
					return err
				}
				return r.queries.InsertSalePurchasables(ctx, tx, sqlc.InsertSalePurchasablesParams{
					SaleID:           saleID,
					PurchasableIds:   ids,
					PurchasableTypes: types,
				})
			},
		})
	case sale.RelationCategory:
		return r.replaceAssociations(ctx, tx, saleID, ids, association{
			name:  "categories",
			clear: r.queries.DeleteSaleCategories,
			insert: func(ctx context.Context, tx sqlc.DBTX, saleID uuid.UUID, ids []uuid.UUID) error {
				return r.queries.InsertSaleCategories(ctx, tx, sqlc.InsertSaleCategoriesParams{SaleID: saleID, CategoryIds: ids})
			},
		})
	case sale.RelationUserGroup:
		return r.replaceAssociations(ctx, tx, saleID, ids, association{
			name:  "user groups",
			clear: r.queries.DeleteSaleUserGroups,
			insert: func(ctx context.Context, tx sqlc.DBTX, saleID uuid.UUID, ids []uuid.UUID) error {
				return r.queries.InsertSaleUserGroups(ctx, tx, sqlc.InsertSaleUserGroupsParams{SaleID: saleID, UserGroupIds: ids})
			},
		})
	default:
		return infra.WrapRepoErr("unknown sale relation "+string(rel), nil, infra.KindDBFailure)
	}
}

type association struct {
	name   string
	clear  func(ctx context.Context, tx sqlc.DBTX, saleID uuid.UUID) error
	insert func(ctx context.Context, tx sqlc.DBTX, saleID uuid.UUID, ids []uuid.UUID) error
}

// replaceAssociations deletes every row of one relation for saleID, then
// bulk-inserts ids. It relies on the caller's transaction for atomicity.
func (r *SaleRepository) replaceAssociations(ctx context.Context, tx sqlc.DBTX, saleID uuid.UUID, ids []uuid.UUID, a association) error {
	if err := a.clear(ctx, tx, saleID); err != nil {
		return infra.WrapRepoErr("failed to clear sale "+a.name, err)
	}
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}
	if err := a.insert(ctx, tx, saleID, ids); err != nil {
		var repoErr infra.RepositoryError
		if errors.As(err, &repoErr) {
			return err
		}
		return infra.WrapRepoErr("failed to insert sale "+a.name, err)
	}
	return nil
}

// purchasableTypes resolves the stored type for each id, in order.
func (r *SaleRepository) purchasableTypes(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) ([]string, error) {
	types := make([]string, 0, len(ids))
	for _, id := range ids {
		typ, err := r.queries.GetPurchasableType(ctx, tx, id)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to resolve purchasable "+id.String(), err)
		}
		types = append(types, typ)
	}
	return types, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	if len(ids) < 2 {
		return ids
	}
	return sale.NewIDSet(ids...).Values()
}
