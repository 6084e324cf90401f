package readstore

import (
	"context"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra"
	"sales-engine/internal/infra/monitoring"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/internal/pkg/errs"
	"sales-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=sale.go -destination=../../../tests/mock/readstore/sale.go -package=readstoremock

type SaleReadQueries interface {
	ListSalesWithRelations(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListSalesWithRelationsRow, error)
	ListSaleRelations(ctx context.Context, db sqlc.DBTX, saleID uuid.UUID) ([]sqlc.ListSaleRelationsRow, error)
}

// SaleReadStore serves sales from two process-lifetime caches. Writes made
// after the first load are not reflected until restart.
type SaleReadStore struct {
	queries SaleReadQueries
	db      sqlc.DBTX

	all     lazy[[]*sale.Sale]
	enabled lazy[[]*sale.Sale]
}

func NewSaleReadStore(queries SaleReadQueries, db sqlc.DBTX) *SaleReadStore {
	return &SaleReadStore{
		queries: queries,
		db:      db,
	}
}

// GetAll returns the cached sequence itself; every call after the first load
// yields the same slice. Callers must not modify it.
func (r *SaleReadStore) GetAll(ctx context.Context) ([]*sale.Sale, error) {
	sales, err := r.all.get(func() ([]*sale.Sale, error) {
		sales, err := r.loadAll(ctx)
		monitoring.RecordCacheLoad("all", err)
		return sales, err
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// GetAllEnabled is GetAll filtered by enabled, cached separately.
func (r *SaleReadStore) GetAllEnabled(ctx context.Context) ([]*sale.Sale, error) {
	sales, err := r.enabled.get(func() ([]*sale.Sale, error) {
		all, err := r.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		enabled := make([]*sale.Sale, 0, len(all))
		for _, s := range all {
			if s.Enabled() {
				enabled = append(enabled, s)
			}
		}
		monitoring.RecordCacheLoad("enabled", nil)
		return enabled, nil
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SaleReadStore) GetByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, nil
}

// PopulateRelations re-reads the association rows of s and overwrites its
// three id-sets in place. The all* flags are left as they are. s may be a
// cached sale; the swap is guarded by the sale's own lock.
func (r *SaleReadStore) PopulateRelations(ctx context.Context, s *sale.Sale) error {
	rows, err := r.queries.ListSaleRelations(ctx, r.db, s.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to list sale relations", err)
	}

	var purchasables, categories, groups []uuid.UUID
	for _, row := range rows {
		switch sale.Relation(row.Kind) {
		case sale.RelationPurchasable:
			purchasables = append(purchasables, row.ForeignID)
		case sale.RelationCategory:
			categories = append(categories, row.ForeignID)
		case sale.RelationUserGroup:
			groups = append(groups, row.ForeignID)
		default:
			return errs.New("unknown sale relation kind " + row.Kind)
		}
	}
	s.ReplaceRelations(purchasables, categories, groups)
	return nil
}

func (r *SaleReadStore) loadAll(ctx context.Context) ([]*sale.Sale, error) {
	rows, err := r.queries.ListSalesWithRelations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	return groupSaleRows(rows)
}

// groupSaleRows folds the joined rows into one sale per id, keeping the
// order in which each id first appears.
func groupSaleRows(rows []sqlc.ListSalesWithRelationsRow) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)
	byID := make(map[uuid.UUID]*sale.Sale)

	for _, row := range rows {
		s, ok := byID[row.ID]
		if !ok {
			var err error
			s, err = saleFromRow(row)
			if err != nil {
				return nil, err
			}
			byID[row.ID] = s
			sales = append(sales, s)
		}
		if row.PurchasableID.Valid {
			s.AttachRelation(sale.RelationPurchasable, uuid.UUID(row.PurchasableID.Bytes))
		}
		if row.CategoryID.Valid {
			s.AttachRelation(sale.RelationCategory, uuid.UUID(row.CategoryID.Bytes))
		}
		if row.UserGroupID.Valid {
			s.AttachRelation(sale.RelationUserGroup, uuid.UUID(row.UserGroupID.Bytes))
		}
	}
	return sales, nil
}

func saleFromRow(row sqlc.ListSalesWithRelationsRow) (*sale.Sale, error) {
	amount, err := pgconv.DecimalFromNumeric(row.DiscountAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "sale %s discount amount", row.ID)
	}
	params := sale.Params{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		DateFrom:       pgconv.TimePtrFromPgtype(row.DateFrom),
		DateTo:         pgconv.TimePtrFromPgtype(row.DateTo),
		DiscountType:   sale.DiscountType(row.DiscountType),
		DiscountAmount: amount,
		Enabled:        row.Enabled,
	}
	scope := sale.Scope{
		AllGroups:       row.AllGroups,
		AllCategories:   row.AllCategories,
		AllPurchasables: row.AllPurchasables,
	}
	return sale.Reconstruct(params, scope, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}
