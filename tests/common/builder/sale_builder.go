//go:build unit || e2e

package builder

import (
	"time"

	"sales-engine/internal/domain/sale"
	reqdto "sales-engine/internal/handler/dto/request"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type SaleBuilder struct {
	ID             uuid.UUID
	Name           string
	Description    string
	DateFrom       *time.Time
	DateTo         *time.Time
	DiscountType   sale.DiscountType
	DiscountAmount decimal.Decimal
	Enabled        bool
	GroupIDs       []uuid.UUID
	CategoryIDs    []uuid.UUID
	PurchasableIDs []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewSaleBuilder() *SaleBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &SaleBuilder{
		ID:             uuid.New(),
		Name:           "Spring sale",
		Description:    "Ten percent off everything",
		DiscountType:   sale.DiscountTypePercentage,
		DiscountAmount: decimal.RequireFromString("-0.10"),
		Enabled:        true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *SaleBuilder) With(mutate func(*SaleBuilder)) *SaleBuilder {
	mutate(b)
	return b
}

func (b *SaleBuilder) params(id uuid.UUID) sale.Params {
	return sale.Params{
		ID:             id,
		Name:           b.Name,
		Description:    b.Description,
		DateFrom:       b.DateFrom,
		DateTo:         b.DateTo,
		DiscountType:   b.DiscountType,
		DiscountAmount: b.DiscountAmount,
		Enabled:        b.Enabled,
	}
}

// BuildDomain returns an unsaved sale with its scope applied.
func (b *SaleBuilder) BuildDomain() *sale.Sale {
	s := sale.New(b.params(uuid.Nil))
	s.ApplyScope(b.GroupIDs, b.CategoryIDs, b.PurchasableIDs)
	return s
}

// BuildPersisted returns the sale as the read side would reconstruct it.
func (b *SaleBuilder) BuildPersisted() *sale.Sale {
	return sale.Reconstruct(b.params(b.ID), sale.Scope{
		AllGroups:       len(b.GroupIDs) == 0,
		AllCategories:   len(b.CategoryIDs) == 0,
		AllPurchasables: len(b.PurchasableIDs) == 0,
		PurchasableIDs:  b.PurchasableIDs,
		CategoryIDs:     b.CategoryIDs,
		UserGroupIDs:    b.GroupIDs,
	}, b.CreatedAt, b.UpdatedAt)
}

// BuildListRows renders the LEFT JOIN rows the sale produces, one per
// combination of its association ids.
func (b *SaleBuilder) BuildListRows() []sqlc.ListSalesWithRelationsRow {
	base := sqlc.ListSalesWithRelationsRow{
		ID:              b.ID,
		Name:            b.Name,
		Description:     b.Description,
		DateFrom:        pgconv.TimePtrToPgtype(b.DateFrom),
		DateTo:          pgconv.TimePtrToPgtype(b.DateTo),
		DiscountType:    b.DiscountType.String(),
		DiscountAmount:  pgconv.DecimalToNumeric(b.DiscountAmount),
		AllGroups:       len(b.GroupIDs) == 0,
		AllCategories:   len(b.CategoryIDs) == 0,
		AllPurchasables: len(b.PurchasableIDs) == 0,
		Enabled:         b.Enabled,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}

	var rows []sqlc.ListSalesWithRelationsRow
	for _, p := range nullable(b.PurchasableIDs) {
		for _, c := range nullable(b.CategoryIDs) {
			for _, g := range nullable(b.GroupIDs) {
				row := base
				row.PurchasableID = p
				row.CategoryID = c
				row.UserGroupID = g
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func (b *SaleBuilder) BuildSaveRequestDTO() reqdto.SaveSaleRequest {
	enabled := b.Enabled
	return reqdto.SaveSaleRequest{
		Name:           b.Name,
		Description:    b.Description,
		DateFrom:       b.DateFrom,
		DateTo:         b.DateTo,
		DiscountType:   b.DiscountType.String(),
		DiscountAmount: b.DiscountAmount,
		Enabled:        &enabled,
		UserGroupIDs:   b.GroupIDs,
		CategoryIDs:    b.CategoryIDs,
		PurchasableIDs: b.PurchasableIDs,
	}
}

func nullable(ids []uuid.UUID) []pgtype.UUID {
	if len(ids) == 0 {
		return []pgtype.UUID{{}}
	}
	out := make([]pgtype.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, pgconv.UUIDToPgtype(id))
	}
	return out
}
