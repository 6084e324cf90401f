package request

import (
	"time"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaveSaleRequest is the body of both create and update. Empty id lists mean
// the sale is not restricted by that dimension.
type SaveSaleRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	DateFrom       *time.Time      `json:"date_from"`
	DateTo         *time.Time      `json:"date_to"`
	DiscountType   string          `json:"discount_type" binding:"required,oneof=percentage flat"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Enabled        *bool           `json:"enabled"`
	UserGroupIDs   []uuid.UUID     `json:"user_group_ids"`
	CategoryIDs    []uuid.UUID     `json:"category_ids"`
	PurchasableIDs []uuid.UUID     `json:"purchasable_ids"`
}

// ToDomain builds the sale to save. id is uuid.Nil on create.
func (r *SaveSaleRequest) ToDomain(id uuid.UUID) *sale.Sale {
	return sale.New(sale.Params{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		DateFrom:       r.DateFrom,
		DateTo:         r.DateTo,
		DiscountType:   sale.DiscountType(r.DiscountType),
		DiscountAmount: r.DiscountAmount,
		Enabled:        patch.Coalesce(r.Enabled, true),
	})
}
