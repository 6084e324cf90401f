package response

import (
	"time"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DateFrom        *time.Time      `json:"date_from,omitempty"`
	DateTo          *time.Time      `json:"date_to,omitempty"`
	DiscountType    string          `json:"discount_type"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	AllGroups       bool            `json:"all_groups"`
	AllCategories   bool            `json:"all_categories"`
	AllPurchasables bool            `json:"all_purchasables"`
	Enabled         bool            `json:"enabled"`
	UserGroupIDs    []string        `json:"user_group_ids"`
	CategoryIDs     []string        `json:"category_ids"`
	PurchasableIDs  []string        `json:"purchasable_ids"`
	CreatedAt       int64           `json:"created_at,omitempty"`
	UpdatedAt       int64           `json:"updated_at,omitempty"`
}

func FromSale(s *sale.Sale) *SaleResponse {
	res := &SaleResponse{
		ID:              s.ID().String(),
		Name:            s.Name(),
		Description:     s.Description(),
		DateFrom:        s.DateFrom(),
		DateTo:          s.DateTo(),
		DiscountType:    s.Discount().Type().String(),
		DiscountAmount:  s.Discount().Amount(),
		AllGroups:       s.AllGroups(),
		AllCategories:   s.AllCategories(),
		AllPurchasables: s.AllPurchasables(),
		Enabled:         s.Enabled(),
		UserGroupIDs:    idStrings(s.UserGroupIDs().Values()),
		CategoryIDs:     idStrings(s.CategoryIDs().Values()),
		PurchasableIDs:  idStrings(s.PurchasableIDs().Values()),
	}
	if !s.CreatedAt().IsZero() {
		res.CreatedAt = s.CreatedAt().Unix()
		res.UpdatedAt = s.UpdatedAt().Unix()
	}
	return res
}

func FromSales(sales []*sale.Sale) []*SaleResponse {
	res := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		res[i] = FromSale(s)
	}
	return res
}

type SalePriceResponse struct {
	PurchasableID string          `json:"purchasable_id"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	SaleIDs       []string        `json:"sale_ids"`
}

func FromPriceQuote(q *queries.PriceQuote) *SalePriceResponse {
	ids := make([]string, len(q.Sales))
	for i, s := range q.Sales {
		ids[i] = s.ID().String()
	}
	return &SalePriceResponse{
		PurchasableID: q.PurchasableID.String(),
		OriginalPrice: q.OriginalPrice,
		SalePrice:     q.SalePrice,
		SaleIDs:       ids,
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
