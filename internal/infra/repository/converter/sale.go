package converter

import (
	"sales-engine/internal/domain/sale"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/internal/pkg/pgconv"
)

func SaleToCreateParams(s *sale.Sale) sqlc.CreateSaleParams {
	return sqlc.CreateSaleParams{
		Name:            s.Name(),
		Description:     s.Description(),
		DateFrom:        pgconv.TimePtrToPgtype(s.DateFrom()),
		DateTo:          pgconv.TimePtrToPgtype(s.DateTo()),
		DiscountType:    s.Discount().Type().String(),
		DiscountAmount:  pgconv.DecimalToNumeric(s.Discount().Amount()),
		AllGroups:       s.AllGroups(),
		AllCategories:   s.AllCategories(),
		AllPurchasables: s.AllPurchasables(),
		Enabled:         s.Enabled(),
	}
}

func SaleToUpdateParams(s *sale.Sale) sqlc.UpdateSaleParams {
	return sqlc.UpdateSaleParams{
		ID:              s.ID(),
		Name:            s.Name(),
		Description:     s.Description(),
		DateFrom:        pgconv.TimePtrToPgtype(s.DateFrom()),
		DateTo:          pgconv.TimePtrToPgtype(s.DateTo()),
		DiscountType:    s.Discount().Type().String(),
		DiscountAmount:  pgconv.DecimalToNumeric(s.Discount().Amount()),
		AllGroups:       s.AllGroups(),
		AllCategories:   s.AllCategories(),
		AllPurchasables: s.AllPurchasables(),
		Enabled:         s.Enabled(),
	}
}
