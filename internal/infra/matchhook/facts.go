package matchhook

import (
	"sales-engine/internal/domain/sale"
)

// facts flattens a match event into the variables rules see:
// sale.*, purchasable.* and order.*.
func facts(ev sale.MatchEvent) map[string]any {
	s := ev.Sale
	saleFacts := map[string]any{
		"id":               s.ID().String(),
		"name":             s.Name(),
		"discount_type":    s.Discount().Type().String(),
		"discount_amount":  s.Discount().Amount().InexactFloat64(),
		"enabled":          s.Enabled(),
		"all_purchasables": s.AllPurchasables(),
		"all_categories":   s.AllCategories(),
		"all_groups":       s.AllGroups(),
	}

	p := ev.Purchasable
	purchasableFacts := map[string]any{
		"id":         p.PurchasableID().String(),
		"price":      p.Price().InexactFloat64(),
		"promotable": p.IsPromotable(),
		"source_id":  p.PromotionRelationSource().String(),
	}

	orderFacts := map[string]any{
		"present":   false,
		"completed": false,
		"user_id":   "",
	}
	if ev.Order != nil {
		orderFacts["present"] = true
		orderFacts["completed"] = ev.Order.IsCompleted()
		if uid := ev.Order.UserID(); uid != nil {
			orderFacts["user_id"] = uid.String()
		}
	}

	return map[string]any{
		"sale":        saleFacts,
		"purchasable": purchasableFacts,
		"order":       orderFacts,
	}
}
