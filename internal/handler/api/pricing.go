package api

import (
	"net/http"

	resdto "sales-engine/internal/handler/dto/response"
	"sales-engine/internal/handler/httperr"
	"sales-engine/internal/handler/middleware"
	"sales-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Sales for purchasable
// @Description Enabled sales that apply to the purchasable, in application order
// @Tags pricing
// @Produce json
// @Param id path string true "Purchasable ID"
// @Param order_id query string false "Order whose customer and order date drive matching"
// @Success 200 {array} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/purchasables/{id}/sales [get]
func (h *PricingHandler) Sales(c *gin.Context) {
	quote, ok := h.quote(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromSales(quote.Sales))
}

// @Summary Sale price
// @Description Price of the purchasable after every matching sale
// @Tags pricing
// @Produce json
// @Param id path string true "Purchasable ID"
// @Param order_id query string false "Order whose customer and order date drive matching"
// @Success 200 {object} resdto.SalePriceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/purchasables/{id}/sale-price [get]
func (h *PricingHandler) SalePrice(c *gin.Context) {
	quote, ok := h.quote(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceQuote(quote))
}

func (h *PricingHandler) quote(c *gin.Context) (*queries.PriceQuote, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return nil, false
	}

	req := queries.QuoteRequest{PurchasableID: id}
	if raw := c.Query("order_id"); raw != "" {
		orderID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order_id", nil)
			return nil, false
		}
		req.OrderID = &orderID
	}
	if userID, ok := middleware.GetUserID(c); ok {
		req.UserID = &userID
	}

	quote, err := h.q.Quote(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to price purchasable")
		return nil, false
	}
	return quote, true
}
