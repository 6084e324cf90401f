package api

import (
	"net/http"

	reqdto "sales-engine/internal/handler/dto/request"
	resdto "sales-engine/internal/handler/dto/response"
	"sales-engine/internal/handler/httperr"
	"sales-engine/internal/pkg/errs"
	"sales-engine/internal/usecase/commands"
	"sales-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleHandler struct {
	cmds commands.SaleCommands
	q    queries.SaleQueries
}

func NewSaleHandler(cmds commands.SaleCommands, q queries.SaleQueries) *SaleHandler {
	return &SaleHandler{cmds: cmds, q: q}
}

// @Summary List sales
// @Description List every sale, enabled or not, in creation order
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SaleResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSales(sales))
}

// @Summary Get sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	s, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load sale")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSale(s))
}

// @Summary Create sale
// @Description Create a sale with its purchasable, category and user group scope
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveSaleRequest true "Save sale request"
// @Success 201 {object} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	h.save(c, uuid.Nil, http.StatusCreated)
}

// @Summary Update sale
// @Description Replace a sale's fields and scope
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Param request body reqdto.SaveSaleRequest true "Save sale request"
// @Success 200 {object} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/sales/{id} [put]
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	h.save(c, id, http.StatusOK)
}

func (h *SaleHandler) save(c *gin.Context, id uuid.UUID, status int) {
	var req reqdto.SaveSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	s := req.ToDomain(id)
	ok, err := h.cmds.Save(c.Request.Context(), s, req.UserGroupIDs, req.CategoryIDs, req.PurchasableIDs)
	if errs.Is(err, errs.ErrPurchasableNotFound) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown purchasable", nil)
		return
	}
	if err != nil {
		abortWithUsecaseError(c, err, "Save sale failed")
		return
	}
	if !ok {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errs.ErrSaleValidationFailed, "Validation failed", s.Errors())
		return
	}
	c.JSON(status, resdto.FromSale(s))
}

// @Summary Delete sale
// @Tags sales
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	deleted, err := h.cmds.DeleteByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Delete sale failed")
		return
	}
	if !deleted {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrSaleNotFound, "Not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
