package api

import (
	"net/http"

	"sales-engine/internal/handler/httperr"
	"sales-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func abortWithUsecaseError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, errs.ErrSaleNotFound),
		errs.Is(err, errs.ErrPurchasableNotFound),
		errs.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
