package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/service"
	"github.com/negociofacil/pos-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// TenantID resolves the caller's tenant from the session claims. Routes
// behind RequireRole("client") always have one; anything else is a
// middleware wiring bug and is answered with 401.
func (h *BaseHandler) TenantID(c *gin.Context) (string, bool) {
	tenantID, err := utils.GetTenantIDFromContext(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No tenant session"})
		return "", false
	}
	return tenantID, true
}

// Error translates service sentinel errors into HTTP statuses. Unknown
// errors become an opaque 500 so internals never leak to callers.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrStockConflict):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusUnprocessableEntity, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "internal error"})
	}
}
