package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/negociofacil/pos-api/internal/api/dto"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error)
	List(ctx context.Context) ([]dto.TenantResponse, error)
	SetActive(ctx context.Context, id string, active bool) (dto.TenantResponse, error)
	UpdateExpiry(ctx context.Context, id, newDate string) (dto.TenantResponse, error)
	Delete(ctx context.Context, id string) error
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant provisions a login credential and a directory record for
// a new business account.
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, tenants)
}

func (h *TenantHandler) SetTenantActive(c *gin.Context) {
	var req dto.SetTenantActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.SetActive(h.RequestCtx(c), c.Param("id"), *req.Active)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

func (h *TenantHandler) UpdateTenantExpiry(c *gin.Context) {
	var req dto.UpdateTenantExpiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.UpdateExpiry(h.RequestCtx(c), c.Param("id"), req.ExpiryDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant removes the directory record and revokes the login. The
// tenant's products and sales stay behind as history.
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tenant deleted successfully"})
}
