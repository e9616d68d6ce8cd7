package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/negociofacil/pos-api/internal/api/dto"
)

//go:generate mockery --name ProductService --output ../mocks
type ProductService interface {
	Create(ctx context.Context, tenantID string, req dto.CreateProductRequest) (dto.ProductResponse, error)
	List(ctx context.Context, tenantID string) ([]dto.ProductResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type ProductHandler struct {
	*BaseHandler
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	product, err := h.service.Create(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	products, err := h.service.List(h.RequestCtx(c), tenantID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// DeleteProduct removes a catalog entry. The delete is tenant-scoped, so
// another tenant's product ID comes back as 404.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
