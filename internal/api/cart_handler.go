package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/metrics"
)

//go:generate mockery --name CartService --output ../mocks
type CartService interface {
	AddItem(ctx context.Context, tenantID, productID string) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, tenantID, productID string) (*dto.CartResponse, error)
	Get(ctx context.Context, tenantID, currency string, exchangeRate float64) (*dto.CartResponse, error)
	Checkout(ctx context.Context, tenantID string, req dto.CheckoutRequest) (*dto.SaleResponse, error)
}

type CartHandler struct {
	*BaseHandler
	service CartService
}

func NewCartHandler(service CartService) *CartHandler {
	return &CartHandler{service: service}
}

// AddCartItem adds one unit of a product to the tenant's cart, bounded
// by the stock known at this moment.
func (h *CartHandler) AddCartItem(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	cart, err := h.service.AddItem(h.RequestCtx(c), tenantID, req.ProductID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(h.RequestCtx(c), tenantID, c.Param("productId"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GetCart returns the pending lines and the running total. Passing
// currency=USD with an exchange_rate shows the dollar total instead.
func (h *CartHandler) GetCart(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	currency := c.DefaultQuery("currency", "Bs")
	exchangeRate, err := strconv.ParseFloat(c.DefaultQuery("exchange_rate", "1"), 64)
	if err != nil || exchangeRate <= 0 {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "exchange_rate must be a positive number"})
		return
	}

	cart, err := h.service.Get(h.RequestCtx(c), tenantID, currency, exchangeRate)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// Checkout finalizes the cart into a sale and decrements stock.
func (h *CartHandler) Checkout(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	sale, err := h.service.Checkout(h.RequestCtx(c), tenantID, req)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("failed").Inc()
		h.Error(c, err)
		return
	}

	metrics.CheckoutsTotal.WithLabelValues("completed").Inc()
	c.JSON(http.StatusCreated, sale)
}
