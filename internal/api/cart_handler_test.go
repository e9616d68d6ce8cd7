package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/service"
)

type CartHandlerTestSuite struct {
	suite.Suite
	mockService *MockCartService
	handler     *CartHandler
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(ctx context.Context, tenantID, productID string) (*dto.CartResponse, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CartResponse), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, tenantID, productID string) (*dto.CartResponse, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CartResponse), args.Error(1)
}

func (m *MockCartService) Get(ctx context.Context, tenantID, currency string, exchangeRate float64) (*dto.CartResponse, error) {
	args := m.Called(ctx, tenantID, currency, exchangeRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CartResponse), args.Error(1)
}

func (m *MockCartService) Checkout(ctx context.Context, tenantID string, req dto.CheckoutRequest) (*dto.SaleResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SaleResponse), args.Error(1)
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockCartService)
	s.handler = NewCartHandler(s.mockService)
}

func TestCartHandler(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestAddCartItem_Success() {
	// Arrange
	expectedCart := &dto.CartResponse{
		Lines: []dto.CartLineResponse{
			{ProductID: "product1", Name: "Harina Pan 1kg", Price: 10.50, Quantity: 1},
		},
		Total:        10.50,
		ExchangeRate: 1,
	}

	s.mockService.On("AddItem", mock.Anything, "tenant1", "product1").Return(expectedCart, nil)

	body := []byte(`{"product_id":"product1"}`)
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/cart/items", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.AddCartItem(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.CartResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response.Lines, 1)
	s.Equal(10.50, response.Total)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestAddCartItem_InsufficientStock() {
	// Arrange
	s.mockService.On("AddItem", mock.Anything, "tenant1", "product1").Return(nil, service.ErrInsufficientStock)

	body := []byte(`{"product_id":"product1"}`)
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/cart/items", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.AddCartItem(c)

	// Assert
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestAddCartItem_ProductNotFound() {
	// Arrange
	s.mockService.On("AddItem", mock.Anything, "tenant1", "missing").Return(nil, service.ErrProductNotFound)

	body := []byte(`{"product_id":"missing"}`)
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/cart/items", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.AddCartItem(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestRemoveCartItem_Success() {
	// Arrange
	expectedCart := &dto.CartResponse{
		Lines:        []dto.CartLineResponse{},
		Total:        0,
		ExchangeRate: 1,
	}

	s.mockService.On("RemoveItem", mock.Anything, "tenant1", "product1").Return(expectedCart, nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodDelete, "/cart/items/product1", nil)
	c.Params = gin.Params{{Key: "productId", Value: "product1"}}

	// Act
	s.handler.RemoveCartItem(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestGetCart_DefaultCurrency() {
	// Arrange
	expectedCart := &dto.CartResponse{
		Lines: []dto.CartLineResponse{
			{ProductID: "product1", Name: "Harina Pan 1kg", Price: 10.50, Quantity: 2},
		},
		Total:        21.00,
		Currency:     "Bs",
		ExchangeRate: 1,
	}

	s.mockService.On("Get", mock.Anything, "tenant1", "Bs", 1.0).Return(expectedCart, nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/cart", nil)

	// Act
	s.handler.GetCart(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.CartResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(21.00, response.Total)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestGetCart_USDQuery() {
	// Arrange
	expectedCart := &dto.CartResponse{
		Lines:        []dto.CartLineResponse{},
		Total:        0,
		Currency:     "USD",
		ExchangeRate: 36.50,
	}

	s.mockService.On("Get", mock.Anything, "tenant1", "USD", 36.50).Return(expectedCart, nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/cart?currency=USD&exchange_rate=36.50", nil)

	// Act
	s.handler.GetCart(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestGetCart_BadExchangeRate() {
	// Arrange
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/cart?currency=USD&exchange_rate=-1", nil)

	// Act
	s.handler.GetCart(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Get")
}

func (s *CartHandlerTestSuite) TestCheckout_Success() {
	// Arrange
	req := dto.CheckoutRequest{PaymentMethod: "Efectivo"}
	expectedSale := &dto.SaleResponse{
		ID:       "sale1",
		TenantID: "tenant1",
		Items: []dto.CartLineResponse{
			{ProductID: "product1", Name: "Harina Pan 1kg", Price: 10.50, Quantity: 2},
		},
		Total:         21.00,
		PaymentMethod: "Efectivo",
		ExchangeRate:  1,
		Timestamp:     time.Now(),
	}

	s.mockService.On("Checkout", mock.Anything, "tenant1", req).Return(expectedSale, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/cart/checkout", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Checkout(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.SaleResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal("sale1", response.ID)
	s.Equal(21.00, response.Total)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestCheckout_EmptyCart() {
	// Arrange
	req := dto.CheckoutRequest{PaymentMethod: "Efectivo"}
	s.mockService.On("Checkout", mock.Anything, "tenant1", req).Return(nil, service.ErrEmptyCart)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/cart/checkout", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Checkout(c)

	// Assert
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestCheckout_StockConflict() {
	// Arrange
	req := dto.CheckoutRequest{PaymentMethod: "Efectivo"}
	s.mockService.On("Checkout", mock.Anything, "tenant1", req).Return(nil, service.ErrStockConflict)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/cart/checkout", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Checkout(c)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *CartHandlerTestSuite) TestCheckout_MissingPaymentMethod() {
	// Arrange
	body := []byte(`{"currency":"USD"}`)
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/cart/checkout", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Checkout(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Checkout")
}
