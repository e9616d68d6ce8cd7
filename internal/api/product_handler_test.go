package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/service"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	mockService *MockProductService
	handler     *ProductHandler
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, tenantID string, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	args := m.Called(ctx, tenantID, req)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, tenantID string) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockProductService)
	s.handler = NewProductHandler(s.mockService)
}

func TestProductHandler(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

// tenantContext builds a test context carrying the session claims the
// auth middleware would have stored.
func tenantContext(w *httptest.ResponseRecorder, tenantID string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Set("claims", jwt.MapClaims{"tenant_id": tenantID})
	return c
}

func (s *ProductHandlerTestSuite) TestCreateProduct_Success() {
	// Arrange
	price := 10.50
	quantity := 3
	req := dto.CreateProductRequest{
		Name:     "Harina Pan 1kg",
		Price:    &price,
		Quantity: &quantity,
	}

	expectedResponse := dto.ProductResponse{
		ID:       "product1",
		Name:     req.Name,
		Price:    price,
		Quantity: quantity,
	}

	s.mockService.On("Create", mock.Anything, "tenant1", req).Return(expectedResponse, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateProduct(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.ProductResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(expectedResponse.ID, response.ID)
	s.Equal(10.50, response.Price)
	s.mockService.AssertExpectations(s.T())
}

func (s *ProductHandlerTestSuite) TestCreateProduct_NoSession() {
	// Arrange
	body := []byte(`{"name":"Harina Pan 1kg","price":10.50,"quantity":3}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateProduct(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create")
}

func (s *ProductHandlerTestSuite) TestListProducts_Success() {
	// Arrange
	expectedProducts := []dto.ProductResponse{
		{ID: "product1", Name: "Harina Pan 1kg", Price: 10.50, Quantity: 3},
		{ID: "product2", Name: "Arroz 1kg", Price: 8.25, Quantity: 10},
	}

	s.mockService.On("List", mock.Anything, "tenant1").Return(expectedProducts, nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/products", nil)

	// Act
	s.handler.ListProducts(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.ProductResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 2)
	s.mockService.AssertExpectations(s.T())
}

func (s *ProductHandlerTestSuite) TestDeleteProduct_Success() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "tenant1", "product1").Return(nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodDelete, "/products/product1", nil)
	c.Params = gin.Params{{Key: "id", Value: "product1"}}

	// Act
	s.handler.DeleteProduct(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ProductHandlerTestSuite) TestDeleteProduct_NotFound() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "tenant1", "missing").Return(service.ErrProductNotFound)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodDelete, "/products/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	// Act
	s.handler.DeleteProduct(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}
