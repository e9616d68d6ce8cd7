package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/domain"
)

type SaleHandlerTestSuite struct {
	suite.Suite
	mockService *MockSaleService
	handler     *SaleHandler
}

type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) List(ctx context.Context, filter *domain.SaleFilter) ([]dto.SaleResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SaleResponse), args.Error(1)
}

func (m *MockSaleService) GetStats(ctx context.Context, filter *domain.SaleFilter) (*dto.SaleStatsResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SaleStatsResponse), args.Error(1)
}

func (s *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockSaleService)
	s.handler = NewSaleHandler(s.mockService)
}

func TestSaleHandler(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

func (s *SaleHandlerTestSuite) TestListSales_Success() {
	// Arrange
	expectedSales := []dto.SaleResponse{
		{
			ID:            "sale1",
			TenantID:      "tenant1",
			Items:         []dto.CartLineResponse{{ProductID: "product1", Name: "Harina Pan 1kg", Price: 10.50, Quantity: 2}},
			Total:         21.00,
			PaymentMethod: "Efectivo",
			ExchangeRate:  1,
			Timestamp:     time.Now(),
		},
	}

	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f *domain.SaleFilter) bool {
		return f.TenantID == "tenant1" && f.Limit == 50 && f.Offset == 0
	})).Return(expectedSales, nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/sales", nil)

	// Act
	s.handler.ListSales(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.SaleResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 1)
	s.Equal(21.00, response[0].Total)
	s.mockService.AssertExpectations(s.T())
}

func (s *SaleHandlerTestSuite) TestListSales_WithFilters() {
	// Arrange
	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f *domain.SaleFilter) bool {
		return f.TenantID == "tenant1" &&
			f.PaymentMethod == "Zelle" &&
			!f.StartTime.IsZero() &&
			f.Limit == 10 &&
			f.Offset == 10
	})).Return([]dto.SaleResponse{}, nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/sales?payment_method=Zelle&start_time=2026-08-01&page=2&page_size=10", nil)

	// Act
	s.handler.ListSales(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *SaleHandlerTestSuite) TestListSales_BadStartTime() {
	// Arrange
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/sales?start_time=ayer", nil)

	// Act
	s.handler.ListSales(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "List")
}

func (s *SaleHandlerTestSuite) TestListSales_NoSession() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/sales", nil)

	// Act
	s.handler.ListSales(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "List")
}

func (s *SaleHandlerTestSuite) TestExportSales_CSV() {
	// Arrange
	sales := []dto.SaleResponse{
		{
			ID: "sale1",
			Items: []dto.CartLineResponse{
				{ProductID: "product1", Name: "Harina Pan 1kg", Price: 10.50, Quantity: 2},
				{ProductID: "product2", Name: "Arroz 1kg", Price: 8.25, Quantity: 1},
			},
			Total:         29.25,
			PaymentMethod: "Efectivo",
			ExchangeRate:  1,
			Timestamp:     time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		},
	}

	// Exports drop pagination and send the whole filtered range.
	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f *domain.SaleFilter) bool {
		return f.TenantID == "tenant1" && f.Limit == 0 && f.Offset == 0
	})).Return(sales, nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/sales/export?format=csv", nil)

	// Act
	s.handler.ExportSales(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Disposition"), "sales.csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	s.Require().Len(lines, 2)
	s.Contains(lines[0], "payment_method")
	s.Contains(lines[1], "2x Harina Pan 1kg; 1x Arroz 1kg")
	s.Contains(lines[1], "29.25")
	s.mockService.AssertExpectations(s.T())
}

func (s *SaleHandlerTestSuite) TestExportSales_InvalidFormat() {
	// Arrange
	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/sales/export?format=xml", nil)

	// Act
	s.handler.ExportSales(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "List")
}

func (s *SaleHandlerTestSuite) TestGetSaleStats_Success() {
	// Arrange
	expectedStats := &dto.SaleStatsResponse{
		TotalSales:    3,
		TotalRevenue:  63.00,
		MethodCounts:  map[string]int64{"Efectivo": 2, "Zelle": 1},
		MethodRevenue: map[string]float64{"Efectivo": 42.00, "Zelle": 21.00},
		RevenueByDay:  map[string]float64{"2026-08-31": 63.00},
	}

	s.mockService.On("GetStats", mock.Anything, mock.MatchedBy(func(f *domain.SaleFilter) bool {
		return f.TenantID == "tenant1"
	})).Return(expectedStats, nil)

	w := httptest.NewRecorder()
	c := tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodGet, "/sales/stats", nil)

	// Act
	s.handler.GetSaleStats(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.SaleStatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(int64(3), response.TotalSales)
	s.Equal(63.00, response.TotalRevenue)
	s.mockService.AssertExpectations(s.T())
}
