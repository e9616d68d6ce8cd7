package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/internal/mocks"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockProduct *mocks.ProductRepository
	service     *ProductService
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProduct = new(mocks.ProductRepository)

	s.mockRepo.On("Product").Return(s.mockProduct)

	s.service = NewProductService(s.mockRepo)
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func (s *ProductServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:     "Harina Pan 1kg",
		Price:    floatPtr(10.50),
		Quantity: intPtr(3),
	}

	expected := &domain.Product{
		ID:        "product1",
		TenantID:  "tenant1",
		Name:      req.Name,
		Price:     10.50,
		Quantity:  3,
		CreatedAt: time.Now(),
	}

	s.mockProduct.On("Create", ctx, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*domain.Product)
			s.Equal("tenant1", product.TenantID)
		}).
		Return(expected, nil)

	// Act
	resp, err := s.service.Create(ctx, "tenant1", req)

	// Assert
	s.NoError(err)
	s.Equal(expected.ID, resp.ID)
	s.Equal(expected.Name, resp.Name)
	s.Equal(10.50, resp.Price)
	s.Equal(3, resp.Quantity)
	s.mockProduct.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestCreate_MissingFields() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "Harina Pan 1kg"}

	// Act
	_, err := s.service.Create(ctx, "tenant1", req)

	// Assert
	s.ErrorIs(err, ErrValidation)
	s.mockProduct.AssertNotCalled(s.T(), "Create")
}

func (s *ProductServiceTestSuite) TestCreate_NegativePrice() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:     "Harina Pan 1kg",
		Price:    floatPtr(-1),
		Quantity: intPtr(3),
	}

	// Act
	_, err := s.service.Create(ctx, "tenant1", req)

	// Assert
	s.ErrorIs(err, ErrValidation)
}

func (s *ProductServiceTestSuite) TestCreate_NegativeQuantity() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:     "Harina Pan 1kg",
		Price:    floatPtr(10.50),
		Quantity: intPtr(-3),
	}

	// Act
	_, err := s.service.Create(ctx, "tenant1", req)

	// Assert
	s.ErrorIs(err, ErrValidation)
}

func (s *ProductServiceTestSuite) TestCreate_ZeroQuantityAllowed() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:     "Harina Pan 1kg",
		Price:    floatPtr(10.50),
		Quantity: intPtr(0),
	}

	expected := &domain.Product{
		ID:       "product1",
		TenantID: "tenant1",
		Name:     req.Name,
		Price:    10.50,
		Quantity: 0,
	}

	s.mockProduct.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(expected, nil)

	// Act
	resp, err := s.service.Create(ctx, "tenant1", req)

	// Assert
	s.NoError(err)
	s.Equal(0, resp.Quantity)
	s.mockProduct.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestList_Success() {
	// Arrange
	ctx := context.Background()
	products := []domain.Product{
		{ID: "product1", TenantID: "tenant1", Name: "Harina Pan 1kg", Price: 10.50, Quantity: 3},
		{ID: "product2", TenantID: "tenant1", Name: "Arroz 1kg", Price: 8.25, Quantity: 10},
	}

	s.mockProduct.On("List", ctx, "tenant1").Return(products, nil)

	// Act
	resp, err := s.service.List(ctx, "tenant1")

	// Assert
	s.NoError(err)
	s.Len(resp, 2)
	s.Equal("Harina Pan 1kg", resp[0].Name)
	s.mockProduct.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestList_Empty() {
	// Arrange
	ctx := context.Background()
	s.mockProduct.On("List", ctx, "tenant1").Return([]domain.Product{}, nil)

	// Act
	resp, err := s.service.List(ctx, "tenant1")

	// Assert
	s.NoError(err)
	s.Empty(resp)
}

func (s *ProductServiceTestSuite) TestDelete_Success() {
	// Arrange
	ctx := context.Background()
	s.mockProduct.On("Delete", ctx, "tenant1", "product1").Return(nil)

	// Act
	err := s.service.Delete(ctx, "tenant1", "product1")

	// Assert
	s.NoError(err)
	s.mockProduct.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestDelete_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockProduct.On("Delete", ctx, "tenant1", "missing").Return(gorm.ErrRecordNotFound)

	// Act
	err := s.service.Delete(ctx, "tenant1", "missing")

	// Assert
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *ProductServiceTestSuite) TestDelete_OtherTenantsProduct() {
	// Arrange. The repository scopes by tenant, so another tenant's
	// product behaves like a missing one.
	ctx := context.Background()
	s.mockProduct.On("Delete", ctx, "tenant1", "product-of-tenant2").Return(gorm.ErrRecordNotFound)

	// Act
	err := s.service.Delete(ctx, "tenant1", "product-of-tenant2")

	// Assert
	s.ErrorIs(err, ErrProductNotFound)
}
