package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/internal/repository"
)

type ProductService struct {
	repo repository.Repository
}

func NewProductService(repo repository.Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, tenantID string, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	if req.Name == "" || req.Price == nil || req.Quantity == nil {
		return dto.ProductResponse{}, fmt.Errorf("%w: name, price and quantity are required", ErrValidation)
	}
	if *req.Price < 0 {
		return dto.ProductResponse{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if *req.Quantity < 0 {
		return dto.ProductResponse{}, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}

	product := &domain.Product{
		TenantID: tenantID,
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}

	created, err := s.repo.Product().Create(ctx, product)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	return *dto.FromProduct(created), nil
}

func (s *ProductService) List(ctx context.Context, tenantID string) ([]dto.ProductResponse, error) {
	products, err := s.repo.Product().List(ctx, tenantID)
	if err != nil {
		return []dto.ProductResponse{}, err
	}
	return dto.FromProducts(products), nil
}

func (s *ProductService) Delete(ctx context.Context, tenantID, id string) error {
	err := s.repo.Product().Delete(ctx, tenantID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Products owned by other tenants are indistinguishable from
		// products that do not exist.
		return ErrProductNotFound
	}
	return err
}
