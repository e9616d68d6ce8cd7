package service

import (
	"context"
	"fmt"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/internal/repository"
)

// SaleService reads the ledger. Sales are written exclusively by
// CartService.Checkout and never mutated afterwards.
type SaleService struct {
	repo repository.Repository
}

func NewSaleService(repo repository.Repository) *SaleService {
	return &SaleService{repo: repo}
}

func (s *SaleService) List(ctx context.Context, filter *domain.SaleFilter) ([]dto.SaleResponse, error) {
	sales, err := s.repo.Sale().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromSales(sales), nil
}

func (s *SaleService) GetStats(ctx context.Context, filter *domain.SaleFilter) (*dto.SaleStatsResponse, error) {
	stats, err := s.repo.Sale().GetStats(ctx, *filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale stats: %w", err)
	}
	return dto.FromSaleStats(stats), nil
}
