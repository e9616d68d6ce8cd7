package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/negociofacil/pos-api/internal/domain"
)

type ProductRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProductRepository(writerDB, readerDB *gorm.DB) *ProductRepository {
	return &ProductRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, tenantID string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	// Scoping the delete by tenant is what keeps one tenant from removing
	// another tenant's catalog entry by guessing IDs.
	result := r.writerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&domain.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
