package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/negociofacil/pos-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Provision(ctx context.Context, account *domain.Account, tenant *domain.Tenant) (*domain.Tenant, error) {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		// The directory record is keyed by the credential it belongs to.
		tenant.ID = account.ID
		return tx.Create(tenant).Error
	})
	if err != nil {
		return nil, err
	}

	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	return r.writerDB.WithContext(ctx).Save(tenant).Error
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Tenant{}, "id = ?", id).Error; err != nil {
			return err
		}
		// Revoke the login as well; the tenant's products and sales stay
		// behind as orphaned history.
		return tx.Delete(&domain.Account{}, "id = ?", id).Error
	})
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	if err := r.readerDB.WithContext(ctx).Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
