package postgres

import (
	"github.com/negociofacil/pos-api/internal/config"
	"github.com/negociofacil/pos-api/internal/repository"
)

type postgresRepository struct {
	accountRepo repository.AccountRepository
	tenantRepo  repository.TenantRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		accountRepo: NewAccountRepository(dbConnections.Writer, dbConnections.Reader),
		tenantRepo:  NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		productRepo: NewProductRepository(dbConnections.Writer, dbConnections.Reader),
		saleRepo:    NewSaleRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Account() repository.AccountRepository {
	return r.accountRepo
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Product() repository.ProductRepository {
	return r.productRepo
}

func (r *postgresRepository) Sale() repository.SaleRepository {
	return r.saleRepo
}
