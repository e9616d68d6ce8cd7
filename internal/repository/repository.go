package repository

import (
	"context"
	"errors"

	"github.com/negociofacil/pos-api/internal/domain"
)

// ErrStockConflict is returned when a concurrent stock change leaves a
// product with less quantity than a checkout line needs. The enclosing
// transaction is rolled back, so no sale record survives the conflict.
var ErrStockConflict = errors.New("product stock changed during checkout")

//go:generate mockery --name AccountRepository --output ../mocks
type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	// Provision creates the credential row and the directory record
	// together; the tenant ID is the new account's ID.
	Provision(ctx context.Context, account *domain.Account, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	// Delete removes the directory record and revokes the credential row.
	// Products and sales are left in place as orphaned history.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name ProductRepository --output ../mocks
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Product, error)
	List(ctx context.Context, tenantID string) ([]domain.Product, error)
	Delete(ctx context.Context, tenantID, id string) error
}

//go:generate mockery --name SaleRepository --output ../mocks
type SaleRepository interface {
	// CreateWithStockDecrement writes the sale and decrements each
	// referenced product's stock in a single transaction, so a recorded
	// sale can never coexist with an unapplied decrement.
	CreateWithStockDecrement(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)
	GetStats(ctx context.Context, filter domain.SaleFilter) (*domain.SaleStats, error)
}

//go:generate mockery --name CartStore --output ../mocks
type CartStore interface {
	Get(ctx context.Context, tenantID string) (*domain.Cart, error)
	Set(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, tenantID string) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Account() AccountRepository
	Tenant() TenantRepository
	Product() ProductRepository
	Sale() SaleRepository
}
