package dto

import (
	"github.com/negociofacil/pos-api/internal/domain"
)

const expiryDateLayout = "2006-01-02"

// FromTenant converts a Tenant domain model to a TenantResponse DTO
func FromTenant(tenant *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:         tenant.ID,
		Email:      tenant.Email,
		ExpiryDate: tenant.ExpiryDate.Format(expiryDateLayout),
		IsActive:   tenant.IsActive,
		CreatedAt:  tenant.CreatedAt,
		UpdatedAt:  tenant.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i, tenant := range tenants {
		responses[i] = *FromTenant(&tenant)
	}
	return responses
}

// FromProduct converts a Product domain model to a ProductResponse DTO
func FromProduct(product *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  product.Quantity,
		CreatedAt: product.CreatedAt,
	}
}

func FromProducts(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *FromProduct(&product)
	}
	return responses
}

func fromCartLines(lines []domain.CartLine) []CartLineResponse {
	responses := make([]CartLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = CartLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		}
	}
	return responses
}

// FromCart converts a Cart domain model to a CartResponse DTO with the
// total computed for the requested currency mode.
func FromCart(cart *domain.Cart, currency string, exchangeRate float64) *CartResponse {
	if currency != domain.CurrencyUSD {
		exchangeRate = 1
	}
	return &CartResponse{
		Lines:        fromCartLines(cart.Lines),
		Total:        cart.Total(currency, exchangeRate),
		Currency:     currency,
		ExchangeRate: exchangeRate,
	}
}

// FromSale converts a Sale domain model to a SaleResponse DTO
func FromSale(sale *domain.Sale) *SaleResponse {
	return &SaleResponse{
		ID:            sale.ID,
		TenantID:      sale.TenantID,
		Items:         fromCartLines(sale.Items),
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		ExchangeRate:  sale.ExchangeRate,
		Timestamp:     sale.Timestamp,
	}
}

func FromSales(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = *FromSale(&sale)
	}
	return responses
}

// FromSaleStats converts ledger aggregates to their response DTO
func FromSaleStats(stats *domain.SaleStats) *SaleStatsResponse {
	return &SaleStatsResponse{
		TotalSales:    stats.TotalSales,
		TotalRevenue:  stats.TotalRevenue,
		MethodCounts:  stats.MethodCounts,
		MethodRevenue: stats.MethodRevenue,
		RevenueByDay:  stats.RevenueByDay,
	}
}
