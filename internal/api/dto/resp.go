package dto

import (
	"time"
)

// LoginResponse carries the session token. TenantID is empty for admin
// sessions.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role" example:"client"`
	TenantID string `json:"tenant_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email    string `json:"email" example:"tienda@ejemplo.com"`
}

type TenantResponse struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email      string    `json:"email" example:"tienda@ejemplo.com"`
	ExpiryDate string    `json:"expiry_date" example:"2027-01-31"`
	IsActive   bool      `json:"is_active" example:"true"`
	CreatedAt  time.Time `json:"created_at" example:"2026-08-31T10:00:00Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2026-08-31T10:00:00Z"`
}

type ProductResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Harina Pan 1kg"`
	Price     float64   `json:"price" example:"10.50"`
	Quantity  int       `json:"quantity" example:"3"`
	CreatedAt time.Time `json:"created_at" example:"2026-08-31T10:00:00Z"`
}

type CartLineResponse struct {
	ProductID string  `json:"product_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string  `json:"name" example:"Harina Pan 1kg"`
	Price     float64 `json:"price" example:"10.50"`
	Quantity  int     `json:"quantity" example:"2"`
}

type CartResponse struct {
	Lines        []CartLineResponse `json:"lines"`
	Total        float64            `json:"total" example:"21.00"`
	Currency     string             `json:"currency" example:"Bs"`
	ExchangeRate float64            `json:"exchange_rate" example:"1"`
}

type SaleResponse struct {
	ID            string             `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID      string             `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Items         []CartLineResponse `json:"items"`
	Total         float64            `json:"total" example:"21.00"`
	PaymentMethod string             `json:"payment_method" example:"Efectivo"`
	ExchangeRate  float64            `json:"exchange_rate" example:"1"`
	Timestamp     time.Time          `json:"timestamp" example:"2026-08-31T10:00:00Z"`
}

// SaleStatsResponse carries display-only ledger aggregates; nothing in
// it is persisted.
type SaleStatsResponse struct {
	TotalSales    int64              `json:"total_sales" example:"12"`
	TotalRevenue  float64            `json:"total_revenue" example:"420.75"`
	MethodCounts  map[string]int64   `json:"method_counts"`
	MethodRevenue map[string]float64 `json:"method_revenue"`
	RevenueByDay  map[string]float64 `json:"revenue_by_day"`
}
