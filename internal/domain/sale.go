package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SaleItems stores the cart line snapshots of a sale as a jsonb column.
type SaleItems []CartLine

func (s SaleItems) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SaleItems) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported sale items column type %T", value)
	}
}

// Sale is an immutable record of a completed checkout. There is no
// update or delete operation on sales anywhere in the system.
type Sale struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID      string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Items         SaleItems `gorm:"type:jsonb;not null" json:"items"`
	Total         float64   `gorm:"type:double precision;not null" json:"total"`
	PaymentMethod string    `gorm:"type:text;not null" json:"payment_method"`
	ExchangeRate  float64   `gorm:"type:double precision;not null;default:1" json:"exchange_rate"`
	Timestamp     time.Time `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"timestamp"`
	Tenant        *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleFilter narrows a tenant's ledger listing. TenantID always comes
// from the session, never from the request.
type SaleFilter struct {
	TenantID      string    `json:"tenant_id"`
	PaymentMethod string    `json:"payment_method"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Limit         int       `json:"limit"`
	Offset        int       `json:"offset"`
}

// SaleStats are display-only aggregates derived from the ledger.
type SaleStats struct {
	TotalSales    int64              `json:"total_sales"`
	TotalRevenue  float64            `json:"total_revenue"`
	MethodCounts  map[string]int64   `json:"method_counts"`
	MethodRevenue map[string]float64 `json:"method_revenue"`
	RevenueByDay  map[string]float64 `json:"revenue_by_day"`
}
