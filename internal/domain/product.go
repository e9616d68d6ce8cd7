package domain

import (
	"time"
)

type Product struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Price     float64   `gorm:"type:double precision;not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
