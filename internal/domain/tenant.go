package domain

import (
	"time"
)

// Tenant is the directory record the platform admin manages for each
// business account. Its ID is the identity account ID that owns it.
type Tenant struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email      string    `gorm:"type:text;not null;unique" json:"email"`
	ExpiryDate time.Time `gorm:"type:date;not null" json:"expiry_date"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
