package domain

import (
	"time"
)

// Account is a login credential row. It plays the part of the external
// identity provider: tenants authenticate against it, admins never do.
// The password hash is write-only and never leaves the repository layer.
type Account struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:text;not null;unique" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}
