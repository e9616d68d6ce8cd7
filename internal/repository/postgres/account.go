package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/negociofacil/pos-api/internal/domain"
)

type AccountRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAccountRepository(writerDB, readerDB *gorm.DB) *AccountRepository {
	return &AccountRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	if err := r.readerDB.WithContext(ctx).First(&account, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
