package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/internal/repository"
)

const (
	expiryDateLayout  = "2006-01-02"
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	if req.Email == "" || req.Password == "" || req.ExpiryDate == "" {
		return dto.TenantResponse{}, fmt.Errorf("%w: email, password and expiry_date are required", ErrValidation)
	}
	if !emailPattern.MatchString(req.Email) {
		return dto.TenantResponse{}, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return dto.TenantResponse{}, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	expiryDate, err := time.Parse(expiryDateLayout, req.ExpiryDate)
	if err != nil {
		return dto.TenantResponse{}, fmt.Errorf("%w: expiry_date must be YYYY-MM-DD", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.TenantResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	tenant := &domain.Tenant{
		Email:      req.Email,
		ExpiryDate: expiryDate,
		IsActive:   true,
	}

	created, err := s.repo.Tenant().Provision(ctx, account, tenant)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.TenantResponse{}, ErrEmailExists
		}
		return dto.TenantResponse{}, err
	}

	return *dto.FromTenant(created), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

// SetActive toggles the tenant's active flag. The update is idempotent:
// activating an active tenant is a no-op that still succeeds.
func (s *TenantService) SetActive(ctx context.Context, id string, active bool) (dto.TenantResponse, error) {
	tenant, err := s.GetByID(ctx, id)
	if err != nil {
		return dto.TenantResponse{}, err
	}

	tenant.IsActive = active
	tenant.UpdatedAt = time.Now()
	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return dto.TenantResponse{}, err
	}

	return *dto.FromTenant(tenant), nil
}

func (s *TenantService) UpdateExpiry(ctx context.Context, id, newDate string) (dto.TenantResponse, error) {
	expiryDate, err := time.Parse(expiryDateLayout, newDate)
	if err != nil {
		return dto.TenantResponse{}, fmt.Errorf("%w: expiry_date must be YYYY-MM-DD", ErrValidation)
	}

	tenant, err := s.GetByID(ctx, id)
	if err != nil {
		return dto.TenantResponse{}, err
	}

	tenant.ExpiryDate = expiryDate
	tenant.UpdatedAt = time.Now()
	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return dto.TenantResponse{}, err
	}

	return *dto.FromTenant(tenant), nil
}

func (s *TenantService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Tenant().Delete(ctx, id)
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return []dto.TenantResponse{}, err
	}
	return dto.FromTenants(tenants), nil
}
