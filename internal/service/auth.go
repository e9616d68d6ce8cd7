package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/config"
	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/internal/repository"
)

//go:generate mockery --name TokenIssuer --output ../mocks
type TokenIssuer interface {
	GenerateToken(userID, tenantID string, roles []string) (string, error)
}

// AuthService resolves submitted credentials into a session: either the
// platform admin (fixed shared secret, no database lookup) or a tenant
// backed by a credential row.
type AuthService struct {
	repo   repository.Repository
	config *config.Config
	tokens TokenIssuer
}

func NewAuthService(repo repository.Repository, config *config.Config, tokens TokenIssuer) *AuthService {
	return &AuthService{
		repo:   repo,
		config: config,
		tokens: tokens,
	}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	if req.Password == s.config.AdminSecret && (req.Email == "" || req.Email == s.config.AdminEmail) {
		return s.adminSession()
	}

	if req.Email == "" || req.Password == "" {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	account, err := s.repo.Account().GetByEmail(ctx, req.Email)
	if err != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, account.ID)
	if err != nil || !tenant.IsActive {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(account.ID, tenant.ID, []string{string(domain.RoleClient)})
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{
		Token:    token,
		Role:     string(domain.RoleClient),
		TenantID: tenant.ID,
		Email:    tenant.Email,
	}, nil
}

func (s *AuthService) adminSession() (dto.LoginResponse, error) {
	token, err := s.tokens.GenerateToken("admin", "", []string{string(domain.RoleAdmin)})
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{
		Token: token,
		Role:  string(domain.RoleAdmin),
		Email: s.config.AdminEmail,
	}, nil
}
