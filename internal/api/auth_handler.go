package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/metrics"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login resolves credentials into an admin or tenant session token.
// An empty email plus the admin secret is the admin branch; every
// failure is answered with the same generic message.
func (h *AuthHandler) Login(c *gin.Context) {
	metrics.LoginAttempts.Inc()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	session, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		metrics.LoginFailures.Inc()
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
