package api

import (
	"github.com/gin-gonic/gin"

	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/internal/middleware"
	"github.com/negociofacil/pos-api/internal/service"
	"github.com/negociofacil/pos-api/internal/service/pubsub"
	"github.com/negociofacil/pos-api/pkg/logger"
)

type Server struct {
	auth       *AuthHandler
	tenant     *TenantHandler
	product    *ProductHandler
	cart       *CartHandler
	sale       *SaleHandler
	websocket  *WebSocketHandler
	authMW     *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	globalRate int
}

func NewServer(
	authService *service.AuthService,
	tenantService *service.TenantService,
	productService *service.ProductService,
	cartService *service.CartService,
	saleService *service.SaleService,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
	globalRate int,
) *Server {
	return &Server{
		auth:       NewAuthHandler(authService),
		tenant:     NewTenantHandler(tenantService),
		product:    NewProductHandler(productService),
		cart:       NewCartHandler(cartService),
		sale:       NewSaleHandler(saleService),
		websocket:  NewWebSocketHandler(logger, pubsub),
		authMW:     authMW,
		rateLimit:  rateLimit,
		validation: validation,
		globalRate: globalRate,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(s.globalRate))

	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", s.auth.Login)
		}

		tenants := api.Group("/tenants", s.authMW.JWTAuth(), s.authMW.RequireRole(string(domain.RoleAdmin)))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.PATCH("/:id/active", s.tenant.SetTenantActive)
			tenants.PATCH("/:id/expiry", s.tenant.UpdateTenantExpiry)
			tenants.DELETE("/:id", s.tenant.DeleteTenant)
		}

		products := api.Group("/products", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit(), s.authMW.RequireRole(string(domain.RoleClient)))
		{
			products.POST("", s.product.CreateProduct)
			products.GET("", s.product.ListProducts)
			products.DELETE("/:id", s.product.DeleteProduct)
		}

		cart := api.Group("/cart", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit(), s.authMW.RequireRole(string(domain.RoleClient)))
		{
			cart.GET("", s.cart.GetCart)
			cart.POST("/items", s.cart.AddCartItem)
			cart.DELETE("/items/:productId", s.cart.RemoveCartItem)
			cart.POST("/checkout", s.cart.Checkout)
		}

		sales := api.Group("/sales", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit(), s.authMW.RequireRole(string(domain.RoleClient)))
		{
			sales.GET("", s.sale.ListSales)
			sales.GET("/export", s.sale.ExportSales)
			sales.GET("/stats", s.sale.GetSaleStats)
			sales.GET("/stream", s.websocket.HandleWebSocket)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting sales
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
