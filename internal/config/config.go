package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort         int           `json:"server_port"`
	JWTSecretKey       string        `json:"jwt_secret_key"`
	JWTExpirationHours int           `json:"jwt_expiration_hours"`
	AdminSecret        string        `json:"admin_secret"`
	AdminEmail         string        `json:"admin_email"`
	DefaultRateLimit   int           `json:"default_rate_limit"`
	GlobalRateLimit    int           `json:"global_rate_limit"`
	CartTTL            time.Duration `json:"cart_ttl"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8080
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	// The admin shared secret is fixed by product decision, not per-account
	// credentials. The default matches the published demo credentials.
	adminSecret := os.Getenv("ADMIN_SECRET")
	if adminSecret == "" {
		adminSecret = "123456"
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@sistema"
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per tenant
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	cartTTL := getEnvDurationWithDefault("CART_TTL", time.Hour)

	return &Config{
		ServerPort:         serverPort,
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: jwtExpirationHours,
		AdminSecret:        adminSecret,
		AdminEmail:         adminEmail,
		DefaultRateLimit:   defaultRateLimit,
		GlobalRateLimit:    globalRateLimit,
		CartTTL:            cartTTL,
	}, nil
}
