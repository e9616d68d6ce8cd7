package service

import "errors"

var (
	// Validation
	ErrValidation = errors.New("validation failed")

	// Auth errors. Bad credentials are reported identically for unknown
	// users, wrong passwords and deactivated tenants so the login
	// endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")
	ErrEmailExists    = errors.New("email already registered")

	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Cart and checkout errors
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStockConflict     = errors.New("stock changed during checkout")
)
