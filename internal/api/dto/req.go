package dto

// LoginRequest carries submitted credentials. Email is deliberately not
// required: an empty email plus the admin secret resolves as the
// platform admin.
type LoginRequest struct {
	Email    string `json:"email" example:"tienda@ejemplo.com"`
	Password string `json:"password" binding:"required" example:"secreto1"`
}

type CreateTenantRequest struct {
	Email      string `json:"email" binding:"required" example:"tienda@ejemplo.com"`
	Password   string `json:"password" binding:"required" example:"secreto1"`
	ExpiryDate string `json:"expiry_date" binding:"required" example:"2027-01-31"`
}

type SetTenantActiveRequest struct {
	Active *bool `json:"active" binding:"required" example:"false"`
}

type UpdateTenantExpiryRequest struct {
	ExpiryDate string `json:"expiry_date" binding:"required" example:"2027-06-30"`
}

type CreateProductRequest struct {
	Name     string   `json:"name" binding:"required" example:"Harina Pan 1kg"`
	Price    *float64 `json:"price" binding:"required" example:"10.50"`
	Quantity *int     `json:"quantity" binding:"required" example:"3"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// CheckoutRequest finalizes the cart. Currency "USD" divides the stored
// total by ExchangeRate; any other value keeps the local currency and a
// rate of 1.
type CheckoutRequest struct {
	PaymentMethod string  `json:"payment_method" binding:"required" example:"Efectivo"`
	Currency      string  `json:"currency" example:"USD"`
	ExchangeRate  float64 `json:"exchange_rate" example:"36.5"`
}
