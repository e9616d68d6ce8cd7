package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/internal/repository"
)

//go:generate mockery --name WebSocketBroadcaster --output ../mocks
type WebSocketBroadcaster interface {
	BroadcastSale(sale *dto.SaleResponse)
}

// CartService owns the add/remove/checkout flow. The cart itself lives
// in the cart store; checkout turns it into an immutable sale through a
// single transactional write.
type CartService struct {
	repo        repository.Repository
	carts       repository.CartStore
	broadcaster WebSocketBroadcaster
}

func NewCartService(repo repository.Repository, carts repository.CartStore) *CartService {
	return &CartService{
		repo:  repo,
		carts: carts,
	}
}

// SetWebSocketBroadcaster sets the WebSocket broadcaster
func (s *CartService) SetWebSocketBroadcaster(broadcaster WebSocketBroadcaster) {
	s.broadcaster = broadcaster
}

// AddItem puts one more unit of the product into the tenant's cart. The
// stock check runs against the product row as read now, not a reserved
// quantity; a concurrent checkout can still invalidate it and is caught
// again at checkout time.
func (s *CartService) AddItem(ctx context.Context, tenantID, productID string) (*dto.CartResponse, error) {
	product, err := s.repo.Product().GetByID(ctx, tenantID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.carts.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if line := cart.Line(productID); line != nil {
		if line.Quantity+1 > product.Quantity {
			return nil, fmt.Errorf("%w: only %d of %q available", ErrInsufficientStock, product.Quantity, product.Name)
		}
		line.Quantity++
	} else {
		if product.Quantity < 1 {
			return nil, fmt.Errorf("%w: %q is out of stock", ErrInsufficientStock, product.Name)
		}
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		})
	}

	if err := s.carts.Set(ctx, cart); err != nil {
		return nil, err
	}

	return dto.FromCart(cart, "", 1), nil
}

// RemoveItem drops the whole line for the product; there is no partial
// decrement.
func (s *CartService) RemoveItem(ctx context.Context, tenantID, productID string) (*dto.CartResponse, error) {
	cart, err := s.carts.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	cart.RemoveLine(productID)

	if err := s.carts.Set(ctx, cart); err != nil {
		return nil, err
	}

	return dto.FromCart(cart, "", 1), nil
}

func (s *CartService) Get(ctx context.Context, tenantID, currency string, exchangeRate float64) (*dto.CartResponse, error) {
	cart, err := s.carts.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromCart(cart, currency, exchangeRate), nil
}

// Checkout persists the cart as a sale and decrements stock for every
// line in one transaction, then clears the cart and announces the sale
// to the tenant's live stream.
func (s *CartService) Checkout(ctx context.Context, tenantID string, req dto.CheckoutRequest) (*dto.SaleResponse, error) {
	cart, err := s.carts.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	exchangeRate := 1.0
	if req.Currency == domain.CurrencyUSD && req.ExchangeRate > 0 {
		exchangeRate = req.ExchangeRate
	}

	sale := &domain.Sale{
		TenantID:      tenantID,
		Items:         domain.SaleItems(cart.Lines),
		Total:         cart.Total(req.Currency, exchangeRate),
		PaymentMethod: req.PaymentMethod,
		ExchangeRate:  exchangeRate,
		Timestamp:     time.Now(),
	}

	if err := s.repo.Sale().CreateWithStockDecrement(ctx, sale); err != nil {
		if errors.Is(err, repository.ErrStockConflict) {
			return nil, ErrStockConflict
		}
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	// The sale is committed at this point; a failed cart clear only means
	// the tenant sees stale lines until the TTL runs out.
	if err := s.carts.Delete(ctx, tenantID); err != nil {
		fmt.Printf("failed to clear cart after checkout: %v\n", err)
	}

	resp := dto.FromSale(sale)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSale(resp)
	}

	return resp, nil
}
