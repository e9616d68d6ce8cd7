package domain

import (
	"time"
)

// CurrencyUSD switches totals into dollars using the submitted exchange
// rate. Anything else is treated as the local currency with rate 1.
const CurrencyUSD = "USD"

// CartLine is an ephemeral snapshot of a product pending checkout. It is
// copied into the sale record verbatim, so a later price change never
// rewrites history.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart holds one tenant's pending lines. It lives in Redis only and is
// never persisted to the ledger directly.
type Cart struct {
	TenantID  string     `json:"tenant_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Line returns a pointer into Lines for the given product, or nil.
func (c *Cart) Line(productID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// RemoveLine drops the whole line for the product. Removing an absent
// product is a no-op.
func (c *Cart) RemoveLine(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total sums price times quantity over all lines. When currency is USD
// the sum is divided by the exchange rate; the result is unrounded and
// rounding to two places is a display concern.
func (c *Cart) Total(currency string, exchangeRate float64) float64 {
	var sum float64
	for _, line := range c.Lines {
		sum += line.Price * float64(line.Quantity)
	}
	if currency == CurrencyUSD && exchangeRate > 0 {
		sum /= exchangeRate
	}
	return sum
}
