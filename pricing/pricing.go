// Package pricing derives order totals from cart contents. Calculation is
// done with exact decimals and rounded to two places only at the boundary,
// so intermediate steps never compound rounding error.
package pricing

import (
	"log"
	"os"

	"github.com/shopspring/decimal"

	"github.com/samadhii99/Shopping-Store/models"
)

// Config holds the pricing constants. They are fixed per-order; there is no
// per-customer or per-region variation.
type Config struct {
	FreeShippingThreshold decimal.Decimal // shipping waived when subtotal exceeds this
	FlatShippingFee       decimal.Decimal
	TaxRate               decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: decimal.NewFromInt(1000),
		FlatShippingFee:       decimal.NewFromInt(150),
		TaxRate:               decimal.NewFromFloat(0.18),
	}
}

// ConfigFromEnv returns DefaultConfig with any of FREE_SHIPPING_THRESHOLD,
// FLAT_SHIPPING_FEE and TAX_RATE overridden from the environment. Malformed
// values are logged and ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	override(&cfg.FreeShippingThreshold, "FREE_SHIPPING_THRESHOLD")
	override(&cfg.FlatShippingFee, "FLAT_SHIPPING_FEE")
	override(&cfg.TaxRate, "TAX_RATE")
	return cfg
}

func override(dst *decimal.Decimal, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("pricing: ignoring invalid %s=%q: %v", key, raw, err)
		return
	}
	*dst = d
}

// Calculate computes the totals for a cart snapshot. It is deterministic and
// side-effect-free: the same items always yield the same breakdown.
//
// An empty cart short-circuits to all-zero totals; the flat shipping fee is
// never charged on nothing.
func Calculate(items []models.CartItem, cfg Config) models.OrderTotals {
	if len(items) == 0 {
		return models.OrderTotals{}
	}

	subtotal := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.SalePrice)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := cfg.FlatShippingFee
	if subtotal.GreaterThan(cfg.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(cfg.TaxRate)
	total := subtotal.Add(shipping).Add(tax)

	return models.OrderTotals{
		Subtotal: round2(subtotal),
		Shipping: round2(shipping),
		Tax:      round2(tax),
		Total:    round2(total),
	}
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
