package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samadhii99/Shopping-Store/models"
)

func item(price float64, quantity int) models.CartItem {
	return models.CartItem{
		Product:  models.Product{ID: 1, Name: "Classic T-Shirt", SalePrice: price},
		Quantity: quantity,
	}
}

func TestCalculateFreeShippingAboveThreshold(t *testing.T) {
	totals := Calculate([]models.CartItem{item(3250.00, 2)}, DefaultConfig())

	assert.Equal(t, 6500.00, totals.Subtotal)
	assert.Equal(t, 0.00, totals.Shipping)
	assert.Equal(t, 1170.00, totals.Tax)
	assert.Equal(t, 7670.00, totals.Total)
}

func TestCalculateFlatFeeBelowThreshold(t *testing.T) {
	totals := Calculate([]models.CartItem{item(500.00, 1)}, DefaultConfig())

	assert.Equal(t, 500.00, totals.Subtotal)
	assert.Equal(t, 150.00, totals.Shipping)
	assert.Equal(t, 90.00, totals.Tax)
	assert.Equal(t, 740.00, totals.Total)
}

func TestCalculateSubtotalExactlyAtThresholdPaysShipping(t *testing.T) {
	// The threshold must be exceeded, not met.
	totals := Calculate([]models.CartItem{item(1000.00, 1)}, DefaultConfig())

	assert.Equal(t, 150.00, totals.Shipping)
}

func TestCalculateEmptyCartIsZero(t *testing.T) {
	totals := Calculate(nil, DefaultConfig())

	assert.Equal(t, models.OrderTotals{}, totals)
}

func TestCalculateIsIdempotent(t *testing.T) {
	items := []models.CartItem{item(3250.00, 2), item(500.00, 3)}

	first := Calculate(items, DefaultConfig())
	second := Calculate(items, DefaultConfig())

	assert.Equal(t, first, second)
}

func TestCalculateNoCompoundedRounding(t *testing.T) {
	// 3 x 33.33 with 18% tax: exact decimal math gives 117.99 total with
	// flat shipping excluded only at the end.
	totals := Calculate([]models.CartItem{item(33.33, 3)}, DefaultConfig())

	assert.Equal(t, 99.99, totals.Subtotal)
	assert.Equal(t, 18.00, totals.Tax)
	assert.Equal(t, 267.99, totals.Total)
}
