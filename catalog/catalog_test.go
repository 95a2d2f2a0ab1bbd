package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	src := Default()

	products := src.Products()
	assert.Len(t, products, 16)

	p, ok := src.ProductByID(3)
	require.True(t, ok)
	assert.Equal(t, "Sneakers", p.Name)
	assert.Equal(t, 8750.00, p.SalePrice)

	_, ok = src.ProductByID(999)
	assert.False(t, ok)
}

func TestFilterSearch(t *testing.T) {
	src := Default()

	matched := Filter{Search: "watch"}.Apply(src.Products())
	require.Len(t, matched, 2)
	assert.Equal(t, "Smartwatch", matched[0].Name)
	assert.Equal(t, "Casual Watch", matched[1].Name)
}

func TestFilterCategory(t *testing.T) {
	src := Default()

	for _, p := range (Filter{Category: "formal"}).Apply(src.Products()) {
		assert.Equal(t, "Formal", p.Category)
	}
}

func TestFilterPriceRange(t *testing.T) {
	src := Default()

	matched := Filter{MinPrice: 9000, MaxPrice: 12000}.Apply(src.Products())
	require.NotEmpty(t, matched)
	for _, p := range matched {
		assert.GreaterOrEqual(t, p.SalePrice, 9000.0)
		assert.LessOrEqual(t, p.SalePrice, 12000.0)
	}
}

func TestFilterSortByPrice(t *testing.T) {
	src := Default()

	asc := Filter{SortBy: "price"}.Apply(src.Products())
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].SalePrice, asc[i].SalePrice)
	}

	desc := Filter{SortBy: "price", SortOrder: "desc"}.Apply(src.Products())
	assert.Equal(t, "Smartwatch", desc[0].Name)
}

func TestSummarize(t *testing.T) {
	stats := Summarize(Default())

	assert.Equal(t, 16, stats.TotalProducts)
	assert.Equal(t, 11, stats.InStock)
	assert.Equal(t, []string{"Casual", "Formal"}, stats.Categories)
	assert.Equal(t, 2000.00, stats.MinPrice)
	assert.Equal(t, 14000.00, stats.MaxPrice)
}

func TestFirstInStock(t *testing.T) {
	p, ok := FirstInStock(Default())
	require.True(t, ok)
	// Product 1 is out of stock; the first available one is the Denim Jacket.
	assert.Equal(t, "Denim Jacket", p.Name)
}
