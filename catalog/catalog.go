package catalog

import (
	"sort"
	"strings"

	"github.com/samadhii99/Shopping-Store/models"
)

// Source supplies the product catalog at application start. The cart and
// every handler treat it as read-only.
type Source interface {
	Products() []models.Product
	ProductByID(id uint) (models.Product, bool)
}

// StaticSource is the in-memory catalog used by the storefront.
type StaticSource struct {
	products []models.Product
	byID     map[uint]models.Product
}

func NewStaticSource(products []models.Product) *StaticSource {
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &StaticSource{products: products, byID: byID}
}

// Default returns the catalog seeded with the Envogue product line.
func Default() *StaticSource {
	return NewStaticSource(envogueProducts)
}

func (s *StaticSource) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *StaticSource) ProductByID(id uint) (models.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Filter narrows and orders a product listing. Zero values mean "no
// constraint".
type Filter struct {
	Search    string // case-insensitive substring on name and brand
	Category  string // exact match, case-insensitive
	MinPrice  float64
	MaxPrice  float64
	SortBy    string // "price" or "" (catalog order)
	SortOrder string // "asc" (default) or "desc"
}

// Apply returns the products matching f, sorted as requested.
func (f Filter) Apply(products []models.Product) []models.Product {
	matched := make([]models.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPrice > 0 && p.SalePrice < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.SalePrice > f.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	if f.SortBy == "price" {
		desc := strings.EqualFold(f.SortOrder, "desc")
		sort.SliceStable(matched, func(i, j int) bool {
			if desc {
				return matched[i].SalePrice > matched[j].SalePrice
			}
			return matched[i].SalePrice < matched[j].SalePrice
		})
	}
	return matched
}

// Stats is the aggregate view of the catalog surfaced by the chat widget.
type Stats struct {
	TotalProducts int      `json:"totalProducts"`
	InStock       int      `json:"inStock"`
	Categories    []string `json:"categories"`
	MinPrice      float64  `json:"minPrice"`
	MaxPrice      float64  `json:"maxPrice"`
}

// Summarize computes catalog stats. Categories come back in first-seen order.
func Summarize(src Source) Stats {
	products := src.Products()
	stats := Stats{TotalProducts: len(products)}
	seen := map[string]bool{}
	for i, p := range products {
		if p.InStock {
			stats.InStock++
		}
		if !seen[p.Category] {
			seen[p.Category] = true
			stats.Categories = append(stats.Categories, p.Category)
		}
		if i == 0 || p.SalePrice < stats.MinPrice {
			stats.MinPrice = p.SalePrice
		}
		if p.SalePrice > stats.MaxPrice {
			stats.MaxPrice = p.SalePrice
		}
	}
	return stats
}

// FirstInStock returns the first product still in stock, for the chat
// widget's recommendation reply.
func FirstInStock(src Source) (models.Product, bool) {
	for _, p := range src.Products() {
		if p.InStock {
			return p, true
		}
	}
	return models.Product{}, false
}
