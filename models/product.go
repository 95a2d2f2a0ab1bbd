package models

// Product is a read-only catalog entry. Field names mirror the JSON the
// storefront client renders.
type Product struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Brand            string   `json:"brand"`
	SalePrice        float64  `json:"salePrice"`
	InstallmentPrice float64  `json:"installmentPrice"`
	Image            string   `json:"image"`
	Colors           []string `json:"colors"`
	InStock          bool     `json:"inStock"`
	Category         string   `json:"category"`
}

// FirstColor returns the default variant for a product added without an
// explicit color choice. Empty string when the product declares no colors.
func (p Product) FirstColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0]
}
