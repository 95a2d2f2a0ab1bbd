package models

import "time"

// CartItem is a product snapshot plus the shopper's variant and quantity.
// Quantity stays >= 1 for as long as the item is in the cart; a quantity
// update below 1 removes the item instead.
type CartItem struct {
	Product
	SelectedColor string    `json:"selectedColor"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"addedAt"`
}

// Cart holds at most one line item per product ID, in insertion order.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
	Open      bool       `json:"open"` // drawer visibility; raised after every add
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ItemCount is the sum of all line item quantities, recomputed on every call.
func (c *Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
