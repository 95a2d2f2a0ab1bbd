package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samadhii99/Shopping-Store/cart"
	"github.com/samadhii99/Shopping-Store/catalog"
	"github.com/samadhii99/Shopping-Store/middleware"
	"github.com/samadhii99/Shopping-Store/pricing"
)

// Quantity is a pointer so an omitted field (defaults to 1) can be told
// apart from an explicit 0, which is rejected like any other non-positive
// quantity.
type AddItemInput struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      *int   `json:"quantity" binding:"omitempty,min=1"`
	SelectedColor string `json:"selected_color"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := store.Snapshot(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{
			"items": snap.Items,
			"count": snap.ItemCount(),
			"open":  snap.Open,
		})
	}
}

// POST /cart
//
// Adds a product to the session's cart. Re-adding a product already in the
// cart accumulates quantity on the existing line item.
func AddCartItem(store *cart.Store, src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		product, ok := src.ProductByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		item, err := store.Add(middleware.SessionID(c), product, quantity, input.SelectedColor)
		if err != nil {
			if errors.Is(err, cart.ErrInvalidQuantity) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /cart/:product_id
//
// Overwrites a line item's quantity. A quantity below 1 removes the item.
// Unknown product IDs are silently ignored.
func UpdateCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionID := middleware.SessionID(c)
		store.UpdateQuantity(sessionID, productID, input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items": store.Items(sessionID),
			"count": store.ItemCount(sessionID),
		})
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		sessionID := middleware.SessionID(c)
		store.Remove(sessionID, productID)
		c.JSON(http.StatusOK, gin.H{
			"items": store.Items(sessionID),
			"count": store.ItemCount(sessionID),
		})
	}
}

// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		store.Clear(sessionID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart/count
func GetCartCount(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": store.ItemCount(middleware.SessionID(c))})
	}
}

// GET /cart/totals
func GetCartTotals(store *cart.Store, cfg pricing.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := store.Items(middleware.SessionID(c))
		c.JSON(http.StatusOK, pricing.Calculate(items, cfg))
	}
}

// POST /cart/open and POST /cart/close
func SetCartOpen(store *cart.Store, open bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.SetOpen(middleware.SessionID(c), open)
		c.JSON(http.StatusOK, gin.H{"open": open})
	}
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return 0, false
	}
	return uint(id), true
}
