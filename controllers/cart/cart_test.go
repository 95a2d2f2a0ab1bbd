package cartcontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhii99/Shopping-Store/cart"
	"github.com/samadhii99/Shopping-Store/catalog"
	"github.com/samadhii99/Shopping-Store/middleware"
	"github.com/samadhii99/Shopping-Store/pricing"
)

// testRouter wires the cart endpoints behind a stub session middleware.
func testRouter(store *cart.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	src := catalog.Default()

	group := r.Group("/cart")
	group.Use(func(c *gin.Context) {
		c.Set(middleware.SessionKey, "sess_test")
		c.Next()
	})
	group.GET("/", GetCart(store))
	group.POST("/", AddCartItem(store, src))
	group.PUT("/:product_id", UpdateCartItem(store))
	group.DELETE("/:product_id", DeleteCartItem(store))
	group.DELETE("/", ClearCart(store))
	group.GET("/count", GetCartCount(store))
	group.GET("/totals", GetCartTotals(store, pricing.DefaultConfig()))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAddCartItemDefaultsQuantityToOne(t *testing.T) {
	store := cart.NewStore(nil)
	r := testRouter(store)

	w := doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decode(t, w)
	assert.Equal(t, float64(1), resp["quantity"])
	assert.Equal(t, "Black", resp["selectedColor"]) // first declared color

	assert.Equal(t, 1, store.ItemCount("sess_test"))
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r := testRouter(cart.NewStore(nil))

	w := doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 999})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemRejectsNegativeQuantity(t *testing.T) {
	r := testRouter(cart.NewStore(nil))

	w := doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 2, "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemRejectsExplicitZeroQuantity(t *testing.T) {
	// An explicit 0 is invalid; only an omitted quantity defaults to 1.
	store := cart.NewStore(nil)
	r := testRouter(store)

	w := doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 2, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.Items("sess_test"))
}

func TestRepeatAddAccumulates(t *testing.T) {
	store := cart.NewStore(nil)
	r := testRouter(store)

	doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 2, "quantity": 2})
	doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 2, "quantity": 3})

	w := doJSON(t, r, http.MethodGet, "/cart/count", nil)
	resp := decode(t, w)
	assert.Equal(t, float64(5), resp["count"])

	items := store.Items("sess_test")
	require.Len(t, items, 1)
}

func TestUpdateQuantityToZeroRemoves(t *testing.T) {
	store := cart.NewStore(nil)
	r := testRouter(store)
	doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 2, "quantity": 2})

	w := doJSON(t, r, http.MethodPut, "/cart/2", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Items("sess_test"))
}

func TestDeleteUnknownItemIsOK(t *testing.T) {
	store := cart.NewStore(nil)
	r := testRouter(store)
	doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 2})

	w := doJSON(t, r, http.MethodDelete, "/cart/999", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.Items("sess_test"), 1)
}

func TestGetCartTotals(t *testing.T) {
	store := cart.NewStore(nil)
	r := testRouter(store)
	// Classic T-Shirt (id 1) is 3250.00; two of them clear the threshold.
	doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 1, "quantity": 2})

	w := doJSON(t, r, http.MethodGet, "/cart/totals", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, 6500.00, resp["subtotal"])
	assert.Equal(t, 0.00, resp["shipping"])
	assert.Equal(t, 1170.00, resp["tax"])
	assert.Equal(t, 7670.00, resp["total"])
}

func TestClearCart(t *testing.T) {
	store := cart.NewStore(nil)
	r := testRouter(store)
	doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 2})
	doJSON(t, r, http.MethodPost, "/cart/", gin.H{"product_id": 3})

	w := doJSON(t, r, http.MethodDelete, "/cart/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, store.ItemCount("sess_test"))
}
