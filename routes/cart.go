package routes

import (
	"github.com/gin-gonic/gin"

	cartcontroller "github.com/samadhii99/Shopping-Store/controllers/cart"
	"github.com/samadhii99/Shopping-Store/middleware"
)

// SetupCartRoutes registers the session-scoped cart endpoints.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateSession)
	{
		cartGroup.GET("/", cartcontroller.GetCart(deps.Cart))                           // GET /cart
		cartGroup.POST("/", cartcontroller.AddCartItem(deps.Cart, deps.Catalog))        // POST /cart
		cartGroup.PUT("/:product_id", cartcontroller.UpdateCartItem(deps.Cart))         // PUT /cart/:product_id
		cartGroup.DELETE("/:product_id", cartcontroller.DeleteCartItem(deps.Cart))      // DELETE /cart/:product_id
		cartGroup.DELETE("/", cartcontroller.ClearCart(deps.Cart))                      // DELETE /cart
		cartGroup.GET("/count", cartcontroller.GetCartCount(deps.Cart))                 // GET /cart/count
		cartGroup.GET("/totals", cartcontroller.GetCartTotals(deps.Cart, deps.Pricing)) // GET /cart/totals
		cartGroup.POST("/open", cartcontroller.SetCartOpen(deps.Cart, true))            // POST /cart/open
		cartGroup.POST("/close", cartcontroller.SetCartOpen(deps.Cart, false))          // POST /cart/close
	}
}
