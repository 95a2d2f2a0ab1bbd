package routes

import (
	"github.com/gin-gonic/gin"

	checkoutcontroller "github.com/samadhii99/Shopping-Store/controllers/checkout"
	"github.com/samadhii99/Shopping-Store/middleware"
)

// SetupCheckoutRoutes registers the session-scoped checkout wizard endpoints.
func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	co := r.Group("/checkout")
	co.Use(middleware.ValidateSession)
	{
		co.POST("/", checkoutcontroller.StartCheckout(deps.Checkout))   // POST /checkout
		co.GET("/", checkoutcontroller.GetCheckoutState(deps.Checkout)) // GET /checkout
		co.POST("/shipping", checkoutcontroller.SubmitShipping(deps.Checkout))
		co.POST("/payment", checkoutcontroller.SubmitPayment(deps.Checkout))
		co.POST("/back", checkoutcontroller.StepBack(deps.Checkout))
		co.POST("/place", checkoutcontroller.PlaceOrder(deps.Checkout))
	}
}
