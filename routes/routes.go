package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/samadhii99/Shopping-Store/cart"
	"github.com/samadhii99/Shopping-Store/catalog"
	"github.com/samadhii99/Shopping-Store/chatbot"
	"github.com/samadhii99/Shopping-Store/checkout"
	"github.com/samadhii99/Shopping-Store/pricing"
)

// Deps carries the wired components the route groups close over.
type Deps struct {
	Catalog  catalog.Source
	Cart     *cart.Store
	Checkout *checkout.Service
	Chat     *chatbot.Responder
	Pricing  pricing.Config
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public: session issuing, catalog, chat, simulated forms
	SetupSessionRoutes(r)
	SetupProductRoutes(r, deps)
	SetupChatRoutes(r, deps)
	SetupFormRoutes(r)

	// Session-token protected: cart and checkout
	SetupCartRoutes(r, deps)
	SetupCheckoutRoutes(r, deps)
}
