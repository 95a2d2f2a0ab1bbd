package routes

import (
	"github.com/gin-gonic/gin"

	accountcontroller "github.com/samadhii99/Shopping-Store/controllers/account"
	contactcontroller "github.com/samadhii99/Shopping-Store/controllers/contact"
)

// SetupFormRoutes registers the simulated account and contact forms.
func SetupFormRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", accountcontroller.Login())
		authGroup.POST("/signup", accountcontroller.Signup())
		authGroup.POST("/forgot-password", accountcontroller.ForgotPassword())
	}

	r.POST("/contact", contactcontroller.SubmitContactForm())
}
