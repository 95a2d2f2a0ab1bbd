package contactcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const formDelay = 1 * time.Second

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// POST /contact
//
// Validates the contact form and simulates delivery with a short delay.
func SubmitContactForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		timer := time.NewTimer(formDelay)
		defer timer.Stop()
		select {
		case <-c.Request.Context().Done():
			return
		case <-timer.C:
		}

		c.JSON(http.StatusOK, gin.H{"message": "Thanks for reaching out! We'll get back to you soon."})
	}
}
