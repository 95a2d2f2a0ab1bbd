// Package accountcontroller serves the login, signup and forgot-password
// forms. Submissions are validated and then simulated with a short
// processing delay; no credentials are stored and no session is created.
package accountcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const formDelay = 1 * time.Second

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

type SignupInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// simulateProcessing waits out the fake submission delay. Returns false when
// the client disconnected first.
func simulateProcessing(c *gin.Context, delay time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-c.Request.Context().Done():
		return false
	case <-timer.C:
		return true
	}
}

// POST /auth/login
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !simulateProcessing(c, formDelay) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Login successful!"})
	}
}

// POST /auth/signup
func Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Password != input.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
			return
		}
		if !simulateProcessing(c, formDelay) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Account created successfully!"})
	}
}

// POST /auth/forgot-password
func ForgotPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ForgotPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !simulateProcessing(c, formDelay) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
	}
}
