package checkoutcontroller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samadhii99/Shopping-Store/checkout"
	"github.com/samadhii99/Shopping-Store/middleware"
)

type ShippingInput struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Address1   string `json:"address1" binding:"required"`
	Address2   string `json:"address2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type PaymentInput struct {
	Method     string `json:"method" binding:"required"`
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	SaveInfo   bool   `json:"save_info"`
}

func stateJSON(w checkout.Wizard) gin.H {
	resp := gin.H{"step": w.Step}
	if w.Order != nil {
		resp["order"] = w.Order
	}
	return resp
}

// POST /checkout
//
// Starts (or restarts) the session's checkout at the shipping step.
func StartCheckout(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w := svc.Start(middleware.SessionID(c))
		c.JSON(http.StatusOK, stateJSON(*w))
	}
}

// GET /checkout
func GetCheckoutState(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, stateJSON(svc.State(middleware.SessionID(c))))
	}
}

// POST /checkout/shipping
func SubmitShipping(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		w, err := svc.SubmitShipping(middleware.SessionID(c), checkout.ShippingInfo{
			FullName:   input.FullName,
			Email:      input.Email,
			Phone:      input.Phone,
			Address1:   input.Address1,
			Address2:   input.Address2,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
			Country:    input.Country,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "step": w.Step})
			return
		}
		c.JSON(http.StatusOK, stateJSON(w))
	}
}

// POST /checkout/payment
func SubmitPayment(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		w, err := svc.SubmitPayment(middleware.SessionID(c), checkout.PaymentInfo{
			Method:     input.Method,
			CardNumber: input.CardNumber,
			CardName:   input.CardName,
			Expiry:     input.Expiry,
			CVV:        input.CVV,
			SaveInfo:   input.SaveInfo,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "step": w.Step})
			return
		}
		c.JSON(http.StatusOK, stateJSON(w))
	}
}

// POST /checkout/back
func StepBack(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := svc.Back(middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "step": w.Step})
			return
		}
		c.JSON(http.StatusOK, stateJSON(w))
	}
}

// POST /checkout/place
//
// Runs the simulated order processing. The checkout must be at the review
// step with a non-empty cart; on success the cart is cleared and the order
// confirmation returned.
func PlaceOrder(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Place(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrWrongStep), errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				// Client went away mid-processing; nothing to answer.
				c.Abort()
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Order processing failed"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}
