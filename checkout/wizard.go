package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samadhii99/Shopping-Store/models"
)

var (
	ErrWrongStep = errors.New("operation not valid for current checkout step")
	ErrNoBack    = errors.New("no previous step to return to")
)

// ShippingInfo is the first checkout step's form. Address2 is the only
// optional field.
type ShippingInfo struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PaymentInfo is the second step's form. Card fields are required only for
// the credit_card method; no card is ever charged.
type PaymentInfo struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	SaveInfo   bool   `json:"saveInfo"`
}

// Wizard is one session's linear checkout state machine:
// shipping_info -> payment_info -> review -> confirmed, with a single back
// transition from payment_info and review.
type Wizard struct {
	Step     models.CheckoutStep
	Shipping ShippingInfo
	Payment  PaymentInfo
	Order    *models.Order // set once Step is confirmed
}

func NewWizard() *Wizard {
	return &Wizard{Step: models.StepShippingInfo}
}

// SubmitShipping validates the shipping form and advances to payment_info.
func (w *Wizard) SubmitShipping(info ShippingInfo) error {
	if w.Step != models.StepShippingInfo {
		return ErrWrongStep
	}
	if err := validateShipping(info); err != nil {
		return err
	}
	w.Shipping = info
	w.Step = models.StepPaymentInfo
	return nil
}

// SubmitPayment validates the payment form and advances to review.
func (w *Wizard) SubmitPayment(info PaymentInfo) error {
	if w.Step != models.StepPaymentInfo {
		return ErrWrongStep
	}
	if err := validatePayment(info); err != nil {
		return err
	}
	w.Payment = info
	w.Step = models.StepReview
	return nil
}

// Back steps to the previous form. Only payment_info and review have one.
func (w *Wizard) Back() error {
	switch w.Step {
	case models.StepPaymentInfo:
		w.Step = models.StepShippingInfo
	case models.StepReview:
		w.Step = models.StepPaymentInfo
	default:
		return ErrNoBack
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateShipping(info ShippingInfo) error {
	required := []struct {
		name, value string
	}{
		{"fullName", info.FullName},
		{"email", info.Email},
		{"phone", info.Phone},
		{"address1", info.Address1},
		{"city", info.City},
		{"state", info.State},
		{"postalCode", info.PostalCode},
		{"country", info.Country},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if !emailPattern.MatchString(info.Email) {
		return errors.New("invalid email address")
	}
	return nil
}

func validatePayment(info PaymentInfo) error {
	switch info.Method {
	case models.PaymentMethodCreditCard:
		var missing []string
		for _, f := range []struct{ name, value string }{
			{"cardNumber", info.CardNumber},
			{"cardName", info.CardName},
			{"expiry", info.Expiry},
			{"cvv", info.CVV},
		} {
			if strings.TrimSpace(f.value) == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing required card fields: %s", strings.Join(missing, ", "))
		}
		return nil
	case models.PaymentMethodPaypal, models.PaymentMethodBankTransfer, models.PaymentMethodCOD:
		return nil
	default:
		return fmt.Errorf("unknown payment method %q", info.Method)
	}
}
