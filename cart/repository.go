package cart

import (
	"errors"

	"github.com/samadhii99/Shopping-Store/models"
)

// ErrCartNotFound signals that no cart is stored for the session.
var ErrCartNotFound = errors.New("cart not found")

// Repository persists carts across server restarts. The Store treats it as
// optional write-through storage; the in-memory cart is authoritative.
type Repository interface {
	Load(sessionID string) (*models.Cart, error)
	Save(cart *models.Cart) error
	Delete(sessionID string) error
}
