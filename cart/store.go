package cart

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/samadhii99/Shopping-Store/models"
)

// ErrInvalidQuantity is returned by Add for a non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Store owns the in-memory carts for all active sessions: one cart per
// session ID, created lazily on first use. All reads and writes go through
// the store; nothing else holds cart state.
//
// When a Repository is attached, every mutation is written through and a
// session's cart is loaded back on first access, so carts survive a server
// restart. A nil repository means purely session-scoped carts.
type Store struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
	repo  Repository
}

func NewStore(repo Repository) *Store {
	return &Store{
		carts: make(map[string]*models.Cart),
		repo:  repo,
	}
}

// Add merges a product into the session's cart. If a line item for the same
// product ID exists its quantity increases by quantity and the original
// color selection is kept; otherwise a new line item is appended, defaulting
// selectedColor to the product's first declared color when none is given.
// The cart is marked open after every successful add.
func (s *Store) Add(sessionID string, product models.Product, quantity int, selectedColor string) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.Items {
		if c.Items[i].ID == product.ID {
			c.Items[i].Quantity += quantity
			c.Open = true
			c.UpdatedAt = time.Now()
			s.persist(c)
			return c.Items[i], nil
		}
	}

	if selectedColor == "" {
		selectedColor = product.FirstColor()
	}
	item := models.CartItem{
		Product:       product,
		SelectedColor: selectedColor,
		Quantity:      quantity,
		AddedAt:       time.Now(),
	}
	c.Items = append(c.Items, item)
	c.Open = true
	c.UpdatedAt = time.Now()
	s.persist(c)
	return item, nil
}

// Remove deletes the line item for productID. Removing an absent item is a
// no-op, not an error.
func (s *Store) Remove(sessionID string, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(s.cart(sessionID), productID)
}

// UpdateQuantity overwrites a line item's quantity. A quantity below 1
// behaves exactly like Remove. Unknown product IDs are ignored.
func (s *Store) UpdateQuantity(sessionID string, productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if quantity < 1 {
		s.remove(c, productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			s.persist(c)
			return
		}
	}
}

// Items returns the session's line items in insertion order.
func (s *Store) Items(sessionID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	out := make([]models.CartItem, len(c.Items))
	copy(out, c.Items)
	return out
}

// ItemCount is the sum of all line item quantities for the session.
func (s *Store) ItemCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).ItemCount()
}

// Snapshot returns a copy of the whole cart for rendering.
func (s *Store) Snapshot(sessionID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	snap := *c
	snap.Items = make([]models.CartItem, len(c.Items))
	copy(snap.Items, c.Items)
	return snap
}

// SetOpen records the cart drawer's visibility.
func (s *Store) SetOpen(sessionID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.Open = open
	s.persist(c)
}

// Clear removes every line item, one by one, as order placement does.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for len(c.Items) > 0 {
		s.remove(c, c.Items[0].ID)
	}
}

// cart returns the session's cart, loading it from the repository on first
// access and creating it empty otherwise. Callers must hold s.mu.
func (s *Store) cart(sessionID string) *models.Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	if s.repo != nil {
		c, err := s.repo.Load(sessionID)
		if err == nil {
			s.carts[sessionID] = c
			return c
		}
		if !errors.Is(err, ErrCartNotFound) {
			log.Printf("cart: failed to load session %s: %v", sessionID, err)
		}
	}
	c := &models.Cart{SessionID: sessionID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.carts[sessionID] = c
	return c
}

func (s *Store) remove(c *models.Cart, productID uint) {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			s.persist(c)
			return
		}
	}
}

// persist writes through to the repository. Persistence failures are logged
// and swallowed; the in-memory cart stays authoritative.
func (s *Store) persist(c *models.Cart) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(c); err != nil {
		log.Printf("cart: failed to save session %s: %v", c.SessionID, err)
	}
}
