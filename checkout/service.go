package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/samadhii99/Shopping-Store/cart"
	"github.com/samadhii99/Shopping-Store/models"
	"github.com/samadhii99/Shopping-Store/pricing"
)

var ErrEmptyCart = errors.New("cannot place an order with an empty cart")

// Service runs one checkout wizard per session on top of the cart store and
// the pricing calculator. Order processing is simulated with a fixed delay;
// the delay honors context cancellation, so a torn-down client cannot race a
// stale completion against the cart.
type Service struct {
	mu      sync.Mutex
	wizards map[string]*Wizard

	store   *cart.Store
	pricing pricing.Config
	delay   time.Duration
}

func NewService(store *cart.Store, cfg pricing.Config, delay time.Duration) *Service {
	return &Service{
		wizards: make(map[string]*Wizard),
		store:   store,
		pricing: cfg,
		delay:   delay,
	}
}

// Start resets the session's wizard to the shipping step.
func (s *Service) Start(sessionID string) *Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := NewWizard()
	s.wizards[sessionID] = w
	return w
}

// State returns the session's wizard, creating one at the shipping step on
// first access.
func (s *Service) State(sessionID string) Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.wizard(sessionID)
}

func (s *Service) SubmitShipping(sessionID string, info ShippingInfo) (Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.wizard(sessionID)
	if err := w.SubmitShipping(info); err != nil {
		return *w, err
	}
	return *w, nil
}

func (s *Service) SubmitPayment(sessionID string, info PaymentInfo) (Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.wizard(sessionID)
	if err := w.SubmitPayment(info); err != nil {
		return *w, err
	}
	return *w, nil
}

func (s *Service) Back(sessionID string) (Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.wizard(sessionID)
	if err := w.Back(); err != nil {
		return *w, err
	}
	return *w, nil
}

// Place runs the simulated order processing for a wizard at the review step.
// On success it freezes the totals, generates an order number, clears the
// cart item by item and moves the wizard to confirmed.
//
// The lock is not held across the processing delay. If the context is
// cancelled mid-processing the cart and wizard are left untouched, and if the
// wizard moved off the review step or was replaced by a restarted checkout
// while processing ran, the stale completion is discarded. The order is
// finalized against a fresh cart snapshot taken under the final lock, so
// cart edits made from another tab during the delay end up in the order
// rather than destroyed.
func (s *Service) Place(ctx context.Context, sessionID string) (*models.Order, error) {
	s.mu.Lock()
	w := s.wizard(sessionID)
	if w.Step != models.StepReview {
		s.mu.Unlock()
		return nil, ErrWrongStep
	}
	if len(s.store.Items(sessionID)) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}
	method := w.Payment.Method
	s.mu.Unlock()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Pointer identity catches a wizard replaced by Start during the delay;
	// its Step alone would still read review.
	if s.wizards[sessionID] != w || w.Step != models.StepReview {
		return nil, ErrWrongStep
	}
	items := s.store.Items(sessionID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		OrderNumber:   newOrderNumber(),
		Items:         items,
		Totals:        pricing.Calculate(items, s.pricing),
		PaymentMethod: method,
		PlacedAt:      time.Now(),
	}

	for _, item := range items {
		s.store.Remove(sessionID, item.ID)
	}

	w.Step = models.StepConfirmed
	w.Order = order
	return order, nil
}

func (s *Service) wizard(sessionID string) *Wizard {
	if w, ok := s.wizards[sessionID]; ok {
		return w
	}
	w := NewWizard()
	s.wizards[sessionID] = w
	return w
}

// newOrderNumber generates the customer-facing order reference: "ORD-" plus
// six digits.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d", 100000+rand.Intn(900000))
}
