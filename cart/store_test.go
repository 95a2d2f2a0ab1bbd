package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhii99/Shopping-Store/models"
)

const session = "sess_test"

var tshirt = models.Product{
	ID: 1, Name: "Classic T-Shirt", Brand: "Envogue",
	SalePrice: 3250.00, Colors: []string{"White", "Black"},
	InStock: true, Category: "Casual",
}

var sneakers = models.Product{
	ID: 3, Name: "Sneakers", Brand: "Envogue",
	SalePrice: 8750.00, Colors: []string{"Black", "Blue"},
	InStock: true, Category: "Casual",
}

func TestAddMergesByProductID(t *testing.T) {
	s := NewStore(nil)

	_, err := s.Add(session, tshirt, 1, "")
	require.NoError(t, err)
	_, err = s.Add(session, tshirt, 2, "")
	require.NoError(t, err)
	_, err = s.Add(session, tshirt, 3, "")
	require.NoError(t, err)

	items := s.Items(session)
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestAddDefaultsToFirstColor(t *testing.T) {
	s := NewStore(nil)

	item, err := s.Add(session, tshirt, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "White", item.SelectedColor)
}

func TestAddKeepsExplicitColor(t *testing.T) {
	s := NewStore(nil)

	item, err := s.Add(session, tshirt, 1, "Black")
	require.NoError(t, err)
	assert.Equal(t, "Black", item.SelectedColor)
}

func TestRepeatAddKeepsOriginalColor(t *testing.T) {
	// Color is not part of line-item identity; a repeat add with a different
	// color only accumulates quantity.
	s := NewStore(nil)

	_, err := s.Add(session, tshirt, 1, "White")
	require.NoError(t, err)
	item, err := s.Add(session, tshirt, 1, "Black")
	require.NoError(t, err)

	assert.Equal(t, "White", item.SelectedColor)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	s := NewStore(nil)

	_, err := s.Add(session, tshirt, 0, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = s.Add(session, tshirt, -2, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, s.Items(session))
}

func TestAddProductWithoutColors(t *testing.T) {
	s := NewStore(nil)
	plain := models.Product{ID: 99, Name: "Gift Card", SalePrice: 1000}

	item, err := s.Add(session, plain, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "", item.SelectedColor)
}

func TestAddOpensCart(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.Snapshot(session).Open)

	_, err := s.Add(session, tshirt, 1, "")
	require.NoError(t, err)
	assert.True(t, s.Snapshot(session).Open)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Add(session, tshirt, 5, "")
	require.NoError(t, err)

	s.UpdateQuantity(session, tshirt.ID, 2)

	items := s.Items(session)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQuantityBelowOneRemoves(t *testing.T) {
	s := NewStore(nil)

	for _, q := range []int{0, -3} {
		_, err := s.Add(session, tshirt, 2, "")
		require.NoError(t, err)

		s.UpdateQuantity(session, tshirt.ID, q)
		assert.Empty(t, s.Items(session))
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Add(session, tshirt, 2, "")
	require.NoError(t, err)

	s.UpdateQuantity(session, 42, 7)

	items := s.Items(session)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Add(session, tshirt, 2, "")
	require.NoError(t, err)

	s.Remove(session, 42)

	assert.Len(t, s.Items(session), 1)
}

func TestItemCountTracksEveryMutation(t *testing.T) {
	s := NewStore(nil)
	assert.Equal(t, 0, s.ItemCount(session))

	_, err := s.Add(session, tshirt, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 2, s.ItemCount(session))

	_, err = s.Add(session, sneakers, 3, "")
	require.NoError(t, err)
	assert.Equal(t, 5, s.ItemCount(session))

	s.UpdateQuantity(session, sneakers.ID, 1)
	assert.Equal(t, 3, s.ItemCount(session))

	s.Remove(session, tshirt.ID)
	assert.Equal(t, 1, s.ItemCount(session))

	s.Clear(session)
	assert.Equal(t, 0, s.ItemCount(session))
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Add(session, tshirt, 2, "")
	require.NoError(t, err)
	_, err = s.Add(session, sneakers, 1, "")
	require.NoError(t, err)

	s.Clear(session)

	assert.Empty(t, s.Items(session))
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Add("sess_a", tshirt, 2, "")
	require.NoError(t, err)

	assert.Equal(t, 0, s.ItemCount("sess_b"))
	assert.Equal(t, 2, s.ItemCount("sess_a"))
}

// fakeRepo records the last saved cart and serves one pre-loaded cart.
type fakeRepo struct {
	stored map[string]*models.Cart
	saves  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: make(map[string]*models.Cart)}
}

func (r *fakeRepo) Load(sessionID string) (*models.Cart, error) {
	if c, ok := r.stored[sessionID]; ok {
		return c, nil
	}
	return nil, ErrCartNotFound
}

func (r *fakeRepo) Save(c *models.Cart) error {
	r.saves++
	r.stored[c.SessionID] = c
	return nil
}

func (r *fakeRepo) Delete(sessionID string) error {
	delete(r.stored, sessionID)
	return nil
}

func TestStoreWritesThroughToRepository(t *testing.T) {
	repo := newFakeRepo()
	s := NewStore(repo)

	_, err := s.Add(session, tshirt, 2, "")
	require.NoError(t, err)

	require.Contains(t, repo.stored, session)
	assert.Equal(t, 2, repo.stored[session].ItemCount())
	assert.Equal(t, 1, repo.saves)
}

func TestStoreLoadsFromRepositoryOnFirstAccess(t *testing.T) {
	repo := newFakeRepo()
	repo.stored[session] = &models.Cart{
		SessionID: session,
		Items:     []models.CartItem{{Product: tshirt, SelectedColor: "White", Quantity: 4}},
	}

	s := NewStore(repo)
	assert.Equal(t, 4, s.ItemCount(session))
}
