package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySessionStore keeps the session in memory so the cart logic can
// be tested without cookie plumbing.
type memorySessionStore struct {
	userID string
	cart   []models.CartItem
}

func (m *memorySessionStore) GetUserID(r *http.Request) string { return m.userID }
func (m *memorySessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	m.userID = userID
	return nil
}
func (m *memorySessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	m.userID = ""
	return nil
}
func (m *memorySessionStore) GetCart(r *http.Request) []models.CartItem { return m.cart }
func (m *memorySessionStore) SaveCart(w http.ResponseWriter, r *http.Request, items []models.CartItem) error {
	m.cart = items
	return nil
}
func (m *memorySessionStore) ClearCart(w http.ResponseWriter, r *http.Request) error {
	m.cart = nil
	return nil
}
func (m *memorySessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	m.userID = ""
	m.cart = nil
	return nil
}

func cartTestFixtures() (*CartStore, *memorySessionStore, http.ResponseWriter, *http.Request) {
	store := &memorySessionStore{}
	return NewCartStore(store), store, httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/cart", nil)
}

func TestCartStoreAddRequiresCarat(t *testing.T) {
	cart, store, w, r := cartTestFixtures()

	err := cart.Add(w, r, models.CartItem{ProductID: "p1", Name: "Solitaire"})
	assert.ErrorIs(t, err, ErrCaratRequired)
	assert.Empty(t, store.cart)
}

func TestCartStoreAddKeepsDuplicates(t *testing.T) {
	cart, _, w, r := cartTestFixtures()

	item := models.CartItem{ProductID: "p1", Name: "Solitaire", Carat: "1.0 Carat", Price: "$1,000"}
	require.NoError(t, cart.Add(w, r, item))
	require.NoError(t, cart.Add(w, r, item))

	assert.Len(t, cart.Items(r), 2)
}

func TestCartStoreRemoveDropsAllEntriesForProduct(t *testing.T) {
	cart, _, w, r := cartTestFixtures()

	require.NoError(t, cart.Add(w, r, models.CartItem{ProductID: "p1", Carat: "1.0 Carat"}))
	require.NoError(t, cart.Add(w, r, models.CartItem{ProductID: "p1", Carat: "2.0 Carat"}))
	require.NoError(t, cart.Add(w, r, models.CartItem{ProductID: "p2", Carat: "1.0 Carat"}))

	require.NoError(t, cart.Remove(w, r, "p1"))

	items := cart.Items(r)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}

func TestCartStoreClear(t *testing.T) {
	cart, _, w, r := cartTestFixtures()

	require.NoError(t, cart.Add(w, r, models.CartItem{ProductID: "p1", Carat: "1.0 Carat"}))
	require.NoError(t, cart.Clear(w, r))
	assert.Empty(t, cart.Items(r))
}
