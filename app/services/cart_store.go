package services

import (
	"errors"
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/utils/sessions"
)

// ErrCaratRequired rejects an add-to-cart without a chosen carat.
var ErrCaratRequired = errors.New("please select a carat")

// CartStore keeps the shopper's cart in the cookie session. Loading and
// saving happen only here; nothing else touches the serialized payload.
type CartStore struct {
	sessions sessions.SessionStore
}

func NewCartStore(sessionStore sessions.SessionStore) *CartStore {
	return &CartStore{sessions: sessionStore}
}

func (c *CartStore) Items(r *http.Request) []models.CartItem {
	return c.sessions.GetCart(r)
}

// Add appends one pick. Duplicate configurations are kept as separate
// entries rather than incrementing a quantity.
func (c *CartStore) Add(w http.ResponseWriter, r *http.Request, item models.CartItem) error {
	if item.Carat == "" {
		return ErrCaratRequired
	}
	items := append(c.sessions.GetCart(r), item)
	return c.sessions.SaveCart(w, r, items)
}

// Remove drops every entry for the given product ID.
func (c *CartStore) Remove(w http.ResponseWriter, r *http.Request, productID string) error {
	items := c.sessions.GetCart(r)
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return c.sessions.SaveCart(w, r, kept)
}

func (c *CartStore) Clear(w http.ResponseWriter, r *http.Request) error {
	return c.sessions.ClearCart(w, r)
}
