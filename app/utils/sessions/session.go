package sessions

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "jewelry-session"

	userIDSessionKey = "userID"

	// cartSessionKey holds the serialized cart, the server-side stand-in
	// for the storefront's local cart storage. The format has no
	// versioning; a cart that fails to decode is treated as empty.
	cartSessionKey = "cart"
)

type SessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error

	GetCart(r *http.Request) []models.CartItem
	SaveCart(w http.ResponseWriter, r *http.Request, items []models.CartItem) error
	ClearCart(w http.ResponseWriter, r *http.Request) error

	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) (*sessions.Session, error) {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		logger.L().Warn("failed to decode session, starting fresh", zap.Error(err))
	}
	return session, nil
}

func (c *CookieSessionStore) GetUserID(r *http.Request) string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return ""
	}
	userID, ok := session.Values[userIDSessionKey].(string)
	if !ok {
		return ""
	}
	return userID
}

func (c *CookieSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	delete(session.Values, userIDSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetCart(r *http.Request) []models.CartItem {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return nil
	}
	raw, ok := session.Values[cartSessionKey].(string)
	if !ok || raw == "" {
		return nil
	}
	items, err := DecodeCart(raw)
	if err != nil {
		logger.L().Warn("failed to decode session cart", zap.Error(err))
		return nil
	}
	return items
}

func (c *CookieSessionStore) SaveCart(w http.ResponseWriter, r *http.Request, items []models.CartItem) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	raw, err := EncodeCart(items)
	if err != nil {
		return err
	}
	session.Values[cartSessionKey] = raw
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearCart(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	delete(session.Values, cartSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// EncodeCart and DecodeCart are the single serialization boundary for
// the cart payload.

func EncodeCart(items []models.CartItem) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeCart(raw string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
