package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvdbroek/go-jewelry/app/helpers"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/stretchr/testify/assert"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.users[id], nil
}
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Create(ctx context.Context, u *models.User) error { return nil }
func (s *stubUserRepo) Update(ctx context.Context, u *models.User) error { return nil }

func requestWithUserID(userID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
	return r.WithContext(ctx)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthRejectsGuests(t *testing.T) {
	var called bool
	w := httptest.NewRecorder()
	RequireAuth(okHandler(&called)).ServeHTTP(w, requestWithUserID(""))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/login")
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	var called bool
	w := httptest.NewRecorder()
	RequireAuth(okHandler(&called)).ServeHTTP(w, requestWithUserID("u1"))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"admin-1":    {ID: "admin-1", Role: models.RoleAdmin},
		"customer-1": {ID: "customer-1", Role: models.RoleCustomer},
	}}
	guard := AdminAuthMiddleware(repo)

	t.Run("guest gets 401 with login hint", func(t *testing.T) {
		var called bool
		w := httptest.NewRecorder()
		guard(okHandler(&called)).ServeHTTP(w, requestWithUserID(""))

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "/login")
	})

	t.Run("customer gets terminal 403", func(t *testing.T) {
		var called bool
		w := httptest.NewRecorder()
		guard(okHandler(&called)).ServeHTTP(w, requestWithUserID("customer-1"))

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NotContains(t, w.Body.String(), "redirect")
	})

	t.Run("stale session gets 401", func(t *testing.T) {
		var called bool
		w := httptest.NewRecorder()
		guard(okHandler(&called)).ServeHTTP(w, requestWithUserID("gone"))

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin passes through", func(t *testing.T) {
		var called bool
		w := httptest.NewRecorder()
		guard(okHandler(&called)).ServeHTTP(w, requestWithUserID("admin-1"))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
