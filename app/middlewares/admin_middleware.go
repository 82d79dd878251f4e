package middlewares

import (
	"context"
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/helpers"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"go.uber.org/zap"
)

// AdminAuthMiddleware guards the back-office routes. Guests get a 401
// with a login hint; authenticated non-admins get a terminal 403 with no
// redirect. The loaded user is cached on the context for the handlers.
func AdminAuthMiddleware(userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := helpers.UserIDFromRequest(r)
			if userID == "" {
				writeJSON(w, http.StatusUnauthorized, `{"error":"Please log in.","redirect":"/login"}`)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.L().Error("failed to load user for admin check", zap.Error(err), zap.String("user_id", userID))
				writeJSON(w, http.StatusInternalServerError, `{"error":"Something went wrong."}`)
				return
			}
			if user == nil {
				writeJSON(w, http.StatusUnauthorized, `{"error":"Please log in.","redirect":"/login"}`)
				return
			}
			if user.Role != models.RoleAdmin {
				logger.L().Warn("non-admin attempted to access admin routes",
					zap.String("user_id", user.ID),
					zap.String("email", user.Email),
				)
				writeJSON(w, http.StatusForbidden, `{"error":"You do not have permission to access this page."}`)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
