package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

// UserIDFromRequest pulls the authenticated user's ID out of the request
// context. Empty string means no session.
func UserIDFromRequest(r *http.Request) string {
	userID, _ := r.Context().Value(ContextKeyUserID).(string)
	return userID
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// FormatValidationErrors maps validator errors to per-field messages the
// client can show next to its inputs.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	formatted := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
		switch fieldErr.Tag() {
		case "required":
			formatted[field] = fmt.Sprintf("%s is required", fieldErr.Field())
		case "email":
			formatted[field] = "must be a valid email address"
		case "min":
			formatted[field] = fmt.Sprintf("must be at least %s characters", fieldErr.Param())
		case "gte":
			formatted[field] = fmt.Sprintf("must be at least %s", fieldErr.Param())
		case "lte":
			formatted[field] = fmt.Sprintf("must be at most %s", fieldErr.Param())
		default:
			formatted[field] = fmt.Sprintf("failed on %s validation", fieldErr.Tag())
		}
	}
	return formatted
}
