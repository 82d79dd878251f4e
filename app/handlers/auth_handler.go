package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mvdbroek/go-jewelry/app/helpers"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/mvdbroek/go-jewelry/app/utils/sessions"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userRepo repositories.UserRepositoryImpl
	sessions sessions.SessionStore
	validate *validator.Validate
	render   *render.Render
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, validate *validator.Validate, r *render.Render) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		sessions: sessionStore,
		validate: validate,
		render:   r,
	}
}

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"errors": helpers.FormatValidationErrors(validationErrs),
			})
			return
		}
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request."})
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		logger.L().Error("failed to look up user", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Registration failed."})
		return
	}
	if existing != nil {
		_ = h.render.JSON(w, http.StatusConflict, map[string]string{"error": "Email is already registered."})
		return
	}

	hashed, err := helpers.HashPassword(req.Password)
	if err != nil {
		logger.L().Error("failed to hash password", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Registration failed."})
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hashed,
		Role:      models.RoleCustomer,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		logger.L().Error("failed to create user", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Registration failed."})
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		logger.L().Error("failed to start session", zap.Error(err), zap.String("user_id", user.ID))
	}
	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Email and password are required."})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		logger.L().Error("failed to look up user", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Login failed."})
		return
	}
	if user == nil || !helpers.CheckPassword(user.Password, req.Password) {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password."})
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		logger.L().Error("failed to start session", zap.Error(err), zap.String("user_id", user.ID))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Login failed."})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// Logout clears the whole session, cart included.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearSession(w, r); err != nil {
		logger.L().Error("failed to clear session", zap.Error(err))
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Logged out."})
}

// Me returns the authenticated user, or 401 for guests.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := helpers.UserIDFromRequest(r)
	if userID == "" {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Not logged in."})
		return
	}
	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		logger.L().Error("failed to fetch user", zap.Error(err), zap.String("user_id", userID))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load account."})
		return
	}
	if user == nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Not logged in."})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
