package handlers

import (
	"errors"
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/helpers"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkoutSvc *services.CheckoutService
	cartStore   *services.CartStore
	render      *render.Render
}

func NewCheckoutHandler(checkoutSvc *services.CheckoutService, cartStore *services.CartStore, r *render.Render) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutSvc: checkoutSvc,
		cartStore:   cartStore,
		render:      r,
	}
}

// Checkout turns the session cart into a pending order. Guests get a
// login redirect with their cart left intact; the cart is cleared only
// after the order is persisted.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := helpers.UserIDFromRequest(r)
	items := h.cartStore.Items(r)

	order, err := h.checkoutSvc.Checkout(r.Context(), userID, items)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{
				"error":    "Please log in to checkout.",
				"redirect": "/login",
			})
			return
		}
		logger.L().Error("checkout failed", zap.Error(err), zap.String("user_id", userID))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Checkout failed."})
		return
	}
	if order == nil {
		_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Your cart is empty."})
		return
	}

	if err := h.cartStore.Clear(w, r); err != nil {
		logger.L().Error("failed to clear cart after checkout", zap.Error(err), zap.String("order_id", order.ID))
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order placed.",
		"order":   order,
	})
}
