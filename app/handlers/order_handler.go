package handlers

import (
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/helpers"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderRepo repositories.OrderRepositoryImpl
	render    *render.Render
}

func NewOrderHandler(orderRepo repositories.OrderRepositoryImpl, r *render.Render) *OrderHandler {
	return &OrderHandler{orderRepo: orderRepo, render: r}
}

// MyOrders lists the authenticated user's orders, newest first.
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID := helpers.UserIDFromRequest(r)
	if userID == "" {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{
			"error":    "Please log in to view your orders.",
			"redirect": "/login",
		})
		return
	}

	orders, err := h.orderRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		logger.L().Error("failed to fetch orders", zap.Error(err), zap.String("user_id", userID))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load orders."})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}
