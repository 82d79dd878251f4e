package admin

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"go.uber.org/zap"
)

// ListOrders serves the back-office order table. Optional ?status=
// and ?q= (customer name or email) filters are applied in memory over
// the full order list.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.GetAll(r.Context())
	if err != nil {
		logger.L().Error("failed to fetch orders", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to load orders.")
		return
	}

	status := r.URL.Query().Get("status")
	search := strings.ToLower(r.URL.Query().Get("q"))

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if status != "" && order.Status != status {
			continue
		}
		if search != "" && !orderMatchesCustomer(order, search) {
			continue
		}
		filtered = append(filtered, order)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"orders":   filtered,
		"statuses": models.OrderStatuses,
	})
}

func orderMatchesCustomer(order models.Order, search string) bool {
	name := strings.ToLower(order.User.FirstName + " " + order.User.LastName)
	email := strings.ToLower(order.User.Email)
	return strings.Contains(name, search) || strings.Contains(email, search)
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.jsonError(w, http.StatusNotFound, "Order not found.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"order": order})
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !models.IsValidOrderStatus(req.Status) {
		h.jsonError(w, http.StatusUnprocessableEntity, "Unknown order status.")
		return
	}

	if err := h.orderRepo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		logger.L().Error("failed to update order status", zap.Error(err), zap.String("order_id", id))
		h.jsonError(w, http.StatusInternalServerError, "Failed to update order.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Order updated.", "status": req.Status})
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.orderRepo.Delete(r.Context(), id); err != nil {
		logger.L().Error("failed to delete order", zap.Error(err), zap.String("order_id", id))
		h.jsonError(w, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Order deleted."})
}
