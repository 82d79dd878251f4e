package admin

import (
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"go.uber.org/zap"
)

// ListValuations serves the customer valuation enquiries, newest first.
func (h *AdminHandler) ListValuations(w http.ResponseWriter, r *http.Request) {
	valuations, err := h.valuationRepo.GetAll(r.Context())
	if err != nil {
		logger.L().Error("failed to fetch valuations", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to load valuations.")
		return
	}
	if valuations == nil {
		valuations = []models.Valuation{}
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"valuations": valuations})
}
