package admin

import (
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/mvdbroek/go-jewelry/app/utils/variant"
	"go.uber.org/zap"
)

// Dashboard reports catalog coverage over the variant space: which
// shape/design/metal combinations still lack a product, and the running
// covered-of-total tally.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	missing, covered, total, err := h.catalogSvc.CoverageReport(r.Context())
	if err != nil {
		logger.L().Error("failed to build coverage report", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to load dashboard.")
		return
	}
	if missing == nil {
		missing = []variant.Combination{}
	}

	specialCount, err := h.specialRepo.Count(r.Context())
	if err != nil {
		logger.L().Error("failed to count special editions", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to load dashboard.")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"missingCombinations": missing,
		"covered":             covered,
		"total":               total,
		"specialEditions": map[string]interface{}{
			"count": specialCount,
			"limit": models.SpecialEditionLimit,
		},
	})
}
