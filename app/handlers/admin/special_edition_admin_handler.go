package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"go.uber.org/zap"
)

type specialEditionRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Price           string   `json:"price" validate:"required"`
	Images          []string `json:"images"`
	DiscountPercent int      `json:"discountPercent" validate:"gte=0,lte=90"`
}

func applySpecialEditionRequest(s *models.SpecialEdition, req specialEditionRequest) {
	s.Name = req.Name
	s.Description = req.Description
	s.Price = req.Price
	s.Images = req.Images
	s.DiscountPercent = req.DiscountPercent
}

func (h *AdminHandler) ListSpecialEditions(w http.ResponseWriter, r *http.Request) {
	specials, err := h.specialRepo.GetSpecialEditions(r.Context())
	if err != nil {
		logger.L().Error("failed to fetch special editions", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to load special editions.")
		return
	}
	if specials == nil {
		specials = []models.SpecialEdition{}
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"specialEditions": specials,
		"limit":           models.SpecialEditionLimit,
	})
}

func (h *AdminHandler) GetSpecialEdition(w http.ResponseWriter, r *http.Request) {
	special, err := h.specialRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.jsonError(w, http.StatusNotFound, "Special edition not found.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"specialEdition": special})
}

// CreateSpecialEdition enforces the 50-record cap. The count check and
// the insert are not atomic; concurrent admin submissions could slightly
// overshoot, which is acceptable for a back-office form.
func (h *AdminHandler) CreateSpecialEdition(w http.ResponseWriter, r *http.Request) {
	var req specialEditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.jsonError(w, http.StatusUnprocessableEntity, "Name and price are required; discount must be between 0 and 90.")
		return
	}

	count, err := h.specialRepo.Count(r.Context())
	if err != nil {
		logger.L().Error("failed to count special editions", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to create special edition.")
		return
	}
	if count >= models.SpecialEditionLimit {
		h.jsonError(w, http.StatusUnprocessableEntity, "Special edition limit reached (50). Delete one before adding another.")
		return
	}

	var special models.SpecialEdition
	applySpecialEditionRequest(&special, req)
	if err := h.specialRepo.Create(r.Context(), &special); err != nil {
		logger.L().Error("failed to create special edition", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to create special edition.")
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"specialEdition": special})
}

// UpdateSpecialEdition skips the cap check: editing never grows the set.
func (h *AdminHandler) UpdateSpecialEdition(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	special, err := h.specialRepo.GetByID(r.Context(), id)
	if err != nil {
		h.jsonError(w, http.StatusNotFound, "Special edition not found.")
		return
	}

	var req specialEditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.jsonError(w, http.StatusUnprocessableEntity, "Name and price are required; discount must be between 0 and 90.")
		return
	}

	applySpecialEditionRequest(special, req)
	if err := h.specialRepo.Update(r.Context(), special); err != nil {
		logger.L().Error("failed to update special edition", zap.Error(err), zap.String("special_edition_id", id))
		h.jsonError(w, http.StatusInternalServerError, "Failed to update special edition.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"specialEdition": special})
}

func (h *AdminHandler) DeleteSpecialEdition(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.specialRepo.Delete(r.Context(), id); err != nil {
		logger.L().Error("failed to delete special edition", zap.Error(err), zap.String("special_edition_id", id))
		h.jsonError(w, http.StatusInternalServerError, "Failed to delete special edition.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Special edition deleted."})
}
