package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

const valuationMaxUploadBytes = 10 << 20

type ValuationHandler struct {
	valuationRepo repositories.ValuationRepositoryImpl
	imageKit      *services.ImageKitService
	validate      *validator.Validate
	render        *render.Render
}

func NewValuationHandler(valuationRepo repositories.ValuationRepositoryImpl, imageKit *services.ImageKitService, validate *validator.Validate, r *render.Render) *ValuationHandler {
	return &ValuationHandler{
		valuationRepo: valuationRepo,
		imageKit:      imageKit,
		validate:      validate,
		render:        r,
	}
}

type valuationRequest struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	Message string `validate:"required"`
}

// Submit accepts a valuation enquiry as a multipart form with an
// optional photo of the piece.
func (h *ValuationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(valuationMaxUploadBytes); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid form data."})
		return
	}

	req := valuationRequest{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Message: r.FormValue("message"),
	}
	if err := h.validate.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Name, email, phone and message are required."})
		return
	}

	imageURL := ""
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageURL, err = h.imageKit.Upload(r.Context(), header.Filename, services.FolderValuations, file)
		if err != nil {
			logger.L().Error("failed to upload valuation image", zap.Error(err))
			_ = h.render.JSON(w, http.StatusBadGateway, map[string]string{"error": "Failed to upload image."})
			return
		}
	}

	valuation := &models.Valuation{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		ImageURL: imageURL,
	}
	if err := h.valuationRepo.Create(r.Context(), valuation); err != nil {
		logger.L().Error("failed to save valuation", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to submit valuation request."})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Valuation request received. We will get back to you shortly.",
		"valuation": valuation,
	})
}
