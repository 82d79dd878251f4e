package admin

import (
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"go.uber.org/zap"
)

const attractMaxUploadBytes = 20 << 20

func (h *AdminHandler) ListAttractImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.attractRepo.GetAll(r.Context())
	if err != nil {
		logger.L().Error("failed to fetch attract images", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to load attract images.")
		return
	}
	if images == nil {
		images = []models.AttractImage{}
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"attractImages": images})
}

// UploadAttractImages pushes each file from the multipart form to the
// CDN, one at a time, and records a row per uploaded URL. A failure
// stops the loop; files already uploaded keep their records.
func (h *AdminHandler) UploadAttractImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(attractMaxUploadBytes); err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid form data.")
		return
	}
	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		h.jsonError(w, http.StatusBadRequest, "No images provided.")
		return
	}

	uploaded := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			h.jsonError(w, http.StatusBadRequest, "Failed to read uploaded file.")
			return
		}
		url, err := h.imageKit.Upload(r.Context(), header.Filename, services.FolderAttract, file)
		file.Close()
		if err != nil {
			logger.L().Error("failed to upload attract image", zap.Error(err), zap.String("file", header.Filename))
			h.jsonError(w, http.StatusBadGateway, "Failed to upload image.")
			return
		}
		if err := h.attractRepo.Create(r.Context(), &models.AttractImage{URL: url}); err != nil {
			logger.L().Error("failed to save attract image", zap.Error(err), zap.String("url", url))
			h.jsonError(w, http.StatusInternalServerError, "Failed to save attract image.")
			return
		}
		uploaded = append(uploaded, url)
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"urls": uploaded})
}

// DeleteAttractImage removes the record for the URL given in ?url=. The
// CDN file itself is not touched.
func (h *AdminHandler) DeleteAttractImage(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		h.jsonError(w, http.StatusBadRequest, "Missing url parameter.")
		return
	}
	if err := h.attractRepo.DeleteByURL(r.Context(), url); err != nil {
		logger.L().Error("failed to delete attract image", zap.Error(err), zap.String("url", url))
		h.jsonError(w, http.StatusInternalServerError, "Failed to delete attract image.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Attract image deleted."})
}
