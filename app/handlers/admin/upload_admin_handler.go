package admin

import (
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"go.uber.org/zap"
)

const productMaxUploadBytes = 20 << 20

// uploadFolders maps the form's folder name to a CDN folder. Only the
// catalog folders are reachable here; attract and valuation uploads go
// through their own endpoints.
var uploadFolders = map[string]string{
	"products":        services.FolderProducts,
	"specialEditions": services.FolderSpecialEditions,
}

// UploadImages accepts a multipart form of product or special edition
// images and returns the CDN URLs in upload order. The caller attaches
// the URLs to a record in a follow-up create or update request.
func (h *AdminHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(productMaxUploadBytes); err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid form data.")
		return
	}

	folder, ok := uploadFolders[r.FormValue("folder")]
	if !ok {
		h.jsonError(w, http.StatusBadRequest, "Unknown upload folder.")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		h.jsonError(w, http.StatusBadRequest, "No images provided.")
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			h.jsonError(w, http.StatusBadRequest, "Failed to read uploaded file.")
			return
		}
		url, err := h.imageKit.Upload(r.Context(), header.Filename, folder, file)
		file.Close()
		if err != nil {
			logger.L().Error("failed to upload image", zap.Error(err), zap.String("file", header.Filename))
			h.jsonError(w, http.StatusBadGateway, "Failed to upload image.")
			return
		}
		urls = append(urls, url)
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"urls": urls})
}
