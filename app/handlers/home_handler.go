package handlers

import (
	"net/http"

	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type HomeHandler struct {
	catalogSvc  *services.CatalogService
	attractRepo repositories.AttractImageRepositoryImpl
	render      *render.Render
}

func NewHomeHandler(catalogSvc *services.CatalogService, attractRepo repositories.AttractImageRepositoryImpl, r *render.Render) *HomeHandler {
	return &HomeHandler{
		catalogSvc:  catalogSvc,
		attractRepo: attractRepo,
		render:      r,
	}
}

// Home serves the landing-page data: the promo carousel, up to four hot
// deals and up to four featured products.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	attract, err := h.attractRepo.GetAll(ctx)
	if err != nil {
		logger.L().Error("failed to fetch attract images", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load homepage."})
		return
	}
	attractURLs := make([]string, 0, len(attract))
	for _, img := range attract {
		attractURLs = append(attractURLs, img.URL)
	}

	hotDeals, err := h.catalogSvc.HotDeals(ctx)
	if err != nil {
		logger.L().Error("failed to fetch hot deals", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load homepage."})
		return
	}
	featured, err := h.catalogSvc.Featured(ctx)
	if err != nil {
		logger.L().Error("failed to fetch featured products", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load homepage."})
		return
	}

	dealViews := make([]catalogItemView, 0, len(hotDeals))
	for idx := range hotDeals {
		dealViews = append(dealViews, newProductView(&hotDeals[idx], ""))
	}
	featuredViews := make([]catalogItemView, 0, len(featured))
	for idx := range featured {
		featuredViews = append(featuredViews, newProductView(&featured[idx], ""))
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"attractImages": attractURLs,
		"hotDeals":      dealViews,
		"featured":      featuredViews,
	})
}
