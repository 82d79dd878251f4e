// Package admin holds the back-office handlers. Every route in here sits
// behind the admin middleware; the handlers assume an authenticated
// admin and focus on validation and persistence.
package admin

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	productRepo   repositories.ProductRepositoryImpl
	specialRepo   repositories.SpecialEditionRepositoryImpl
	orderRepo     repositories.OrderRepositoryImpl
	valuationRepo repositories.ValuationRepositoryImpl
	attractRepo   repositories.AttractImageRepositoryImpl
	catalogSvc    *services.CatalogService
	imageKit      *services.ImageKitService
	validate      *validator.Validate
	render        *render.Render
}

func NewAdminHandler(
	productRepo repositories.ProductRepositoryImpl,
	specialRepo repositories.SpecialEditionRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	valuationRepo repositories.ValuationRepositoryImpl,
	attractRepo repositories.AttractImageRepositoryImpl,
	catalogSvc *services.CatalogService,
	imageKit *services.ImageKitService,
	validate *validator.Validate,
	r *render.Render,
) *AdminHandler {
	return &AdminHandler{
		productRepo:   productRepo,
		specialRepo:   specialRepo,
		orderRepo:     orderRepo,
		valuationRepo: valuationRepo,
		attractRepo:   attractRepo,
		catalogSvc:    catalogSvc,
		imageKit:      imageKit,
		validate:      validate,
		render:        r,
	}
}

func (h *AdminHandler) jsonError(w http.ResponseWriter, status int, message string) {
	_ = h.render.JSON(w, status, map[string]string{"error": message})
}
