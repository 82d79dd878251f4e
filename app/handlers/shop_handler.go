package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/mvdbroek/go-jewelry/app/utils/variant"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type ShopHandler struct {
	productRepo repositories.ProductRepositoryImpl
	catalogSvc  *services.CatalogService
	render      *render.Render
}

func NewShopHandler(productRepo repositories.ProductRepositoryImpl, catalogSvc *services.CatalogService, r *render.Render) *ShopHandler {
	return &ShopHandler{
		productRepo: productRepo,
		catalogSvc:  catalogSvc,
		render:      r,
	}
}

// Products serves the filterable, sortable catalog listing.
func (h *ShopHandler) Products(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.CatalogFilter{
		Shape:       query.Get("shape"),
		Design:      query.Get("design"),
		Metal:       query.Get("metal"),
		Carat:       query.Get("carat"),
		Search:      query.Get("q"),
		OnSaleOnly:  query.Get("sale") == "true",
		SpecialOnly: query.Get("special") == "true",
	}
	order := services.SortLowToHigh
	if query.Get("sort") == string(services.SortHighToLow) {
		order = services.SortHighToLow
	}

	items, err := h.catalogSvc.Listing(r.Context(), filter, order)
	if err != nil {
		logger.L().Error("failed to build catalog listing", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load products."})
		return
	}

	views := make([]catalogItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newCatalogItemView(item, query.Get("carat")))
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": views,
		"filters": map[string]interface{}{
			"diamondShapes": variant.DiamondShapes,
			"ringDesigns":   variant.RingDesigns,
			"ringMetals":    variant.RingMetals,
			"carats":        variant.Carats,
		},
	})
}

// ProductDetail serves one product. An optional ?metal= switches to the
// record sharing the same shape, design and carat set in that metal;
// when no such record exists the requested product is kept as-is.
func (h *ShopHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found."})
		return
	}

	if metal := r.URL.Query().Get("metal"); metal != "" {
		products, err := h.productRepo.GetProducts(r.Context())
		if err != nil {
			logger.L().Error("failed to fetch products for metal switch", zap.Error(err))
		} else {
			product = services.ResolveMetalVariant(products, product, metal)
		}
	}

	carat := r.URL.Query().Get("carat")
	view := newProductView(product, carat)

	// Per-carat quotes let the detail view switch carats without a
	// round trip.
	quotes := make(map[string]quoteView, len(product.Carats))
	for _, c := range product.Carats {
		quotes[c] = newQuoteView(services.CatalogItem{Product: product}.Quote(c))
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product": view,
		"quotes":  quotes,
	})
}
