package admin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/mvdbroek/go-jewelry/app/utils/pricing"
	"github.com/mvdbroek/go-jewelry/app/utils/variant"
	"go.uber.org/zap"
)

type productRequest struct {
	Name            string            `json:"name" validate:"required"`
	Description     string            `json:"description"`
	DiamondShape    string            `json:"diamondShape" validate:"required"`
	RingDesign      string            `json:"ringDesign" validate:"required"`
	RingMetal       string            `json:"ringMetal" validate:"required"`
	Carats          []string          `json:"carats" validate:"required,min=1"`
	Prices          map[string]string `json:"prices"`
	Price           string            `json:"price"`
	Images          []string          `json:"images"`
	MainImage       string            `json:"mainImage"`
	DiscountPercent int               `json:"discountPercent" validate:"gte=0,lte=90"`
}

// validateProduct enforces the variant rules on top of the struct tags:
// enumerated attribute values, a price for every offered carat and a
// unique shape/design/metal triple. editingID exempts the record being
// updated from the duplicate check.
func (h *AdminHandler) validateProduct(r *http.Request, req productRequest, editingID string) (string, error) {
	if err := h.validate.Struct(req); err != nil {
		return "Name, shape, design, metal and at least one carat are required; discount must be between 0 and 90.", nil
	}
	if !variant.IsValidShape(req.DiamondShape) {
		return fmt.Sprintf("%q is not a known diamond shape.", req.DiamondShape), nil
	}
	if !variant.IsValidDesign(req.RingDesign) {
		return fmt.Sprintf("%q is not a known ring design.", req.RingDesign), nil
	}
	if !variant.IsValidMetal(req.RingMetal) {
		return fmt.Sprintf("%q is not a known ring metal.", req.RingMetal), nil
	}
	for _, carat := range req.Carats {
		if !variant.IsValidCarat(carat) {
			return fmt.Sprintf("%q is not a known carat.", carat), nil
		}
		if req.Prices[carat] == "" {
			return fmt.Sprintf("Missing price for %s.", carat), nil
		}
	}

	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		return "", err
	}
	candidate := variant.Combination{
		Shape:  req.DiamondShape,
		Design: req.RingDesign,
		Metal:  req.RingMetal,
	}
	if variant.IsDuplicateCombination(services.VariantEntries(products), candidate, editingID) {
		return "A product with this shape, design and metal already exists.", nil
	}
	return "", nil
}

func applyProductRequest(p *models.Product, req productRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.DiamondShape = req.DiamondShape
	p.RingDesign = req.RingDesign
	p.RingMetal = req.RingMetal
	p.Carats = req.Carats
	p.Prices = req.Prices
	p.Price = req.Price
	p.Images = req.Images
	p.MainImage = req.MainImage
	p.DiscountPercent = req.DiscountPercent
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		logger.L().Error("failed to fetch products", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to load products.")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	// Resolved display prices, keyed by ID, so the table shows the same
	// figure the storefront does.
	displayPrices := make(map[string]string, len(products))
	for _, p := range products {
		displayPrices[p.ID] = previewQuote(p.Prices, p.Price, p.DiscountPercent)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products":      products,
		"displayPrices": displayPrices,
	})
}

func (h *AdminHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.jsonError(w, http.StatusNotFound, "Product not found.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"product": product})
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	msg, err := h.validateProduct(r, req, "")
	if err != nil {
		logger.L().Error("failed to validate product", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to create product.")
		return
	}
	if msg != "" {
		h.jsonError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	var product models.Product
	applyProductRequest(&product, req)
	if err := h.productRepo.Create(r.Context(), &product); err != nil {
		logger.L().Error("failed to create product", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to create product.")
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"product": product})
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		h.jsonError(w, http.StatusNotFound, "Product not found.")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	msg, err := h.validateProduct(r, req, id)
	if err != nil {
		logger.L().Error("failed to validate product", zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "Failed to update product.")
		return
	}
	if msg != "" {
		h.jsonError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	applyProductRequest(product, req)
	if err := h.productRepo.Update(r.Context(), product); err != nil {
		logger.L().Error("failed to update product", zap.Error(err), zap.String("product_id", id))
		h.jsonError(w, http.StatusInternalServerError, "Failed to update product.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"product": product})
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		logger.L().Error("failed to delete product", zap.Error(err), zap.String("product_id", id))
		h.jsonError(w, http.StatusInternalServerError, "Failed to delete product.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted."})
}

// previewQuote mirrors what the storefront would show, so the admin
// table can display resolved prices next to the raw entries.
func previewQuote(prices map[string]string, legacyPrice string, discount int) string {
	return pricing.Resolve(prices, legacyPrice, "", discount).Display()
}
