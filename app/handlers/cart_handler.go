package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
	"github.com/mvdbroek/go-jewelry/app/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type CartHandler struct {
	productRepo repositories.ProductRepositoryImpl
	specialRepo repositories.SpecialEditionRepositoryImpl
	cartStore   *services.CartStore
	render      *render.Render
}

func NewCartHandler(productRepo repositories.ProductRepositoryImpl, specialRepo repositories.SpecialEditionRepositoryImpl, cartStore *services.CartStore, r *render.Render) *CartHandler {
	return &CartHandler{
		productRepo: productRepo,
		specialRepo: specialRepo,
		cartStore:   cartStore,
		render:      r,
	}
}

type cartView struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total decimal.Decimal   `json:"total"`
}

func newCartView(items []models.CartItem) cartView {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(pricing.ExtractAmount(item.Price))
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return cartView{Items: items, Count: len(items), Total: total}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, newCartView(h.cartStore.Items(r)))
}

type addToCartRequest struct {
	ProductID      string `json:"productId"`
	Carat          string `json:"carat"`
	SpecialEdition bool   `json:"specialEdition"`
}

// AddItem puts one pick into the session cart. The stored price string
// is resolved here, once, and never updated afterwards.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}

	item, ok := h.buildCartItem(r, req)
	if !ok {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found."})
		return
	}

	if err := h.cartStore.Add(w, r, item); err != nil {
		if errors.Is(err, services.ErrCaratRequired) {
			_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Please select a carat."})
			return
		}
		logger.L().Error("failed to save cart", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update cart."})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, newCartView(h.cartStore.Items(r)))
}

func (h *CartHandler) buildCartItem(r *http.Request, req addToCartRequest) (models.CartItem, bool) {
	if req.SpecialEdition {
		special, err := h.specialRepo.GetByID(r.Context(), req.ProductID)
		if err != nil {
			return models.CartItem{}, false
		}
		return models.CartItem{
			ProductID:      special.ID,
			Name:           special.Name,
			Carat:          req.Carat,
			Price:          special.Price,
			Image:          firstImage(special.Images, ""),
			SpecialEdition: true,
		}, true
	}

	product, err := h.productRepo.GetByID(r.Context(), req.ProductID)
	if err != nil {
		return models.CartItem{}, false
	}
	price := product.Price
	if p, ok := product.Prices[req.Carat]; ok && req.Carat != "" {
		price = p
	}
	return models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Carat:     req.Carat,
		RingMetal: product.RingMetal,
		Price:     price,
		Image:     firstImage(product.Images, product.MainImage),
	}, true
}

// RemoveItem drops every cart entry for the given product ID.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	if err := h.cartStore.Remove(w, r, productID); err != nil {
		logger.L().Error("failed to save cart", zap.Error(err))
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update cart."})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, newCartView(h.cartStore.Items(r)))
}

func firstImage(images []string, fallback string) string {
	if len(images) > 0 {
		return images[0]
	}
	return fallback
}
