package handlers

import (
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/pricing"
	"github.com/shopspring/decimal"
)

type quoteView struct {
	Original        decimal.Decimal `json:"original"`
	Discounted      decimal.Decimal `json:"discounted"`
	DiscountPercent int             `json:"discountPercent"`
	Available       bool            `json:"available"`
	Display         string          `json:"display"`
	DisplayOriginal string          `json:"displayOriginal"`
}

func newQuoteView(q pricing.Quote) quoteView {
	return quoteView{
		Original:        q.Original,
		Discounted:      q.Discounted,
		DiscountPercent: q.DiscountPercent,
		Available:       q.Available,
		Display:         q.Display(),
		DisplayOriginal: q.DisplayOriginal(),
	}
}

type catalogItemView struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	DiamondShape    string            `json:"diamondShape,omitempty"`
	RingDesign      string            `json:"ringDesign,omitempty"`
	RingMetal       string            `json:"ringMetal,omitempty"`
	Carats          []string          `json:"carats,omitempty"`
	Prices          map[string]string `json:"prices,omitempty"`
	Price           string            `json:"price,omitempty"`
	Images          []string          `json:"images"`
	DiscountPercent int               `json:"discountPercent"`
	SpecialEdition  bool              `json:"specialEdition"`
	Quote           quoteView         `json:"quote"`
}

func newCatalogItemView(item services.CatalogItem, carat string) catalogItemView {
	view := catalogItemView{
		ID:              item.ID(),
		Name:            item.Name(),
		Description:     item.Description(),
		Carats:          item.Carats(),
		Prices:          item.Prices(),
		Price:           item.LegacyPrice(),
		Images:          item.Images(),
		DiscountPercent: item.DiscountPercent(),
		SpecialEdition:  item.IsSpecialEdition(),
		Quote:           newQuoteView(item.Quote(carat)),
	}
	if item.Product != nil {
		view.DiamondShape = item.Product.DiamondShape
		view.RingDesign = item.Product.RingDesign
		view.RingMetal = item.Product.RingMetal
	}
	return view
}

func newProductView(p *models.Product, carat string) catalogItemView {
	return newCatalogItemView(services.CatalogItem{Product: p}, carat)
}

func newSpecialView(s *models.SpecialEdition) catalogItemView {
	return newCatalogItemView(services.CatalogItem{Special: s}, "")
}
