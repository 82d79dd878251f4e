package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/utils/pricing"
	"github.com/mvdbroek/go-jewelry/app/utils/variant"
	"github.com/shopspring/decimal"
)

// CatalogItem is one listing entry: either a standard product or a
// special edition, never both.
type CatalogItem struct {
	Product *models.Product
	Special *models.SpecialEdition
}

func (i CatalogItem) IsSpecialEdition() bool { return i.Special != nil }

func (i CatalogItem) ID() string {
	if i.Special != nil {
		return i.Special.ID
	}
	return i.Product.ID
}

func (i CatalogItem) Name() string {
	if i.Special != nil {
		return i.Special.Name
	}
	return i.Product.Name
}

func (i CatalogItem) Description() string {
	if i.Special != nil {
		return i.Special.Description
	}
	return i.Product.Description
}

func (i CatalogItem) DiscountPercent() int {
	if i.Special != nil {
		return i.Special.DiscountPercent
	}
	return i.Product.DiscountPercent
}

// Prices returns the per-carat price map; special editions have none.
func (i CatalogItem) Prices() map[string]string {
	if i.Special != nil {
		return nil
	}
	return i.Product.Prices
}

func (i CatalogItem) LegacyPrice() string {
	if i.Special != nil {
		return i.Special.Price
	}
	return i.Product.Price
}

func (i CatalogItem) Carats() []string {
	if i.Special != nil {
		return nil
	}
	return i.Product.Carats
}

// Images falls back to the single main image when the list is empty.
func (i CatalogItem) Images() []string {
	if i.Special != nil {
		return i.Special.Images
	}
	if len(i.Product.Images) > 0 {
		return i.Product.Images
	}
	if i.Product.MainImage != "" {
		return []string{i.Product.MainImage}
	}
	return nil
}

// Quote resolves the item's display price for a carat selection.
func (i CatalogItem) Quote(carat string) pricing.Quote {
	return pricing.Resolve(i.Prices(), i.LegacyPrice(), carat, i.DiscountPercent())
}

func (i CatalogItem) comparablePrice(max bool) decimal.Decimal {
	return pricing.ComparablePrice(i.Prices(), i.LegacyPrice(), max)
}

// CatalogFilter is a conjunction of constraints; zero values mean "no
// constraint".
type CatalogFilter struct {
	Shape       string
	Design      string
	Metal       string
	Carat       string
	Search      string
	OnSaleOnly  bool
	SpecialOnly bool
}

type SortOrder string

const (
	SortLowToHigh SortOrder = "low"
	SortHighToLow SortOrder = "high"
)

type CatalogService struct {
	productRepo repositories.ProductRepositoryImpl
	specialRepo repositories.SpecialEditionRepositoryImpl
}

func NewCatalogService(productRepo repositories.ProductRepositoryImpl, specialRepo repositories.SpecialEditionRepositoryImpl) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		specialRepo: specialRepo,
	}
}

// Listing merges both catalogs, applies the filter and sorts by price.
func (s *CatalogService) Listing(ctx context.Context, filter CatalogFilter, order SortOrder) ([]CatalogItem, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	specials, err := s.specialRepo.GetSpecialEditions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch special editions: %w", err)
	}

	items := MergeCatalogs(products, specials)
	items = FilterItems(items, filter)
	SortByPrice(items, order)
	return items, nil
}

func MergeCatalogs(products []models.Product, specials []models.SpecialEdition) []CatalogItem {
	items := make([]CatalogItem, 0, len(products)+len(specials))
	for idx := range products {
		items = append(items, CatalogItem{Product: &products[idx]})
	}
	for idx := range specials {
		items = append(items, CatalogItem{Special: &specials[idx]})
	}
	return items
}

// FilterItems applies the filter conjunction. Special editions carry no
// variant attributes, so any shape/design/metal/carat constraint
// excludes them.
func FilterItems(items []CatalogItem, f CatalogFilter) []CatalogItem {
	search := strings.ToLower(f.Search)
	filtered := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if f.SpecialOnly && !item.IsSpecialEdition() {
			continue
		}
		if f.OnSaleOnly && item.DiscountPercent() <= 0 {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name()), search) {
			continue
		}
		if item.IsSpecialEdition() {
			if f.Shape != "" || f.Design != "" || f.Metal != "" || f.Carat != "" {
				continue
			}
		} else {
			p := item.Product
			if f.Shape != "" && p.DiamondShape != f.Shape {
				continue
			}
			if f.Design != "" && p.RingDesign != f.Design {
				continue
			}
			if f.Metal != "" && p.RingMetal != f.Metal {
				continue
			}
			if f.Carat != "" && !containsString(p.Carats, f.Carat) {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// SortByPrice orders items by their minimum price ascending, or maximum
// price descending. The sort is stable so equal prices keep their
// original relative order.
func SortByPrice(items []CatalogItem, order SortOrder) {
	max := order == SortHighToLow
	sort.SliceStable(items, func(a, b int) bool {
		pa := items[a].comparablePrice(max)
		pb := items[b].comparablePrice(max)
		if max {
			return pa.GreaterThan(pb)
		}
		return pa.LessThan(pb)
	})
}

// ResolveMetalVariant finds the product sharing the current product's
// shape, design and carat set but offered in the requested metal. When
// no such record exists the current product is returned unchanged.
func ResolveMetalVariant(products []models.Product, current *models.Product, metal string) *models.Product {
	if current == nil || metal == "" || metal == current.RingMetal {
		return current
	}
	for idx := range products {
		p := &products[idx]
		if p.DiamondShape == current.DiamondShape &&
			p.RingDesign == current.RingDesign &&
			p.RingMetal == metal &&
			sameCarats(p.Carats, current.Carats) {
			return p
		}
	}
	return current
}

// HotDeals returns up to four discounted products for the homepage.
func (s *CatalogService) HotDeals(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	var deals []models.Product
	for _, p := range products {
		if p.DiscountPercent > 0 {
			deals = append(deals, p)
			if len(deals) == 4 {
				break
			}
		}
	}
	return deals, nil
}

// Featured returns up to four undiscounted products for the homepage.
func (s *CatalogService) Featured(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	var featured []models.Product
	for _, p := range products {
		if p.DiscountPercent == 0 {
			featured = append(featured, p)
			if len(featured) == 4 {
				break
			}
		}
	}
	return featured, nil
}

// CoverageReport computes the missing-combination report for the admin
// dashboard from a fresh catalog snapshot.
func (s *CatalogService) CoverageReport(ctx context.Context) (missing []variant.Combination, covered, total int, err error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to fetch products: %w", err)
	}
	entries := VariantEntries(products)
	missing = variant.MissingCombinations(entries)
	covered, total = variant.Progress(entries)
	return missing, covered, total, nil
}

// VariantEntries projects products onto their identifying combinations.
func VariantEntries(products []models.Product) []variant.Entry {
	entries := make([]variant.Entry, 0, len(products))
	for _, p := range products {
		entries = append(entries, variant.Entry{
			ID: p.ID,
			Combination: variant.Combination{
				Shape:  p.DiamondShape,
				Design: p.RingDesign,
				Metal:  p.RingMetal,
			},
		})
	}
	return entries
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func sameCarats(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
