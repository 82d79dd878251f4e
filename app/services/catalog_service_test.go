package services

import (
	"context"
	"testing"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ringProduct(id, shape, design, metal string, prices map[string]string, discount int) models.Product {
	carats := make([]string, 0, len(prices))
	for c := range prices {
		carats = append(carats, c)
	}
	return models.Product{
		ID:              id,
		Name:            "Ring " + id,
		DiamondShape:    shape,
		RingDesign:      design,
		RingMetal:       metal,
		Carats:          carats,
		Prices:          prices,
		DiscountPercent: discount,
	}
}

func TestFilterItemsConjunction(t *testing.T) {
	products := []models.Product{
		ringProduct("a", "Round Brilliant Cut", "Halo Setting", "Platinum (950)",
			map[string]string{"1.0 Carat": "$1,000"}, 0),
		ringProduct("b", "Round Brilliant Cut", "Classic Solitaire", "Platinum (950)",
			map[string]string{"1.0 Carat": "$2,000"}, 10),
		ringProduct("c", "Oval Brilliant Cut", "Halo Setting", "Rose Gold (14K/18K)",
			map[string]string{"2.0 Carat": "$3,000"}, 0),
	}
	items := MergeCatalogs(products, nil)

	filtered := FilterItems(items, CatalogFilter{Shape: "Round Brilliant Cut"})
	assert.Len(t, filtered, 2)

	filtered = FilterItems(items, CatalogFilter{Shape: "Round Brilliant Cut", Design: "Halo Setting"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID())

	filtered = FilterItems(items, CatalogFilter{Carat: "2.0 Carat"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "c", filtered[0].ID())

	filtered = FilterItems(items, CatalogFilter{OnSaleOnly: true})
	require.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].ID())
}

func TestFilterItemsSearchIsCaseInsensitive(t *testing.T) {
	items := MergeCatalogs([]models.Product{
		ringProduct("a", "Round Brilliant Cut", "Halo Setting", "Platinum (950)", nil, 0),
	}, nil)

	assert.Len(t, FilterItems(items, CatalogFilter{Search: "ring A"}), 1)
	assert.Len(t, FilterItems(items, CatalogFilter{Search: "sapphire"}), 0)
}

func TestFilterItemsExcludesSpecialsFromVariantFilters(t *testing.T) {
	specials := []models.SpecialEdition{{ID: "s1", Name: "Heirloom", Price: "$9,000"}}
	items := MergeCatalogs(nil, specials)

	// A special edition has no variant attributes, so any variant
	// constraint excludes it.
	assert.Len(t, FilterItems(items, CatalogFilter{Shape: "Round Brilliant Cut"}), 0)
	assert.Len(t, FilterItems(items, CatalogFilter{Carat: "1.0 Carat"}), 0)
	assert.Len(t, FilterItems(items, CatalogFilter{}), 1)
	assert.Len(t, FilterItems(items, CatalogFilter{SpecialOnly: true}), 1)
}

func TestSortByPrice(t *testing.T) {
	products := []models.Product{
		ringProduct("mid", "", "", "", map[string]string{"1.0 Carat": "$2,000"}, 0),
		ringProduct("cheap", "", "", "", map[string]string{"1.0 Carat": "$1,000"}, 0),
		ringProduct("dear", "", "", "", map[string]string{"1.0 Carat": "$3,000"}, 0),
	}
	items := MergeCatalogs(products, nil)

	SortByPrice(items, SortLowToHigh)
	assert.Equal(t, []string{"cheap", "mid", "dear"}, itemIDs(items))

	SortByPrice(items, SortHighToLow)
	assert.Equal(t, []string{"dear", "mid", "cheap"}, itemIDs(items))
}

func TestSortByPriceIsStable(t *testing.T) {
	products := []models.Product{
		ringProduct("first", "", "", "", map[string]string{"1.0 Carat": "$1,000"}, 0),
		ringProduct("second", "", "", "", map[string]string{"1.0 Carat": "$1,000"}, 0),
	}
	items := MergeCatalogs(products, nil)
	SortByPrice(items, SortLowToHigh)
	assert.Equal(t, []string{"first", "second"}, itemIDs(items))
}

func itemIDs(items []CatalogItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID())
	}
	return ids
}

func TestResolveMetalVariant(t *testing.T) {
	platinum := ringProduct("p", "Round Brilliant Cut", "Halo Setting", "Platinum (950)",
		map[string]string{"1.0 Carat": "$2,000"}, 0)
	platinum.Carats = []string{"1.0 Carat"}
	rose := ringProduct("r", "Round Brilliant Cut", "Halo Setting", "Rose Gold (14K/18K)",
		map[string]string{"1.0 Carat": "$1,800"}, 0)
	rose.Carats = []string{"1.0 Carat"}
	products := []models.Product{platinum, rose}

	got := ResolveMetalVariant(products, &platinum, "Rose Gold (14K/18K)")
	assert.Equal(t, "r", got.ID)

	// No record in the requested metal: keep the current product.
	got = ResolveMetalVariant(products, &platinum, "Yellow Gold (14K/18K)")
	assert.Equal(t, "p", got.ID)

	// Same metal or empty metal is a no-op.
	got = ResolveMetalVariant(products, &platinum, "Platinum (950)")
	assert.Equal(t, "p", got.ID)
	got = ResolveMetalVariant(products, &platinum, "")
	assert.Equal(t, "p", got.ID)
}

type stubProductRepo struct {
	products []models.Product
}

func (s *stubProductRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}
func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, nil
}
func (s *stubProductRepo) Create(ctx context.Context, p *models.Product) error { return nil }
func (s *stubProductRepo) Update(ctx context.Context, p *models.Product) error { return nil }
func (s *stubProductRepo) Delete(ctx context.Context, id string) error         { return nil }

type stubSpecialRepo struct {
	specials []models.SpecialEdition
}

func (s *stubSpecialRepo) GetSpecialEditions(ctx context.Context) ([]models.SpecialEdition, error) {
	return s.specials, nil
}
func (s *stubSpecialRepo) GetByID(ctx context.Context, id string) (*models.SpecialEdition, error) {
	return nil, nil
}
func (s *stubSpecialRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.specials)), nil
}
func (s *stubSpecialRepo) Create(ctx context.Context, sp *models.SpecialEdition) error { return nil }
func (s *stubSpecialRepo) Update(ctx context.Context, sp *models.SpecialEdition) error { return nil }
func (s *stubSpecialRepo) Delete(ctx context.Context, id string) error                 { return nil }

func TestCoverageReport(t *testing.T) {
	svc := NewCatalogService(&stubProductRepo{products: []models.Product{
		ringProduct("a", "Round Brilliant Cut", "Halo Setting", "Platinum (950)", nil, 0),
	}}, &stubSpecialRepo{})

	missing, covered, total, err := svc.CoverageReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, covered)
	assert.Equal(t, 64, total)
	assert.Len(t, missing, 63)
}

func TestHotDealsAndFeaturedCaps(t *testing.T) {
	var products []models.Product
	for i := 0; i < 6; i++ {
		products = append(products, ringProduct(string(rune('a'+i)), "", "", "", nil, 10))
	}
	for i := 0; i < 6; i++ {
		products = append(products, ringProduct(string(rune('g'+i)), "", "", "", nil, 0))
	}
	svc := NewCatalogService(&stubProductRepo{products: products}, &stubSpecialRepo{})

	deals, err := svc.HotDeals(context.Background())
	require.NoError(t, err)
	assert.Len(t, deals, 4)
	for _, p := range deals {
		assert.Positive(t, p.DiscountPercent)
	}

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 4)
	for _, p := range featured {
		assert.Zero(t, p.DiscountPercent)
	}
}
