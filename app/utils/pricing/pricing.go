// Package pricing derives display prices from the free-form price
// strings stored on catalog records. Every surface that shows a price
// (catalog listing, product detail, hot deals, admin table) goes through
// this package so the numbers cannot drift between call sites.
package pricing

import (
	"sort"
	"strings"

	"github.com/leekchan/accounting"
	"github.com/mvdbroek/go-jewelry/app/utils/variant"
	"github.com/shopspring/decimal"
)

// MaxDiscountPercent bounds the admin-entered discount.
const MaxDiscountPercent = 90

// ContactForPrice is shown when no positive price can be resolved.
// Distinct from a price of zero.
const ContactForPrice = "Contact for Price"

var money = accounting.Accounting{Symbol: "$", Precision: 0}

// ExtractAmount keeps only digits and '.' from a price string and parses
// the result. Malformed or empty input yields zero.
func ExtractAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	amt, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return amt
}

// Quote is the resolved price figure set for one product + carat +
// discount. Available distinguishes "no price on record" from zero.
type Quote struct {
	Original        decimal.Decimal `json:"original"`
	Discounted      decimal.Decimal `json:"discounted"`
	DiscountPercent int             `json:"discountPercent"`
	Available       bool            `json:"available"`
}

// Resolve derives a quote from a product's per-carat price map, its
// legacy single price and an optional discount percent.
//
// The original price is the first positive amount of: prices[carat],
// then the remaining prices entries in scan order, then the legacy
// price. With no positive amount anywhere the quote is unavailable.
// A discount d in (0,90] rounds the discounted price to the nearest
// whole amount, half away from zero; d == 0 leaves it untouched.
func Resolve(prices map[string]string, legacyPrice, carat string, discountPercent int) Quote {
	orig, ok := resolveOriginal(prices, legacyPrice, carat)
	if !ok {
		return Quote{DiscountPercent: discountPercent}
	}
	q := Quote{
		Original:        orig,
		Discounted:      orig,
		DiscountPercent: discountPercent,
		Available:       true,
	}
	if discountPercent > 0 {
		factor := decimal.NewFromInt(100 - int64(discountPercent)).Div(decimal.NewFromInt(100))
		q.Discounted = orig.Mul(factor).Round(0)
	}
	return q
}

func resolveOriginal(prices map[string]string, legacyPrice, carat string) (decimal.Decimal, bool) {
	if carat != "" {
		if p, ok := prices[carat]; ok {
			if amt := ExtractAmount(p); amt.IsPositive() {
				return amt, true
			}
		}
	}
	for _, key := range scanOrder(prices) {
		if amt := ExtractAmount(prices[key]); amt.IsPositive() {
			return amt, true
		}
	}
	if amt := ExtractAmount(legacyPrice); amt.IsPositive() {
		return amt, true
	}
	return decimal.Zero, false
}

// scanOrder makes the prices-map scan deterministic: known carat labels
// in enumeration order first, then any leftover keys sorted.
func scanOrder(prices map[string]string) []string {
	keys := make([]string, 0, len(prices))
	for _, c := range variant.Carats {
		if _, ok := prices[c]; ok {
			keys = append(keys, c)
		}
	}
	var rest []string
	for k := range prices {
		if !variant.IsValidCarat(k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// ComparablePrice is the sort key for price ordering: the minimum (or
// maximum) amount across all per-carat price entries, falling back to
// the legacy price when the map is empty.
func ComparablePrice(prices map[string]string, legacyPrice string, max bool) decimal.Decimal {
	if len(prices) > 0 {
		var best decimal.Decimal
		first := true
		for _, p := range prices {
			amt := ExtractAmount(p)
			if first || (max && amt.GreaterThan(best)) || (!max && amt.LessThan(best)) {
				best = amt
				first = false
			}
		}
		return best
	}
	return ExtractAmount(legacyPrice)
}

// FormatAmount renders an amount the way every storefront surface
// prints it.
func FormatAmount(amt decimal.Decimal) string {
	return money.FormatMoneyDecimal(amt)
}

// Display is the user-facing price string for the quote.
func (q Quote) Display() string {
	if !q.Available {
		return ContactForPrice
	}
	return FormatAmount(q.Discounted)
}

// DisplayOriginal is the pre-discount price string, struck through in
// the UI when a discount applies.
func (q Quote) DisplayOriginal() string {
	if !q.Available {
		return ContactForPrice
	}
	return FormatAmount(q.Original)
}
