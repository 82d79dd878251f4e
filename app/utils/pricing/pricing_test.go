package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain digits", "1500", "1500"},
		{"dollar sign and commas", "$2,500", "2500"},
		{"decimal point kept", "$1,299.50", "1299.5"},
		{"surrounding text", "about 900 dollars", "900"},
		{"empty string", "", "0"},
		{"no digits", "call us", "0"},
		{"two decimal points", "1.2.3", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, ExtractAmount(tt.input).Equal(want),
				"ExtractAmount(%q) = %s, want %s", tt.input, ExtractAmount(tt.input), want)
		})
	}
}

func TestExtractAmountIdempotent(t *testing.T) {
	// Extracting from an already-extracted value changes nothing.
	first := ExtractAmount("$2,500.75")
	second := ExtractAmount(first.String())
	assert.True(t, first.Equal(second))
}

func TestResolvePrefersSelectedCarat(t *testing.T) {
	prices := map[string]string{
		"1.0 Carat": "$1,000",
		"2.0 Carat": "$2,000",
	}
	q := Resolve(prices, "$500", "2.0 Carat", 0)
	assert.True(t, q.Available)
	assert.True(t, q.Original.Equal(decimal.NewFromInt(2000)))
	assert.True(t, q.Discounted.Equal(decimal.NewFromInt(2000)))
}

func TestResolveFallsBackAcrossCarats(t *testing.T) {
	// The selected carat has a zero price, so the first positive entry
	// in enumeration order wins.
	prices := map[string]string{
		"1.0 Carat": "$0",
		"1.5 Carat": "$1,800",
		"2.0 Carat": "$2,400",
	}
	q := Resolve(prices, "", "1.0 Carat", 0)
	assert.True(t, q.Available)
	assert.True(t, q.Original.Equal(decimal.NewFromInt(1800)))
}

func TestResolveFallsBackToLegacyPrice(t *testing.T) {
	q := Resolve(nil, "$950", "1.0 Carat", 0)
	assert.True(t, q.Available)
	assert.True(t, q.Original.Equal(decimal.NewFromInt(950)))
}

func TestResolveUnavailable(t *testing.T) {
	q := Resolve(map[string]string{"1.0 Carat": "TBD"}, "no price yet", "1.0 Carat", 20)
	assert.False(t, q.Available)
	assert.Equal(t, ContactForPrice, q.Display())
	assert.Equal(t, ContactForPrice, q.DisplayOriginal())
}

func TestResolveDiscountRounding(t *testing.T) {
	tests := []struct {
		name     string
		original string
		discount int
		want     string
	}{
		{"ten percent", "$1,999", 10, "1799"},
		{"half rounds away from zero", "$250", 15, "213"},
		{"full original at zero discount", "$1,234", 0, "1234"},
		{"max discount", "$1,000", 90, "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Resolve(nil, tt.original, "", tt.discount)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, q.Discounted.Equal(want),
				"Discounted = %s, want %s", q.Discounted, want)
		})
	}
}

func TestQuoteDisplay(t *testing.T) {
	q := Resolve(nil, "$1,999", "", 10)
	assert.Equal(t, "$1,799", q.Display())
	assert.Equal(t, "$1,999", q.DisplayOriginal())
}

func TestComparablePrice(t *testing.T) {
	prices := map[string]string{
		"1.0 Carat": "$1,000",
		"2.5 Carat": "$3,000",
	}
	assert.True(t, ComparablePrice(prices, "", false).Equal(decimal.NewFromInt(1000)))
	assert.True(t, ComparablePrice(prices, "", true).Equal(decimal.NewFromInt(3000)))
	assert.True(t, ComparablePrice(nil, "$750", false).Equal(decimal.NewFromInt(750)))
}
