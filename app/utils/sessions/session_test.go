package sessions

import (
	"testing"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRoundTrip(t *testing.T) {
	items := []models.CartItem{
		{
			ProductID: "p1",
			Name:      "Round Solitaire Ring, Platinum",
			Carat:     "1.5 Carat",
			RingMetal: "Platinum (950)",
			Price:     "$2,400",
			Image:     "/images/rings/p1.jpg",
		},
		{
			ProductID:      "s1",
			Name:           "Heirloom Edition",
			Carat:          "1.0 Carat",
			Price:          "$9,000",
			SpecialEdition: true,
		},
	}

	raw, err := EncodeCart(items)
	require.NoError(t, err)

	decoded, err := DecodeCart(raw)
	require.NoError(t, err)
	assert.Equal(t, items, decoded)
}

func TestDecodeCartRejectsGarbage(t *testing.T) {
	_, err := DecodeCart("{not json")
	assert.Error(t, err)
}

func TestEncodeCartEmpty(t *testing.T) {
	raw, err := EncodeCart(nil)
	require.NoError(t, err)

	decoded, err := DecodeCart(raw)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
