package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllCombinations(t *testing.T) {
	combos := AllCombinations()
	assert.Len(t, combos, 64)

	seen := make(map[string]struct{}, len(combos))
	for _, c := range combos {
		seen[c.Key()] = struct{}{}
	}
	assert.Len(t, seen, 64, "combination keys must be unique")
}

func TestMissingCombinations(t *testing.T) {
	combos := AllCombinations()
	existing := []Entry{
		{ID: "a", Combination: combos[0]},
		{ID: "b", Combination: combos[1]},
		{ID: "dup", Combination: combos[0]},
	}

	missing := MissingCombinations(existing)
	assert.Len(t, missing, 62)

	covered, total := Progress(existing)
	assert.Equal(t, 2, covered)
	assert.Equal(t, 64, total)
	assert.Equal(t, total, covered+len(missing))
}

func TestProgressEmptyCatalog(t *testing.T) {
	covered, total := Progress(nil)
	assert.Equal(t, 0, covered)
	assert.Equal(t, 64, total)
}

func TestIsDuplicateCombination(t *testing.T) {
	combo := Combination{
		Shape:  "Round Brilliant Cut",
		Design: "Halo Setting",
		Metal:  "Platinum (950)",
	}
	existing := []Entry{{ID: "p1", Combination: combo}}

	assert.True(t, IsDuplicateCombination(existing, combo, ""), "new record with taken triple")
	assert.False(t, IsDuplicateCombination(existing, combo, "p1"), "editing the owner is not a duplicate")
	assert.True(t, IsDuplicateCombination(existing, combo, "p2"), "editing another record into a taken triple")

	other := combo
	other.Metal = "Rose Gold (14K/18K)"
	assert.False(t, IsDuplicateCombination(existing, other, ""))
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, IsValidShape("Princess Cut (Square)"))
	assert.False(t, IsValidShape("Marquise"))
	assert.True(t, IsValidDesign("Three Stone (Trinity)"))
	assert.False(t, IsValidDesign("Tension"))
	assert.True(t, IsValidMetal("Yellow Gold (14K/18K)"))
	assert.False(t, IsValidMetal("Titanium"))
	assert.True(t, IsValidCarat("2.5 Carat"))
	assert.False(t, IsValidCarat("3.0 Carat"))
}
