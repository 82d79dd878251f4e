package variant

// The fixed option sets a standard ring can be configured from. A
// combination of shape, design and metal identifies one catalog entry;
// carat selection sits on top of that identity.
var (
	DiamondShapes = []string{
		"Round Brilliant Cut",
		"Princess Cut (Square)",
		"Emerald Cut (Rectangular)",
		"Oval Brilliant Cut",
	}
	RingDesigns = []string{
		"Classic Solitaire",
		"Halo Setting",
		"Vintage/Antique Style",
		"Three Stone (Trinity)",
	}
	RingMetals = []string{
		"White Gold (14K/18K)",
		"Yellow Gold (14K/18K)",
		"Rose Gold (14K/18K)",
		"Platinum (950)",
	}
	Carats = []string{"1.0 Carat", "1.5 Carat", "2.0 Carat", "2.5 Carat"}
)

// keySeparator never occurs in any enumerated value.
const keySeparator = "|"

type Combination struct {
	Shape  string `json:"shape"`
	Design string `json:"design"`
	Metal  string `json:"metal"`
}

func (c Combination) Key() string {
	return c.Shape + keySeparator + c.Design + keySeparator + c.Metal
}

// Entry ties a catalog record's ID to its combination, so duplicate
// checks can exempt the record currently being edited.
type Entry struct {
	ID string
	Combination
}

// AllCombinations returns the full shape x design x metal space,
// 64 combinations in enumeration order. Carat is excluded.
func AllCombinations() []Combination {
	combos := make([]Combination, 0, len(DiamondShapes)*len(RingDesigns)*len(RingMetals))
	for _, shape := range DiamondShapes {
		for _, design := range RingDesigns {
			for _, metal := range RingMetals {
				combos = append(combos, Combination{Shape: shape, Design: design, Metal: metal})
			}
		}
	}
	return combos
}

// MissingCombinations returns the combinations not covered by any
// existing entry. Recomputed fresh on every call; duplicates among the
// entries are harmless.
func MissingCombinations(existing []Entry) []Combination {
	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[e.Key()] = struct{}{}
	}
	var missing []Combination
	for _, c := range AllCombinations() {
		if _, ok := seen[c.Key()]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// Progress reports how many of the 64 combinations are covered.
func Progress(existing []Entry) (covered, total int) {
	total = len(AllCombinations())
	return total - len(MissingCombinations(existing)), total
}

// IsDuplicateCombination reports whether another record already owns the
// candidate triple. When editing, the record's own ID is exempt.
func IsDuplicateCombination(existing []Entry, candidate Combination, editingID string) bool {
	for _, e := range existing {
		if e.Shape == candidate.Shape && e.Design == candidate.Design && e.Metal == candidate.Metal {
			if editingID == "" || e.ID != editingID {
				return true
			}
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func IsValidShape(s string) bool  { return contains(DiamondShapes, s) }
func IsValidDesign(s string) bool { return contains(RingDesigns, s) }
func IsValidMetal(s string) bool  { return contains(RingMetals, s) }
func IsValidCarat(s string) bool  { return contains(Carats, s) }
