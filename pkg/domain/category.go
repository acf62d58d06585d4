package domain

import "strings"

// Category is one of the six RIASEC (Holland) interest categories.
type Category string

const (
	// CategoryRealistic groups practical, hands-on interests.
	CategoryRealistic Category = "R"
	// CategoryInvestigative groups analytical, research oriented interests.
	CategoryInvestigative Category = "I"
	// CategoryArtistic groups creative and expressive interests.
	CategoryArtistic Category = "A"
	// CategorySocial groups helping and teaching interests.
	CategorySocial Category = "S"
	// CategoryEnterprising groups leading and persuading interests.
	CategoryEnterprising Category = "E"
	// CategoryConventional groups organising and data oriented interests.
	CategoryConventional Category = "C"
)

// Categories lists every category in canonical RIASEC order. Code generation
// and presentation iterate in this order so results are deterministic.
var Categories = []Category{ //nolint: gochecknoglobals
	CategoryRealistic,
	CategoryInvestigative,
	CategoryArtistic,
	CategorySocial,
	CategoryEnterprising,
	CategoryConventional,
}

// Valid reports whether c is one of the six RIASEC categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRealistic, CategoryInvestigative, CategoryArtistic,
		CategorySocial, CategoryEnterprising, CategoryConventional:
		return true
	default:
		return false
	}
}

// ParseCategory normalizes raw (trimmed, upper-cased) and reports whether the
// result is a valid category. The normalized value is returned either way.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))

	return c, c.Valid()
}

// CategoryTally maps every category to the number of yes answers it received.
type CategoryTally map[Category]int

// NewCategoryTally returns a tally with all six categories set to zero.
func NewCategoryTally() CategoryTally {
	t := make(CategoryTally, len(Categories))
	for _, c := range Categories {
		t[c] = 0
	}

	return t
}

// Max returns the highest count in the tally, or 0 for an empty tally.
func (t CategoryTally) Max() int {
	m := 0
	for _, c := range Categories {
		if t[c] > m {
			m = t[c]
		}
	}

	return m
}

// Total returns the sum of all counts.
func (t CategoryTally) Total() int {
	sum := 0
	for _, c := range Categories {
		sum += t[c]
	}

	return sum
}
