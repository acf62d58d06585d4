package survey

import (
	"ontrack/pkg/domain"
	"slices"
)

// Codes groups the two- and three-letter codes generated for a tally.
type Codes struct {
	TwoDigit   []domain.HollandCode
	ThreeDigit []domain.HollandCode
}

// Tiers holds the categories sharing the highest, second highest and third
// highest counts of a tally. Any tier may be empty.
type Tiers struct {
	Max    []domain.Category
	Second []domain.Category
	Third  []domain.Category
}

// Rank splits the tally into tiers by descending count. Categories inside a
// tier keep canonical RIASEC order.
func Rank(tally domain.CategoryTally) Tiers {
	var counts []int
	for _, c := range domain.Categories {
		if !slices.Contains(counts, tally[c]) {
			counts = append(counts, tally[c])
		}
	}
	slices.Sort(counts)
	slices.Reverse(counts)

	tier := func(i int) []domain.Category {
		if i >= len(counts) {
			return nil
		}

		var out []domain.Category
		for _, c := range domain.Categories {
			if tally[c] == counts[i] {
				out = append(out, c)
			}
		}

		return out
	}

	return Tiers{Max: tier(0), Second: tier(1), Third: tier(2)}
}

// Primary returns the first category of the highest tier.
func (t Tiers) Primary() domain.Category {
	if len(t.Max) == 0 {
		return ""
	}

	return t.Max[0]
}

// GenerateCodes builds every two- and three-letter code that represents the
// tied top categories of the tally. Ties are never broken arbitrarily: each
// tied arrangement is returned, sorted and deduplicated. When the tally cannot
// fill a code the matching sentinel is returned instead.
func GenerateCodes(tally domain.CategoryTally) Codes {
	tiers := Rank(tally)

	return Codes{
		TwoDigit:   twoDigitCodes(tiers),
		ThreeDigit: threeDigitCodes(tiers),
	}
}

func threeDigitCodes(t Tiers) []domain.HollandCode {
	const size = 3

	var codes []domain.HollandCode
	if len(t.Max) >= size {
		for _, p := range permutations(t.Max, size) {
			codes = append(codes, domain.NewHollandCode(p...))
		}

		return finalize(codes, domain.NoThreeDigitCode)
	}

	remaining := size - len(t.Max)
	if len(t.Second) >= remaining {
		for _, p := range permutations(t.Second, remaining) {
			codes = append(codes, domain.NewHollandCode(concat(t.Max, p)...))
		}

		return finalize(codes, domain.NoThreeDigitCode)
	}

	// all of the second tier is used; the third tier fills what is left
	needed := remaining - len(t.Second)
	if len(t.Third) > 0 {
		for _, p := range permutations(t.Third, needed) {
			codes = append(codes, domain.NewHollandCode(concat(t.Max, t.Second, p)...))
		}
	}

	return finalize(codes, domain.NoThreeDigitCode)
}

func twoDigitCodes(t Tiers) []domain.HollandCode {
	const size = 2

	var codes []domain.HollandCode
	switch {
	case len(t.Max) >= size:
		for _, p := range permutations(t.Max, size) {
			codes = append(codes, domain.NewHollandCode(p...))
		}
	case len(t.Max) == 1 && len(t.Second) > 0:
		for _, s := range t.Second {
			codes = append(codes, domain.NewHollandCode(t.Max[0], s))
		}
	}

	return finalize(codes, domain.NoTwoDigitCode)
}

// finalize sorts and deduplicates codes, falling back to sentinel when empty.
func finalize(codes []domain.HollandCode, sentinel domain.HollandCode) []domain.HollandCode {
	if len(codes) == 0 {
		return []domain.HollandCode{sentinel}
	}

	slices.Sort(codes)

	return slices.Compact(codes)
}

func concat(parts ...[]domain.Category) []domain.Category {
	var out []domain.Category
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// permutations returns every ordered selection of k distinct items, in the
// order of their indices. It returns nil when k is out of range.
func permutations(items []domain.Category, k int) [][]domain.Category {
	if k <= 0 || k > len(items) {
		return nil
	}

	var (
		out  [][]domain.Category
		cur  = make([]domain.Category, 0, k)
		used = make([]bool, len(items))
	)

	var walk func()
	walk = func() {
		if len(cur) == k {
			out = append(out, slices.Clone(cur))

			return
		}
		for i, item := range items {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, item)
			walk()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	walk()

	return out
}
