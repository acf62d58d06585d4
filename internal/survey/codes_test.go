package survey

import (
	"ontrack/pkg/domain"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func tallyOf(counts map[domain.Category]int) domain.CategoryTally {
	t := domain.NewCategoryTally()
	for c, n := range counts {
		t[c] = n
	}

	return t
}

func codes(raw ...string) []domain.HollandCode {
	out := make([]domain.HollandCode, len(raw))
	for i, r := range raw {
		out[i] = domain.HollandCode(r)
	}

	return out
}

func TestGenerateCodes(t *testing.T) {
	tests := []struct {
		name       string
		tally      domain.CategoryTally
		twoDigit   []domain.HollandCode
		threeDigit []domain.HollandCode
	}{
		{
			name:       "single winner per tier",
			tally:      tallyOf(map[domain.Category]int{"R": 5, "I": 3, "A": 2}),
			twoDigit:   codes("RI"),
			threeDigit: codes("RIA"),
		},
		{
			name:       "tie at the top",
			tally:      tallyOf(map[domain.Category]int{"R": 5, "I": 5, "A": 2}),
			twoDigit:   codes("IR", "RI"),
			threeDigit: codes("RIA"),
		},
		{
			name:       "three tied at the top",
			tally:      tallyOf(map[domain.Category]int{"S": 4, "E": 4, "C": 4, "R": 1}),
			twoDigit:   codes("CE", "CS", "EC", "ES", "SC", "SE"),
			threeDigit: codes("CES", "CSE", "ECS", "ESC", "SCE", "SEC"),
		},
		{
			name:       "second tier tie fills the code",
			tally:      tallyOf(map[domain.Category]int{"R": 5, "I": 3, "A": 3, "S": 3}),
			twoDigit:   codes("RA", "RI", "RS"),
			threeDigit: codes("RAI", "RAS", "RIA", "RIS", "RSA", "RSI"),
		},
		{
			name:       "third tier completes the code",
			tally:      tallyOf(map[domain.Category]int{"R": 5, "I": 4, "A": 2, "S": 2, "E": 2}),
			twoDigit:   codes("RI"),
			threeDigit: codes("RIA", "RIE", "RIS"),
		},
		{
			name:       "two tied top with tied second tier",
			tally:      tallyOf(map[domain.Category]int{"R": 5, "I": 5, "A": 3, "S": 3}),
			twoDigit:   codes("IR", "RI"),
			threeDigit: codes("RIA", "RIS"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCodes(tt.tally)
			if diff := cmp.Diff(tt.twoDigit, got.TwoDigit); diff != "" {
				t.Errorf("two digit codes mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.threeDigit, got.ThreeDigit); diff != "" {
				t.Errorf("three digit codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateCodes_AllZero(t *testing.T) {
	got := GenerateCodes(domain.NewCategoryTally())

	require.Len(t, got.TwoDigit, 30)
	require.Len(t, got.ThreeDigit, 120)
	require.Equal(t, domain.HollandCode("AC"), got.TwoDigit[0])
	require.Equal(t, domain.HollandCode("ACE"), got.ThreeDigit[0])
}

func TestGenerateCodes_Properties(t *testing.T) {
	tallies := []domain.CategoryTally{
		domain.NewCategoryTally(),
		tallyOf(map[domain.Category]int{"R": 1}),
		tallyOf(map[domain.Category]int{"R": 2, "I": 2, "A": 1, "S": 1, "E": 1}),
		tallyOf(map[domain.Category]int{"C": 7, "E": 6, "S": 6, "A": 1}),
		tallyOf(map[domain.Category]int{"R": 3, "I": 3, "A": 3, "S": 3, "E": 3, "C": 3}),
	}

	for _, tally := range tallies {
		got := GenerateCodes(tally)

		require.True(t, slices.IsSorted(got.TwoDigit))
		require.True(t, slices.IsSorted(got.ThreeDigit))
		require.Equal(t, len(got.TwoDigit), len(slices.Compact(slices.Clone(got.TwoDigit))))
		require.Equal(t, len(got.ThreeDigit), len(slices.Compact(slices.Clone(got.ThreeDigit))))

		for _, code := range got.TwoDigit {
			require.True(t, code.Valid(2), "invalid two digit code %q", code)
		}
		for _, code := range got.ThreeDigit {
			require.True(t, code.Valid(3), "invalid three digit code %q", code)
		}

		require.Equal(t, got, GenerateCodes(tally))
	}
}

func TestGenerateCodes_Sentinels(t *testing.T) {
	require.Equal(t, codes("XXX"), threeDigitCodes(Tiers{Max: []domain.Category{"R"}}))
	require.Equal(t, codes("XXX"), threeDigitCodes(Tiers{
		Max:    []domain.Category{"R"},
		Second: []domain.Category{"I"},
	}))
	require.Equal(t, codes("XX"), twoDigitCodes(Tiers{Max: []domain.Category{"R"}}))
	require.Equal(t, codes("XX"), twoDigitCodes(Tiers{}))
}

func TestRank(t *testing.T) {
	tiers := Rank(tallyOf(map[domain.Category]int{"C": 4, "R": 4, "S": 2}))

	require.Equal(t, []domain.Category{"R", "C"}, tiers.Max)
	require.Equal(t, []domain.Category{"S"}, tiers.Second)
	require.Equal(t, []domain.Category{"I", "A", "E"}, tiers.Third)
	require.Equal(t, domain.CategoryRealistic, tiers.Primary())
	require.Empty(t, Tiers{}.Primary())
}

func TestPermutations(t *testing.T) {
	got := permutations([]domain.Category{"R", "I", "A"}, 2)
	want := [][]domain.Category{{"R", "I"}, {"R", "A"}, {"I", "R"}, {"I", "A"}, {"A", "R"}, {"A", "I"}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("permutations mismatch (-want +got):\n%s", diff)
	}
	require.Nil(t, permutations([]domain.Category{"R"}, 2))
	require.Nil(t, permutations([]domain.Category{"R"}, 0))
}
