package survey

import (
	"ontrack/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeReference struct {
	questions  []domain.Question
	profiles   map[domain.HollandCode]domain.PersonalityProfile
	industries []domain.IndustryInsight
}

func (f fakeReference) Questions() []domain.Question {
	return f.questions
}

func (f fakeReference) LookupProfile(code domain.HollandCode) (domain.PersonalityProfile, bool) {
	p, ok := f.profiles[code]

	return p, ok
}

func (f fakeReference) LookupIndustries(code domain.HollandCode) []domain.IndustryInsight {
	var out []domain.IndustryInsight
	for _, insight := range f.industries {
		if insight.HasCode(code) {
			out = append(out, insight)
		}
	}

	return out
}

func testReference() fakeReference {
	return fakeReference{
		questions: questionBank("R", "R", "R", "R", "I", "I", "A", "S"),
		profiles: map[domain.HollandCode]domain.PersonalityProfile{
			"RI": {Code: "RI", Role: "The Engineer", IconID: "7", Enjoyment: []string{"Building"}},
		},
		industries: []domain.IndustryInsight{
			{Codes: codes("RIA", "RIS"), Industry: "Engineering", CareerPaths: []string{" Engineer ", ""}},
			{Codes: codes("RIA"), Industry: "Architecture", Education: "Architecture // JS6400 // HKU // 5.2"},
			{Codes: codes("RIS"), Industry: "Engineering", Overview: "duplicate"},
			{Codes: codes("RIS"), Overview: "nameless"},
			{Codes: codes("RIA")},
		},
	}
}

func TestAssemble(t *testing.T) {
	ref := testReference()
	tally := tallyOf(map[domain.Category]int{"R": 4, "I": 2, "A": 1, "S": 1})

	result := Assemble(tally, codes("RI"), codes("RIA", "RIS"), ref)

	require.Equal(t, tally, result.CategoryCounts)
	require.Equal(t, domain.CategoryRealistic, result.PrimaryCode)
	require.Equal(t, "The Engineer", result.PersonalityType.Role)

	require.Len(t, result.RecommendedIndustries, 2)
	engineering := result.RecommendedIndustries[0]
	require.Equal(t, "Engineering", engineering.Industry)
	require.Equal(t, domain.HollandCode("RIA"), engineering.MatchingCode)
	require.Equal(t, []string{"Engineer"}, engineering.CareerPaths)
	require.Nil(t, engineering.Admission)

	architecture := result.RecommendedIndustries[1]
	require.Equal(t, "Architecture", architecture.Industry)
	require.Equal(t, &domain.AdmissionInfo{
		Subject:       "Architecture",
		ProgrammeCode: "JS6400",
		School:        "HKU",
		AverageScore:  "5.2/7.0",
	}, architecture.Admission)

	require.Equal(t, map[domain.Category]float64{
		"R": 1.0, "I": 0.5, "A": 0.25, "S": 0.25, "E": 0, "C": 0,
	}, result.RIASECScores)
}

func TestAssemble_MissingProfileAndIndustries(t *testing.T) {
	ref := testReference()
	tally := tallyOf(map[domain.Category]int{"S": 3, "E": 2, "C": 1})

	result := Assemble(tally, codes("SE"), codes("SEC"), ref)

	require.True(t, result.PersonalityType.IsZero())
	require.Empty(t, result.RecommendedIndustries)
	require.Equal(t, domain.CategorySocial, result.PrimaryCode)
}

func TestAssemble_SentinelCodes(t *testing.T) {
	result := Assemble(domain.NewCategoryTally(),
		codes(string(domain.NoTwoDigitCode)),
		codes(string(domain.NoThreeDigitCode)),
		testReference())

	require.True(t, result.PersonalityType.IsZero())
	require.Empty(t, result.RecommendedIndustries)
	for _, score := range result.RIASECScores {
		require.Zero(t, score)
	}
}

func TestDedupIndustries(t *testing.T) {
	in := []domain.IndustryInsight{
		{Industry: "Law", MatchingCode: "ESC"},
		{Industry: ""},
		{Industry: "Finance"},
		{Industry: "Law", MatchingCode: "SEC"},
	}

	got := DedupIndustries(in)
	require.Len(t, got, 2)
	require.Equal(t, domain.HollandCode("ESC"), got[0].MatchingCode)
	require.Equal(t, "Finance", got[1].Industry)
}

func TestParseAdmission(t *testing.T) {
	tests := []struct {
		name      string
		education string
		want      *domain.AdmissionInfo
	}{
		{name: "empty", education: "", want: nil},
		{name: "too few parts", education: "Law // JS1 // HKU", want: nil},
		{name: "blank parts dropped", education: "Law //  // JS1 // HKU", want: nil},
		{
			name:      "extra parts ignored",
			education: "Law//JS6602//HKU//5.5//note",
			want:      &domain.AdmissionInfo{Subject: "Law", ProgrammeCode: "JS6602", School: "HKU", AverageScore: "5.5/7.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseAdmission(tt.education))
		})
	}
}
