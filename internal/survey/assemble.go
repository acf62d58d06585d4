package survey

import "ontrack/pkg/domain"

const (
	// admissionParts is the minimum number of parts of an education cell
	// required to build an AdmissionInfo.
	admissionParts = 4
	// admissionScoreScale is appended to the average entry score.
	admissionScoreScale = "/7.0"
)

// Assemble joins the generated codes against the reference data and produces
// the final scoring result. Only the first two-letter code is used for the
// personality lookup, even when several codes tie. Lookup misses leave the
// profile empty and never fail the submission.
func Assemble(tally domain.CategoryTally,
	twoDigit []domain.HollandCode,
	threeDigit []domain.HollandCode,
	ref Reference) domain.ScoringResult {
	var profile domain.PersonalityProfile
	if len(twoDigit) > 0 {
		profile, _ = ref.LookupProfile(twoDigit[0])
	}

	var matched []domain.IndustryInsight
	for _, code := range threeDigit {
		for _, insight := range ref.LookupIndustries(code) {
			if insight.IsEmpty() {
				continue
			}
			insight.MatchingCode = code
			matched = append(matched, insight)
		}
	}

	industries := DedupIndustries(matched)
	for i := range industries {
		industries[i].CareerPaths = domain.ParseList(industries[i].CareerPaths)
		industries[i].Admission = ParseAdmission(industries[i].Education)
	}

	return domain.ScoringResult{
		CategoryCounts:        tally,
		TwoDigitCodes:         twoDigit,
		ThreeDigitCodes:       threeDigit,
		PrimaryCode:           Rank(tally).Primary(),
		PersonalityType:       profile,
		RecommendedIndustries: industries,
		RIASECScores:          RIASECScores(tally),
	}
}

// DedupIndustries keeps the first insight per industry name, preserving order.
// Insights without a name cannot be told apart and are dropped.
func DedupIndustries(in []domain.IndustryInsight) []domain.IndustryInsight {
	seen := make(map[string]struct{}, len(in))
	out := make([]domain.IndustryInsight, 0, len(in))
	for _, insight := range in {
		if insight.Industry == "" {
			continue
		}
		if _, ok := seen[insight.Industry]; ok {
			continue
		}
		seen[insight.Industry] = struct{}{}
		out = append(out, insight)
	}

	return out
}

// RIASECScores divides every count by the highest count. The divisor is
// clamped to 1 so an all-zero tally yields zero scores.
func RIASECScores(tally domain.CategoryTally) map[domain.Category]float64 {
	maxCount := max(tally.Max(), 1)

	scores := make(map[domain.Category]float64, len(domain.Categories))
	for _, c := range domain.Categories {
		scores[c] = float64(tally[c]) / float64(maxCount)
	}

	return scores
}

// ParseAdmission splits an education cell of the form
// "subject // code // school // score" into an AdmissionInfo. It returns nil
// when fewer than four non-empty parts are present.
func ParseAdmission(education string) *domain.AdmissionInfo {
	parts := domain.SplitList(education)
	if len(parts) < admissionParts {
		return nil
	}

	return &domain.AdmissionInfo{
		Subject:       parts[0],
		ProgrammeCode: parts[1],
		School:        parts[2],
		AverageScore:  parts[3] + admissionScoreScale,
	}
}
