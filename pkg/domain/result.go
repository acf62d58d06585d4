package domain

// ScoringResult is the outcome of scoring one survey submission. It is built
// fresh per submission and never persisted.
type ScoringResult struct {
	// CategoryCounts holds yes answers per category, all six present.
	CategoryCounts CategoryTally `json:"category_counts"`
	// TwoDigitCodes are all tied top two-letter codes, sorted.
	TwoDigitCodes []HollandCode `json:"two_digit_codes"`
	// ThreeDigitCodes are all tied top three-letter codes, sorted.
	ThreeDigitCodes []HollandCode `json:"three_digit_codes"`
	// PrimaryCode is the first category of the highest tier.
	PrimaryCode Category `json:"primary_code"`
	// PersonalityType is the profile of TwoDigitCodes[0]; zero on lookup miss.
	PersonalityType PersonalityProfile `json:"personality_type"`
	// RecommendedIndustries are matched insights deduplicated by name.
	RecommendedIndustries []IndustryInsight `json:"recommended_industries"`
	// RIASECScores holds each count relative to the highest count (0.0 to 1.0).
	RIASECScores map[Category]float64 `json:"riasec_scores"`
}
