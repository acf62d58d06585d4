package survey

import (
	"context"
	"ontrack/pkg/domain"
)

//go:generate mockgen -package mocksurvey -source=interface.go -destination=mock/mocksurvey.go *
type Service interface {
	Questions() []domain.Question
	ProcessSubmission(ctx context.Context, answers []string) domain.ScoringResult
}

// Reference is the read-only view of the reference data the assembler joins
// generated codes against.
type Reference interface {
	Questions() []domain.Question
	LookupProfile(code domain.HollandCode) (domain.PersonalityProfile, bool)
	LookupIndustries(code domain.HollandCode) []domain.IndustryInsight
}
