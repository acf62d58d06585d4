package survey

import (
	"context"
	"ontrack/pkg/domain"
	"ontrack/pkg/logger"
	"ontrack/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "ontrack/internal/survey"

// survey is the concrete implementation of the Service interface. It scores
// submissions against an immutable reference snapshot, so it is safe for
// concurrent use without locking.
type survey struct {
	ref    Reference
	tracer trace.Tracer
}

// Questions returns the question bank in survey order.
func (s survey) Questions() []domain.Question {
	return s.ref.Questions()
}

// ProcessSubmission scores the answers, generates the Holland codes and joins
// them with the reference data. It never fails: malformed answers and lookup
// misses degrade into empty values.
func (s survey) ProcessSubmission(ctx context.Context, answers []string) domain.ScoringResult {
	ctx, span := s.tracer.Start(ctx, "survey.ProcessSubmission",
		trace.WithAttributes(attribute.Int("survey.answers", len(answers))))
	defer span.End()

	start := time.Now()

	questions := s.ref.Questions()
	if len(answers) != len(questions) {
		logger.Debug(ctx, "answer count does not match question bank",
			zap.Int("answers", len(answers)),
			zap.Int("questions", len(questions)))
	}

	tally := Score(answers, questions)
	generated := GenerateCodes(tally)
	result := Assemble(tally, generated.TwoDigit, generated.ThreeDigit, s.ref)

	profileLabel := metrics.ProfileFound
	if result.PersonalityType.IsZero() {
		profileLabel = metrics.ProfileMissing
		logger.Debug(ctx, "no personality profile for code",
			zap.String("code", string(generated.TwoDigit[0])))
	}
	metrics.SubmissionsTotal.WithLabelValues(profileLabel).Inc()
	metrics.RecommendedIndustries.Observe(float64(len(result.RecommendedIndustries)))
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	span.SetAttributes(
		attribute.String("survey.primary_code", string(result.PrimaryCode)),
		attribute.String("survey.two_digit_code", string(generated.TwoDigit[0])),
		attribute.Int("survey.industries", len(result.RecommendedIndustries)),
	)

	return result
}

// New creates a new Service backed by the provided reference data.
func New(ref Reference) Service {
	return &survey{
		ref:    ref,
		tracer: otel.Tracer(tracerName),
	}
}
