// Package reference holds the immutable in-memory snapshot of the survey
// reference data: the question bank, personality profiles and industry
// insights. A Store is built once at startup and shared by all requests.
package reference

import (
	"context"
	"ontrack/internal/survey"
	"ontrack/pkg/domain"
	"ontrack/pkg/logger"
	"ontrack/pkg/storage"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoQuestions is returned by Load when the source has an empty question bank.
var ErrNoQuestions = errors.New("reference data has no questions")

// Store is a read-only reference snapshot. It is safe for concurrent use.
type Store struct {
	questions  []domain.Question
	profiles   map[domain.HollandCode]domain.PersonalityProfile
	industries []domain.IndustryInsight
}

var _ survey.Reference = (*Store)(nil)

// Questions returns the question bank in survey order.
func (s *Store) Questions() []domain.Question {
	return s.questions
}

// LookupProfile returns the profile for a two-letter code.
func (s *Store) LookupProfile(code domain.HollandCode) (domain.PersonalityProfile, bool) {
	p, ok := s.profiles[code]

	return p, ok
}

// LookupIndustries returns, in source order, every insight listing code.
func (s *Store) LookupIndustries(code domain.HollandCode) []domain.IndustryInsight {
	var out []domain.IndustryInsight
	for _, insight := range s.industries {
		if insight.HasCode(code) {
			out = append(out, insight)
		}
	}

	return out
}

// Stats reports the number of rows per table, used for startup logging.
func (s *Store) Stats() (questions, profiles, industries int) {
	return len(s.questions), len(s.profiles), len(s.industries)
}

// Load reads the three reference tables from src concurrently and validates
// them into a Store.
func Load(ctx context.Context, src storage.ReferenceSource) (*Store, error) {
	var (
		questions  []domain.Question
		profiles   []domain.PersonalityProfile
		industries []domain.IndustryInsight
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		questions, err = src.Questions(gctx)

		return errors.Wrap(err, "load questions")
	})
	g.Go(func() (err error) {
		profiles, err = src.Profiles(gctx)

		return errors.Wrap(err, "load profiles")
	})
	g.Go(func() (err error) {
		industries, err = src.Industries(gctx)

		return errors.Wrap(err, "load industries")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(ctx, questions, profiles, industries)
}

// New validates the given rows and builds a Store from them.
func New(ctx context.Context,
	questions []domain.Question,
	profiles []domain.PersonalityProfile,
	industries []domain.IndustryInsight) (*Store, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	for _, q := range questions {
		if !q.Category.Valid() {
			logger.Warn(ctx, "question has an unknown category and will not be scored",
				zap.Int("id", q.ID),
				zap.String("category", string(q.Category)))
		}
	}

	byCode := make(map[domain.HollandCode]domain.PersonalityProfile, len(profiles))
	for _, p := range profiles {
		if !p.Code.Valid(2) {
			return nil, errors.Errorf("profile %q: code must be two distinct RIASEC letters", p.Code)
		}
		if _, dup := byCode[p.Code]; dup {
			return nil, errors.Errorf("profile %q: duplicate code", p.Code)
		}
		byCode[p.Code] = p
	}

	for i, insight := range industries {
		for _, code := range insight.Codes {
			if !code.Valid(3) {
				return nil, errors.Errorf("industry row %d (%q): code %q must be three distinct RIASEC letters",
					i+1, insight.Industry, code)
			}
		}
	}

	return &Store{
		questions:  questions,
		profiles:   byCode,
		industries: industries,
	}, nil
}
