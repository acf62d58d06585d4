package v1handler

import (
	"ontrack/pkg/domain"
	"strconv"

	"github.com/go-faster/jx"
)

// Fallbacks used when the personality profile or an industry field is missing.
const (
	DefaultPersonalityType = "Default Type"
	DefaultDescription     = "Default description"
	DefaultInterpretation  = "Default interpretation"
	DefaultEnjoyment       = "No enjoyment data available"
	DefaultStrength        = "No strength data available"
	DefaultIconID          = "1"

	DefaultIndustryName = "Unknown Industry"
	DefaultOverview     = "No overview available"
	DefaultTrending     = "No trending information available"
	DefaultInsight      = "No insight available"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}

func encodeStrings(e *jx.Encoder, items []string) {
	e.ArrStart()
	for _, s := range items {
		e.Str(s)
	}
	e.ArrEnd()
}

func encodeCodes(e *jx.Encoder, codes []domain.HollandCode) {
	e.ArrStart()
	for _, c := range codes {
		e.Str(string(c))
	}
	e.ArrEnd()
}

func encodeQuestions(e *jx.Encoder, questions []domain.Question) {
	e.ArrStart()
	for _, q := range questions {
		e.Obj(func(e *jx.Encoder) {
			e.Field("id", func(e *jx.Encoder) { e.Int(q.ID) })
			e.Field("question_text", func(e *jx.Encoder) { e.Str(q.Text) })
			e.Field("category", func(e *jx.Encoder) { e.Str(string(q.Category)) })
			e.Field("options", func(e *jx.Encoder) { encodeStrings(e, q.Options) })
		})
	}
	e.ArrEnd()
}

// encodeCategoryMap writes one field per category in canonical order.
func encodeCategoryMap(e *jx.Encoder, value func(c domain.Category, e *jx.Encoder)) {
	e.Obj(func(e *jx.Encoder) {
		for _, c := range domain.Categories {
			e.Field(string(c), func(e *jx.Encoder) { value(c, e) })
		}
	})
}

func encodePersonality(e *jx.Encoder, result domain.ScoringResult) {
	p := result.PersonalityType

	enjoyment := p.Enjoyment
	if len(enjoyment) == 0 {
		enjoyment = []string{DefaultEnjoyment}
	}
	strengths := p.Strengths
	if len(strengths) == 0 {
		strengths = []string{DefaultStrength}
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("type", func(e *jx.Encoder) { e.Str(orDefault(p.Role, DefaultPersonalityType)) })
		e.Field("description", func(e *jx.Encoder) { e.Str(orDefault(p.WhoYouAre, DefaultDescription)) })
		e.Field("interpretation", func(e *jx.Encoder) { e.Str(orDefault(p.Interpretation, DefaultInterpretation)) })
		e.Field("enjoyment", func(e *jx.Encoder) { encodeStrings(e, enjoyment) })
		e.Field("your_strength", func(e *jx.Encoder) { encodeStrings(e, strengths) })
		e.Field("iconId", func(e *jx.Encoder) { e.Str(orDefault(p.IconID, DefaultIconID)) })
		e.Field("riasecScores", func(e *jx.Encoder) {
			encodeCategoryMap(e, func(c domain.Category, e *jx.Encoder) { e.Float64(result.RIASECScores[c]) })
		})
	})
}

func encodeIndustry(e *jx.Encoder, id int, in domain.IndustryInsight) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(strconv.Itoa(id)) })
		e.Field("name", func(e *jx.Encoder) { e.Str(orDefault(in.Industry, DefaultIndustryName)) })
		e.Field("overview", func(e *jx.Encoder) { e.Str(orDefault(in.Overview, DefaultOverview)) })
		e.Field("trending", func(e *jx.Encoder) { e.Str(orDefault(in.Trending, DefaultTrending)) })
		e.Field("insight", func(e *jx.Encoder) { e.Str(orDefault(in.Insight, DefaultInsight)) })
		if in.RequiredSkills != "" {
			e.Field("requiredSkills", func(e *jx.Encoder) { e.Str(in.RequiredSkills) })
		}
		e.Field("matchingCode", func(e *jx.Encoder) { e.Str(string(in.MatchingCode)) })
		e.Field("examplePaths", func(e *jx.Encoder) { encodeStrings(e, in.CareerPaths) })
		e.Field("education", func(e *jx.Encoder) { e.Str(in.Education) })
		e.Field("jupasInfo", func(e *jx.Encoder) {
			a := in.Admission
			if a == nil {
				e.Null()

				return
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("subject", func(e *jx.Encoder) { e.Str(a.Subject) })
				e.Field("jupasCode", func(e *jx.Encoder) { e.Str(a.ProgrammeCode) })
				e.Field("school", func(e *jx.Encoder) { e.Str(a.School) })
				e.Field("averageScore", func(e *jx.Encoder) { e.Str(a.AverageScore) })
			})
		})
	})
}

func encodeSubmission(e *jx.Encoder, result domain.ScoringResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("personality", func(e *jx.Encoder) { encodePersonality(e, result) })
		e.Field("industries", func(e *jx.Encoder) {
			e.ArrStart()
			for i, in := range result.RecommendedIndustries {
				encodeIndustry(e, i+1, in)
			}
			e.ArrEnd()
		})
		e.Field("codes", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("primary", func(e *jx.Encoder) { e.Str(string(result.PrimaryCode)) })
				e.Field("twoDigit", func(e *jx.Encoder) { encodeCodes(e, result.TwoDigitCodes) })
				e.Field("threeDigit", func(e *jx.Encoder) { encodeCodes(e, result.ThreeDigitCodes) })
				e.Field("categoryCounts", func(e *jx.Encoder) {
					encodeCategoryMap(e, func(c domain.Category, e *jx.Encoder) { e.Int(result.CategoryCounts[c]) })
				})
			})
		})
	})
}
