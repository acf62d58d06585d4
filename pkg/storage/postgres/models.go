package postgres

import (
	"ontrack/pkg/domain"
)

type PgQuestion struct {
	ID       int    `db:"id"`
	Text     string `db:"text"`
	Category string `db:"category"`
}

func (p *PgQuestion) ToDomain() domain.Question {
	c, _ := domain.ParseCategory(p.Category)

	return domain.Question{
		ID:       p.ID,
		Text:     p.Text,
		Category: c,
		Options:  domain.AnswerOptions(),
	}
}

func (p *PgQuestion) FromDomain(q domain.Question) {
	*p = PgQuestion{
		ID:       q.ID,
		Text:     q.Text,
		Category: string(q.Category),
	}
}

// PgProfile stores list fields as "//" separated text, the same shape the
// reference sheets use.
type PgProfile struct {
	Code           string `db:"code"`
	Role           string `db:"role"`
	IconID         string `db:"icon_id"`
	WhoYouAre      string `db:"who_you_are"`
	Interpretation string `db:"interpretation"`
	Enjoyment      string `db:"enjoyment"`
	Strengths      string `db:"strengths"`
}

func (p *PgProfile) ToDomain() domain.PersonalityProfile {
	return domain.PersonalityProfile{
		Code:           domain.HollandCode(p.Code),
		Role:           p.Role,
		IconID:         p.IconID,
		WhoYouAre:      p.WhoYouAre,
		Interpretation: p.Interpretation,
		Enjoyment:      domain.SplitList(p.Enjoyment),
		Strengths:      domain.SplitList(p.Strengths),
	}
}

func (p *PgProfile) FromDomain(profile domain.PersonalityProfile) {
	*p = PgProfile{
		Code:           string(profile.Code),
		Role:           profile.Role,
		IconID:         profile.IconID,
		WhoYouAre:      profile.WhoYouAre,
		Interpretation: profile.Interpretation,
		Enjoyment:      domain.JoinList(profile.Enjoyment),
		Strengths:      domain.JoinList(profile.Strengths),
	}
}

// PgIndustry keeps the mapping codes as the comma separated list they are
// authored as; Position preserves source row order.
type PgIndustry struct {
	Position       int    `db:"position"`
	MappingCodes   string `db:"mapping_codes"`
	Industry       string `db:"industry"`
	Overview       string `db:"overview"`
	Trending       string `db:"trending"`
	Insight        string `db:"insight"`
	RequiredSkills string `db:"required_skills"`
	CareerPaths    string `db:"career_paths"`
	Education      string `db:"education"`
}

func (p *PgIndustry) ToDomain() domain.IndustryInsight {
	return domain.IndustryInsight{
		Codes:          domain.ParseCodeList(p.MappingCodes),
		Industry:       p.Industry,
		Overview:       p.Overview,
		Trending:       p.Trending,
		Insight:        p.Insight,
		RequiredSkills: p.RequiredSkills,
		CareerPaths:    domain.SplitList(p.CareerPaths),
		Education:      p.Education,
	}
}

func (p *PgIndustry) FromDomain(position int, insight domain.IndustryInsight) {
	*p = PgIndustry{
		Position:       position,
		MappingCodes:   domain.JoinCodeList(insight.Codes),
		Industry:       insight.Industry,
		Overview:       insight.Overview,
		Trending:       insight.Trending,
		Insight:        insight.Insight,
		RequiredSkills: insight.RequiredSkills,
		CareerPaths:    domain.JoinList(insight.CareerPaths),
		Education:      insight.Education,
	}
}
