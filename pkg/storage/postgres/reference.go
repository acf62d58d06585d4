package postgres

import (
	"context"
	"fmt"
	"ontrack/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	questionsTable  = "questions"
	profilesTable   = "personality_profiles"
	industriesTable = "industry_insights"
)

func (p *PgSQL) Questions(ctx context.Context) ([]domain.Question, error) {
	var rows []PgQuestion
	if err := p.Builder.From(questionsTable).
		Order(goqu.I("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get questions from pg: %w", err)
	}

	out := make([]domain.Question, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) Profiles(ctx context.Context) ([]domain.PersonalityProfile, error) {
	var rows []PgProfile
	if err := p.Builder.From(profilesTable).
		Order(goqu.I("code").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get profiles from pg: %w", err)
	}

	out := make([]domain.PersonalityProfile, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) Industries(ctx context.Context) ([]domain.IndustryInsight, error) {
	var rows []PgIndustry
	if err := p.Builder.From(industriesTable).
		Order(goqu.I("position").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get industries from pg: %w", err)
	}

	out := make([]domain.IndustryInsight, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

// ReplaceQuestions deletes every question and inserts the given ones.
func (p *PgSQL) ReplaceQuestions(ctx context.Context, questions []domain.Question) error {
	rows := make([]PgQuestion, len(questions))
	for i, q := range questions {
		rows[i].FromDomain(q)
	}

	return p.replace(ctx, questionsTable, rows, len(rows))
}

// ReplaceProfiles deletes every profile and inserts the given ones.
func (p *PgSQL) ReplaceProfiles(ctx context.Context, profiles []domain.PersonalityProfile) error {
	rows := make([]PgProfile, len(profiles))
	for i, profile := range profiles {
		rows[i].FromDomain(profile)
	}

	return p.replace(ctx, profilesTable, rows, len(rows))
}

// ReplaceIndustries deletes every industry insight and inserts the given
// ones, numbering them by slice position.
func (p *PgSQL) ReplaceIndustries(ctx context.Context, industries []domain.IndustryInsight) error {
	rows := make([]PgIndustry, len(industries))
	for i, insight := range industries {
		rows[i].FromDomain(i+1, insight)
	}

	return p.replace(ctx, industriesTable, rows, len(rows))
}

func (p *PgSQL) replace(ctx context.Context, table string, rows any, n int) error {
	if _, err := p.Builder.Delete(table).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear %s in pg: %w", table, err)
	}
	if n == 0 {
		return nil
	}

	if _, err := p.Builder.Insert(table).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert into %s in pg: %w", table, err)
	}

	return nil
}
