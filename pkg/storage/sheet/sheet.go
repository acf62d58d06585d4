// Package sheet reads the survey reference data from a workbook export. The
// export is a YAML (or JSON) document with one entry per sheet, each holding
// a list of rows keyed by column header:
//
//	Question pool:
//	  - questions: '- question: "I like to build things"'
//	    category: R
//	Two digit:
//	  - Two digit code: RI
//	    Role: The Engineer
//	Industry Insight:
//	  - Three digital: RIA, RIS
//	    Industry: Engineering
//
// Column headers are matched through alias lists after normalisation, so
// "Two-digit code" and "Two Digit Code" select the same column.
package sheet

import (
	"context"
	"fmt"
	"ontrack/pkg/domain"
	"ontrack/pkg/storage"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	QuestionSheet = "Question pool"
	ProfileSheet  = "Two digit"
	IndustrySheet = "Industry Insight"

	questionPrefix = "- question:"
)

type row map[string]any

// Workbook is a parsed reference export. It implements
// storage.ReferenceSource.
type Workbook struct {
	questions  []domain.Question
	profiles   []domain.PersonalityProfile
	industries []domain.IndustryInsight
}

var _ storage.ReferenceSource = (*Workbook)(nil)

// Open reads and parses the export at path.
func Open(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet export: %w", err)
	}

	return Parse(data)
}

// Parse parses a reference export.
func Parse(data []byte) (*Workbook, error) {
	var sheets map[string][]row
	if err := yaml.Unmarshal(data, &sheets); err != nil {
		return nil, fmt.Errorf("could not decode sheet export: %w", err)
	}

	var (
		wb  Workbook
		err error
	)
	if wb.questions, err = parseQuestions(sheets); err != nil {
		return nil, err
	}
	if wb.profiles, err = parseProfiles(sheets); err != nil {
		return nil, err
	}
	if wb.industries, err = parseIndustries(sheets); err != nil {
		return nil, err
	}

	return &wb, nil
}

func (w *Workbook) Questions(_ context.Context) ([]domain.Question, error) {
	return slices.Clone(w.questions), nil
}

func (w *Workbook) Profiles(_ context.Context) ([]domain.PersonalityProfile, error) {
	return slices.Clone(w.profiles), nil
}

func (w *Workbook) Industries(_ context.Context) ([]domain.IndustryInsight, error) {
	return slices.Clone(w.industries), nil
}

func parseQuestions(sheets map[string][]row) ([]domain.Question, error) {
	t, err := newTable(sheets, QuestionSheet, questionColumns)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Question, 0, len(t.rows))
	for i, r := range t.rows {
		text := questionText(t.str(r, colQuestion))
		category := t.str(r, colCategory)
		if text == "" || category == "" {
			continue
		}

		c, _ := domain.ParseCategory(category)
		out = append(out, domain.Question{
			ID:       i + 1,
			Text:     text,
			Category: c,
			Options:  domain.AnswerOptions(),
		})
	}

	return out, nil
}

func parseProfiles(sheets map[string][]row) ([]domain.PersonalityProfile, error) {
	t, err := newTable(sheets, ProfileSheet, profileColumns)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PersonalityProfile, 0, len(t.rows))
	for _, r := range t.rows {
		code := strings.ToUpper(t.str(r, colCode))
		if code == "" {
			continue
		}

		out = append(out, domain.PersonalityProfile{
			Code:           domain.HollandCode(code),
			Role:           t.str(r, colRole),
			IconID:         t.str(r, colIcon),
			WhoYouAre:      t.str(r, colWhoYouAre),
			Interpretation: t.str(r, colInterpretation),
			Enjoyment:      t.list(r, colEnjoyment),
			Strengths:      t.list(r, colStrengths),
		})
	}

	return out, nil
}

func parseIndustries(sheets map[string][]row) ([]domain.IndustryInsight, error) {
	t, err := newTable(sheets, IndustrySheet, industryColumns)
	if err != nil {
		return nil, err
	}

	out := make([]domain.IndustryInsight, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, domain.IndustryInsight{
			Codes:          t.codes(r, colMapping),
			Industry:       t.str(r, colIndustry),
			Overview:       t.str(r, colOverview),
			Trending:       t.str(r, colTrending),
			Insight:        t.str(r, colInsight),
			RequiredSkills: t.str(r, colSkills),
			CareerPaths:    t.list(r, colExampleRole),
			Education:      t.str(r, colAdmission),
		})
	}

	return out, nil
}

// questionText strips the "- question:" prefix some exports carry and any
// surrounding quotes.
func questionText(raw string) string {
	if _, after, found := strings.Cut(raw, questionPrefix); found {
		raw = after
	}

	return strings.Trim(strings.TrimSpace(raw), `"`)
}

// normalize lower-cases a header and drops everything but letters and digits.
func normalize(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// cell renders a scalar cell as trimmed text. Lists are joined with the list
// separator so they round-trip through domain.SplitList.
func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := cell(item); s != "" {
				parts = append(parts, s)
			}
		}

		return domain.JoinList(parts)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
