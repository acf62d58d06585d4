package sheet

import (
	"fmt"
	"ontrack/pkg/domain"
	"strings"
)

type column string

const (
	colQuestion column = "question"
	colCategory column = "category"

	colCode           column = "code"
	colRole           column = "role"
	colIcon           column = "icon"
	colWhoYouAre      column = "who you are"
	colInterpretation column = "interpretation"
	colEnjoyment      column = "enjoyment"
	colStrengths      column = "strengths"

	colMapping     column = "mapping"
	colIndustry    column = "industry"
	colOverview    column = "overview"
	colTrending    column = "trending"
	colInsight     column = "insight"
	colSkills      column = "skills"
	colExampleRole column = "example role"
	colAdmission   column = "jupas"
)

// columnSpec lists the accepted headers of a logical column, already
// normalized.
type columnSpec struct {
	name     column
	aliases  []string
	required bool
}

var questionColumns = []columnSpec{ //nolint: gochecknoglobals
	{name: colQuestion, aliases: []string{"questions", "question", "questiontext"}, required: true},
	{name: colCategory, aliases: []string{"category"}, required: true},
}

var profileColumns = []columnSpec{ //nolint: gochecknoglobals
	{name: colCode, aliases: []string{"twodigitcode", "code"}, required: true},
	{name: colRole, aliases: []string{"role"}},
	{name: colIcon, aliases: []string{"iconid", "icon"}},
	{name: colWhoYouAre, aliases: []string{"whoyouare"}},
	{name: colInterpretation, aliases: []string{"howthiscombinationinterpret", "howthiscombinationinterprets"}},
	{name: colEnjoyment, aliases: []string{"whatyoumightenjoy"}},
	{name: colStrengths, aliases: []string{"yourstrength", "yourstrengths"}},
}

var industryColumns = []columnSpec{ //nolint: gochecknoglobals
	{name: colMapping, aliases: []string{"threedigital", "mappingcode", "threedigitcode"}, required: true},
	{name: colIndustry, aliases: []string{"industry"}, required: true},
	{name: colOverview, aliases: []string{"overview"}, required: true},
	{name: colTrending, aliases: []string{"trending"}, required: true},
	{name: colInsight, aliases: []string{"insight"}, required: true},
	{name: colSkills, aliases: []string{"requiredskills", "requiredskill"}, required: true},
	{name: colExampleRole, aliases: []string{"examplerole"}, required: true},
	{name: colAdmission, aliases: []string{"jupas"}, required: true},
}

// table is one sheet with its headers resolved to logical columns.
type table struct {
	rows    []row
	headers map[column]string
}

// MissingColumnsError is returned when a sheet lacks required column groups.
type MissingColumnsError struct {
	Sheet   string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("sheet %q is missing required columns: %s", e.Sheet, strings.Join(e.Columns, ", "))
}

func newTable(sheets map[string][]row, name string, specs []columnSpec) (*table, error) {
	rows, ok := sheets[name]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found in export", name)
	}

	byNorm := make(map[string]string)
	for _, r := range rows {
		for header := range r {
			n := normalize(header)
			if _, seen := byNorm[n]; !seen {
				byNorm[n] = header
			}
		}
	}

	t := &table{rows: rows, headers: make(map[column]string, len(specs))}
	var missing []string
	for _, spec := range specs {
		for _, alias := range spec.aliases {
			if header, ok := byNorm[alias]; ok {
				t.headers[spec.name] = header

				break
			}
		}
		if _, found := t.headers[spec.name]; !found && spec.required && len(rows) > 0 {
			missing = append(missing, string(spec.name))
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Sheet: name, Columns: missing}
	}

	return t, nil
}

func (t *table) value(r row, c column) any {
	header, ok := t.headers[c]
	if !ok {
		return nil
	}

	return r[header]
}

func (t *table) str(r row, c column) string {
	return cell(t.value(r, c))
}

func (t *table) list(r row, c column) []string {
	return domain.ParseList(t.str(r, c))
}

// codes reads a code list cell, either comma separated text or a YAML list.
func (t *table) codes(r row, c column) []domain.HollandCode {
	v := t.value(r, c)
	if items, ok := v.([]any); ok {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, cell(item))
		}

		return domain.ParseCodeList(strings.Join(parts, ","))
	}

	return domain.ParseCodeList(cell(v))
}
