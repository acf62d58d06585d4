package survey

import (
	"ontrack/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func questionBank(cats ...domain.Category) []domain.Question {
	out := make([]domain.Question, len(cats))
	for i, c := range cats {
		out[i] = domain.Question{ID: i + 1, Category: c, Options: domain.AnswerOptions()}
	}

	return out
}

func TestScore(t *testing.T) {
	questions := questionBank("R", "R", "I", "A", "S", "E", "C", "C")

	tests := []struct {
		name    string
		answers []string
		want    map[domain.Category]int
	}{
		{
			name:    "all yes",
			answers: []string{"Yes", "Yes", "Yes", "Yes", "Yes", "Yes", "Yes", "Yes"},
			want:    map[domain.Category]int{"R": 2, "I": 1, "A": 1, "S": 1, "E": 1, "C": 2},
		},
		{
			name:    "case and whitespace insensitive",
			answers: []string{" yes", "YES ", "No", "no", "maybe", "", "Yes", "nope"},
			want:    map[domain.Category]int{"R": 2, "C": 1},
		},
		{
			name:    "short answer list",
			answers: []string{"Yes"},
			want:    map[domain.Category]int{"R": 1},
		},
		{
			name:    "surplus answers ignored",
			answers: []string{"No", "No", "No", "No", "No", "No", "No", "Yes", "Yes", "Yes"},
			want:    map[domain.Category]int{"C": 1},
		},
		{
			name:    "no answers",
			answers: nil,
			want:    map[domain.Category]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tallyOf(tt.want), Score(tt.answers, questions))
		})
	}
}

func TestScore_SkipsUnknownCategory(t *testing.T) {
	questions := questionBank("R", "X", "")

	tally := Score([]string{"Yes", "Yes", "Yes"}, questions)
	require.Equal(t, tallyOf(map[domain.Category]int{"R": 1}), tally)
	require.Len(t, tally, len(domain.Categories))
}
