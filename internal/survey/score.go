package survey

import (
	"ontrack/pkg/domain"
	"strings"
)

// Score tallies yes answers per category. answers is aligned with questions by
// index: missing trailing answers count as unanswered and surplus answers are
// ignored. Questions with an unknown category are skipped.
func Score(answers []string, questions []domain.Question) domain.CategoryTally {
	tally := domain.NewCategoryTally()

	n := min(len(answers), len(questions))
	for i := range n {
		if !strings.EqualFold(strings.TrimSpace(answers[i]), domain.AnswerYes) {
			continue
		}
		if c := questions[i].Category; c.Valid() {
			tally[c]++
		}
	}

	return tally
}
