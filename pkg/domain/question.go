package domain

const (
	// AnswerYes is the affirmative answer option.
	AnswerYes = "Yes"
	// AnswerNo is the negative answer option.
	AnswerNo = "No"
)

// Question is a single yes/no survey item. ID is the 1-based position in the
// question bank and Category is the RIASEC category a yes answer counts for.
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"question_text"`
	Category Category `json:"category"`
	Options  []string `json:"options"`
}

// AnswerOptions returns the fixed option list offered for every question.
func AnswerOptions() []string {
	return []string{AnswerYes, AnswerNo}
}
