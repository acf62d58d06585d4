package main

import (
	"errors"
	"fmt"
	"io"
	"ontrack/internal/config"
	"ontrack/internal/survey"
	"ontrack/pkg/domain"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// takeCommand runs the survey in the terminal and prints the result.
func takeCommand(cfg *config.Config) *cobra.Command {
	var answers string

	cmd := &cobra.Command{
		Use:   "take",
		Short: "Takes the survey in the terminal",
		Long: "Takes the survey interactively, or scores a comma separated answer list " +
			"passed with --answers (e.g. --answers Yes,No,Yes).",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := survey.New(loadReference(ctx, cfg))

			var list []string
			if cmd.Flags().Changed("answers") {
				list = splitAnswers(answers)
			} else {
				var err error
				if list, err = askQuestions(svc.Questions()); err != nil {
					return err
				}
			}

			printResult(cmd.OutOrStdout(), svc.ProcessSubmission(ctx, list))

			return nil
		},
	}

	cmd.Flags().StringVarP(&answers, "answers", "a", "", "Comma separated answers, one per question")

	return cmd
}

func splitAnswers(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func askQuestions(questions []domain.Question) ([]string, error) {
	answers := make([]string, 0, len(questions))
	for i, q := range questions {
		prompt := promptui.Select{
			Label:    fmt.Sprintf("[%d/%d] %s", i+1, len(questions), q.Text),
			Items:    q.Options,
			HideHelp: true,
		}
		_, answer, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil, errors.New("survey aborted")
		}
		if err != nil {
			return nil, fmt.Errorf("could not read answer: %w", err)
		}
		answers = append(answers, answer)
	}

	return answers, nil
}

func joinCodes(codes []domain.HollandCode) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}

	return strings.Join(parts, ", ")
}

func printResult(w io.Writer, r domain.ScoringResult) {
	p := r.PersonalityType

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Primary category: %s\n", r.PrimaryCode)
	fmt.Fprintf(w, "Two-letter codes: %s\n", joinCodes(r.TwoDigitCodes))
	fmt.Fprintf(w, "Three-letter codes: %s\n", joinCodes(r.ThreeDigitCodes))
	fmt.Fprint(w, "Scores:")
	for _, c := range domain.Categories {
		fmt.Fprintf(w, " %s=%d (%.2f)", c, r.CategoryCounts[c], r.RIASECScores[c])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w)
	if p.IsZero() {
		fmt.Fprintln(w, "No personality profile matches your code.")
	} else {
		fmt.Fprintf(w, "You are: %s\n", p.Role)
		if p.WhoYouAre != "" {
			fmt.Fprintf(w, "  %s\n", p.WhoYouAre)
		}
		if len(p.Strengths) > 0 {
			fmt.Fprintf(w, "  Strengths: %s\n", strings.Join(p.Strengths, "; "))
		}
	}

	fmt.Fprintln(w)
	if len(r.RecommendedIndustries) == 0 {
		fmt.Fprintln(w, "No recommended industries.")

		return
	}
	fmt.Fprintln(w, "Recommended industries:")
	for i, in := range r.RecommendedIndustries {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, in.Industry, in.MatchingCode)
		if len(in.CareerPaths) > 0 {
			fmt.Fprintf(w, "   Example roles: %s\n", strings.Join(in.CareerPaths, ", "))
		}
		if a := in.Admission; a != nil {
			fmt.Fprintf(w, "   Study: %s, %s at %s (average %s)\n", a.Subject, a.ProgrammeCode, a.School, a.AverageScore)
		}
	}
}
