package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/util"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newQuizCmd(v *viper.Viper, deps Deps) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "quiz <skill>",
		Short: "Take a skill quiz interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.Verification(v)
			if err != nil {
				return err
			}
			result := svc.ValidateSkill(cmd.Context(), args[0], domain.UserInput{Level: domain.Level(level)}, domain.MethodQuiz)
			session, err := domain.NewQuizSession(util.NewULID(), result, time.Now())
			if err != nil {
				return fmt.Errorf("no quiz available for %s", args[0])
			}
			return runQuiz(session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", string(domain.LevelIntermediate), "quiz level: beginner, intermediate, advanced, expert")
	return cmd
}

// runQuiz asks every question on out and reads 1-based answers from in.
func runQuiz(session *domain.QuizSession, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	total := len(session.Questions())
	quiz, _ := session.Result.QuizPayload()
	fmt.Fprintf(out, "%s quiz (%s): %d questions, %d points\n", session.SkillName, quiz.Level, total, session.MaxScore())

	for session.Status != domain.QuizCompleted {
		q, ok := session.CurrentQuestion()
		if !ok {
			break
		}
		fmt.Fprintf(out, "\n[%d/%d] %s (%d points)\n", session.Index+1, total, q.Question, q.Points)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}

		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading answer: %w", err)
				}
				return fmt.Errorf("quiz aborted after %d of %d questions", len(session.Answers), total)
			}
			choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil || choice < 1 || choice > len(q.Options) {
				fmt.Fprintf(out, "Please enter a number between 1 and %d\n", len(q.Options))
				continue
			}
			if err := session.Submit(choice-1, time.Now()); err != nil {
				return err
			}
			break
		}
	}

	fmt.Fprintf(out, "\nScore: %d/%d (%.0f%%)\n", session.TotalScore, session.MaxScore(), session.Percentage())
	fmt.Fprintf(out, "Level: %s\n", session.Result.QuizLevel)
	fmt.Fprintf(out, "Confidence: %s\n", domain.ConfidenceLabel(session.Result.Confidence))
	return nil
}
