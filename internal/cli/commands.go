package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/dto"
	"skillswap-hub/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultGitHubTimeout = 10 * time.Second
	defaultLLMTimeout    = 20 * time.Second
)

func newSuggestCmd(v *viper.Viper, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <partial>",
		Short: "Suggest skills matching a partial name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.Verification(v)
			if err != nil {
				return err
			}
			suggestions := svc.SuggestSkills(strings.TrimSpace(args[0]))
			if len(suggestions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no skills match %q\n", args[0])
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SKILL\tTYPE\tCONFIDENCE\tPARENT")
			for _, s := range suggestions {
				fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n", s.Skill, s.Type, s.Confidence, s.ParentSkill)
			}
			return w.Flush()
		},
	}
}

func newVerifyCmd(v *viper.Viper, deps Deps) *cobra.Command {
	var (
		method     string
		input      domain.UserInput
		level      string
		subSkills  []string
		timeoutArg time.Duration
	)

	cmd := &cobra.Command{
		Use:   "verify <skill>",
		Short: "Validate a skill claim and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.Verification(v)
			if err != nil {
				return err
			}
			input.Level = domain.Level(level)
			input.SubSkills = subSkills

			ctx := cmd.Context()
			if timeoutArg > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeoutArg)
				defer cancel()
			}

			result := svc.ValidateSkill(ctx, args[0], input, domain.Method(method))
			out, err := json.MarshalIndent(dto.NewVerificationResponse(result, service.CalculateTrustScore(result)), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&method, "method", "m", string(domain.MethodSelf), "verification method: self, quiz, github, portfolio")
	f.StringVarP(&level, "level", "l", "", "claimed level: beginner, intermediate, advanced, expert")
	f.StringVarP(&input.Experience, "experience", "e", "", "free-text experience description")
	f.StringSliceVarP(&subSkills, "sub-skill", "s", nil, "claimed sub-skill (repeatable)")
	f.StringVar(&input.GitHubUsername, "github", "", "GitHub username for github verification")
	f.StringVar(&input.Portfolio, "portfolio", "", "portfolio description for portfolio verification")
	f.DurationVar(&timeoutArg, "timeout", 30*time.Second, "overall validation timeout")
	return cmd
}

func newTaxonomyCmd(v *viper.Viper, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "List the skills in the taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := deps.Verification(v)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SKILL\tSUB-SKILLS\tQUIZ LEVELS")
			for _, name := range svc.Skills() {
				def, ok := svc.Skill(name)
				if !ok {
					continue
				}
				levels := make([]string, 0, len(domain.Levels))
				for _, l := range domain.Levels {
					if len(def.Quiz[l]) > 0 {
						levels = append(levels, string(l))
					}
				}
				quiz := strings.Join(levels, ",")
				if quiz == "" {
					quiz = "-"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", def.Name, len(def.SubSkills), quiz)
			}
			return w.Flush()
		},
	}
}
