// Package cli implements skillctl, an operator CLI over the verification engine.
package cli

import (
	"fmt"

	"skillswap-hub/internal/adapter/evaluator"
	"skillswap-hub/internal/adapter/github"
	"skillswap-hub/internal/config"
	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/logger"
	"skillswap-hub/internal/service"
	"skillswap-hub/internal/taxonomy"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "skillctl"

// Actual version can be specified in build command.
var version = "unknown"

// Deps builds what the commands need. Tests swap in their own.
type Deps struct {
	Verification func(v *viper.Viper) (service.VerificationService, error)
}

// DefaultDeps wires the embedded taxonomy, the public GitHub API and an
// optional Ollama reviewer.
func DefaultDeps() Deps {
	return Deps{Verification: newVerificationService}
}

func newVerificationService(v *viper.Viper) (service.VerificationService, error) {
	tax, err := taxonomy.Default()
	if err != nil {
		return nil, err
	}
	gh := github.NewClientFromConfig(config.GitHubConfig{
		APIURL:  v.GetString("github-api"),
		Timeout: v.GetDuration("github-timeout"),
	})

	var reviewer domain.PortfolioReviewer
	if server := v.GetString("llm-server"); server != "" {
		reviewer, err = evaluator.NewOllamaPortfolioReviewer(server, v.GetString("llm-model"), v.GetDuration("llm-timeout"))
		if err != nil {
			return nil, fmt.Errorf("creating portfolio reviewer: %w", err)
		}
	}
	return service.NewVerificationService(tax, gh, reviewer, v.GetInt("concurrency")), nil
}

// Execute runs skillctl with the default dependencies.
func Execute() error {
	return NewRootCmd(DefaultDeps()).Execute()
}

// NewRootCmd builds the command tree. Each call gets its own viper instance.
func NewRootCmd(deps Deps) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SKILLCTL")
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           app,
		Short:         "skillctl validates skill claims against the SkillSwap Hub taxonomy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.LoggerConfig{Env: "development", Level: "warn"}
			if v.GetBool("json") {
				cfg.Env = "production"
			}
			if v.GetBool("debug") {
				cfg.Level = "debug"
			}
			return logger.Initialize(cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("debug", "d", false, "verbose/debug output")
	flags.BoolP("json", "j", false, "json format for logging")
	flags.String("github-api", "https://api.github.com", "GitHub REST API base URL")
	flags.Duration("github-timeout", defaultGitHubTimeout, "GitHub request timeout")
	flags.String("llm-server", "", "Ollama server used for portfolio review (disabled when empty)")
	flags.String("llm-model", "qwen3:0.6b", "Ollama model used for portfolio review")
	flags.Duration("llm-timeout", defaultLLMTimeout, "portfolio review timeout")
	flags.Int("concurrency", 4, "parallel validations for batch verification")
	for _, name := range []string{"debug", "json", "github-api", "github-timeout", "llm-server", "llm-model", "llm-timeout", "concurrency"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newSuggestCmd(v, deps),
		newVerifyCmd(v, deps),
		newQuizCmd(v, deps),
		newTaxonomyCmd(v, deps),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		},
	}
}
