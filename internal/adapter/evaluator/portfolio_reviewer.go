package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

const defaultReviewTimeout = 20 * time.Second

// llmPortfolioReviewer implements domain.PortfolioReviewer
type llmPortfolioReviewer struct {
	model   llms.Model
	timeout time.Duration
}

// NewLLMPortfolioReviewer wraps any langchaingo model.
func NewLLMPortfolioReviewer(model llms.Model, timeout time.Duration) domain.PortfolioReviewer {
	if timeout <= 0 {
		timeout = defaultReviewTimeout
	}
	return &llmPortfolioReviewer{model: model, timeout: timeout}
}

// NewOllamaPortfolioReviewer connects to an Ollama server.
func NewOllamaPortfolioReviewer(serverURL, model string, timeout time.Duration) (domain.PortfolioReviewer, error) {
	llm, err := ollama.New(ollama.WithServerURL(serverURL), ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return NewLLMPortfolioReviewer(llm, timeout), nil
}

func (r *llmPortfolioReviewer) ReviewPortfolio(ctx context.Context, skill domain.SkillDefinition, claimedLevel domain.Level, portfolio string) (*domain.PortfolioReview, error) {
	l := logger.Get()
	l.Info("Reviewing portfolio with LLM",
		zap.String("skill", skill.Name),
		zap.String("claimed_level", string(claimedLevel)))

	prompt := fmt.Sprintf(`You review portfolios for a skill exchange. Respond with ONLY a JSON object in the following format:
{
    "score": 0.0,
    "matched_sub_skills": ["sub skill"],
    "summary": "one or two sentences"
}

Skill: %s
Claimed level: %s
Known sub-skills: %s
Portfolio:
%s

Rules:
1. score is between 0 and 1 and measures how convincingly the portfolio demonstrates the skill at the claimed level
2. matched_sub_skills only lists entries from the known sub-skills
3. summary is under 50 words and addressed to the portfolio owner`,
		skill.Name, claimedLevel, strings.Join(skill.SubSkills, ", "), portfolio)

	raw, err := r.callLLM(ctx, prompt)
	if err != nil {
		l.Error("callLLM failed during portfolio review", zap.Error(err))
		return nil, domain.NewLLMServiceError(err)
	}
	l.Debug("Raw LLM response received", zap.String("raw_response", raw))

	review, err := parseReview(raw)
	if err != nil {
		l.Error("Failed to parse portfolio review", zap.Error(err), zap.String("raw_response", raw))
		return nil, domain.NewLLMServiceError(err)
	}
	review.MatchedSubSkills = knownSubSkills(skill.SubSkills, review.MatchedSubSkills)
	return review, nil
}

func (r *llmPortfolioReviewer) callLLM(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, r.model, prompt, llms.WithTemperature(0.1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}

// parseReview strips <think> blocks and decodes the outermost JSON object.
func parseReview(raw string) (*domain.PortfolioReview, error) {
	cleaned := strings.TrimSpace(raw)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd <= jsonStart {
		return nil, fmt.Errorf("no JSON object found in LLM response")
	}

	var review domain.PortfolioReview
	if err := json.Unmarshal([]byte(cleaned[jsonStart:jsonEnd+1]), &review); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON from LLM: %w", err)
	}
	if review.Score < 0 || review.Score > 1 {
		return nil, fmt.Errorf("review score %.2f out of range", review.Score)
	}
	return &review, nil
}

// knownSubSkills keeps only matches that name a taxonomy sub-skill, in
// taxonomy spelling.
func knownSubSkills(known, matched []string) []string {
	out := make([]string, 0, len(matched))
	for _, k := range known {
		for _, m := range matched {
			if strings.EqualFold(strings.TrimSpace(m), k) {
				out = append(out, k)
				break
			}
		}
	}
	return out
}
