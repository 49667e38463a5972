package service

import (
	"context"
	"time"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/logger"
	"skillswap-hub/internal/taxonomy"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 4

// VerificationService resolves skills and runs verification strategies.
// Validation never fails: problems are reported inside the result.
type VerificationService interface {
	ValidateSkill(ctx context.Context, skillName string, input domain.UserInput, method domain.Method) *domain.VerificationResult
	ValidateBatch(ctx context.Context, requests []domain.ValidationRequest) []*domain.VerificationResult
	SuggestSkills(partial string) []domain.Suggestion
	Methods() []domain.MethodInfo
	Skills() []string
	Skill(name string) (domain.SkillDefinition, bool)
}

type verificationService struct {
	taxonomy         *taxonomy.Taxonomy
	github           *githubAnalyzer
	reviewer         domain.PortfolioReviewer
	batchConcurrency int
	now              func() time.Time
}

// NewVerificationService creates a verification service. reviewer may be nil,
// in which case portfolios are queued for manual review.
func NewVerificationService(
	tax *taxonomy.Taxonomy,
	githubClient domain.GitHubClient,
	reviewer domain.PortfolioReviewer,
	batchConcurrency int,
) VerificationService {
	if batchConcurrency <= 0 {
		batchConcurrency = defaultBatchConcurrency
	}
	s := &verificationService{
		taxonomy:         tax,
		reviewer:         reviewer,
		batchConcurrency: batchConcurrency,
		now:              time.Now,
	}
	s.github = newGitHubAnalyzer(githubClient, tax, func() time.Time { return s.now() })
	return s
}

// ValidateSkill implements VerificationService
func (s *verificationService) ValidateSkill(ctx context.Context, skillName string, input domain.UserInput, method domain.Method) *domain.VerificationResult {
	if method == "" {
		method = domain.MethodSelf
	}

	def, resolved := s.taxonomy.Resolve(skillName)
	result := domain.NewVerificationResult(skillName, method, s.now())

	if !resolved && method != domain.MethodGitHub {
		customSkillResult(skillName, input, result)
		s.logResult(result)
		return result
	}
	if resolved {
		result.SkillName = def.Name
	}

	switch method {
	case domain.MethodSelf:
		selfAssess(def, input, result)
	case domain.MethodQuiz:
		startQuiz(def, input, result)
	case domain.MethodGitHub:
		s.github.validateViaGitHub(ctx, input, result)
	case domain.MethodPortfolio:
		validateViaPortfolio(ctx, s.reviewer, def, input, result)
	default:
		logger.Get().Debug("Unknown verification method, returning neutral result",
			zap.String("method", string(method)))
	}

	s.logResult(result)
	return result
}

func (s *verificationService) logResult(result *domain.VerificationResult) {
	logger.Get().Debug("Skill validated",
		zap.String("skill", result.SkillName),
		zap.String("method", string(result.Method)),
		zap.Bool("valid", result.IsValid),
		zap.Float64("confidence", result.Confidence))
}

// ValidateBatch validates every request with bounded concurrency. Results keep
// the order of requests.
func (s *verificationService) ValidateBatch(ctx context.Context, requests []domain.ValidationRequest) []*domain.VerificationResult {
	results := make([]*domain.VerificationResult, len(requests))

	var g errgroup.Group
	g.SetLimit(s.batchConcurrency)
	for i, req := range requests {
		g.Go(func() error {
			results[i] = s.ValidateSkill(ctx, req.SkillName, req.Input, req.Method)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// SuggestSkills implements VerificationService
func (s *verificationService) SuggestSkills(partial string) []domain.Suggestion {
	return s.taxonomy.Suggest(partial)
}

// Methods lists the selectable verification methods in display order.
func (s *verificationService) Methods() []domain.MethodInfo {
	return append([]domain.MethodInfo(nil), domain.SelectableMethods...)
}

func (s *verificationService) Skills() []string {
	return s.taxonomy.Names()
}

// Skill resolves name the same way validation does.
func (s *verificationService) Skill(name string) (domain.SkillDefinition, bool) {
	return s.taxonomy.Resolve(name)
}
