package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/logger"

	"go.uber.org/zap"
)

const (
	portfolioPendingConfidence = 0.4
	portfolioReviewCap         = 0.8
	portfolioValidThreshold    = 0.3
)

// validateViaPortfolio accepts a portfolio link or description. Without a
// reviewer, or when the reviewer fails, the submission is queued for a human.
func validateViaPortfolio(ctx context.Context, reviewer domain.PortfolioReviewer, def domain.SkillDefinition, input domain.UserInput, result *domain.VerificationResult) {
	portfolio := strings.TrimSpace(input.Portfolio)
	if portfolio == "" {
		result.Recommend("Provide a portfolio link or project description for review")
		return
	}

	claimed := domain.LevelOrDefault(input.Level, domain.LevelBeginner)
	result.SuggestedLevel = claimed

	reviewFailed := false
	if reviewer != nil {
		review, err := reviewer.ReviewPortfolio(ctx, def, claimed, portfolio)
		if err == nil {
			result.Confidence = math.Min(review.Score, portfolioReviewCap)
			result.IsValid = result.Confidence > portfolioValidThreshold
			result.SubSkills = nonNilStrings(review.MatchedSubSkills)
			result.RequiresReview = false
			if review.Summary != "" {
				result.Recommend(review.Summary)
			}
			return
		}
		logger.Get().Warn("Automated portfolio review failed, queueing for manual review",
			zap.String("skill", result.SkillName),
			zap.Error(err))
		reviewFailed = true
	}

	result.IsValid = true
	result.Confidence = portfolioPendingConfidence
	result.RequiresReview = true
	result.Recommend(fmt.Sprintf("Portfolio submitted. A reviewer will confirm your %s skills.", result.SkillName))
	if reviewFailed {
		result.Recommend("Automated portfolio review unavailable")
	}
}
