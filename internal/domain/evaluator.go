package domain

import "context"

// PortfolioReview is an automated reading of a portfolio submission.
type PortfolioReview struct {
	Score            float64  `json:"score"`
	MatchedSubSkills []string `json:"matched_sub_skills"`
	Summary          string   `json:"summary"`
}

// PortfolioReviewer evaluates a portfolio description against a skill
type PortfolioReviewer interface {
	// ReviewPortfolio scores how well the portfolio demonstrates the skill, 0 to 1
	ReviewPortfolio(ctx context.Context, skill SkillDefinition, claimedLevel Level, portfolio string) (*PortfolioReview, error)
}
