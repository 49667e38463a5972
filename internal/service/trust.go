package service

import (
	"math"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/util"
)

const maxTrustScore = 100

var methodTrustBonus = map[domain.Method]float64{
	domain.MethodSelf:      5,
	domain.MethodPortfolio: 15,
	domain.MethodQuiz:      20,
	domain.MethodGitHub:    25,
	domain.MethodPeer:      30,
}

// CalculateTrustScore turns a verification result into a 0-100 score.
// A nil result scores as confidence 0 with no method and no sub-skills.
func CalculateTrustScore(v *domain.VerificationResult) int {
	if v == nil {
		return 0
	}
	score := v.Confidence * 60
	score += methodTrustBonus[v.Method]
	if n := len(v.SubSkills); n > 0 {
		score += math.Min(float64(n*2), 15)
	}
	return util.ClampInt(int(math.Round(score)), 0, maxTrustScore)
}
