package service

import (
	"strings"
	"unicode/utf8"

	"skillswap-hub/internal/domain"
)

const (
	selfAssessmentFloor   = 0.3
	customSkillConfidence = 0.2
)

// selfAssess scores a self-reported claim. The claimed level is never
// second-guessed; confidence only measures how well the claim is backed.
func selfAssess(def domain.SkillDefinition, input domain.UserInput, result *domain.VerificationResult) {
	confidence := selfAssessmentFloor

	if len(def.SubSkills) > 0 && len(input.SubSkills) > 0 {
		valid := make([]string, 0, len(input.SubSkills))
		for _, claimed := range input.SubSkills {
			if matchesAnySubSkill(def.SubSkills, claimed) {
				valid = append(valid, claimed)
			}
		}
		confidence += float64(len(valid)) / float64(len(def.SubSkills)) * 0.3
		result.SubSkills = valid
	}

	length := utf8.RuneCountInString(input.Experience)
	if length > 50 {
		confidence += 0.1
	}
	if length > 200 {
		confidence += 0.1
	}

	if len(def.Prerequisites) > 0 {
		experience := strings.ToLower(input.Experience)
		mentioned := 0
		for _, prereq := range def.Prerequisites {
			if strings.Contains(experience, strings.ToLower(prereq)) {
				mentioned++
			}
		}
		confidence += float64(mentioned) / float64(len(def.Prerequisites)) * 0.2
	}

	result.IsValid = confidence > selfAssessmentFloor
	result.Confidence = confidence
	result.SuggestedLevel = domain.LevelOrDefault(input.Level, domain.LevelBeginner)
	result.Recommend("Consider taking a quiz or linking your GitHub for better verification")
}

// matchesAnySubSkill reports whether claimed is a case-insensitive substring
// of any taxonomy sub-skill.
func matchesAnySubSkill(subSkills []string, claimed string) bool {
	lowerClaimed := strings.ToLower(claimed)
	for _, sub := range subSkills {
		if strings.Contains(strings.ToLower(sub), lowerClaimed) {
			return true
		}
	}
	return false
}

// customSkillResult is the fallback for skills the taxonomy does not know.
// It is accepted unscored and flagged for review.
func customSkillResult(skillName string, input domain.UserInput, result *domain.VerificationResult) {
	result.SkillName = skillName
	result.Method = domain.MethodCustom
	result.IsValid = true
	result.Confidence = customSkillConfidence
	result.SuggestedLevel = domain.LevelOrDefault(input.Level, domain.LevelBeginner)
	if input.SubSkills != nil {
		result.SubSkills = append([]string(nil), input.SubSkills...)
	}
	result.RequiresReview = true
	result.Recommend("This is a custom skill. Consider providing more details or verification.")
	result.Recommend("Add related projects or experience to increase credibility.")
}
