package service

import (
	"fmt"
	"strings"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/taxonomy"
)

const (
	verifiedThreshold       = 0.6
	githubVerifiedThreshold = 0.4
	quizVerifiedThreshold   = 0.6
	highConfidenceThreshold = 0.8
)

// ProfileService derives display data from a user's skill records. Nothing
// it returns is cached: every call reflects the records passed in.
type ProfileService interface {
	GenerateSkillProfiles(records []*domain.UserSkillRecord) []*domain.SkillProfile
	GetUserVerificationStatus(records []*domain.UserSkillRecord) domain.UserVerificationStatus
	HasGitHubVerification(records []*domain.UserSkillRecord) bool
}

type profileService struct {
	taxonomy *taxonomy.Taxonomy
}

func NewProfileService(tax *taxonomy.Taxonomy) ProfileService {
	return &profileService{taxonomy: tax}
}

// GenerateSkillProfiles maps records to profiles in order.
func (s *profileService) GenerateSkillProfiles(records []*domain.UserSkillRecord) []*domain.SkillProfile {
	profiles := make([]*domain.SkillProfile, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		def, known := s.taxonomy.Lookup(record.Name)
		confidence := 0.0
		if record.Verification != nil {
			confidence = record.Verification.Confidence
		}

		profile := &domain.SkillProfile{
			UserSkillRecord:       *record,
			IsVerified:            record.Verification != nil && confidence > verifiedThreshold,
			VerificationLevel:     verificationLevel(confidence),
			SuggestedImprovements: suggestedImprovements(record, def, known),
			RelatedSkills:         []string{},
		}
		profile.TrustScore = CalculateTrustScore(record.Verification)
		if known && len(def.RelatedSkills) > 0 {
			profile.RelatedSkills = def.RelatedSkills
		}
		profiles = append(profiles, profile)
	}
	return profiles
}

func verificationLevel(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return domain.VerificationLevelHigh
	case confidence >= 0.6:
		return domain.VerificationLevelMedium
	case confidence >= 0.4:
		return domain.VerificationLevelLow
	default:
		return domain.VerificationLevelUnverified
	}
}

func suggestedImprovements(record *domain.UserSkillRecord, def domain.SkillDefinition, known bool) []string {
	suggestions := []string{}
	if record.Verification == nil || record.Verification.Confidence < verifiedThreshold {
		suggestions = append(suggestions, "Take a skill assessment quiz to verify your proficiency")
	}
	if !known {
		return suggestions
	}

	// Prerequisites are checked against the record's own related skills,
	// which are usually empty, so every prerequisite tends to be listed.
	var missing []string
	for _, prereq := range def.Prerequisites {
		if !containsString(record.RelatedSkills, prereq) {
			missing = append(missing, prereq)
		}
	}
	if len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Consider learning: %s", strings.Join(missing, ", ")))
	}

	if len(def.SubSkills) > 0 && (record.Verification == nil || len(record.Verification.SubSkills) == 0) {
		n := len(def.SubSkills)
		if n > 3 {
			n = 3
		}
		suggestions = append(suggestions, fmt.Sprintf("Specify which aspects you know: %s", strings.Join(def.SubSkills[:n], ", ")))
	}
	return suggestions
}

// HasGitHubVerification reports whether any record carries a successful
// GitHub verification above the badge threshold.
func (s *profileService) HasGitHubVerification(records []*domain.UserSkillRecord) bool {
	for _, record := range records {
		if record == nil || record.Verification == nil {
			continue
		}
		v := record.Verification
		if v.Method == domain.MethodGitHub && (v.GitHub == nil || !v.GitHub.Error) && v.Confidence > githubVerifiedThreshold {
			return true
		}
	}
	return false
}

// GetUserVerificationStatus picks the strongest badge: GitHub, then quiz,
// then any high-confidence verification.
func (s *profileService) GetUserVerificationStatus(records []*domain.UserSkillRecord) domain.UserVerificationStatus {
	if s.HasGitHubVerification(records) {
		return domain.GitHubVerifiedStatus
	}

	hasQuiz, hasHighConfidence := false, false
	for _, record := range records {
		if record == nil || record.Verification == nil {
			continue
		}
		v := record.Verification
		if v.Method == domain.MethodQuiz && v.Confidence > quizVerifiedThreshold {
			hasQuiz = true
		}
		if v.Confidence > highConfidenceThreshold {
			hasHighConfidence = true
		}
	}

	switch {
	case hasQuiz:
		return domain.QuizVerifiedStatus
	case hasHighConfidence:
		return domain.VerifiedStatus
	default:
		return domain.UnverifiedStatus
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
