package service

import (
	"testing"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfileService(t *testing.T) ProfileService {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	return NewProfileService(tax)
}

func record(name string, v *domain.VerificationResult) *domain.UserSkillRecord {
	return &domain.UserSkillRecord{ID: "rec-" + name, UserID: "user-1", Name: name, Level: domain.LevelIntermediate, Verification: v}
}

func TestGenerateSkillProfiles(t *testing.T) {
	svc := newTestProfileService(t)

	t.Run("weak self assessment", func(t *testing.T) {
		profiles := svc.GenerateSkillProfiles([]*domain.UserSkillRecord{
			record("React", &domain.VerificationResult{Method: domain.MethodSelf, Confidence: 0.5, SubSkills: []string{}}),
		})
		require.Len(t, profiles, 1)
		p := profiles[0]
		assert.False(t, p.IsVerified)
		assert.Equal(t, domain.VerificationLevelLow, p.VerificationLevel)
		assert.Equal(t, 35, p.TrustScore)
		assert.Equal(t, []string{"JavaScript", "Redux", "Next.js", "TypeScript", "Material-UI"}, p.RelatedSkills)
		assert.Equal(t, []string{
			"Take a skill assessment quiz to verify your proficiency",
			"Consider learning: JavaScript, HTML, CSS",
			"Specify which aspects you know: JSX, Hooks, State Management",
		}, p.SuggestedImprovements)
		assert.Equal(t, "React", p.Name)
	})

	t.Run("strong github verification", func(t *testing.T) {
		rec := record("Python", &domain.VerificationResult{Method: domain.MethodGitHub, Confidence: 0.85, SubSkills: []string{"OOP"}})
		rec.RelatedSkills = []string{"Programming Fundamentals"}

		profiles := svc.GenerateSkillProfiles([]*domain.UserSkillRecord{rec})
		require.Len(t, profiles, 1)
		p := profiles[0]
		assert.True(t, p.IsVerified)
		assert.Equal(t, domain.VerificationLevelHigh, p.VerificationLevel)
		assert.Equal(t, 78, p.TrustScore)
		assert.Empty(t, p.SuggestedImprovements)
	})

	t.Run("custom skill without verification", func(t *testing.T) {
		profiles := svc.GenerateSkillProfiles([]*domain.UserSkillRecord{record("Underwater Basket Weaving", nil)})
		require.Len(t, profiles, 1)
		p := profiles[0]
		assert.False(t, p.IsVerified)
		assert.Equal(t, domain.VerificationLevelUnverified, p.VerificationLevel)
		assert.Equal(t, 0, p.TrustScore)
		assert.Equal(t, []string{}, p.RelatedSkills)
		assert.Equal(t, []string{"Take a skill assessment quiz to verify your proficiency"}, p.SuggestedImprovements)
	})

	t.Run("keeps order and skips nil records", func(t *testing.T) {
		profiles := svc.GenerateSkillProfiles([]*domain.UserSkillRecord{
			record("Python", nil), nil, record("JavaScript", nil),
		})
		require.Len(t, profiles, 2)
		assert.Equal(t, "Python", profiles[0].Name)
		assert.Equal(t, "JavaScript", profiles[1].Name)
	})

	t.Run("boundary at 0.6 is medium but not verified", func(t *testing.T) {
		profiles := svc.GenerateSkillProfiles([]*domain.UserSkillRecord{
			record("Python", &domain.VerificationResult{Method: domain.MethodQuiz, Confidence: 0.6}),
		})
		assert.False(t, profiles[0].IsVerified)
		assert.Equal(t, domain.VerificationLevelMedium, profiles[0].VerificationLevel)
	})
}

func TestGetUserVerificationStatus(t *testing.T) {
	svc := newTestProfileService(t)

	tests := []struct {
		name     string
		records  []*domain.UserSkillRecord
		expected domain.UserVerificationStatus
	}{
		{"no records", nil, domain.UnverifiedStatus},
		{
			"github beats quiz",
			[]*domain.UserSkillRecord{
				record("JavaScript", &domain.VerificationResult{Method: domain.MethodQuiz, Confidence: 0.9}),
				record("React", &domain.VerificationResult{Method: domain.MethodGitHub, Confidence: 0.45}),
			},
			domain.GitHubVerifiedStatus,
		},
		{
			"failed github analysis does not count",
			[]*domain.UserSkillRecord{
				record("React", &domain.VerificationResult{Method: domain.MethodGitHub, Confidence: 0.9, GitHub: &domain.GitHubAnalysis{Error: true}}),
			},
			domain.VerifiedStatus,
		},
		{
			"quiz beats plain high confidence",
			[]*domain.UserSkillRecord{
				record("Python", &domain.VerificationResult{Method: domain.MethodPeer, Confidence: 0.95}),
				record("JavaScript", &domain.VerificationResult{Method: domain.MethodQuiz, Confidence: 0.61}),
			},
			domain.QuizVerifiedStatus,
		},
		{
			"thresholds are strict",
			[]*domain.UserSkillRecord{
				record("React", &domain.VerificationResult{Method: domain.MethodGitHub, Confidence: 0.4}),
				record("JavaScript", &domain.VerificationResult{Method: domain.MethodQuiz, Confidence: 0.6}),
				record("Python", &domain.VerificationResult{Method: domain.MethodSelf, Confidence: 0.8}),
			},
			domain.UnverifiedStatus,
		},
		{
			"records without verification",
			[]*domain.UserSkillRecord{record("Python", nil), nil},
			domain.UnverifiedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.GetUserVerificationStatus(tt.records))
		})
	}
}

func TestHasGitHubVerification(t *testing.T) {
	svc := newTestProfileService(t)

	assert.False(t, svc.HasGitHubVerification(nil))
	assert.True(t, svc.HasGitHubVerification([]*domain.UserSkillRecord{
		record("Go", &domain.VerificationResult{Method: domain.MethodGitHub, Confidence: 0.5, GitHub: &domain.GitHubAnalysis{}}),
	}))
	assert.False(t, svc.HasGitHubVerification([]*domain.UserSkillRecord{
		record("Go", &domain.VerificationResult{Method: domain.MethodSelf, Confidence: 0.9}),
	}))
}
