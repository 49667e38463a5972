package domain

import "time"

// UserSkillRecord is a skill a user has added to their profile together with
// the verification result that backed it.
type UserSkillRecord struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	Name          string              `json:"name"`
	Level         Level               `json:"level"`
	Experience    string              `json:"experience"`
	SubSkills     []string            `json:"subSkills"`
	RelatedSkills []string            `json:"relatedSkills,omitempty"`
	Verification  *VerificationResult `json:"verification"`
	TrustScore    int                 `json:"trustScore"`
	AddedAt       time.Time           `json:"addedAt"`
}

// Verification levels shown on a skill profile.
const (
	VerificationLevelHigh       = "high"
	VerificationLevelMedium     = "medium"
	VerificationLevelLow        = "low"
	VerificationLevelUnverified = "unverified"
)

// SkillProfile is a record enriched for display. It is derived on demand and
// never stored.
type SkillProfile struct {
	UserSkillRecord
	IsVerified            bool     `json:"isVerified"`
	VerificationLevel     string   `json:"verificationLevel"`
	SuggestedImprovements []string `json:"suggestedImprovements"`
	// RelatedSkills comes from the taxonomy and shadows the record's own list.
	RelatedSkills []string `json:"relatedSkills"`
}

// VerificationStatusKind names an aggregate verification badge.
type VerificationStatusKind string

const (
	StatusGitHubVerified VerificationStatusKind = "github-verified"
	StatusQuizVerified   VerificationStatusKind = "quiz-verified"
	StatusVerified       VerificationStatusKind = "verified"
	StatusUnverified     VerificationStatusKind = "unverified"
)

// UserVerificationStatus is the badge shown next to a user in listings.
type UserVerificationStatus struct {
	Status VerificationStatusKind `json:"status"`
	Level  string                 `json:"level"`
	Badge  string                 `json:"badge"`
	Color  string                 `json:"color"`
}

var (
	GitHubVerifiedStatus = UserVerificationStatus{Status: StatusGitHubVerified, Level: VerificationLevelHigh, Badge: "✅ GitHub Verified", Color: "#28a745"}
	QuizVerifiedStatus   = UserVerificationStatus{Status: StatusQuizVerified, Level: VerificationLevelMedium, Badge: "✅ Quiz Verified", Color: "#17a2b8"}
	VerifiedStatus       = UserVerificationStatus{Status: StatusVerified, Level: VerificationLevelMedium, Badge: "✅ Verified", Color: "#17a2b8"}
	UnverifiedStatus     = UserVerificationStatus{Status: StatusUnverified, Level: VerificationLevelLow, Badge: "❓ Unverified", Color: "#6c757d"}
)
