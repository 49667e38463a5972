package dto

import (
	"time"

	"skillswap-hub/internal/domain"
)

// AddSkillRequest adds a skill to the caller's profile. Quiz claims refer to
// a completed quiz session.
// @Description Request body for adding a verified skill
type AddSkillRequest struct {
	SkillName     string           `json:"skillName" validate:"required_unless=Method quiz,max=100"`
	Method        string           `json:"method" validate:"max=20"`
	Input         UserInputRequest `json:"input"`
	QuizSessionID string           `json:"quizSessionId" validate:"omitempty,ulid_id"`
}

// SkillRecordResponse is a stored skill with its verification.
type SkillRecordResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Level        domain.Level          `json:"level"`
	Experience   string                `json:"experience"`
	SubSkills    []string              `json:"subSkills"`
	Verification *VerificationResponse `json:"verification"`
	TrustScore   int                   `json:"trustScore"`
	AddedAt      time.Time             `json:"addedAt"`
}

func NewSkillRecordResponse(r *domain.UserSkillRecord) *SkillRecordResponse {
	return &SkillRecordResponse{
		ID:           r.ID,
		Name:         r.Name,
		Level:        r.Level,
		Experience:   r.Experience,
		SubSkills:    nonNil(r.SubSkills),
		Verification: NewVerificationResponse(r.Verification, r.TrustScore),
		TrustScore:   r.TrustScore,
		AddedAt:      r.AddedAt,
	}
}

type SkillRecordListResponse struct {
	Skills []*SkillRecordResponse `json:"skills"`
}

// SkillProfileResponse is a record enriched for display.
type SkillProfileResponse struct {
	SkillRecordResponse
	IsVerified            bool     `json:"isVerified"`
	VerificationLevel     string   `json:"verificationLevel"`
	SuggestedImprovements []string `json:"suggestedImprovements"`
	RelatedSkills         []string `json:"relatedSkills"`
}

type SkillProfileListResponse struct {
	Profiles []*SkillProfileResponse `json:"profiles"`
}

func NewSkillProfileResponse(p *domain.SkillProfile) *SkillProfileResponse {
	record := p.UserSkillRecord
	return &SkillProfileResponse{
		SkillRecordResponse:   *NewSkillRecordResponse(&record),
		IsVerified:            p.IsVerified,
		VerificationLevel:     p.VerificationLevel,
		SuggestedImprovements: nonNil(p.SuggestedImprovements),
		RelatedSkills:         nonNil(p.RelatedSkills),
	}
}
