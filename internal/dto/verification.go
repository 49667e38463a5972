package dto

import (
	"skillswap-hub/internal/domain"
)

// UserInputRequest carries the evidence behind a skill claim.
type UserInputRequest struct {
	Level          string   `json:"level" validate:"omitempty,max=20"`
	Experience     string   `json:"experience" validate:"max=5000"`
	SubSkills      []string `json:"subSkills" validate:"max=30,dive,max=100"`
	GitHubUsername string   `json:"githubUsername" validate:"max=100"`
	Portfolio      string   `json:"portfolio" validate:"max=5000"`
}

// ToDomain converts the request into engine input.
func (r UserInputRequest) ToDomain() domain.UserInput {
	return domain.UserInput{
		Level:          domain.Level(r.Level),
		Experience:     r.Experience,
		SubSkills:      r.SubSkills,
		GitHubUsername: r.GitHubUsername,
		Portfolio:      r.Portfolio,
	}
}

// ValidateSkillRequest represents a single skill validation request
// @Description Request body for validating a skill claim
type ValidateSkillRequest struct {
	SkillName string           `json:"skillName" validate:"required,max=100"`
	Method    string           `json:"method" validate:"max=20"`
	Input     UserInputRequest `json:"input"`
}

// ToDomain converts the request into a batch entry.
func (r ValidateSkillRequest) ToDomain() domain.ValidationRequest {
	return domain.ValidationRequest{
		SkillName: r.SkillName,
		Input:     r.Input.ToDomain(),
		Method:    domain.Method(r.Method),
	}
}

// BatchValidateRequest validates several claims in one call
type BatchValidateRequest struct {
	Requests []ValidateSkillRequest `json:"requests" validate:"required,min=1,max=50,dive"`
}

// QuizQuestionView is a question as shown to the user. The correct option
// is never part of it.
type QuizQuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Points   int      `json:"points"`
}

// QuizDataView is QuizData without answers.
type QuizDataView struct {
	Level          domain.Level       `json:"level"`
	Questions      []QuizQuestionView `json:"questions"`
	TotalQuestions int                `json:"totalQuestions"`
	MaxScore       int                `json:"maxScore"`
}

// NewQuestionView strips the answer from a question.
func NewQuestionView(q domain.QuizQuestion) QuizQuestionView {
	return QuizQuestionView{
		Question: q.Question,
		Options:  append([]string(nil), q.Options...),
		Points:   q.Points,
	}
}

func newQuizDataView(q *domain.QuizData) *QuizDataView {
	if q == nil {
		return nil
	}
	questions := make([]QuizQuestionView, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = NewQuestionView(question)
	}
	return &QuizDataView{
		Level:          q.Level,
		Questions:      questions,
		TotalQuestions: q.TotalQuestions,
		MaxScore:       q.MaxScore,
	}
}

// VerificationResponse is a verification result as returned over HTTP.
// Quiz data is replaced by its answer-free view.
type VerificationResponse struct {
	domain.VerificationResult
	Quiz            *QuizDataView `json:"quizData,omitempty"`
	ConfidenceLabel string        `json:"confidenceLabel"`
	TrustScore      int           `json:"trustScore"`
}

// NewVerificationResponse builds the response for r. trustScore is passed in
// so the dto package stays free of service logic.
func NewVerificationResponse(r *domain.VerificationResult, trustScore int) *VerificationResponse {
	if r == nil {
		return nil
	}
	return &VerificationResponse{
		VerificationResult: *r,
		Quiz:               newQuizDataView(r.Quiz),
		ConfidenceLabel:    domain.ConfidenceLabel(r.Confidence),
		TrustScore:         trustScore,
	}
}

// BatchValidateResponse keeps the order of the request list.
type BatchValidateResponse struct {
	Results []*VerificationResponse `json:"results"`
}

// TrustScoreRequest scores an existing verification result.
type TrustScoreRequest struct {
	Verification *domain.VerificationResult `json:"verification" validate:"required"`
}

type TrustScoreResponse struct {
	TrustScore      int    `json:"trustScore"`
	ConfidenceLabel string `json:"confidenceLabel"`
}

// SuggestionsResponse lists ranked skill suggestions for a partial name.
type SuggestionsResponse struct {
	Query       string              `json:"query"`
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// SkillsResponse lists taxonomy names in taxonomy order.
type SkillsResponse struct {
	Skills []string `json:"skills"`
}

// MethodsResponse lists the selectable verification methods.
type MethodsResponse struct {
	Methods []domain.MethodInfo `json:"methods"`
}

// SkillDefinitionResponse describes a taxonomy skill. Quiz banks are only
// listed by level.
type SkillDefinitionResponse struct {
	Name          string                            `json:"name"`
	SubSkills     []string                          `json:"subSkills"`
	RelatedSkills []string                          `json:"relatedSkills"`
	Prerequisites []string                          `json:"prerequisites"`
	Levels        map[domain.Level]domain.LevelBand `json:"levels"`
	QuizLevels    []domain.Level                    `json:"quizLevels"`
}

func NewSkillDefinitionResponse(def domain.SkillDefinition) *SkillDefinitionResponse {
	quizLevels := []domain.Level{}
	for _, level := range domain.Levels {
		if len(def.Quiz[level]) > 0 {
			quizLevels = append(quizLevels, level)
		}
	}
	return &SkillDefinitionResponse{
		Name:          def.Name,
		SubSkills:     nonNil(def.SubSkills),
		RelatedSkills: nonNil(def.RelatedSkills),
		Prerequisites: nonNil(def.Prerequisites),
		Levels:        def.Levels,
		QuizLevels:    quizLevels,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
