package domain

import "time"

// UserInput is the raw data a user supplies when claiming a skill.
type UserInput struct {
	Level          Level    `json:"level,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	SubSkills      []string `json:"subSkills,omitempty"`
	GitHubUsername string   `json:"githubUsername,omitempty"`
	Portfolio      string   `json:"portfolio,omitempty"`
}

// ValidationRequest bundles one skill claim for batch validation.
type ValidationRequest struct {
	SkillName string    `json:"skillName"`
	Input     UserInput `json:"input"`
	Method    Method    `json:"method"`
}

// QuizData is the question set handed to the quiz flow.
type QuizData struct {
	Level          Level          `json:"level"`
	Questions      []QuizQuestion `json:"questions"`
	TotalQuestions int            `json:"totalQuestions"`
	MaxScore       int            `json:"maxScore"`
}

// NewQuizData builds quiz data for a bank; MaxScore is the sum of question points.
func NewQuizData(level Level, questions []QuizQuestion) *QuizData {
	maxScore := 0
	for _, q := range questions {
		maxScore += q.Points
	}
	if questions == nil {
		questions = []QuizQuestion{}
	}
	return &QuizData{
		Level:          level,
		Questions:      questions,
		TotalQuestions: len(questions),
		MaxScore:       maxScore,
	}
}

// VerificationResult is the outcome of one validation call.
//
// It is a tagged union keyed by Method: Quiz, QuizScore and QuizLevel are only
// meaningful for quiz results, GitHub only for github results. Use the
// accessors rather than reading the payload fields directly.
type VerificationResult struct {
	SkillName            string          `json:"skillName"`
	IsValid              bool            `json:"isValid"`
	Confidence           float64         `json:"confidence"`
	SuggestedLevel       Level           `json:"suggestedLevel"`
	SubSkills            []string        `json:"subSkills"`
	Method               Method          `json:"verificationMethod"`
	Recommendations      []string        `json:"recommendations"`
	Timestamp            time.Time       `json:"timestamp"`
	RequiresReview       bool            `json:"requiresReview,omitempty"`
	VerificationRequired bool            `json:"verificationRequired,omitempty"`
	Quiz                 *QuizData       `json:"quizData,omitempty"`
	QuizScore            *int            `json:"quizScore,omitempty"`
	QuizLevel            string          `json:"quizLevel,omitempty"`
	GitHub               *GitHubAnalysis `json:"githubAnalysis,omitempty"`
}

// NewVerificationResult returns the neutral starting point every strategy builds on.
func NewVerificationResult(skillName string, method Method, now time.Time) *VerificationResult {
	return &VerificationResult{
		SkillName:       skillName,
		SuggestedLevel:  LevelBeginner,
		SubSkills:       []string{},
		Method:          method,
		Recommendations: []string{},
		Timestamp:       now,
	}
}

// Recommend appends a recommendation.
func (r *VerificationResult) Recommend(msg string) {
	r.Recommendations = append(r.Recommendations, msg)
}

// QuizPayload returns the quiz data when this is a quiz result.
func (r *VerificationResult) QuizPayload() (*QuizData, bool) {
	if r == nil || r.Method != MethodQuiz || r.Quiz == nil {
		return nil, false
	}
	return r.Quiz, true
}

// GitHubPayload returns the GitHub analysis when this is a github result.
func (r *VerificationResult) GitHubPayload() (*GitHubAnalysis, bool) {
	if r == nil || r.Method != MethodGitHub || r.GitHub == nil {
		return nil, false
	}
	return r.GitHub, true
}

// Normalize drops payload fields that do not belong to the result's method.
// Results decoded from storage go through it before use.
func (r *VerificationResult) Normalize() {
	if r == nil {
		return
	}
	if r.Method != MethodQuiz {
		r.Quiz = nil
		r.QuizScore = nil
		r.QuizLevel = ""
		r.VerificationRequired = false
	}
	if r.Method != MethodGitHub {
		r.GitHub = nil
	}
	if r.SubSkills == nil {
		r.SubSkills = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
}

// ConfidenceLabel is the human-readable reading of a confidence value.
func ConfidenceLabel(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return "High confidence - Verified"
	case confidence >= 0.6:
		return "Medium confidence - Likely accurate"
	case confidence >= 0.4:
		return "Low confidence - Needs verification"
	default:
		return "Very low confidence - Please verify"
	}
}
