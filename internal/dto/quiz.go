package dto

import (
	"time"

	"skillswap-hub/internal/domain"
)

// StartQuizRequest starts a quiz session
// @Description Request body for starting a quiz session
type StartQuizRequest struct {
	SkillName string `json:"skillName" validate:"required,max=100"`
	Level     string `json:"level" validate:"max=20"`
}

// AnswerQuizRequest answers the current question
// @Description Request body for answering the current quiz question
type AnswerQuizRequest struct {
	Option *int `json:"option" validate:"required,min=0"`
}

// QuizSessionResponse is the user's view of a quiz session.
type QuizSessionResponse struct {
	ID              string            `json:"id"`
	SkillName       string            `json:"skillName"`
	Level           domain.Level      `json:"level"`
	Status          domain.QuizStatus `json:"status"`
	QuestionIndex   int               `json:"questionIndex"`
	TotalQuestions  int               `json:"totalQuestions"`
	AnsweredCount   int               `json:"answeredCount"`
	CurrentQuestion *QuizQuestionView `json:"currentQuestion,omitempty"`
	TotalScore      int               `json:"totalScore"`
	MaxScore        int               `json:"maxScore"`
	Percentage      float64           `json:"percentage"`
	QuizLevel       string            `json:"quizLevel,omitempty"`
	Confidence      float64           `json:"confidence"`
	StartedAt       time.Time         `json:"startedAt"`
	CompletedAt     *time.Time        `json:"completedAt,omitempty"`
}

// NewQuizSessionResponse hides the answer key. Scores are only meaningful
// once the session is completed.
func NewQuizSessionResponse(s *domain.QuizSession) *QuizSessionResponse {
	resp := &QuizSessionResponse{
		ID:             s.ID,
		SkillName:      s.SkillName,
		Status:         s.Status,
		QuestionIndex:  s.Index,
		TotalQuestions: len(s.Questions()),
		AnsweredCount:  len(s.Answers),
		MaxScore:       s.MaxScore(),
		StartedAt:      s.StartedAt,
		CompletedAt:    s.CompletedAt,
	}
	if quiz, ok := s.Result.QuizPayload(); ok {
		resp.Level = quiz.Level
	}
	if q, ok := s.CurrentQuestion(); ok {
		view := NewQuestionView(q)
		resp.CurrentQuestion = &view
	}
	if s.Status == domain.QuizCompleted {
		resp.TotalScore = s.TotalScore
		resp.Percentage = s.Percentage()
		resp.QuizLevel = s.Result.QuizLevel
		resp.Confidence = s.Result.Confidence
	}
	return resp
}
