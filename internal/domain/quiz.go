package domain

import (
	"fmt"
	"math"
	"time"
)

// QuizStatus is the state of a quiz session.
type QuizStatus string

const (
	QuizInProgress QuizStatus = "in_progress"
	QuizCompleted  QuizStatus = "completed"
)

// Presentational quiz labels. They are not skill levels.
const (
	QuizLabelExpert       = "Expert"
	QuizLabelAdvanced     = "Advanced"
	QuizLabelIntermediate = "Intermediate"
	QuizLabelBeginner     = "Beginner"
)

// QuizSession walks a user through a quiz one question at a time.
// InProgress(Index, Answers) moves to Completed(TotalScore) after the last answer.
type QuizSession struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId,omitempty"`
	SkillName   string              `json:"skillName"`
	Status      QuizStatus          `json:"status"`
	Index       int                 `json:"questionIndex"`
	Answers     []int               `json:"answers"`
	TotalScore  int                 `json:"totalScore"`
	Result      *VerificationResult `json:"result"`
	StartedAt   time.Time           `json:"startedAt"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
}

// NewQuizSession starts a session for a quiz verification result.
func NewQuizSession(id string, result *VerificationResult, now time.Time) (*QuizSession, error) {
	quiz, ok := result.QuizPayload()
	if !ok || len(quiz.Questions) == 0 || quiz.MaxScore <= 0 {
		return nil, NewQuizUnavailableError(result.SkillName)
	}
	return &QuizSession{
		ID:        id,
		SkillName: result.SkillName,
		Status:    QuizInProgress,
		Answers:   []int{},
		Result:    result,
		StartedAt: now,
	}, nil
}

// Questions returns the question bank of the session.
func (s *QuizSession) Questions() []QuizQuestion {
	quiz, ok := s.Result.QuizPayload()
	if !ok {
		return nil
	}
	return quiz.Questions
}

// MaxScore is the sum of all question points.
func (s *QuizSession) MaxScore() int {
	quiz, ok := s.Result.QuizPayload()
	if !ok {
		return 0
	}
	return quiz.MaxScore
}

// CurrentQuestion returns the question awaiting an answer.
func (s *QuizSession) CurrentQuestion() (QuizQuestion, bool) {
	questions := s.Questions()
	if s.Status != QuizInProgress || s.Index < 0 || s.Index >= len(questions) {
		return QuizQuestion{}, false
	}
	return questions[s.Index], true
}

// Submit records the selected option for the current question. There is no
// going back and no skipping: each call answers exactly the next question.
func (s *QuizSession) Submit(option int, now time.Time) error {
	if s.Status == QuizCompleted {
		return NewQuizAlreadyCompletedError(s.ID)
	}
	question, ok := s.CurrentQuestion()
	if !ok {
		return NewInvalidAnswerError("quiz session has no pending question")
	}
	if option < 0 || option >= len(question.Options) {
		return NewInvalidAnswerError(fmt.Sprintf("option %d is out of range for question %d", option, s.Index+1))
	}

	s.Answers = append(s.Answers, option)
	if s.Index < len(s.Questions())-1 {
		s.Index++
		return nil
	}

	s.complete(now)
	return nil
}

func (s *QuizSession) complete(now time.Time) {
	s.TotalScore = ScoreAnswers(s.Questions(), s.Answers)
	s.Status = QuizCompleted
	s.CompletedAt = &now

	maxScore := s.MaxScore()
	score := s.TotalScore
	s.Result.Confidence = math.Min(float64(score)/float64(maxScore), 1)
	s.Result.QuizScore = &score
	s.Result.QuizLevel = QuizLevelLabel(s.Percentage())
	s.Result.VerificationRequired = false
}

// Percentage is the score as a share of the maximum, 0-100.
func (s *QuizSession) Percentage() float64 {
	maxScore := s.MaxScore()
	if maxScore == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(maxScore) * 100
}

// ScoreAnswers sums the points of every question answered with its correct option.
func ScoreAnswers(questions []QuizQuestion, answers []int) int {
	total := 0
	for i, answer := range answers {
		if i >= len(questions) {
			break
		}
		if answer == questions[i].Correct {
			total += questions[i].Points
		}
	}
	return total
}

// QuizLevelLabel maps a percentage to the quiz label. Boundaries are inclusive.
func QuizLevelLabel(percentage float64) string {
	switch {
	case percentage >= 90:
		return QuizLabelExpert
	case percentage >= 70:
		return QuizLabelAdvanced
	case percentage >= 50:
		return QuizLabelIntermediate
	default:
		return QuizLabelBeginner
	}
}
