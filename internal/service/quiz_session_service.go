package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillswap-hub/internal/cache"
	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/logger"
	"skillswap-hub/internal/util"

	"go.uber.org/zap"
)

const defaultQuizSessionTTL = 30 * time.Minute

// QuizSessionService runs quizzes one question at a time. Sessions live in
// the cache between answers and expire after the configured TTL.
type QuizSessionService interface {
	Start(ctx context.Context, userID, skillName string, level domain.Level) (*domain.QuizSession, error)
	Get(ctx context.Context, sessionID string) (*domain.QuizSession, error)
	Answer(ctx context.Context, sessionID string, option int) (*domain.QuizSession, error)
}

type quizSessionService struct {
	verification VerificationService
	cache        domain.Cache
	ttl          time.Duration
	now          func() time.Time
	newID        func(time.Time) string
}

func NewQuizSessionService(verification VerificationService, cache domain.Cache, ttl time.Duration) QuizSessionService {
	if ttl <= 0 {
		ttl = defaultQuizSessionTTL
	}
	return &quizSessionService{
		verification: verification,
		cache:        cache,
		ttl:          ttl,
		now:          time.Now,
		newID:        util.NewULIDAt,
	}
}

// Start builds a quiz for the skill and stores a fresh session. Custom skills
// and skills without questions have no quiz.
func (s *quizSessionService) Start(ctx context.Context, userID, skillName string, level domain.Level) (*domain.QuizSession, error) {
	result := s.verification.ValidateSkill(ctx, skillName, domain.UserInput{Level: level}, domain.MethodQuiz)

	now := s.now()
	session, err := domain.NewQuizSession(s.newID(now), result, now)
	if err != nil {
		logger.Get().Info("Quiz unavailable", zap.String("skill", skillName), zap.String("method", string(result.Method)))
		return nil, err
	}
	session.UserID = userID

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz session started",
		zap.String("session_id", session.ID),
		zap.String("skill", session.SkillName),
		zap.Int("questions", len(session.Questions())))
	return session, nil
}

// Get implements QuizSessionService
func (s *quizSessionService) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	key := cache.QuizSessionKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewQuizSessionNotFoundError(sessionID)
		}
		logger.Get().Error("Failed to load quiz session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load quiz session %s", sessionID), err)
	}
	if data == "" {
		return nil, domain.NewQuizSessionNotFoundError(sessionID)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Get().Error("Failed to unmarshal quiz session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to decode quiz session %s", sessionID), err)
	}
	session.Result.Normalize()
	return &session, nil
}

// Answer submits the option for the current question and persists the new state.
func (s *quizSessionService) Answer(ctx context.Context, sessionID string, option int) (*domain.QuizSession, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Submit(option, s.now()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	if session.Status == domain.QuizCompleted {
		logger.Get().Info("Quiz session completed",
			zap.String("session_id", session.ID),
			zap.Int("score", session.TotalScore),
			zap.Int("max_score", session.MaxScore()))
	}
	return session, nil
}

func (s *quizSessionService) save(ctx context.Context, session *domain.QuizSession) error {
	key := cache.QuizSessionKey(session.ID)
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to encode quiz session", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store quiz session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store quiz session %s", session.ID), err)
	}
	return nil
}
