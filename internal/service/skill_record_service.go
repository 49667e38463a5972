package service

import (
	"context"
	"time"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/logger"
	"skillswap-hub/internal/util"

	"go.uber.org/zap"
)

// AddSkillInput is a request to add a verified skill to a user's profile.
// Quiz claims point at a completed quiz session instead of being validated
// again.
type AddSkillInput struct {
	SkillName     string
	Input         domain.UserInput
	Method        domain.Method
	QuizSessionID string
}

// SkillRecordService manages the skills a user has added to their profile.
type SkillRecordService interface {
	AddFromValidation(ctx context.Context, userID string, in AddSkillInput) (*domain.UserSkillRecord, error)
	List(ctx context.Context, userID string) ([]*domain.UserSkillRecord, error)
	Delete(ctx context.Context, userID, recordID string) error
	Profiles(ctx context.Context, userID string) ([]*domain.SkillProfile, error)
	Status(ctx context.Context, userID string) (domain.UserVerificationStatus, error)
}

type skillRecordService struct {
	repo         domain.SkillRecordRepository
	verification VerificationService
	quizSessions QuizSessionService
	profiles     ProfileService
	now          func() time.Time
}

func NewSkillRecordService(
	repo domain.SkillRecordRepository,
	verification VerificationService,
	quizSessions QuizSessionService,
	profiles ProfileService,
) SkillRecordService {
	return &skillRecordService{
		repo:         repo,
		verification: verification,
		quizSessions: quizSessions,
		profiles:     profiles,
		now:          time.Now,
	}
}

// AddFromValidation validates the claim and stores it. Only valid results
// are stored.
func (s *skillRecordService) AddFromValidation(ctx context.Context, userID string, in AddSkillInput) (*domain.UserSkillRecord, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("a signed-in user is required to store skills")
	}
	var result *domain.VerificationResult
	if in.Method == domain.MethodQuiz {
		completed, err := s.completedQuizResult(ctx, userID, in.QuizSessionID)
		if err != nil {
			return nil, err
		}
		result = completed
	} else {
		result = s.verification.ValidateSkill(ctx, in.SkillName, in.Input, in.Method)
	}

	if !result.IsValid {
		logger.Get().Info("Rejected skill record with invalid verification",
			zap.String("userID", userID),
			zap.String("skill", result.SkillName),
			zap.String("method", string(result.Method)))
		return nil, domain.NewVerificationRejectedError(result.SkillName).
			WithContext("recommendations", result.Recommendations)
	}

	subSkills := result.SubSkills
	if len(subSkills) == 0 {
		subSkills = nonNilStrings(in.Input.SubSkills)
	}

	now := s.now()
	record := &domain.UserSkillRecord{
		ID:           util.NewULIDAt(now),
		UserID:       userID,
		Name:         result.SkillName,
		Level:        result.SuggestedLevel,
		Experience:   in.Input.Experience,
		SubSkills:    subSkills,
		Verification: result,
		TrustScore:   CalculateTrustScore(result),
		AddedAt:      now,
	}
	if err := s.repo.CreateSkillRecord(ctx, record); err != nil {
		logger.Get().Error("Failed to store skill record", zap.Error(err), zap.String("userID", userID))
		return nil, domain.NewInternalError("failed to store skill record", err)
	}

	logger.Get().Info("Skill record added",
		zap.String("userID", userID),
		zap.String("recordID", record.ID),
		zap.String("skill", record.Name),
		zap.Int("trust_score", record.TrustScore))
	return record, nil
}

func (s *skillRecordService) completedQuizResult(ctx context.Context, userID, sessionID string) (*domain.VerificationResult, error) {
	if sessionID == "" {
		return nil, domain.NewInvalidInputError("quizSessionId is required for quiz verification")
	}
	session, err := s.quizSessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != "" && session.UserID != userID {
		return nil, domain.NewQuizSessionNotFoundError(sessionID)
	}
	if session.Status != domain.QuizCompleted {
		return nil, domain.NewInvalidInputError("quiz session is not completed yet")
	}
	return session.Result, nil
}

func (s *skillRecordService) List(ctx context.Context, userID string) ([]*domain.UserSkillRecord, error) {
	records, err := s.repo.ListSkillRecordsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list skill records", err)
	}
	if records == nil {
		records = []*domain.UserSkillRecord{}
	}
	return records, nil
}

// Delete removes a record owned by userID. Records of other users are
// reported as not found.
func (s *skillRecordService) Delete(ctx context.Context, userID, recordID string) error {
	if userID == "" {
		return domain.NewUnauthorizedError("a signed-in user is required to delete skills")
	}
	record, err := s.repo.GetSkillRecordByID(ctx, recordID)
	if err != nil {
		return domain.NewInternalError("failed to load skill record", err)
	}
	if record == nil || record.UserID != userID {
		return domain.NewSkillRecordNotFoundError(recordID)
	}
	if err := s.repo.DeleteSkillRecord(ctx, userID, recordID); err != nil {
		return domain.NewInternalError("failed to delete skill record", err)
	}
	logger.Get().Info("Skill record deleted", zap.String("userID", userID), zap.String("recordID", recordID))
	return nil
}

func (s *skillRecordService) Profiles(ctx context.Context, userID string) ([]*domain.SkillProfile, error) {
	records, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.profiles.GenerateSkillProfiles(records), nil
}

// Status is recomputed from the stored records on every call.
func (s *skillRecordService) Status(ctx context.Context, userID string) (domain.UserVerificationStatus, error) {
	records, err := s.List(ctx, userID)
	if err != nil {
		return domain.UserVerificationStatus{}, err
	}
	return s.profiles.GetUserVerificationStatus(records), nil
}
