package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"skillswap-hub/internal/config"
	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/dto"
	"skillswap-hub/internal/logger"
	"skillswap-hub/internal/middleware"
	"skillswap-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"})
	os.Exit(m.Run())
}

// --- Manual Mocks ---

type MockVerificationService struct {
	ValidateSkillFunc func(ctx context.Context, skillName string, input domain.UserInput, method domain.Method) *domain.VerificationResult
	ValidateBatchFunc func(ctx context.Context, requests []domain.ValidationRequest) []*domain.VerificationResult
	SuggestSkillsFunc func(partial string) []domain.Suggestion
	MethodsFunc       func() []domain.MethodInfo
	SkillsFunc        func() []string
	SkillFunc         func(name string) (domain.SkillDefinition, bool)
}

func (m *MockVerificationService) ValidateSkill(ctx context.Context, skillName string, input domain.UserInput, method domain.Method) *domain.VerificationResult {
	if m.ValidateSkillFunc != nil {
		return m.ValidateSkillFunc(ctx, skillName, input, method)
	}
	panic("MockVerificationService.ValidateSkillFunc not implemented")
}

func (m *MockVerificationService) ValidateBatch(ctx context.Context, requests []domain.ValidationRequest) []*domain.VerificationResult {
	if m.ValidateBatchFunc != nil {
		return m.ValidateBatchFunc(ctx, requests)
	}
	panic("MockVerificationService.ValidateBatchFunc not implemented")
}

func (m *MockVerificationService) SuggestSkills(partial string) []domain.Suggestion {
	if m.SuggestSkillsFunc != nil {
		return m.SuggestSkillsFunc(partial)
	}
	panic("MockVerificationService.SuggestSkillsFunc not implemented")
}

func (m *MockVerificationService) Methods() []domain.MethodInfo {
	if m.MethodsFunc != nil {
		return m.MethodsFunc()
	}
	panic("MockVerificationService.MethodsFunc not implemented")
}

func (m *MockVerificationService) Skills() []string {
	if m.SkillsFunc != nil {
		return m.SkillsFunc()
	}
	panic("MockVerificationService.SkillsFunc not implemented")
}

func (m *MockVerificationService) Skill(name string) (domain.SkillDefinition, bool) {
	if m.SkillFunc != nil {
		return m.SkillFunc(name)
	}
	panic("MockVerificationService.SkillFunc not implemented")
}

type MockQuizSessionService struct {
	StartFunc  func(ctx context.Context, userID, skillName string, level domain.Level) (*domain.QuizSession, error)
	GetFunc    func(ctx context.Context, sessionID string) (*domain.QuizSession, error)
	AnswerFunc func(ctx context.Context, sessionID string, option int) (*domain.QuizSession, error)
}

func (m *MockQuizSessionService) Start(ctx context.Context, userID, skillName string, level domain.Level) (*domain.QuizSession, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, userID, skillName, level)
	}
	panic("MockQuizSessionService.StartFunc not implemented")
}

func (m *MockQuizSessionService) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sessionID)
	}
	panic("MockQuizSessionService.GetFunc not implemented")
}

func (m *MockQuizSessionService) Answer(ctx context.Context, sessionID string, option int) (*domain.QuizSession, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, sessionID, option)
	}
	panic("MockQuizSessionService.AnswerFunc not implemented")
}

type MockSkillRecordService struct {
	AddFromValidationFunc func(ctx context.Context, userID string, in service.AddSkillInput) (*domain.UserSkillRecord, error)
	ListFunc              func(ctx context.Context, userID string) ([]*domain.UserSkillRecord, error)
	DeleteFunc            func(ctx context.Context, userID, recordID string) error
	ProfilesFunc          func(ctx context.Context, userID string) ([]*domain.SkillProfile, error)
	StatusFunc            func(ctx context.Context, userID string) (domain.UserVerificationStatus, error)
}

func (m *MockSkillRecordService) AddFromValidation(ctx context.Context, userID string, in service.AddSkillInput) (*domain.UserSkillRecord, error) {
	if m.AddFromValidationFunc != nil {
		return m.AddFromValidationFunc(ctx, userID, in)
	}
	panic("MockSkillRecordService.AddFromValidationFunc not implemented")
}

func (m *MockSkillRecordService) List(ctx context.Context, userID string) ([]*domain.UserSkillRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	panic("MockSkillRecordService.ListFunc not implemented")
}

func (m *MockSkillRecordService) Delete(ctx context.Context, userID, recordID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, recordID)
	}
	panic("MockSkillRecordService.DeleteFunc not implemented")
}

func (m *MockSkillRecordService) Profiles(ctx context.Context, userID string) ([]*domain.SkillProfile, error) {
	if m.ProfilesFunc != nil {
		return m.ProfilesFunc(ctx, userID)
	}
	panic("MockSkillRecordService.ProfilesFunc not implemented")
}

func (m *MockSkillRecordService) Status(ctx context.Context, userID string) (domain.UserVerificationStatus, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx, userID)
	}
	panic("MockSkillRecordService.StatusFunc not implemented")
}

// MockAuthService accepts "user123-token" as user123 and "user456-token" as user456.
type MockAuthService struct {
	IssueDemoTokenFunc func(ctx context.Context, userID string) (string, time.Time, error)
}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	switch tokenString {
	case "user123-token":
		return &dto.AuthClaims{UserID: "user123", TokenType: service.TokenTypeAccess}, nil
	case "user456-token":
		return &dto.AuthClaims{UserID: "user456", TokenType: service.TokenTypeAccess}, nil
	}
	return nil, service.ErrInvalidJWTToken
}

func (m *MockAuthService) CreateJWT(ctx context.Context, userID string, ttl time.Duration) (string, time.Time, error) {
	panic("MockAuthService.CreateJWT not implemented")
}

func (m *MockAuthService) IssueDemoToken(ctx context.Context, userID string) (string, time.Time, error) {
	if m.IssueDemoTokenFunc != nil {
		return m.IssueDemoTokenFunc(ctx, userID)
	}
	panic("MockAuthService.IssueDemoTokenFunc not implemented")
}

// --- helpers ---

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func newRequest(method, target string, body interface{}, token string) *http.Request {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, _ := json.Marshal(b)
			reader = bytes.NewBuffer(raw)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v), string(raw))
}

var errBoom = errors.New("boom")
