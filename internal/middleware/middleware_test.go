package middleware

import (
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
	"skillswap-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"})
	os.Exit(m.Run())
}

// ManualMockAuthService lets each test decide how tokens validate.
type ManualMockAuthService struct {
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateJWTFunc not set on mock")
}

func (m *ManualMockAuthService) CreateJWT(ctx context.Context, userID string, ttl time.Duration) (string, time.Time, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) IssueDemoToken(ctx context.Context, userID string) (string, time.Time, error) {
	panic("not implemented in mock")
}

func tokenService() *ManualMockAuthService {
	return &ManualMockAuthService{ValidateJWTFunc: func(ctx context.Context, token string) (*dto.AuthClaims, error) {
		switch token {
		case "good":
			return &dto.AuthClaims{UserID: "user123", TokenType: "access"}, nil
		case "refresh":
			return &dto.AuthClaims{UserID: "user123", TokenType: "refresh"}, nil
		default:
			return nil, errors.New("invalid jwt token")
		}
	}}
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
}

func TestProtected(t *testing.T) {
	app := fiber.New()
	app.Get("/me", Protected(tokenService()), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", fiber.StatusUnauthorized, "MISSING_AUTH_HEADER"},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized, "INVALID_AUTH_SCHEME"},
		{"empty token", "Bearer ", fiber.StatusUnauthorized, "EMPTY_TOKEN"},
		{"invalid token", "Bearer nope", fiber.StatusUnauthorized, "INVALID_TOKEN"},
		{"refresh token", "Bearer refresh", fiber.StatusForbidden, "INVALID_TOKEN_TYPE"},
		{"valid token", "Bearer good", fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(AuthorizationHeader, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantCode == "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, "user123", string(body))
				return
			}
			var errResp ErrorResponse
			decode(t, resp, &errResp)
			assert.Equal(t, tt.wantCode, errResp.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/maybe", OptionalAuth(tokenService()), func(c *fiber.Ctx) error {
		if UserID(c) == "" {
			return c.SendString("anonymous")
		}
		return c.SendString(UserID(c))
	})

	for header, want := range map[string]string{
		"":               "anonymous",
		"Basic abc":      "anonymous",
		"Bearer nope":    "anonymous",
		"Bearer refresh": "anonymous",
		"Bearer good":    "user123",
	} {
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		if header != "" {
			req.Header.Set(AuthorizationHeader, header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, want, string(body), "header %q", header)
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"record not found", domain.NewSkillRecordNotFoundError("x"), http.StatusNotFound, "SKILL_RECORD_NOT_FOUND"},
		{"session not found", domain.NewQuizSessionNotFoundError("x"), http.StatusNotFound, "QUIZ_SESSION_NOT_FOUND"},
		{"invalid answer", domain.NewInvalidAnswerError("bad"), http.StatusBadRequest, "INVALID_ANSWER"},
		{"superseded", domain.NewRequestSupersededError(), http.StatusConflict, "REQUEST_SUPERSEDED"},
		{"already completed", domain.NewQuizAlreadyCompletedError("x"), http.StatusConflict, "QUIZ_ALREADY_COMPLETED"},
		{"quiz unavailable", domain.NewQuizUnavailableError("Node.js"), http.StatusUnprocessableEntity, "QUIZ_UNAVAILABLE"},
		{"rejected", domain.NewVerificationRejectedError("React"), http.StatusUnprocessableEntity, "VERIFICATION_REJECTED"},
		{"llm", domain.NewLLMServiceError(errors.New("down")), http.StatusServiceUnavailable, "LLM_SERVICE_ERROR"},
		{"internal", domain.NewInternalError("boom", errors.New("db")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"fiber error", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown", errors.New("plain"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}

func TestErrorHandler_DetailsAndValidation(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/rejected", func(c *fiber.Ctx) error {
		return domain.NewVerificationRejectedError("React").WithContext("recommendations", []string{"Take a quiz"})
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return domain.ValidationErrors{domain.NewMissingFieldError("skillName")}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/rejected", nil))
	require.NoError(t, err)
	var rejected ErrorResponse
	decode(t, resp, &rejected)
	assert.Equal(t, []interface{}{"Take a quiz"}, rejected.Details["recommendations"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/invalid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var invalid ValidationErrorResponse
	decode(t, resp, &invalid)
	assert.Equal(t, "VALIDATION_ERROR", invalid.Code)
	require.Len(t, invalid.Errors, 1)
	assert.Equal(t, "skillName", invalid.Errors[0].Field)
}

func TestRequestIDAndAccessLog(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestID(), AccessLog())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString(RequestIDFrom(c)) })
	app.Get("/fail", func(c *fiber.Ctx) error { return domain.NewSkillRecordNotFoundError("x") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	generated := resp.Header.Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, generated, string(body))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "trace-abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "trace-abc", resp.Header.Get(RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidateIDParam(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	vm := NewValidationMiddleware(validation.NewValidator())
	app.Get("/records/:id", vm.ValidateIDParam("id"), func(c *fiber.Ctx) error {
		return c.SendString(ValidatedID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/records/01HZX3Q6Y8K2B7M4N5P9R0S1T2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/records/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
