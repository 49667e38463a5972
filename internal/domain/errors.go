package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Field-level validation errors
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Verification specific errors
	CodeSkillRecordNotFound  ErrorCode = "SKILL_RECORD_NOT_FOUND"
	CodeQuizSessionNotFound  ErrorCode = "QUIZ_SESSION_NOT_FOUND"
	CodeQuizUnavailable      ErrorCode = "QUIZ_UNAVAILABLE"
	CodeQuizAlreadyCompleted ErrorCode = "QUIZ_ALREADY_COMPLETED"
	CodeInvalidAnswer        ErrorCode = "INVALID_ANSWER"
	CodeVerificationRejected ErrorCode = "VERIFICATION_REJECTED"
	CodeRequestSuperseded    ErrorCode = "REQUEST_SUPERSEDED"
	CodeLLMServiceError      ErrorCode = "LLM_SERVICE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches domain errors by code so callers can compare against the New* helpers.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithContext attaches a key/value pair that the HTTP layer renders as error details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewSkillRecordNotFoundError(recordID string) *DomainError {
	return NewError(CodeSkillRecordNotFound, fmt.Sprintf("Skill record not found with ID: %s", recordID), nil)
}

func NewQuizSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeQuizSessionNotFound, fmt.Sprintf("Quiz session not found with ID: %s", sessionID), nil)
}

func NewQuizUnavailableError(skillName string) *DomainError {
	return NewError(CodeQuizUnavailable, fmt.Sprintf("No quiz is available for skill: %s", skillName), nil)
}

func NewQuizAlreadyCompletedError(sessionID string) *DomainError {
	return NewError(CodeQuizAlreadyCompleted, fmt.Sprintf("Quiz session %s is already completed", sessionID), nil)
}

func NewInvalidAnswerError(message string) *DomainError {
	return NewError(CodeInvalidAnswer, message, nil)
}

func NewVerificationRejectedError(skillName string) *DomainError {
	return NewError(CodeVerificationRejected, fmt.Sprintf("Verification for %s did not produce a usable result", skillName), nil)
}

func NewRequestSupersededError() *DomainError {
	return NewError(CodeRequestSuperseded, "A newer verification request replaced this one", nil)
}

func NewLLMServiceError(err error) *DomainError {
	return NewError(CodeLLMServiceError, "Failed to process with LLM service", err)
}
