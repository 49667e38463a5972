package validation

import (
	"strings"
	"testing"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_ValidateSkillRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		req       dto.ValidateSkillRequest
		wantField string
		wantCode  domain.ErrorCode
	}{
		{"valid", dto.ValidateSkillRequest{SkillName: "React", Method: "self"}, "", ""},
		{"unknown method is left to the engine", dto.ValidateSkillRequest{SkillName: "React", Method: "telepathy"}, "", ""},
		{"missing skill", dto.ValidateSkillRequest{Method: "self"}, "skillName", domain.CodeMissingField},
		{"skill too long", dto.ValidateSkillRequest{SkillName: strings.Repeat("a", 101)}, "skillName", domain.CodeOutOfRange},
		{
			"sub-skill too long",
			dto.ValidateSkillRequest{SkillName: "React", Input: dto.UserInputRequest{SubSkills: []string{"Hooks", strings.Repeat("b", 101)}}},
			"input.subSkills[1]",
			domain.CodeOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Struct(tt.req)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.Equal(t, tt.wantCode, errs[0].Code)
		})
	}
}

func TestStruct_BatchAndQuiz(t *testing.T) {
	v := NewValidator()

	errs := v.Struct(dto.BatchValidateRequest{})
	require.Len(t, errs, 1)
	assert.Equal(t, "requests", errs[0].Field)

	errs = v.Struct(dto.BatchValidateRequest{Requests: []dto.ValidateSkillRequest{{SkillName: "React"}, {}}})
	require.Len(t, errs, 1)
	assert.Equal(t, "requests[1].skillName", errs[0].Field)

	errs = v.Struct(dto.AnswerQuizRequest{})
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	zero, negative := 0, -1
	assert.Empty(t, v.Struct(dto.AnswerQuizRequest{Option: &zero}))
	errs = v.Struct(dto.AnswerQuizRequest{Option: &negative})
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
}

func TestStruct_AddSkillRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.Struct(dto.AddSkillRequest{Method: "quiz", QuizSessionID: "01HZX3Q6Y8K2B7M4N5P9R0S1T2"}))

	errs := v.Struct(dto.AddSkillRequest{Method: "self"})
	require.Len(t, errs, 1)
	assert.Equal(t, "skillName", errs[0].Field)

	errs = v.Struct(dto.AddSkillRequest{Method: "quiz", QuizSessionID: "not-a-ulid"})
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	assert.Equal(t, "quizSessionId", errs[0].Field)
}

func TestID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ID("id", "01HZX3Q6Y8K2B7M4N5P9R0S1T2"))
	errs := v.ID("id", "")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)
	errs = v.ID("id", "../etc/passwd")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}
