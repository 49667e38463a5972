package service

import (
	"fmt"

	"skillswap-hub/internal/domain"
)

const quizStartConfidence = 0.9

// startQuiz attaches the question bank for the requested level (intermediate
// by default). A skill without any bank still gets a result, with zero
// questions; quiz sessions refuse to start on it.
func startQuiz(def domain.SkillDefinition, input domain.UserInput, result *domain.VerificationResult) {
	requested := domain.LevelOrDefault(input.Level, domain.LevelIntermediate)
	bank, bankLevel := def.QuizBank(requested)

	result.Quiz = domain.NewQuizData(bankLevel, bank)
	result.IsValid = true
	result.Confidence = quizStartConfidence
	result.VerificationRequired = true
	result.Recommend(fmt.Sprintf("Take a %s level quiz to verify your %s skills", requested, result.SkillName))
}
