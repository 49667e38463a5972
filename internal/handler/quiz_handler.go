package handler

import (
	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/dto"
	"skillswap-hub/internal/middleware"
	"skillswap-hub/internal/service"
	"skillswap-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler runs quiz sessions over HTTP.
type QuizHandler struct {
	sessions  service.QuizSessionService
	validator *validation.Validator
	ids       *middleware.ValidationMiddleware
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(sessions service.QuizSessionService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		sessions:  sessions,
		validator: validator,
		ids:       middleware.NewValidationMiddleware(validator),
	}
}

// RegisterRoutes mounts the quiz session endpoints. Sessions started with a
// token belong to that user.
func (h *QuizHandler) RegisterRoutes(r fiber.Router, authService service.AuthService) {
	g := r.Group("/quiz/sessions", middleware.OptionalAuth(authService))
	g.Post("/", h.StartSession)
	g.Get("/:id", h.ids.ValidateIDParam("id"), h.GetSession)
	g.Post("/:id/answers", h.ids.ValidateIDParam("id"), h.AnswerQuestion)
}

// StartSession godoc
// @Summary Start a quiz session
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.StartQuizRequest true "Skill and level"
// @Success 201 {object} dto.QuizSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quiz/sessions [post]
func (h *QuizHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if err := middleware.BindJSON(c, h.validator, &req); err != nil {
		return err
	}
	session, err := h.sessions.Start(c.UserContext(), middleware.UserID(c), req.SkillName, domain.Level(req.Level))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuizSessionResponse(session))
}

// GetSession godoc
// @Summary Get a quiz session
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id} [get]
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizSessionResponse(session))
}

// AnswerQuestion godoc
// @Summary Answer the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.AnswerQuizRequest true "Selected option"
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id}/answers [post]
func (h *QuizHandler) AnswerQuestion(c *fiber.Ctx) error {
	var req dto.AnswerQuizRequest
	if err := middleware.BindJSON(c, h.validator, &req); err != nil {
		return err
	}
	if _, err := h.ownedSession(c); err != nil {
		return err
	}
	session, err := h.sessions.Answer(c.UserContext(), middleware.ValidatedID(c), *req.Option)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizSessionResponse(session))
}

// ownedSession hides sessions that belong to another user.
func (h *QuizHandler) ownedSession(c *fiber.Ctx) (*domain.QuizSession, error) {
	id := middleware.ValidatedID(c)
	session, err := h.sessions.Get(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if session.UserID != "" && session.UserID != middleware.UserID(c) {
		return nil, domain.NewQuizSessionNotFoundError(id)
	}
	return session, nil
}
