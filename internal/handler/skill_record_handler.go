package handler

import (
	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/dto"
	"skillswap-hub/internal/middleware"
	"skillswap-hub/internal/service"
	"skillswap-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SkillRecordHandler manages the caller's stored skills.
type SkillRecordHandler struct {
	records   service.SkillRecordService
	validator *validation.Validator
	ids       *middleware.ValidationMiddleware
}

func NewSkillRecordHandler(records service.SkillRecordService, validator *validation.Validator) *SkillRecordHandler {
	return &SkillRecordHandler{
		records:   records,
		validator: validator,
		ids:       middleware.NewValidationMiddleware(validator),
	}
}

// RegisterRoutes mounts the record endpoints. Everything under /users/me
// requires a token.
func (h *SkillRecordHandler) RegisterRoutes(r fiber.Router, authService service.AuthService) {
	me := r.Group("/users/me", middleware.Protected(authService))
	me.Get("/skills", h.ListMySkills)
	me.Post("/skills", h.AddMySkill)
	me.Get("/skills/profile", h.GetMySkillProfiles)
	me.Delete("/skills/:id", h.ids.ValidateIDParam("id"), h.DeleteMySkill)
	me.Get("/verification-status", h.GetMyVerificationStatus)

	r.Get("/users/:userId/verification-status", h.GetUserVerificationStatus)
}

// ListMySkills godoc
// @Summary List my skills
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SkillRecordListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me/skills [get]
func (h *SkillRecordHandler) ListMySkills(c *fiber.Ctx) error {
	records, err := h.records.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	resp := dto.SkillRecordListResponse{Skills: make([]*dto.SkillRecordResponse, len(records))}
	for i, r := range records {
		resp.Skills[i] = dto.NewSkillRecordResponse(r)
	}
	return c.JSON(resp)
}

// AddMySkill godoc
// @Summary Add a verified skill
// @Description Runs validation and stores the skill only if the result is valid.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AddSkillRequest true "Skill claim"
// @Success 201 {object} dto.SkillRecordResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /users/me/skills [post]
func (h *SkillRecordHandler) AddMySkill(c *fiber.Ctx) error {
	var req dto.AddSkillRequest
	if err := middleware.BindJSON(c, h.validator, &req); err != nil {
		return err
	}
	record, err := h.records.AddFromValidation(c.UserContext(), middleware.UserID(c), service.AddSkillInput{
		SkillName:     req.SkillName,
		Input:         req.Input.ToDomain(),
		Method:        domain.Method(req.Method),
		QuizSessionID: req.QuizSessionID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSkillRecordResponse(record))
}

// DeleteMySkill godoc
// @Summary Remove a skill
// @Tags users
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/me/skills/{id} [delete]
func (h *SkillRecordHandler) DeleteMySkill(c *fiber.Ctx) error {
	if err := h.records.Delete(c.UserContext(), middleware.UserID(c), middleware.ValidatedID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMySkillProfiles godoc
// @Summary Get my skill profiles
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SkillProfileListResponse
// @Router /users/me/skills/profile [get]
func (h *SkillRecordHandler) GetMySkillProfiles(c *fiber.Ctx) error {
	profiles, err := h.records.Profiles(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	resp := dto.SkillProfileListResponse{Profiles: make([]*dto.SkillProfileResponse, len(profiles))}
	for i, p := range profiles {
		resp.Profiles[i] = dto.NewSkillProfileResponse(p)
	}
	return c.JSON(resp)
}

// GetMyVerificationStatus godoc
// @Summary Get my verification badge
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.UserVerificationStatus
// @Router /users/me/verification-status [get]
func (h *SkillRecordHandler) GetMyVerificationStatus(c *fiber.Ctx) error {
	return h.writeStatus(c, middleware.UserID(c))
}

// GetUserVerificationStatus godoc
// @Summary Get a user's verification badge
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} domain.UserVerificationStatus
// @Router /users/{userId}/verification-status [get]
func (h *SkillRecordHandler) GetUserVerificationStatus(c *fiber.Ctx) error {
	return h.writeStatus(c, c.Params("userId"))
}

func (h *SkillRecordHandler) writeStatus(c *fiber.Ctx, userID string) error {
	status, err := h.records.Status(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(status)
}
