package handler

import (
	"strings"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/dto"
	"skillswap-hub/internal/logger"
	"skillswap-hub/internal/middleware"
	"skillswap-hub/internal/service"
	"skillswap-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SkillHandler serves the taxonomy and the verification engine.
type SkillHandler struct {
	verification service.VerificationService
	validator    *validation.Validator
	tracker      *service.RequestTracker
}

func NewSkillHandler(verification service.VerificationService, validator *validation.Validator, tracker *service.RequestTracker) *SkillHandler {
	if tracker == nil {
		tracker = service.NewRequestTracker()
	}
	return &SkillHandler{verification: verification, validator: validator, tracker: tracker}
}

// RegisterRoutes mounts the skill and verification endpoints on r.
func (h *SkillHandler) RegisterRoutes(r fiber.Router, authService service.AuthService) {
	r.Get("/skills", h.ListSkills)
	r.Get("/skills/suggestions", h.SuggestSkills)
	r.Get("/skills/:name", h.GetSkill)

	v := r.Group("/verification")
	v.Get("/methods", h.ListMethods)
	v.Post("/validate", middleware.OptionalAuth(authService), h.ValidateSkill)
	v.Post("/validate/batch", h.ValidateBatch)
	v.Post("/trust-score", h.TrustScore)
}

// ListSkills godoc
// @Summary List known skills
// @Tags skills
// @Produce json
// @Success 200 {object} dto.SkillsResponse
// @Router /skills [get]
func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	return c.JSON(dto.SkillsResponse{Skills: h.verification.Skills()})
}

// SuggestSkills godoc
// @Summary Suggest skills for a partial name
// @Tags skills
// @Produce json
// @Param q query string true "Partial skill name"
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /skills/suggestions [get]
func (h *SkillHandler) SuggestSkills(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("q")}
	}
	return c.JSON(dto.SuggestionsResponse{Query: q, Suggestions: h.verification.SuggestSkills(q)})
}

// GetSkill godoc
// @Summary Get a skill definition
// @Description Resolves the name like validation does. Quiz answers are not included.
// @Tags skills
// @Produce json
// @Param name path string true "Skill name"
// @Success 200 {object} dto.SkillDefinitionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /skills/{name} [get]
func (h *SkillHandler) GetSkill(c *fiber.Ctx) error {
	name := c.Params("name")
	def, ok := h.verification.Skill(name)
	if !ok {
		return domain.NewNotFoundError("Skill not found: " + name)
	}
	return c.JSON(dto.NewSkillDefinitionResponse(def))
}

// ListMethods godoc
// @Summary List verification methods
// @Tags verification
// @Produce json
// @Success 200 {object} dto.MethodsResponse
// @Router /verification/methods [get]
func (h *SkillHandler) ListMethods(c *fiber.Ctx) error {
	return c.JSON(dto.MethodsResponse{Methods: h.verification.Methods()})
}

// ValidateSkill godoc
// @Summary Validate a skill claim
// @Description GitHub validations are keyed per caller; a newer call cancels the older one, which answers 409.
// @Tags verification
// @Accept json
// @Produce json
// @Param request body dto.ValidateSkillRequest true "Skill claim"
// @Success 200 {object} dto.VerificationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /verification/validate [post]
func (h *SkillHandler) ValidateSkill(c *fiber.Ctx) error {
	var req dto.ValidateSkillRequest
	if err := middleware.BindJSON(c, h.validator, &req); err != nil {
		return err
	}

	ctx := c.UserContext()
	method := domain.Method(req.Method)
	if method == domain.MethodGitHub {
		key := middleware.UserID(c)
		if key == "" {
			key = "ip:" + c.IP()
		}
		trackedCtx, ticket, release := h.tracker.Begin(ctx, key)
		defer release()

		result := h.verification.ValidateSkill(trackedCtx, req.SkillName, req.Input.ToDomain(), method)
		if !ticket.Current() {
			logger.Get().Info("GitHub validation superseded", zap.String("key", key), zap.String("skill", req.SkillName))
			return domain.NewRequestSupersededError()
		}
		return c.JSON(dto.NewVerificationResponse(result, service.CalculateTrustScore(result)))
	}

	result := h.verification.ValidateSkill(ctx, req.SkillName, req.Input.ToDomain(), method)
	return c.JSON(dto.NewVerificationResponse(result, service.CalculateTrustScore(result)))
}

// ValidateBatch godoc
// @Summary Validate several skill claims
// @Tags verification
// @Accept json
// @Produce json
// @Param request body dto.BatchValidateRequest true "Skill claims"
// @Success 200 {object} dto.BatchValidateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /verification/validate/batch [post]
func (h *SkillHandler) ValidateBatch(c *fiber.Ctx) error {
	var req dto.BatchValidateRequest
	if err := middleware.BindJSON(c, h.validator, &req); err != nil {
		return err
	}

	requests := make([]domain.ValidationRequest, len(req.Requests))
	for i, r := range req.Requests {
		requests[i] = r.ToDomain()
	}
	results := h.verification.ValidateBatch(c.UserContext(), requests)

	resp := dto.BatchValidateResponse{Results: make([]*dto.VerificationResponse, len(results))}
	for i, r := range results {
		resp.Results[i] = dto.NewVerificationResponse(r, service.CalculateTrustScore(r))
	}
	return c.JSON(resp)
}

// TrustScore godoc
// @Summary Compute the trust score of a verification result
// @Tags verification
// @Accept json
// @Produce json
// @Param request body dto.TrustScoreRequest true "Verification result"
// @Success 200 {object} dto.TrustScoreResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /verification/trust-score [post]
func (h *SkillHandler) TrustScore(c *fiber.Ctx) error {
	var req dto.TrustScoreRequest
	if err := middleware.BindJSON(c, h.validator, &req); err != nil {
		return err
	}
	return c.JSON(dto.TrustScoreResponse{
		TrustScore:      service.CalculateTrustScore(req.Verification),
		ConfidenceLabel: domain.ConfidenceLabel(req.Verification.Confidence),
	})
}
