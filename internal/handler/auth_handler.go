package handler

import (
	"errors"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/dto"
	"skillswap-hub/internal/middleware"
	"skillswap-hub/internal/service"
	"skillswap-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService service.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/auth/token", h.IssueToken)
}

// IssueToken godoc
// @Summary Issue a demo access token
// @Description Only available when auth.allow_demo_tokens is enabled.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "User ID"
// @Success 200 {object} dto.TokenResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := middleware.BindJSON(c, h.validator, &req); err != nil {
		return err
	}
	token, expiresAt, err := h.authService.IssueDemoToken(c.UserContext(), req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrDemoTokenDisabled) {
			return c.Status(fiber.StatusForbidden).JSON(middleware.ErrorResponse{
				Code:    "DEMO_TOKENS_DISABLED",
				Message: "Demo tokens are disabled",
				Status:  fiber.StatusForbidden,
			})
		}
		return domain.NewInternalError("failed to issue token", err)
	}
	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt})
}
