package middleware

import (
	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const validatedIDKey = "validated_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	if v == nil {
		v = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: v}
}

// ValidateIDParam checks that the path parameter is a ULID.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(param)
		if errs := vm.validator.ID(param, id); len(errs) > 0 {
			return errs
		}
		c.Locals(validatedIDKey, id)
		return c.Next()
	}
}

// ValidatedID returns the id checked by ValidateIDParam.
func ValidatedID(c *fiber.Ctx) string {
	id, _ := c.Locals(validatedIDKey).(string)
	return id
}

// BindJSON parses the body into req and validates it.
func BindJSON(c *fiber.Ctx, v *validation.Validator, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := v.Struct(req); len(errs) > 0 {
		return errs
	}
	return nil
}
