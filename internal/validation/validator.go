package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Field names in errors use
// the json tag so they match what the client sent.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// ulid_id: record and quiz session identifiers
	_ = v.RegisterValidation("ulid_id", func(fl validator.FieldLevel) bool {
		return util.IsULID(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Struct validates a request body.
func (v *Validator) Struct(req interface{}) domain.ValidationErrors {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}

	result := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, toValidationError(fe))
	}
	return result
}

// ID validates an identifier taken from the path.
func (v *Validator) ID(field, value string) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if err := v.validate.Var(value, "ulid_id"); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, value)}
	}
	return nil
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required", "required_unless":
		return domain.NewMissingFieldError(field)
	case "max":
		return domain.ValidationError{
			Code:    domain.CodeOutOfRange,
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %s long", field, fe.Param()),
		}
	case "min":
		return domain.ValidationError{
			Code:    domain.CodeOutOfRange,
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %s", field, fe.Param()),
			Value:   fe.Value(),
		}
	default:
		return domain.NewInvalidFormatError(field, fe.Value())
	}
}

// fieldPath drops the root struct name: "AddSkillRequest.input.subSkills[2]"
// becomes "input.subSkills[2]".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
