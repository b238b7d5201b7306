package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sfaraj/registrar/registry"
)

// Validator wraps the go-playground validator with registrar-specific
// rules registered.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Fields tagged `term`
// must be a valid academic term, `grade` a parseable letter grade, and
// `weekday` a weekday number 0-6.
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("term", func(fl validator.FieldLevel) bool {
		switch registry.Term(fl.Field().String()) {
		case registry.TermFall, registry.TermSpring, registry.TermSummer:
			return true
		}
		return false
	})

	v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		_, err := registry.ParseGrade(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= 0 && n <= 6
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationErrors converts validation errors to a user-friendly format
func FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "required":
				errors[field] = fmt.Sprintf("%s is required", e.Field())
			case "min":
				errors[field] = fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
			case "max":
				errors[field] = fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
			case "gte":
				errors[field] = fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
			case "lte":
				errors[field] = fmt.Sprintf("%s must be less than or equal to %s", e.Field(), e.Param())
			case "term":
				errors[field] = fmt.Sprintf("%s must be FALL, SPRING or SUMMER", e.Field())
			case "grade":
				errors[field] = fmt.Sprintf("%s is not a recognized grade", e.Field())
			case "weekday":
				errors[field] = fmt.Sprintf("%s must be a weekday number between 0 and 6", e.Field())
			default:
				errors[field] = fmt.Sprintf("%s is invalid", e.Field())
			}
		}
	}

	return errors
}
