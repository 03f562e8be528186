package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report fields under their json names so error bodies match the
	// request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom validators
	v.RegisterValidation("password_strength", validatePasswordStrength)

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	// At least 8 characters
	if len(password) < 8 {
		return false
	}

	// Must contain uppercase, lowercase and digit
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`\d`).MatchString(password)

	return hasUpper && hasLower && hasDigit
}

// Translate converts validator errors into a field to messages map
// suitable for a 422 response body. Non-validator errors map to a
// single "body" entry.
func Translate(err error) map[string][]string {
	problems := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		problems["body"] = []string{"invalid request body"}
		return problems
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		problems[field] = append(problems[field], messageFor(fieldErr))
	}

	return problems
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fieldErr.Field())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", fieldErr.Field())
	case "uuid":
		return fmt.Sprintf("The %s field must be a valid UUID.", fieldErr.Field())
	case "password_strength":
		return fmt.Sprintf("The %s field must be at least 8 characters with upper, lower and digit.", fieldErr.Field())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s.", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s.", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", fieldErr.Field())
	}
}
