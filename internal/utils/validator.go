package utils

import (
	"fmt"
	"regexp"
	"strings"

	"Recipe-Blog-Backend/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// lowercase, hyphenated, no leading/trailing hyphen
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func InitValidator() {
	Validate = validator.New()
	_ = Validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}

// FormatValidationErrors turns validator output into the structured
// field-level list the API returns. Every violated field appears once.
func FormatValidationErrors(err error) []domain.FieldError {
	var fieldErrors []domain.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.FieldError{{Field: "body", Message: err.Error()}}
	}

	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrors
}

func fieldName(fe validator.FieldError) string {
	// Namespace looks like "CreateRecipeRequest.Ingredients[0].Items[1]",
	// drop the struct prefix and lower-case the leading segment.
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return strings.ToLower(ns[:1]) + ns[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "slug":
		return "must be a lowercase, hyphenated, URL-safe slug"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}
