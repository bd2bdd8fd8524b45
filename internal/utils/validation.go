package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// emailShapeRe accepts localpart@domain.tld: no whitespace, one @
	// separator, and a dot somewhere after it.
	emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// digitsRe accepts non-empty strings of decimal digits only.
	digitsRe = regexp.MustCompile(`^\d+$`)
)

// InitValidator initializes the validator with custom validations.
func InitValidator() {
	validate = validator.New()

	// Report json tag names instead of struct field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations(validate)

	log.Info().Msg("Validator initialized")
}

// GetValidator returns the singleton validator instance.
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// registerCustomValidations adds the field-shape checks the input DTOs use.
func registerCustomValidations(v *validator.Validate) {
	checks := map[string]validator.Func{
		// notblank rejects values that are empty after trimming whitespace.
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		// email_shape enforces the localpart@domain.tld shape.
		"email_shape": func(fl validator.FieldLevel) bool {
			return emailShapeRe.MatchString(fl.Field().String())
		},
		// digits requires a non-empty all-digit value.
		"digits": func(fl validator.FieldLevel) bool {
			return digitsRe.MatchString(fl.Field().String())
		},
	}

	for tag, fn := range checks {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Error().Err(err).Str("tag", tag).Msg("Failed to register validation")
		}
	}
}

// violationMessages maps a failed field (by json name) to its user-facing
// violation message. One message per field covers both the absent and the
// malformed case, matching the API contract.
var violationMessages = map[string]string{
	"name":           constants.MsgNameEmpty,
	"email":          constants.MsgEmailInvalid,
	"password":       constants.MsgPasswordTooShort,
	"student_number": constants.MsgStudentNumberInvalid,
	"phone":          constants.MsgPhoneInvalid,
}

// CollectViolations validates a request DTO and returns every violation in
// struct field order. An empty slice means the input is valid. Violations are
// collected, never short-circuited, so a caller sees all problems at once.
func CollectViolations(v interface{}) []string {
	err := GetValidator().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a field-level failure; surface it as a single violation.
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if msg, ok := violationMessages[fieldErr.Field()]; ok {
			violations = append(violations, msg)
			continue
		}
		violations = append(violations, fieldErr.Field()+" failed validation on the '"+fieldErr.Tag()+"' rule")
	}
	return violations
}

// IsValidEmail checks whether a string has the accepted email shape.
func IsValidEmail(email string) bool {
	return emailShapeRe.MatchString(email)
}
