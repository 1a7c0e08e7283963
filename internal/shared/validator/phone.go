package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phoneRegex matches Korean mobile numbers: 010-1234-5678 or 01012345678
var phoneRegex = regexp.MustCompile(`^01[0-9]-?[0-9]{4}-?[0-9]{4}$`)

// ValidatePhone validates a Korean mobile phone number
func ValidatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}
