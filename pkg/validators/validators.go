// Package validators holds custom go-playground/validator rules registered at
// startup.
package validators

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s-]+$`)

// HasLetter requires at least one letter.
func HasLetter(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// HasDigit requires at least one digit.
func HasDigit(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// PersonName allows letters, spaces and hyphens only.
func PersonName(fl validator.FieldLevel) bool {
	return namePattern.MatchString(fl.Field().String())
}

// Register attaches all custom rules to a validator instance.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasletter", HasLetter)
	_ = validate.RegisterValidation("hasdigit", HasDigit)
	_ = validate.RegisterValidation("personname", PersonName)
}
