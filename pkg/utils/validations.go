package utils

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// E.164: "+" then a 1-9 first digit and 1-14 more digits.
var e164Regex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

func IsE164(phone string) bool {
	return e164Regex.MatchString(strings.TrimSpace(phone))
}

func IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}

// RegisterValidations adds the custom binding tags to gin's validator engine.
func RegisterValidations(v *validator.Validate) {
	v.RegisterValidation("isemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	v.RegisterValidation("isphone", func(fl validator.FieldLevel) bool {
		return IsE164(fl.Field().String())
	})
}
