package middleware

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator registers custom binding validations with gin's validator
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("taxid", validTaxID)
	}
}

// validTaxID accepts a CNPJ (14 digits) or CPF (11 digits), with or without
// punctuation. Pair with omitempty for optional fields.
func validTaxID(fl validator.FieldLevel) bool {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, fl.Field().String())
	return len(digits) == 11 || len(digits) == 14
}
