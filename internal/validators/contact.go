package validators

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// PlaceholderPhone is stored for clients auto-created from an order that
// carried no phone number.
const PlaceholderPhone = "00000000000"

var validate = validator.New()

// NormalizePhone keeps only the digits of a phone number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid accepts Brazilian landline and mobile numbers with area
// code: 10 or 11 digits once punctuation is stripped.
func IsPhoneValid(phone string) bool {
	n := len(NormalizePhone(phone))
	return n == 10 || n == 11
}

func IsEmailValid(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
