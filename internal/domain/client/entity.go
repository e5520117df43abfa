package client

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
	"github.com/BruksfildServices01/order-desk/internal/validators"
)

const (
	NameMin = 3
	NameMax = 255
)

// Contact holds the optional contact fields of a client, already trimmed.
// A nil pointer means "absent".
type Contact struct {
	Phone *string
	Email *string
}

func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

func ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < NameMin || n > NameMax {
		return httperr.ErrValidation("validation_failed", httperr.FieldError{
			Field:   "name",
			Message: "must have between 3 and 255 characters",
		})
	}
	return nil
}

// NormalizeContact strips phones to digits, lower-cases emails and turns
// blank values into nil, then checks formats and that at least one is set.
func NormalizeContact(c Contact) (Contact, error) {
	var out Contact
	var fields []httperr.FieldError

	if c.Phone != nil {
		if p := validators.NormalizePhone(*c.Phone); p != "" {
			if !validators.IsPhoneValid(p) {
				fields = append(fields, httperr.FieldError{Field: "phone", Message: "must have 10 or 11 digits"})
			}
			out.Phone = &p
		}
	}
	if c.Email != nil {
		if e := validators.NormalizeEmail(*c.Email); e != "" {
			if !validators.IsEmailValid(e) {
				fields = append(fields, httperr.FieldError{Field: "email", Message: "must be a valid email"})
			}
			out.Email = &e
		}
	}
	if len(fields) > 0 {
		return Contact{}, httperr.ErrValidation("validation_failed", fields...)
	}
	if out.Phone == nil && out.Email == nil {
		return Contact{}, httperr.ErrValidation("contact_required", httperr.FieldError{
			Field:   "phone",
			Message: "phone or email is required",
		})
	}
	return out, nil
}

// Validate checks a client row as it is about to be persisted.
func Validate(c *models.Client) error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	contact, err := NormalizeContact(Contact{Phone: c.Phone, Email: c.Email})
	if err != nil {
		return err
	}
	c.Phone, c.Email = contact.Phone, contact.Email
	return nil
}
