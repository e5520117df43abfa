package order

import (
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/validators"
)

// normalizeContactPhone keeps the digits of an order's contact phone. Blank
// means none.
func normalizeContactPhone(phone *string) (*string, error) {
	if phone == nil {
		return nil, nil
	}
	p := validators.NormalizePhone(*phone)
	if p == "" {
		return nil, nil
	}
	if !validators.IsPhoneValid(p) {
		return nil, httperr.ErrValidation("validation_failed", httperr.FieldError{
			Field:   "contact_phone",
			Message: "must have 10 or 11 digits",
		})
	}
	return &p, nil
}
