package order

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

const (
	DescriptionMin = 5
	DescriptionMax = 255
)

// Total is quantity × unit price rounded to cents. It is always derived,
// never read back from storage.
func Total(o *models.Order) decimal.Decimal {
	return decimal.NewFromInt(int64(o.Quantity)).Mul(o.UnitPrice).Round(2)
}

// ApplyStatus sets the status and, the first time an order becomes
// DELIVERED without a delivery date, stamps today. It reports whether the
// delivery date was stamped.
func ApplyStatus(o *models.Order, next Status, today time.Time) bool {
	o.Status = string(next)
	if next == StatusDelivered && o.DeliveredDate == nil {
		d := today
		o.DeliveredDate = &d
		return true
	}
	return false
}

// ===============================
// Field rules
// ===============================

func ValidateDescription(desc string) error {
	n := utf8.RuneCountInString(desc)
	if n < DescriptionMin || n > DescriptionMax {
		return httperr.ErrValidation("validation_failed", httperr.FieldError{
			Field:   "description",
			Message: "must have between 5 and 255 characters",
		})
	}
	return nil
}

func ValidateQuantity(q int) error {
	if q < 1 {
		return httperr.ErrValidation("validation_failed", httperr.FieldError{
			Field:   "quantity",
			Message: "must be at least 1",
		})
	}
	return nil
}

// MaxUnitPrice is the largest value the decimal(10,2) column holds.
var MaxUnitPrice = decimal.RequireFromString("99999999.99")

func ValidateUnitPrice(p decimal.Decimal) error {
	msg := ""
	switch {
	case p.IsNegative():
		msg = "must not be negative"
	case p.GreaterThan(MaxUnitPrice):
		msg = "must be at most 99999999.99"
	case !p.Equal(p.Truncate(2)):
		msg = "must have at most 2 decimal places"
	}
	if msg != "" {
		return httperr.ErrValidation("validation_failed", httperr.FieldError{
			Field:   "unit_price",
			Message: msg,
		})
	}
	return nil
}
