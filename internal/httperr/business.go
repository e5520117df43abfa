package httperr

import "errors"

type Kind int

const (
	KindBusiness Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindTooManyAttempts
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BusinessError carries a stable machine code through use cases up to the
// handler, which turns it into an HTTP status via Respond.
type BusinessError struct {
	Kind   Kind
	Code   string
	Fields []FieldError
}

func (e BusinessError) Error() string {
	return e.Code
}

// Is matches any BusinessError with the same kind and code, so sentinel
// values work with errors.Is.
func (e BusinessError) Is(target error) bool {
	t, ok := target.(BusinessError)
	return ok && t.Kind == e.Kind && t.Code == e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindBusiness, Code: code}
}

func ErrValidation(code string, fields ...FieldError) error {
	return BusinessError{Kind: KindValidation, Code: code, Fields: fields}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrUnauthorized(code string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrTooManyAttempts(code string) error {
	return BusinessError{Kind: KindTooManyAttempts, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf reports the kind of a BusinessError in err's chain.
func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}
