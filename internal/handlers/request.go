package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/timezone"
)

var setupBinding sync.Once

// SetupBinding makes request decoding strict and reports validation
// failures by their JSON field names.
func SetupBinding() {
	setupBinding.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name == "" {
					name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
				}
				return name
			})
		}
	})
}

// bindJSON decodes the body into req and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Respond(c, bindError(err))
		return false
	}
	return true
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return httperr.ErrValidation("invalid_request")
	}

	fields := make([]httperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, httperr.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return httperr.ErrValidation("validation_failed", fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must have at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return "is invalid"
	}
}

// pathID reads a positive numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.ErrValidation("invalid_request", httperr.FieldError{
			Field:   name,
			Message: "must be a positive integer",
		}))
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// DATES
// ======================================================

// parseDate turns an optional "YYYY-MM-DD" string into a date.
func parseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	d, err := timezone.ParseDate(s)
	if err != nil {
		return nil, httperr.ErrValidation("validation_failed", httperr.FieldError{
			Field:   field,
			Message: "must be a date as YYYY-MM-DD",
		})
	}
	return &d, nil
}

// parseDateChange is parseDate for partial updates: an explicit blank
// string asks to clear the date.
func parseDateChange(field string, raw *string) (*time.Time, bool, error) {
	if raw != nil && strings.TrimSpace(*raw) == "" {
		return nil, true, nil
	}
	d, err := parseDate(field, raw)
	return d, false, err
}
