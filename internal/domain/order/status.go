package order

import (
	"strings"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
)

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusDelivered  Status = "DELIVERED"
	StatusCanceled   Status = "CANCELED"
)

// statusOrder is the declaration order used to group listings.
var statusOrder = []Status{
	StatusPending,
	StatusInProgress,
	StatusDone,
	StatusDelivered,
	StatusCanceled,
}

// advisory lists the transitions the workshop normally follows. It is not
// enforced; SetStatus only uses it to flag unusual jumps in the log.
var advisory = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCanceled},
	StatusInProgress: {StatusDone, StatusCanceled},
	StatusDone:       {StatusDelivered, StatusCanceled},
}

// PublicStatuses are the only states the public lookup may show.
var PublicStatuses = []Status{StatusDone, StatusDelivered}

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if st.Rank() < 0 {
		return "", httperr.ErrValidation("invalid_status", httperr.FieldError{
			Field:   "status",
			Message: "must be one of PENDING, IN_PROGRESS, DONE, DELIVERED, CANCELED",
		})
	}
	return st, nil
}

// Rank is the position of s in declaration order, -1 when unknown.
func (s Status) Rank() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

func (s Status) IsPublic() bool {
	for _, st := range PublicStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// IsAdvisoryTransition reports whether from → to follows the usual flow.
// Re-setting the current status counts as usual.
func IsAdvisoryTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, allowed := range advisory[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ===============================
// Service kind / priority
// ===============================

type ServiceKind string

const (
	ServiceSewing     ServiceKind = "SEWING"
	ServiceEmbroidery ServiceKind = "EMBROIDERY"
)

func ParseServiceKind(s string) (ServiceKind, error) {
	switch k := ServiceKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case "":
		return ServiceSewing, nil
	case ServiceSewing, ServiceEmbroidery:
		return k, nil
	}
	return "", httperr.ErrValidation("validation_failed", httperr.FieldError{
		Field:   "service_kind",
		Message: "must be SEWING or EMBROIDERY",
	})
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToUpper(strings.TrimSpace(s))); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", httperr.ErrValidation("validation_failed", httperr.FieldError{
		Field:   "priority",
		Message: "must be LOW, MEDIUM or HIGH",
	})
}
