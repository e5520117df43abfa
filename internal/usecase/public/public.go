package public

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/dto"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

const MinSearchLength = 3

// ======================================================
// LIST
// ======================================================

// ListPublicOrders shows finished orders to anonymous callers. Only DONE and
// DELIVERED are ever visible, whatever the filter says.
type ListPublicOrders struct {
	orders domain.Repository
}

func NewListPublicOrders(orders domain.Repository) *ListPublicOrders {
	return &ListPublicOrders{orders: orders}
}

func (uc *ListPublicOrders) Execute(ctx context.Context, statuses []string) ([]dto.PublicOrderDTO, error) {
	wanted, err := publicFilter(statuses)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orders.ListOrdersByStatus(ctx, wanted)
	if err != nil {
		return nil, err
	}
	return project(orders), nil
}

func publicFilter(raw []string) ([]domain.Status, error) {
	if len(raw) == 0 {
		return domain.PublicStatuses, nil
	}

	seen := map[domain.Status]bool{}
	var out []domain.Status
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			st, err := domain.ParseStatus(part)
			if err != nil {
				return nil, err
			}
			if !st.IsPublic() {
				return nil, httperr.ErrValidation("status_not_public", httperr.FieldError{
					Field:   "status",
					Message: "must be DONE or DELIVERED",
				})
			}
			if !seen[st] {
				seen[st] = true
				out = append(out, st)
			}
		}
	}
	if len(out) == 0 {
		return domain.PublicStatuses, nil
	}
	return out, nil
}

// ======================================================
// SEARCH
// ======================================================

type SearchPublicOrders struct {
	orders domain.Repository
}

func NewSearchPublicOrders(orders domain.Repository) *SearchPublicOrders {
	return &SearchPublicOrders{orders: orders}
}

// Execute matches query as a substring of the client name, ignoring case.
func (uc *SearchPublicOrders) Execute(ctx context.Context, query string) ([]dto.PublicOrderDTO, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchLength {
		return nil, httperr.ErrValidation("search_too_short", httperr.FieldError{
			Field:   "name",
			Message: "must have at least 3 characters",
		})
	}

	orders, err := uc.orders.ListOrdersByStatus(ctx, domain.PublicStatuses)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(query)

	matched := orders[:0]
	for _, o := range orders {
		if strings.Contains(fold.String(o.Client.Name), needle) {
			matched = append(matched, o)
		}
	}
	return project(matched), nil
}

// ======================================================
// Projection
// ======================================================

// project drops anything outside the public set, then orders by status
// declaration order. Input arrives newest first and the sort is stable.
func project(orders []models.Order) []dto.PublicOrderDTO {
	visible := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if domain.Status(o.Status).IsPublic() {
			visible = append(visible, o)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return domain.Status(visible[i].Status).Rank() < domain.Status(visible[j].Status).Rank()
	})

	out := make([]dto.PublicOrderDTO, 0, len(visible))
	for i := range visible {
		out = append(out, dto.NewPublicOrderDTO(&visible[i]))
	}
	return out
}
