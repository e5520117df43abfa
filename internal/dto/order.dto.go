package dto

import (
	"time"

	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/models"
	"github.com/BruksfildServices01/order-desk/internal/timezone"
)

// OrderDTO is the staff view of an order: every field, the joined client
// and the derived total. Money is rendered with two decimals.
type OrderDTO struct {
	ID uint `json:"id"`

	Client models.Client `json:"client"`

	ServiceKind string `json:"service_kind"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`

	Status   string `json:"status"`
	Priority string `json:"priority"`

	OrderDate     string  `json:"order_date"`
	PromisedDate  *string `json:"promised_date"`
	DeliveredDate *string `json:"delivered_date"`

	ContactPhone *string `json:"contact_phone"`
	Notes        string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewOrderDTO(o *models.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID,
		Client:        o.Client,
		ServiceKind:   o.ServiceKind,
		Description:   o.Description,
		Quantity:      o.Quantity,
		UnitPrice:     o.UnitPrice.StringFixed(2),
		Total:         domain.Total(o).StringFixed(2),
		Status:        o.Status,
		Priority:      o.Priority,
		OrderDate:     o.OrderDate.Format(timezone.DateLayout),
		PromisedDate:  timezone.FormatDate(o.PromisedDate),
		DeliveredDate: timezone.FormatDate(o.DeliveredDate),
		ContactPhone:  o.ContactPhone,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func NewOrderDTOs(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderDTO(&orders[i]))
	}
	return out
}
