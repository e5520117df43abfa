package dto

import (
	"github.com/BruksfildServices01/order-desk/internal/models"
	"github.com/BruksfildServices01/order-desk/internal/timezone"
)

// PublicOrderDTO is what anonymous callers may see. Contact data, notes,
// priority, prices and client ids are left out on purpose.
type PublicOrderDTO struct {
	ID            uint    `json:"id"`
	Description   string  `json:"description"`
	ServiceKind   string  `json:"service_kind"`
	Quantity      int     `json:"quantity"`
	Status        string  `json:"status"`
	OrderDate     string  `json:"order_date"`
	PromisedDate  *string `json:"promised_date"`
	DeliveredDate *string `json:"delivered_date"`
	ClientName    string  `json:"client_name"`
}

func NewPublicOrderDTO(o *models.Order) PublicOrderDTO {
	return PublicOrderDTO{
		ID:            o.ID,
		Description:   o.Description,
		ServiceKind:   o.ServiceKind,
		Quantity:      o.Quantity,
		Status:        o.Status,
		OrderDate:     o.OrderDate.Format(timezone.DateLayout),
		PromisedDate:  timezone.FormatDate(o.PromisedDate),
		DeliveredDate: timezone.FormatDate(o.DeliveredDate),
		ClientName:    o.Client.Name,
	}
}
