package order

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	clientdomain "github.com/BruksfildServices01/order-desk/internal/domain/client"
	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/dto"
	"github.com/BruksfildServices01/order-desk/internal/metrics"
)

// ======================================================
// INPUT
// ======================================================

// UpdateOrderInput is a partial update; nil fields are left untouched.
// ClearPromisedDate and ClearDeliveredDate null the matching dates.
type UpdateOrderInput struct {
	UserID uint

	ClientName   *string
	ContactPhone *string

	ServiceKind *string
	Description *string
	Quantity    *int
	UnitPrice   *decimal.Decimal
	Priority    *string
	Status      *string

	OrderDate          *time.Time
	PromisedDate       *time.Time
	ClearPromisedDate  bool
	DeliveredDate      *time.Time
	ClearDeliveredDate bool

	Notes *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateOrder struct {
	orders  domain.Repository
	clients clientdomain.Repository
	audit   audit.Recorder
	today   func() time.Time
	log     *zap.Logger
}

func NewUpdateOrder(
	orders domain.Repository,
	clients clientdomain.Repository,
	rec audit.Recorder,
	today func() time.Time,
	log *zap.Logger,
) *UpdateOrder {
	return &UpdateOrder{
		orders:  orders,
		clients: clients,
		audit:   rec,
		today:   today,
		log:     log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateOrder) Execute(
	ctx context.Context,
	orderID uint,
	in UpdateOrderInput,
) (*dto.OrderDTO, error) {

	o, err := uc.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Validação dos campos enviados
	// --------------------------------------------------
	var contactPhone *string
	if in.ContactPhone != nil {
		if contactPhone, err = normalizeContactPhone(in.ContactPhone); err != nil {
			return nil, err
		}
	}

	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if err := domain.ValidateDescription(desc); err != nil {
			return nil, err
		}
		o.Description = desc
	}
	if in.ServiceKind != nil {
		kind, err := domain.ParseServiceKind(*in.ServiceKind)
		if err != nil {
			return nil, err
		}
		o.ServiceKind = string(kind)
	}
	if in.Priority != nil {
		p, err := domain.ParsePriority(*in.Priority)
		if err != nil {
			return nil, err
		}
		o.Priority = string(p)
	}
	if in.Quantity != nil {
		if err := domain.ValidateQuantity(*in.Quantity); err != nil {
			return nil, err
		}
		o.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if err := domain.ValidateUnitPrice(*in.UnitPrice); err != nil {
			return nil, err
		}
		o.UnitPrice = *in.UnitPrice
	}

	var next domain.Status
	if in.Status != nil {
		if next, err = domain.ParseStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Cliente: re-resolve pelo nome e atualiza o telefone
	// --------------------------------------------------
	if in.ClientName != nil {
		client, created, err := clientdomain.FindOrCreateByName(ctx, uc.clients, *in.ClientName, contactPhone)
		if err != nil {
			return nil, err
		}
		if created {
			metrics.ClientsAutoCreatedTotal.Inc()
		} else if contactPhone != nil && (client.Phone == nil || *client.Phone != *contactPhone) {
			client.Phone = contactPhone
			if err := uc.clients.UpdateClient(ctx, client); err != nil {
				return nil, err
			}
			uc.audit.Record(audit.Event{
				UserID:   audit.Ptr(in.UserID),
				Action:   "client_phone_updated",
				Entity:   audit.EntityClient,
				EntityID: audit.Ptr(client.ID),
				Metadata: map[string]any{"source": "order", "order_id": o.ID},
			})
		}
		o.ClientID = client.ID
		o.Client = *client
	}

	// --------------------------------------------------
	// Demais campos
	// --------------------------------------------------
	if in.ContactPhone != nil {
		o.ContactPhone = contactPhone
	}
	if in.OrderDate != nil {
		o.OrderDate = *in.OrderDate
	}
	if in.ClearPromisedDate {
		o.PromisedDate = nil
	} else if in.PromisedDate != nil {
		o.PromisedDate = in.PromisedDate
	}
	if in.ClearDeliveredDate {
		o.DeliveredDate = nil
	} else if in.DeliveredDate != nil {
		o.DeliveredDate = in.DeliveredDate
	}
	if in.Notes != nil {
		o.Notes = strings.TrimSpace(*in.Notes)
	}

	// Status last, so a manual delivered date sent together wins.
	if in.Status != nil {
		applyStatus(uc.log, o, domain.Status(o.Status), next, uc.today())
	}

	if err := uc.orders.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		UserID:   audit.Ptr(in.UserID),
		Action:   "order_updated",
		Entity:   audit.EntityOrder,
		EntityID: audit.Ptr(o.ID),
	})

	out := dto.NewOrderDTO(o)
	return &out, nil
}
