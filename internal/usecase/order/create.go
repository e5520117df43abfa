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
	"github.com/BruksfildServices01/order-desk/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	UserID uint

	ClientName   string
	ContactPhone *string

	ServiceKind string
	Description string
	Quantity    *int
	UnitPrice   *decimal.Decimal
	Priority    string

	OrderDate     *time.Time
	PromisedDate  *time.Time
	DeliveredDate *time.Time

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	orders  domain.Repository
	clients clientdomain.Repository
	audit   audit.Recorder
	today   func() time.Time
	log     *zap.Logger
}

func NewCreateOrder(
	orders domain.Repository,
	clients clientdomain.Repository,
	rec audit.Recorder,
	today func() time.Time,
	log *zap.Logger,
) *CreateOrder {
	return &CreateOrder{
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

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*dto.OrderDTO, error) {

	// --------------------------------------------------
	// Campos do pedido
	// --------------------------------------------------
	description := strings.TrimSpace(in.Description)
	if err := domain.ValidateDescription(description); err != nil {
		return nil, err
	}

	kind, err := domain.ParseServiceKind(in.ServiceKind)
	if err != nil {
		return nil, err
	}
	priority, err := domain.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if err := domain.ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	price := decimal.Zero
	if in.UnitPrice != nil {
		price = *in.UnitPrice
	}
	if err := domain.ValidateUnitPrice(price); err != nil {
		return nil, err
	}

	contactPhone, err := normalizeContactPhone(in.ContactPhone)
	if err != nil {
		return nil, err
	}

	orderDate := uc.today()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	// --------------------------------------------------
	// Cliente (find or create by name)
	// --------------------------------------------------
	client, created, err := clientdomain.FindOrCreateByName(ctx, uc.clients, in.ClientName, contactPhone)
	if err != nil {
		return nil, err
	}
	if created {
		metrics.ClientsAutoCreatedTotal.Inc()
		uc.audit.Record(audit.Event{
			UserID:   audit.Ptr(in.UserID),
			Action:   "client_created",
			Entity:   audit.EntityClient,
			EntityID: audit.Ptr(client.ID),
			Metadata: map[string]any{"source": "order"},
		})
	}

	// --------------------------------------------------
	// Criação
	// --------------------------------------------------
	o := &models.Order{
		ClientID:      client.ID,
		ServiceKind:   string(kind),
		Description:   description,
		Quantity:      quantity,
		UnitPrice:     price,
		Status:        string(domain.InitialStatus()),
		Priority:      string(priority),
		OrderDate:     orderDate,
		PromisedDate:  in.PromisedDate,
		DeliveredDate: in.DeliveredDate,
		ContactPhone:  contactPhone,
		Notes:         strings.TrimSpace(in.Notes),
	}

	if err := uc.orders.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(o.ServiceKind).Inc()
	uc.audit.Record(audit.Event{
		UserID:   audit.Ptr(in.UserID),
		Action:   "order_created",
		Entity:   audit.EntityOrder,
		EntityID: audit.Ptr(o.ID),
	})
	uc.log.Debug("order created", zap.Uint("order_id", o.ID), zap.Uint("client_id", client.ID))

	out := dto.NewOrderDTO(o)
	return &out, nil
}
