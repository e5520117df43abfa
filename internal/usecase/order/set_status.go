package order

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/dto"
	"github.com/BruksfildServices01/order-desk/internal/metrics"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

type SetOrderStatus struct {
	orders domain.Repository
	audit  audit.Recorder
	today  func() time.Time
	log    *zap.Logger
}

func NewSetOrderStatus(
	orders domain.Repository,
	rec audit.Recorder,
	today func() time.Time,
	log *zap.Logger,
) *SetOrderStatus {
	return &SetOrderStatus{
		orders: orders,
		audit:  rec,
		today:  today,
		log:    log,
	}
}

// Execute sets the status of an order. Any known status is accepted;
// delivery is stamped the first time the order becomes DELIVERED.
func (uc *SetOrderStatus) Execute(
	ctx context.Context,
	userID uint,
	orderID uint,
	status string,
) (*dto.OrderDTO, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	o, err := uc.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	prev := domain.Status(o.Status)
	applyStatus(uc.log, o, prev, next, uc.today())

	if err := uc.orders.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		UserID:   audit.Ptr(userID),
		Action:   "order_status_changed",
		Entity:   audit.EntityOrder,
		EntityID: audit.Ptr(o.ID),
		Metadata: map[string]any{"from": prev, "to": next},
	})

	out := dto.NewOrderDTO(o)
	return &out, nil
}

// applyStatus moves o to next, logging jumps outside the usual flow.
func applyStatus(log *zap.Logger, o *models.Order, prev, next domain.Status, today time.Time) {
	usual := domain.IsAdvisoryTransition(prev, next)
	if !usual {
		log.Warn("order status outside usual flow",
			zap.Uint("order_id", o.ID),
			zap.String("from", string(prev)),
			zap.String("to", string(next)),
		)
	}

	if domain.ApplyStatus(o, next, today) {
		log.Debug("delivery date stamped", zap.Uint("order_id", o.ID))
	}

	if prev != next {
		metrics.OrderStatusChangesTotal.WithLabelValues(string(next), strconv.FormatBool(usual)).Inc()
	}
}
