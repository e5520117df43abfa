package order

import (
	"context"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
)

type DeleteOrder struct {
	orders domain.Repository
	audit  audit.Recorder
}

func NewDeleteOrder(orders domain.Repository, rec audit.Recorder) *DeleteOrder {
	return &DeleteOrder{orders: orders, audit: rec}
}

func (uc *DeleteOrder) Execute(ctx context.Context, userID, orderID uint) error {
	if err := uc.orders.DeleteOrder(ctx, orderID); err != nil {
		return err
	}

	uc.audit.Record(audit.Event{
		UserID:   audit.Ptr(userID),
		Action:   "order_deleted",
		Entity:   audit.EntityOrder,
		EntityID: audit.Ptr(orderID),
	})
	return nil
}
