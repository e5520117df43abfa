package order

import (
	"context"

	"github.com/BruksfildServices01/order-desk/internal/models"
)

type ListFilter struct {
	Status      Status
	ServiceKind ServiceKind
	Priority    Priority
	ClientID    uint
}

type Repository interface {
	CreateOrder(ctx context.Context, o *models.Order) error

	// GetOrder loads the order with its client; a missing id yields an
	// order_not_found error.
	GetOrder(ctx context.Context, id uint) (*models.Order, error)

	// ListOrders returns matching orders with clients, newest first.
	ListOrders(ctx context.Context, f ListFilter) ([]models.Order, error)

	// ListOrdersByStatus returns orders in any of the given statuses with
	// clients, newest first.
	ListOrdersByStatus(ctx context.Context, statuses []Status) ([]models.Order, error)

	// ListOrdersForReport returns every order with its client by id.
	ListOrdersForReport(ctx context.Context) ([]models.Order, error)

	UpdateOrder(ctx context.Context, o *models.Order) error

	DeleteOrder(ctx context.Context, id uint) error
}
