package order

import (
	"context"

	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/dto"
)

type GetOrder struct {
	orders domain.Repository
}

func NewGetOrder(orders domain.Repository) *GetOrder {
	return &GetOrder{orders: orders}
}

func (uc *GetOrder) Execute(ctx context.Context, orderID uint) (*dto.OrderDTO, error) {
	o, err := uc.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := dto.NewOrderDTO(o)
	return &out, nil
}
