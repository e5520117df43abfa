package order

import (
	"context"

	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/dto"
)

// ListOrdersInput holds raw query filters; blank means no filter.
type ListOrdersInput struct {
	Status      string
	ServiceKind string
	Priority    string
	ClientID    uint
}

type ListOrders struct {
	orders domain.Repository
}

func NewListOrders(orders domain.Repository) *ListOrders {
	return &ListOrders{orders: orders}
}

func (uc *ListOrders) Execute(ctx context.Context, in ListOrdersInput) ([]dto.OrderDTO, error) {
	f := domain.ListFilter{ClientID: in.ClientID}

	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = st
	}
	if in.ServiceKind != "" {
		k, err := domain.ParseServiceKind(in.ServiceKind)
		if err != nil {
			return nil, err
		}
		f.ServiceKind = k
	}
	if in.Priority != "" {
		p, err := domain.ParsePriority(in.Priority)
		if err != nil {
			return nil, err
		}
		f.Priority = p
	}

	orders, err := uc.orders.ListOrders(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderDTOs(orders), nil
}
