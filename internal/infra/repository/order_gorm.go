package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

var _ domain.Repository = (*OrderGormRepository)(nil)

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(o).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return r.reload(ctx, o)
}

func (r *OrderGormRepository) UpdateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(o)
	if res.Error != nil {
		return fmt.Errorf("update order: %w", res.Error)
	}
	return r.reload(ctx, o)
}

func (r *OrderGormRepository) DeleteOrder(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("order_not_found")
	}
	return nil
}

// reload refreshes o from the store with its client joined.
func (r *OrderGormRepository) reload(ctx context.Context, o *models.Order) error {
	var fresh models.Order
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&fresh, o.ID).Error; err != nil {
		return lookupErr(err, "order_not_found", "reload order")
	}
	*o = fresh
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	id uint,
) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&o, id).Error; err != nil {
		return nil, lookupErr(err, "order_not_found", "get order")
	}
	return &o, nil
}

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Order, error) {
	q := r.db.WithContext(ctx).Preload("Client")

	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.ServiceKind != "" {
		q = q.Where("service_kind = ?", string(f.ServiceKind))
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", string(f.Priority))
	}
	if f.ClientID != 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}

	var orders []models.Order
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrdersByStatus(
	ctx context.Context,
	statuses []domain.Status,
) ([]models.Order, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	values := make([]string, len(statuses))
	for i, st := range statuses {
		values[i] = string(st)
	}

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("status IN ?", values).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrdersForReport(
	ctx context.Context,
) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders for report: %w", err)
	}
	return orders, nil
}
