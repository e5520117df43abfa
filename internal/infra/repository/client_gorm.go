package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/order-desk/internal/domain/client"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

var _ domain.Repository = (*ClientGormRepository)(nil)

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, lookupErr(err, "client_not_found", "get client")
	}
	return &c, nil
}

func (r *ClientGormRepository) FindClientByName(
	ctx context.Context,
	name string,
) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id ASC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client by name: %w", err)
	}
	return &c, nil
}

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
	query string,
) ([]models.Client, error) {
	q := r.db.WithContext(ctx)

	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientGormRepository) DeleteClient(
	ctx context.Context,
	id uint,
) error {
	n, err := r.CountClientOrders(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return httperr.ErrConflict("client_has_orders")
	}

	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return httperr.ErrConflict("client_has_orders")
		}
		return fmt.Errorf("delete client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("client_not_found")
	}
	return nil
}

func (r *ClientGormRepository) CountClientOrders(
	ctx context.Context,
	id uint,
) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("client_id = ?", id).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count client orders: %w", err)
	}
	return n, nil
}
