package client

import (
	"context"

	"github.com/BruksfildServices01/order-desk/internal/models"
)

type Repository interface {
	CreateClient(ctx context.Context, c *models.Client) error

	// GetClient returns a client_not_found error for a missing id.
	GetClient(ctx context.Context, id uint) (*models.Client, error)

	// FindClientByName does an exact match on the stored name and returns
	// nil, nil when no client has it.
	FindClientByName(ctx context.Context, name string) (*models.Client, error)

	// ListClients filters by a substring of name, phone or email, newest first.
	ListClients(ctx context.Context, query string) ([]models.Client, error)

	UpdateClient(ctx context.Context, c *models.Client) error

	DeleteClient(ctx context.Context, id uint) error

	CountClientOrders(ctx context.Context, id uint) (int64, error)
}
