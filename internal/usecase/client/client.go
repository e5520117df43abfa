package client

import (
	"context"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	domain "github.com/BruksfildServices01/order-desk/internal/domain/client"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateClientInput struct {
	UserID uint
	Name   string
	Phone  *string
	Email  *string
}

type CreateClient struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateClient(repo domain.Repository, rec audit.Recorder) *CreateClient {
	return &CreateClient{repo: repo, audit: rec}
}

func (uc *CreateClient) Execute(ctx context.Context, in CreateClientInput) (*models.Client, error) {
	c := &models.Client{
		Name:  domain.NormalizeName(in.Name),
		Phone: in.Phone,
		Email: in.Email,
	}
	if err := domain.Validate(c); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		UserID:   audit.Ptr(in.UserID),
		Action:   "client_created",
		Entity:   audit.EntityClient,
		EntityID: audit.Ptr(c.ID),
	})
	return c, nil
}

// ======================================================
// GET / LIST
// ======================================================

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(ctx context.Context, id uint) (*models.Client, error) {
	return uc.repo.GetClient(ctx, id)
}

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context, query string) ([]models.Client, error) {
	return uc.repo.ListClients(ctx, query)
}

// ======================================================
// UPDATE
// ======================================================

// UpdateClientInput is partial. An empty Phone or Email clears the field,
// as long as the other one remains.
type UpdateClientInput struct {
	UserID uint
	Name   *string
	Phone  *string
	Email  *string
}

type UpdateClient struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateClient(repo domain.Repository, rec audit.Recorder) *UpdateClient {
	return &UpdateClient{repo: repo, audit: rec}
}

func (uc *UpdateClient) Execute(ctx context.Context, id uint, in UpdateClientInput) (*models.Client, error) {
	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		c.Name = domain.NormalizeName(*in.Name)
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	if in.Email != nil {
		c.Email = in.Email
	}

	// Contact invariant is checked on the merged record.
	if err := domain.Validate(c); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		UserID:   audit.Ptr(in.UserID),
		Action:   "client_updated",
		Entity:   audit.EntityClient,
		EntityID: audit.Ptr(c.ID),
	})
	return c, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteClient struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteClient(repo domain.Repository, rec audit.Recorder) *DeleteClient {
	return &DeleteClient{repo: repo, audit: rec}
}

func (uc *DeleteClient) Execute(ctx context.Context, userID, id uint) error {
	if _, err := uc.repo.GetClient(ctx, id); err != nil {
		return err
	}

	n, err := uc.repo.CountClientOrders(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return httperr.ErrConflict("client_has_orders")
	}

	if err := uc.repo.DeleteClient(ctx, id); err != nil {
		return err
	}

	uc.audit.Record(audit.Event{
		UserID:   audit.Ptr(userID),
		Action:   "client_deleted",
		Entity:   audit.EntityClient,
		EntityID: audit.Ptr(id),
	})
	return nil
}
