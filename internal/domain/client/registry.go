package client

import (
	"context"

	"github.com/BruksfildServices01/order-desk/internal/models"
	"github.com/BruksfildServices01/order-desk/internal/validators"
)

// FindOrCreateByName resolves a client by exact trimmed name. When none
// exists one is created with the given phone, or the placeholder phone, and
// no email. The bool reports whether a client was created.
func FindOrCreateByName(ctx context.Context, repo Repository, name string, phone *string) (*models.Client, bool, error) {
	name = NormalizeName(name)
	if err := ValidateName(name); err != nil {
		return nil, false, err
	}

	existing, err := repo.FindClientByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	p := validators.PlaceholderPhone
	if phone != nil && validators.NormalizePhone(*phone) != "" {
		p = *phone
	}

	c := &models.Client{Name: name, Phone: &p}
	if err := Validate(c); err != nil {
		return nil, false, err
	}
	if err := repo.CreateClient(ctx, c); err != nil {
		return nil, false, err
	}
	return c, true, nil
}
