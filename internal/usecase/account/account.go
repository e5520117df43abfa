package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	"github.com/BruksfildServices01/order-desk/internal/auth"
	domain "github.com/BruksfildServices01/order-desk/internal/domain/account"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
	"github.com/BruksfildServices01/order-desk/internal/validators"
)

// ======================================================
// PROVISION
// ======================================================

type ProvisionAccountInput struct {
	ActorID  *uint
	Name     string
	Email    string
	Password string
	Role     string
}

type ProvisionAccount struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewProvisionAccount(repo domain.Repository, rec audit.Recorder) *ProvisionAccount {
	return &ProvisionAccount{repo: repo, audit: rec}
}

func (uc *ProvisionAccount) Execute(ctx context.Context, in ProvisionAccountInput) (domain.Account, error) {
	name := strings.TrimSpace(in.Name)
	email := validators.NormalizeEmail(in.Email)

	role := domain.RoleUser
	if in.Role != "" {
		role = domain.Role(strings.ToUpper(strings.TrimSpace(in.Role)))
	}

	var fields []httperr.FieldError
	if name == "" {
		fields = append(fields, httperr.FieldError{Field: "name", Message: "is required"})
	}
	if !validators.IsEmailValid(email) {
		fields = append(fields, httperr.FieldError{Field: "email", Message: "must be a valid email"})
	}
	if len(in.Password) < auth.MinPasswordLength {
		fields = append(fields, httperr.FieldError{Field: "password", Message: "must have at least 6 characters"})
	}
	if !role.IsValid() {
		fields = append(fields, httperr.FieldError{Field: "role", Message: "must be ADMIN or USER"})
	}
	if len(fields) > 0 {
		return domain.Account{}, httperr.ErrValidation("validation_failed", fields...)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return domain.Account{}, err
	}

	acc, err := uc.repo.CreateAccount(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(role),
		Active:       true,
	})
	if err != nil {
		return domain.Account{}, err
	}

	uc.audit.Record(audit.Event{
		UserID:   in.ActorID,
		Action:   "user_created",
		Entity:   audit.EntityUser,
		EntityID: audit.Ptr(acc.ID),
		Metadata: map[string]any{"role": acc.Role},
	})
	return acc, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateAccountInput struct {
	ActorID  uint
	Name     *string
	Role     *string
	Active   *bool
	Password *string
}

type UpdateAccount struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateAccount(repo domain.Repository, rec audit.Recorder) *UpdateAccount {
	return &UpdateAccount{repo: repo, audit: rec}
}

func (uc *UpdateAccount) Execute(ctx context.Context, id uint, in UpdateAccountInput) (domain.Account, error) {
	var ch domain.Changes

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return domain.Account{}, httperr.ErrValidation("validation_failed", httperr.FieldError{Field: "name", Message: "is required"})
		}
		ch.Name = &name
	}
	if in.Role != nil {
		role := domain.Role(strings.ToUpper(strings.TrimSpace(*in.Role)))
		if !role.IsValid() {
			return domain.Account{}, httperr.ErrValidation("validation_failed", httperr.FieldError{Field: "role", Message: "must be ADMIN or USER"})
		}
		if id == in.ActorID && role != domain.RoleAdmin {
			return domain.Account{}, httperr.ErrBusiness("cannot_demote_self")
		}
		ch.Role = &role
	}
	if in.Active != nil {
		if id == in.ActorID && !*in.Active {
			return domain.Account{}, httperr.ErrBusiness("cannot_deactivate_self")
		}
		ch.Active = in.Active
	}
	if in.Password != nil {
		if len(*in.Password) < auth.MinPasswordLength {
			return domain.Account{}, httperr.ErrValidation("validation_failed", httperr.FieldError{Field: "password", Message: "must have at least 6 characters"})
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return domain.Account{}, err
		}
		ch.PasswordHash = &hash
	}

	acc, err := uc.repo.UpdateAccount(ctx, id, ch)
	if err != nil {
		return domain.Account{}, err
	}

	uc.audit.Record(audit.Event{
		UserID:   audit.Ptr(in.ActorID),
		Action:   "user_updated",
		Entity:   audit.EntityUser,
		EntityID: audit.Ptr(acc.ID),
		Metadata: map[string]any{"password_changed": in.Password != nil},
	})
	return acc, nil
}

// ======================================================
// LIST / GET
// ======================================================

type ListAccounts struct {
	repo domain.Repository
}

func NewListAccounts(repo domain.Repository) *ListAccounts {
	return &ListAccounts{repo: repo}
}

func (uc *ListAccounts) Execute(ctx context.Context) ([]domain.Account, error) {
	return uc.repo.ListAccounts(ctx)
}
