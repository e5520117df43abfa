package account

import (
	"context"
	"time"

	"github.com/BruksfildServices01/order-desk/internal/models"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is the default projection of a staff user. It never carries the
// password hash.
type Account struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Credential adds the stored hash. Only the login check reads it.
type Credential struct {
	Account
	PasswordHash string
}

func FromModel(u *models.User) Account {
	return Account{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      Role(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Changes is a partial update of an account. PasswordHash is already
// hashed by the caller.
type Changes struct {
	Name         *string
	Role         *Role
	Active       *bool
	PasswordHash *string
}

type Repository interface {
	// CreateAccount stores a new user; a taken email yields
	// email_already_exists.
	CreateAccount(ctx context.Context, u *models.User) (Account, error)

	FindAccountByID(ctx context.Context, id uint) (Account, error)

	FindAccountByEmail(ctx context.Context, email string) (Account, error)

	// FindCredentialByEmail is the only read that returns the hash.
	FindCredentialByEmail(ctx context.Context, email string) (Credential, error)

	ListAccounts(ctx context.Context) ([]Account, error)

	UpdateAccount(ctx context.Context, id uint, ch Changes) (Account, error)

	CountAccounts(ctx context.Context) (int64, error)
}
