package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/order-desk/internal/domain/account"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

var _ account.Repository = (*AccountGormRepository)(nil)

func (r *AccountGormRepository) CreateAccount(
	ctx context.Context,
	u *models.User,
) (account.Account, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return account.Account{}, httperr.ErrConflict("email_already_exists")
		}
		return account.Account{}, fmt.Errorf("create user: %w", err)
	}
	return account.FromModel(u), nil
}

func (r *AccountGormRepository) FindAccountByID(
	ctx context.Context,
	id uint,
) (account.Account, error) {
	u, err := r.first(ctx, "get user", "id = ?", id)
	if err != nil {
		return account.Account{}, err
	}
	return account.FromModel(u), nil
}

func (r *AccountGormRepository) FindAccountByEmail(
	ctx context.Context,
	email string,
) (account.Account, error) {
	u, err := r.first(ctx, "get user by email", "email = ?", email)
	if err != nil {
		return account.Account{}, err
	}
	return account.FromModel(u), nil
}

func (r *AccountGormRepository) FindCredentialByEmail(
	ctx context.Context,
	email string,
) (account.Credential, error) {
	u, err := r.first(ctx, "get credential", "email = ?", email)
	if err != nil {
		return account.Credential{}, err
	}
	return account.Credential{
		Account:      account.FromModel(u),
		PasswordHash: u.PasswordHash,
	}, nil
}

func (r *AccountGormRepository) ListAccounts(
	ctx context.Context,
) ([]account.Account, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]account.Account, len(users))
	for i := range users {
		out[i] = account.FromModel(&users[i])
	}
	return out, nil
}

func (r *AccountGormRepository) UpdateAccount(
	ctx context.Context,
	id uint,
	ch account.Changes,
) (account.Account, error) {
	u, err := r.first(ctx, "get user", "id = ?", id)
	if err != nil {
		return account.Account{}, err
	}

	if ch.Name != nil {
		u.Name = *ch.Name
	}
	if ch.Role != nil {
		u.Role = string(*ch.Role)
	}
	if ch.Active != nil {
		u.Active = *ch.Active
	}
	if ch.PasswordHash != nil {
		u.PasswordHash = *ch.PasswordHash
	}

	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return account.Account{}, fmt.Errorf("update user: %w", err)
	}
	return account.FromModel(u), nil
}

func (r *AccountGormRepository) CountAccounts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *AccountGormRepository) first(ctx context.Context, op string, where string, args ...any) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where(where, args...).First(&u).Error; err != nil {
		return nil, lookupErr(err, "user_not_found", op)
	}
	return &u, nil
}

