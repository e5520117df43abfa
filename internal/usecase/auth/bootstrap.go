package auth

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	"github.com/BruksfildServices01/order-desk/internal/domain/account"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	accountuc "github.com/BruksfildServices01/order-desk/internal/usecase/account"
)

type BootstrapAdminInput struct {
	MasterKey string
	Name      string
	Email     string
	Password  string
}

// BootstrapAdmin creates an ADMIN account for whoever holds the master key.
// It is disabled while no master key is configured.
type BootstrapAdmin struct {
	provision *accountuc.ProvisionAccount
	masterKey string
	log       *zap.Logger
}

func NewBootstrapAdmin(
	accounts account.Repository,
	rec audit.Recorder,
	masterKey string,
	log *zap.Logger,
) *BootstrapAdmin {
	return &BootstrapAdmin{
		provision: accountuc.NewProvisionAccount(accounts, rec),
		masterKey: masterKey,
		log:       log,
	}
}

func (uc *BootstrapAdmin) Execute(ctx context.Context, in BootstrapAdminInput) (account.Account, error) {
	if uc.masterKey == "" {
		return account.Account{}, httperr.ErrForbidden("bootstrap_disabled")
	}
	if subtle.ConstantTimeCompare([]byte(in.MasterKey), []byte(uc.masterKey)) != 1 {
		uc.log.Warn("bootstrap with wrong master key")
		return account.Account{}, httperr.ErrForbidden("forbidden")
	}

	acc, err := uc.provision.Execute(ctx, accountuc.ProvisionAccountInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     string(account.RoleAdmin),
	})
	if err != nil {
		return account.Account{}, err
	}

	uc.log.Info("admin bootstrapped", zap.Uint("user_id", acc.ID))
	return acc, nil
}
