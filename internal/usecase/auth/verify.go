package auth

import (
	"context"

	"github.com/BruksfildServices01/order-desk/internal/auth"
	"github.com/BruksfildServices01/order-desk/internal/domain/account"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
)

var errUnauthorized = httperr.ErrUnauthorized("unauthorized")

// Verify turns an Authorization header into the live account behind it.
type Verify struct {
	accounts account.Repository
	tokens   *auth.TokenManager
}

func NewVerify(accounts account.Repository, tokens *auth.TokenManager) *Verify {
	return &Verify{accounts: accounts, tokens: tokens}
}

// Execute fails with token_missing, token_invalid or token_expired for the
// token itself, and with unauthorized when the account was removed or
// deactivated after the token was issued.
func (uc *Verify) Execute(ctx context.Context, authorization string) (account.Account, error) {
	raw, err := auth.BearerToken(authorization)
	if err != nil {
		return account.Account{}, err
	}

	id, err := uc.tokens.Parse(raw)
	if err != nil {
		return account.Account{}, err
	}

	acc, err := uc.accounts.FindAccountByID(ctx, id.UserID)
	if err != nil {
		if kind, ok := httperr.KindOf(err); ok && kind == httperr.KindNotFound {
			return account.Account{}, errUnauthorized
		}
		return account.Account{}, err
	}
	if !acc.Active {
		return account.Account{}, errUnauthorized
	}
	return acc, nil
}
