package auth

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/order-desk/internal/auth"
	"github.com/BruksfildServices01/order-desk/internal/domain/account"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/metrics"
	"github.com/BruksfildServices01/order-desk/internal/ratelimit"
	"github.com/BruksfildServices01/order-desk/internal/validators"
)

var errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials")

// dummyHash is compared against when the email is unknown so both paths
// cost one bcrypt check.
var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("order-desk-unknown-account")
	return h
})

type LoginInput struct {
	Email    string
	Password string
	CallerIP string
}

type LoginOutput struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      account.Account `json:"user"`
}

type Login struct {
	accounts account.Repository
	tokens   *auth.TokenManager
	limiter  ratelimit.Counter
	log      *zap.Logger
}

func NewLogin(
	accounts account.Repository,
	tokens *auth.TokenManager,
	limiter ratelimit.Counter,
	log *zap.Logger,
) *Login {
	return &Login{
		accounts: accounts,
		tokens:   tokens,
		limiter:  limiter,
		log:      log,
	}
}

// Execute checks the attempt budget of the caller before touching the
// credential store. Unknown email, inactive account and wrong password all
// fail the same way.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	allowed, err := uc.limiter.Allow(ctx, in.CallerIP)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if !allowed {
		metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
		uc.log.Warn("login rate limited", zap.String("ip", in.CallerIP))
		return nil, httperr.ErrTooManyAttempts("too_many_attempts")
	}

	cred, err := uc.accounts.FindCredentialByEmail(ctx, validators.NormalizeEmail(in.Email))
	if err != nil {
		if kind, ok := httperr.KindOf(err); ok && kind == httperr.KindNotFound {
			auth.CheckPassword(dummyHash(), in.Password)
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, errInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if !auth.CheckPassword(cred.PasswordHash, in.Password) || !cred.Active {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, errInvalidCredentials
	}

	token, exp, err := uc.tokens.Issue(cred.Account)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	uc.log.Info("login", zap.Uint("user_id", cred.ID))

	return &LoginOutput{Token: token, ExpiresAt: exp, User: cred.Account}, nil
}
