package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/order-desk/internal/domain/account"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextAccount  = "account"
)

// Verifier resolves an Authorization header into a live account.
type Verifier interface {
	Execute(ctx context.Context, authorization string) (account.Account, error)
}

func AuthMiddleware(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc, err := v.Execute(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, acc.ID)
		c.Set(ContextUserRole, acc.Role)
		c.Set(ContextAccount, acc)

		c.Next()
	}
}

// RequireRole lets only accounts with one of roles through. It must run
// after AuthMiddleware.
func RequireRole(roles ...account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		httperr.Respond(c, httperr.ErrForbidden("forbidden"))
		c.Abort()
	}
}

// UserID is the authenticated user id, or 0 outside protected routes.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(ContextUserID)
	uid, _ := id.(uint)
	return uid
}

func CurrentAccount(c *gin.Context) (account.Account, bool) {
	v, ok := c.Get(ContextAccount)
	if !ok {
		return account.Account{}, false
	}
	acc, ok := v.(account.Account)
	return acc, ok
}
