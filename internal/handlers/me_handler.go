package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/httpresp"
	"github.com/BruksfildServices01/order-desk/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the account resolved by AuthMiddleware for this request.
func (h *MeHandler) GetMe(c *gin.Context) {
	acc, ok := middleware.CurrentAccount(c)
	if !ok {
		httperr.Respond(c, httperr.ErrUnauthorized("unauthorized"))
		return
	}

	httpresp.OK(c, gin.H{"user": acc})
}
