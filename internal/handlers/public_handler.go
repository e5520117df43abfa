package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/httpresp"
	"github.com/BruksfildServices01/order-desk/internal/usecase/public"
)

// ======================================================
// PUBLIC (SEM AUTENTICAÇÃO)
// ======================================================

type PublicHandler struct {
	list   *public.ListPublicOrders
	search *public.SearchPublicOrders
}

func NewPublicHandler(list *public.ListPublicOrders, search *public.SearchPublicOrders) *PublicHandler {
	return &PublicHandler{
		list:   list,
		search: search,
	}
}

// ListOrders accepts repeated or comma separated status filters.
func (h *PublicHandler) ListOrders(c *gin.Context) {
	orders, err := h.list.Execute(c.Request.Context(), c.QueryArray("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, orders)
}

func (h *PublicHandler) SearchOrders(c *gin.Context) {
	orders, err := h.search.Execute(c.Request.Context(), c.Query("name"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, orders)
}
