package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	// --------------------------------------------------
	// Filtros de período
	// --------------------------------------------------
	from := c.Query("from")
	to := c.Query("to")

	var err error
	if q.From, err = parseDate("from", &from); err != nil {
		httperr.Respond(c, err)
		return
	}
	if q.To, err = parseDate("to", &to); err != nil {
		httperr.Respond(c, err)
		return
	}

	q.Normalize()
	logs, total, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, q.Page, q.Limit, total)
}
