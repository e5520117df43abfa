package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/usecase/report"
)

type ReportHandler struct {
	export *report.ExportCSV
}

func NewReportHandler(export *report.ExportCSV) *ReportHandler {
	return &ReportHandler{export: export}
}

// OrdersCSV streams every order as a CSV attachment.
func (h *ReportHandler) OrdersCSV(c *gin.Context) {
	body, err := h.export.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.FileName))
	c.Data(http.StatusOK, report.ContentType+"; charset=utf-8", body)
}
