package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/timezone"
)

const (
	FileName    = "relatorio_pedidos.csv"
	ContentType = "text/csv"
)

var header = []string{
	"id",
	"client",
	"description",
	"quantity",
	"unit_price",
	"total",
	"status",
	"promised_date",
}

// Archiver keeps a copy of each generated report.
type Archiver interface {
	Archive(ctx context.Context, key string, body []byte, contentType string) error
}

type ExportCSV struct {
	orders   domain.Repository
	archiver Archiver
	now      func() time.Time
	log      *zap.Logger
}

// NewExportCSV builds the exporter. archiver may be nil.
func NewExportCSV(
	orders domain.Repository,
	archiver Archiver,
	now func() time.Time,
	log *zap.Logger,
) *ExportCSV {
	return &ExportCSV{
		orders:   orders,
		archiver: archiver,
		now:      now,
		log:      log,
	}
}

// Execute renders every order as one CSV row. Archive failures are logged
// and do not fail the export.
func (uc *ExportCSV) Execute(ctx context.Context) ([]byte, error) {
	orders, err := uc.orders.ListOrdersForReport(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range orders {
		o := &orders[i]

		promised := ""
		if o.PromisedDate != nil {
			promised = o.PromisedDate.Format(timezone.DateLayout)
		}

		if err := w.Write([]string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.Client.Name,
			o.Description,
			strconv.Itoa(o.Quantity),
			o.UnitPrice.StringFixed(2),
			domain.Total(o).StringFixed(2),
			o.Status,
			promised,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	body := buf.Bytes()

	if uc.archiver != nil {
		key := fmt.Sprintf("reports/relatorio_pedidos_%s.csv", uc.now().UTC().Format("20060102T150405Z"))
		if err := uc.archiver.Archive(ctx, key, body, ContentType); err != nil {
			uc.log.Warn("report archive failed", zap.String("key", key), zap.Error(err))
		}
	}

	uc.log.Info("report exported", zap.Int("orders", len(orders)))
	return body, nil
}
