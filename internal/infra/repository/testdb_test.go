package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/order-desk/internal/db"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

// newTestDB opens a private in-memory SQLite database with the schema
// migrated and foreign keys enforced.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedClient(t *testing.T, gdb *gorm.DB, name string) *models.Client {
	t.Helper()
	c := &models.Client{Name: name, Phone: strPtr("41999990000")}
	require.NoError(t, gdb.Create(c).Error)
	return c
}

func seedOrder(t *testing.T, gdb *gorm.DB, clientID uint, status string, createdAt time.Time) *models.Order {
	t.Helper()
	o := &models.Order{
		ClientID:    clientID,
		ServiceKind: "SEWING",
		Description: "Ajuste de barra",
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("25.50"),
		Status:      status,
		Priority:    "MEDIUM",
		OrderDate:   date(2025, 10, 1),
		CreatedAt:   createdAt,
	}
	require.NoError(t, gdb.Omit("Client").Create(o).Error)
	return o
}
