package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

func TestOrderCreateReloadsClient(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewOrderGormRepository(gdb)
	ctx := context.Background()

	c := seedClient(t, gdb, "Maria Silva")
	promised := date(2025, 11, 1)
	o := &models.Order{
		ClientID:     c.ID,
		ServiceKind:  "SEWING",
		Description:  "Dress repair",
		Quantity:     1,
		UnitPrice:    decimal.RequireFromString("100.00"),
		Status:       "PENDING",
		Priority:     "MEDIUM",
		OrderDate:    date(2025, 10, 20),
		PromisedDate: &promised,
	}
	require.NoError(t, repo.CreateOrder(ctx, o))

	assert.NotZero(t, o.ID)
	assert.Equal(t, "Maria Silva", o.Client.Name)
	assert.True(t, o.UnitPrice.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, o.PromisedDate)
	assert.Equal(t, "2025-11-01", o.PromisedDate.Format("2006-01-02"))
	assert.Nil(t, o.DeliveredDate)
}

func TestOrderUpdateAndDelete(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewOrderGormRepository(gdb)
	ctx := context.Background()

	c := seedClient(t, gdb, "Ateliê Bom Fio")
	o := seedOrder(t, gdb, c.ID, "DONE", time.Now())

	loaded, err := repo.GetOrder(ctx, o.ID)
	require.NoError(t, err)

	delivered := date(2025, 10, 25)
	loaded.Status = "DELIVERED"
	loaded.DeliveredDate = &delivered
	require.NoError(t, repo.UpdateOrder(ctx, loaded))

	again, err := repo.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", again.Status)
	require.NotNil(t, again.DeliveredDate)
	assert.Equal(t, "2025-10-25", again.DeliveredDate.Format("2006-01-02"))

	require.NoError(t, repo.DeleteOrder(ctx, o.ID))

	_, err = repo.GetOrder(ctx, o.ID)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))

	err = repo.DeleteOrder(ctx, o.ID)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}

func TestOrderListFilters(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewOrderGormRepository(gdb)
	ctx := context.Background()

	a := seedClient(t, gdb, "Moda & Cia")
	b := seedClient(t, gdb, "João Souza")
	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	older := seedOrder(t, gdb, a.ID, "PENDING", base)
	newer := seedOrder(t, gdb, a.ID, "DONE", base.Add(time.Hour))
	seedOrder(t, gdb, b.ID, "PENDING", base.Add(2*time.Hour))

	all, err := repo.ListOrders(ctx, domain.ListFilter{ClientID: a.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)
	assert.Equal(t, "Moda & Cia", all[0].Client.Name)

	pending, err := repo.ListOrders(ctx, domain.ListFilter{Status: domain.StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestListOrdersByStatus(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewOrderGormRepository(gdb)
	ctx := context.Background()

	c := seedClient(t, gdb, "Maria Silva")
	now := time.Now()
	for _, st := range []string{"PENDING", "IN_PROGRESS", "DONE", "DELIVERED", "CANCELED"} {
		seedOrder(t, gdb, c.ID, st, now)
	}

	orders, err := repo.ListOrdersByStatus(ctx, domain.PublicStatuses)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.True(t, domain.Status(o.Status).IsPublic())
		assert.Equal(t, "Maria Silva", o.Client.Name)
	}

	none, err := repo.ListOrdersByStatus(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListOrdersForReportByID(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewOrderGormRepository(gdb)

	c := seedClient(t, gdb, "Maria Silva")
	base := time.Now()
	first := seedOrder(t, gdb, c.ID, "PENDING", base.Add(time.Hour))
	second := seedOrder(t, gdb, c.ID, "DONE", base)

	orders, err := repo.ListOrdersForReport(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}
