package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

func TestFindClientByName(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewClientGormRepository(gdb)
	ctx := context.Background()

	missing, err := repo.FindClientByName(ctx, "Maria Silva")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created := seedClient(t, gdb, "Maria Silva")

	found, err := repo.FindClientByName(ctx, "Maria Silva")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	other, err := repo.FindClientByName(ctx, "maria silva")
	require.NoError(t, err)
	assert.Nil(t, other, "name lookup is exact")
}

func TestListClientsSearch(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewClientGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.CreateClient(ctx, &models.Client{Name: "Ateliê Bom Fio", Phone: strPtr("4133334444")}))
	require.NoError(t, repo.CreateClient(ctx, &models.Client{Name: "Moda & Cia", Email: strPtr("contato@modaecia.com")}))

	all, err := repo.ListClients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byEmail, err := repo.ListClients(ctx, "MODAECIA")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Moda & Cia", byEmail[0].Name)

	byPhone, err := repo.ListClients(ctx, "3333")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Ateliê Bom Fio", byPhone[0].Name)
}

func TestDeleteClient(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewClientGormRepository(gdb)
	ctx := context.Background()

	busy := seedClient(t, gdb, "Com Pedido")
	seedOrder(t, gdb, busy.ID, "PENDING", time.Now())

	n, err := repo.CountClientOrders(ctx, busy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = repo.DeleteClient(ctx, busy.ID)
	assert.True(t, httperr.IsBusiness(err, "client_has_orders"))

	free := seedClient(t, gdb, "Sem Pedido")
	require.NoError(t, repo.DeleteClient(ctx, free.ID))

	_, err = repo.GetClient(ctx, free.ID)
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	err = repo.DeleteClient(ctx, free.ID)
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
}
