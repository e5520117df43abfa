// Command seed drops every table and loads a small demo data set.
package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/order-desk/internal/auth"
	"github.com/BruksfildServices01/order-desk/internal/config"
	dbpkg "github.com/BruksfildServices01/order-desk/internal/db"
	"github.com/BruksfildServices01/order-desk/internal/domain/account"
	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	infraRepo "github.com/BruksfildServices01/order-desk/internal/infra/repository"
	"github.com/BruksfildServices01/order-desk/internal/logger"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

type seedUser struct {
	name, email, password string
	role                  account.Role
}

type seedClient struct {
	name, phone, email string
}

type seedOrder struct {
	client      int
	kind        domain.ServiceKind
	description string
	quantity    int
	unitPrice   string
	status      domain.Status
	priority    domain.Priority
	ordered     string
	promised    string
	delivered   string
	notes       string
}

var users = []seedUser{
	{"Administrador", "admin@sistema.com", "admin123", account.RoleAdmin},
	{"Operador", "operador@sistema.com", "operador123", account.RoleUser},
}

var clients = []seedClient{
	{"Ateliê Bom Fio", "41999990000", "contato@bomfio.com"},
	{"Moda & Cia", "41988880000", "vendas@modaecia.com"},
	{"Maria Silva", "41977770000", "maria.silva@email.com"},
	{"João Souza", "41966660000", "joao.souza@email.com"},
}

var orders = []seedOrder{
	{0, domain.ServiceEmbroidery, "Bordado de logo em 20 camisetas", 20, "15.00", domain.StatusInProgress, domain.PriorityHigh, "2025-10-20", "2025-10-30", "", "Logo deve ter 10cm de largura"},
	{1, domain.ServiceSewing, "Ajuste de 10 calças jeans", 10, "25.00", domain.StatusPending, domain.PriorityMedium, "2025-10-22", "2025-11-05", "", "Cliente pediu urgência"},
	{2, domain.ServiceSewing, "Costura de vestido de festa", 1, "350.00", domain.StatusDone, domain.PriorityHigh, "2025-10-15", "2025-10-25", "", "Tecido fornecido pela cliente"},
	{0, domain.ServiceEmbroidery, "Bordado de nome em toalhas", 5, "12.00", domain.StatusDelivered, domain.PriorityLow, "2025-10-10", "2025-10-20", "2025-10-22", "Bordado na cor azul"},
	{3, domain.ServiceSewing, "Costura de cortinas", 3, "80.00", domain.StatusDone, domain.PriorityLow, "2025-10-23", "2025-11-10", "", "Tecido blackout"},
	{1, domain.ServiceEmbroidery, "Bordado personalizado em jaquetas", 15, "35.00", domain.StatusDelivered, domain.PriorityHigh, "2025-10-21", "2025-11-01", "2025-11-03", "Usar linha dourada"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.New(logger.ForEnv(cfg.Env, cfg.LogLevel))
	defer func() { _ = zlog.Sync() }()

	if cfg.IsProduction() {
		zlog.Fatal("refusing to seed a production database")
	}

	db, err := dbpkg.Open(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	if err := dbpkg.Reset(db); err != nil {
		zlog.Fatal("failed to reset database", zap.Error(err))
	}

	ctx := context.Background()
	accountRepo := infraRepo.NewAccountGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)

	for _, u := range users {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			zlog.Fatal("failed to hash password", zap.Error(err))
		}
		if _, err := accountRepo.CreateAccount(ctx, &models.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         string(u.role),
			Active:       true,
		}); err != nil {
			zlog.Fatal("failed to create user", zap.String("email", u.email), zap.Error(err))
		}
	}

	created := make([]*models.Client, 0, len(clients))
	for _, c := range clients {
		phone, email := c.phone, c.email
		row := &models.Client{Name: c.name, Phone: &phone, Email: &email}
		if err := clientRepo.CreateClient(ctx, row); err != nil {
			zlog.Fatal("failed to create client", zap.String("name", c.name), zap.Error(err))
		}
		created = append(created, row)
	}

	for _, o := range orders {
		client := created[o.client]
		row := &models.Order{
			ClientID:      client.ID,
			ServiceKind:   string(o.kind),
			Description:   o.description,
			Quantity:      o.quantity,
			UnitPrice:     decimal.RequireFromString(o.unitPrice),
			Status:        string(o.status),
			Priority:      string(o.priority),
			OrderDate:     mustDate(o.ordered),
			PromisedDate:  optDate(o.promised),
			DeliveredDate: optDate(o.delivered),
			ContactPhone:  client.Phone,
			Notes:         o.notes,
		}

		if err := orderRepo.CreateOrder(ctx, row); err != nil {
			zlog.Fatal("failed to create order", zap.String("description", o.description), zap.Error(err))
		}
	}

	zlog.Info("seed finished",
		zap.Int("users", len(users)),
		zap.Int("clients", len(clients)),
		zap.Int("orders", len(orders)),
	)
}

func mustDate(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func optDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d := mustDate(s)
	return &d
}
