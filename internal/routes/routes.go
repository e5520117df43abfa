package routes

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	"github.com/BruksfildServices01/order-desk/internal/auth"
	"github.com/BruksfildServices01/order-desk/internal/config"
	"github.com/BruksfildServices01/order-desk/internal/domain/account"
	"github.com/BruksfildServices01/order-desk/internal/handlers"
	infraRepo "github.com/BruksfildServices01/order-desk/internal/infra/repository"
	"github.com/BruksfildServices01/order-desk/internal/logger"
	"github.com/BruksfildServices01/order-desk/internal/metrics"
	"github.com/BruksfildServices01/order-desk/internal/middleware"
	"github.com/BruksfildServices01/order-desk/internal/ratelimit"
	"github.com/BruksfildServices01/order-desk/internal/timezone"
	ucAccount "github.com/BruksfildServices01/order-desk/internal/usecase/account"
	ucAuth "github.com/BruksfildServices01/order-desk/internal/usecase/auth"
	ucClient "github.com/BruksfildServices01/order-desk/internal/usecase/client"
	ucOrder "github.com/BruksfildServices01/order-desk/internal/usecase/order"
	ucPublic "github.com/BruksfildServices01/order-desk/internal/usecase/public"
	ucReport "github.com/BruksfildServices01/order-desk/internal/usecase/report"
)

// Deps are the process-wide collaborators built by main.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Limiter ratelimit.Counter
	Audit   audit.Recorder

	// Archiver is optional; leave it nil to skip report archiving.
	Archiver ucReport.Archiver

	// Today defaults to the calendar date in the business timezone.
	Today func() time.Time
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewEngine builds a bare engine that takes the client IP from the socket
// unless the peer is one of the configured trusted proxies.
func NewEngine(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()

	var trusted []string
	if len(cfg.TrustedProxies) > 0 {
		trusted = cfg.TrustedProxies
	}
	if err := r.SetTrustedProxies(trusted); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	log := d.Log

	today := d.Today
	if today == nil {
		today = func() time.Time { return timezone.Today(cfg.Timezone) }
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}
	rec := d.Audit
	if rec == nil {
		rec = audit.Nop{}
	}

	handlers.SetupBinding()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(logger.Recovery(log))
	r.Use(logger.GinMiddleware(log))
	r.Use(metrics.GinMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(d.DB)
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	auditLogger := audit.New(d.DB)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(accountRepo, tokens, d.Limiter, log)
	verifyUC := ucAuth.NewVerify(accountRepo, tokens)
	bootstrapUC := ucAuth.NewBootstrapAdmin(accountRepo, rec, cfg.AdminMasterKey, log)

	createOrderUC := ucOrder.NewCreateOrder(orderRepo, clientRepo, rec, today, log)
	getOrderUC := ucOrder.NewGetOrder(orderRepo)
	listOrdersUC := ucOrder.NewListOrders(orderRepo)
	updateOrderUC := ucOrder.NewUpdateOrder(orderRepo, clientRepo, rec, today, log)
	setStatusUC := ucOrder.NewSetOrderStatus(orderRepo, rec, today, log)
	deleteOrderUC := ucOrder.NewDeleteOrder(orderRepo, rec)

	exportCSVUC := ucReport.NewExportCSV(orderRepo, d.Archiver, now, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.DB, log)
	authHandler := handlers.NewAuthHandler(loginUC, bootstrapUC)
	meHandler := handlers.NewMeHandler()

	clientHandler := handlers.NewClientHandler(
		ucClient.NewCreateClient(clientRepo, rec),
		ucClient.NewGetClient(clientRepo),
		ucClient.NewListClients(clientRepo),
		ucClient.NewUpdateClient(clientRepo, rec),
		ucClient.NewDeleteClient(clientRepo, rec),
	)

	orderHandler := handlers.NewOrderHandler(
		createOrderUC,
		getOrderUC,
		listOrdersUC,
		updateOrderUC,
		setStatusUC,
		deleteOrderUC,
	)
	reportHandler := handlers.NewReportHandler(exportCSVUC)

	publicHandler := handlers.NewPublicHandler(
		ucPublic.NewListPublicOrders(orderRepo),
		ucPublic.NewSearchPublicOrders(orderRepo),
	)

	userHandler := handlers.NewUserHandler(
		ucAccount.NewProvisionAccount(accountRepo, rec),
		ucAccount.NewUpdateAccount(accountRepo, rec),
		ucAccount.NewListAccounts(accountRepo),
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// OPERAÇÃO
	// ======================================================
	r.GET("/health", healthHandler.Live)
	r.GET("/health/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/orders", publicHandler.ListOrders)
			publicAPI.GET("/orders/search", publicHandler.SearchOrders)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/bootstrap", authHandler.Bootstrap)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(verifyUC))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// ORDERS
			// ------------------------------
			secured.GET("/orders", orderHandler.List)
			secured.POST("/orders", orderHandler.Create)
			secured.GET("/orders/report/csv", reportHandler.OrdersCSV)
			secured.GET("/orders/:id", orderHandler.Get)
			secured.PUT("/orders/:id", orderHandler.Update)
			secured.PATCH("/orders/:id/status", orderHandler.SetStatus)
			secured.DELETE("/orders/:id", orderHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(account.RoleAdmin))
			{
				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.PATCH("/users/:id", userHandler.Update)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
