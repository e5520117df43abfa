package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	"github.com/BruksfildServices01/order-desk/internal/config"
	dbpkg "github.com/BruksfildServices01/order-desk/internal/db"
	"github.com/BruksfildServices01/order-desk/internal/infra/storage"
	"github.com/BruksfildServices01/order-desk/internal/logger"
	"github.com/BruksfildServices01/order-desk/internal/ratelimit"
	"github.com/BruksfildServices01/order-desk/internal/routes"
	ucReport "github.com/BruksfildServices01/order-desk/internal/usecase/report"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.New(logger.ForEnv(cfg.Env, cfg.LogLevel))
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Open(cfg, zlog)
	if err != nil {
		return err
	}

	// ======================================================
	// LOGIN RATE LIMIT
	// ======================================================
	var limiter ratelimit.Counter
	switch cfg.RateLimitStore {
	case config.RateLimitRedis:
		client, err := ratelimit.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = ratelimit.NewRedisSlidingWindow(client, "", cfg.LoginRateLimit, cfg.LoginRateWindow)
	default:
		limiter = ratelimit.NewSlidingWindow(cfg.LoginRateLimit, cfg.LoginRateWindow)
	}

	// ======================================================
	// REPORT ARCHIVE (OPCIONAL)
	// ======================================================
	var archiver ucReport.Archiver
	if cfg.Report.Bucket != "" {
		a, err := storage.NewS3Archive(ctx, cfg.Report, zlog)
		if err != nil {
			return err
		}
		archiver = a
	}

	dispatcher := audit.NewDispatcher(audit.New(db), zlog)
	defer dispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := routes.NewEngine(cfg)
	if err != nil {
		return err
	}

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      zlog,
		Limiter:  limiter,
		Audit:    dispatcher,
		Archiver: archiver,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("env", cfg.Env),
			zap.String("db_dialect", cfg.DBDialect),
			zap.String("rate_limit_backend", cfg.RateLimitStore),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
