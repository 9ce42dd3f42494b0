package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"github.com/naseer617/ta-member-service/internal/api"
	"github.com/naseer617/ta-member-service/internal/api/handlers"
	"github.com/naseer617/ta-member-service/internal/repository"
	"github.com/naseer617/ta-member-service/internal/schema"
	"github.com/naseer617/ta-member-service/pkg/config"
	"github.com/naseer617/ta-member-service/pkg/database"
	"github.com/naseer617/ta-member-service/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting member service",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Readiness gate: connect and establish the schema, retrying per the
	// configured policy. The process refuses to serve without a database.
	ctx := context.Background()
	gormLogLevel := gormlogger.Silent
	if cfg.AppEnv == "development" || cfg.AppEnv == "test" {
		gormLogLevel = gormlogger.Warn
	}
	db, err := database.Open(ctx, cfg.DSN(), database.RetryPolicy{
		MaxAttempts: cfg.DBConnectAttempts,
		Interval:    cfg.DBConnectInterval,
	}, gormLogLevel, schema.Migrate)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected and initialized")

	memberRepo := repository.NewMemberRepository(db)

	router := api.NewRouter(api.Dependencies{
		MembersHandler: handlers.NewMembersHandler(memberRepo),
		HealthHandler:  handlers.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
