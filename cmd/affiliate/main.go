package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lelekart/storefront/internal/affiliate/application"
	"github.com/lelekart/storefront/internal/affiliate/domain"
	"github.com/lelekart/storefront/internal/affiliate/infrastructure/persistence/mysql"
	httpserver "github.com/lelekart/storefront/internal/affiliate/interfaces/http"
	"github.com/lelekart/storefront/pkg/config"
	"github.com/lelekart/storefront/pkg/db"
	"github.com/lelekart/storefront/pkg/logger"
	"github.com/lelekart/storefront/pkg/metrics"
	"github.com/lelekart/storefront/pkg/middleware"
)

var configPath = flag.String("config", "configs/affiliate/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. Logger
	if err := logger.Init(cfg.Logger); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	ctx := context.Background()

	// 3. Metrics
	m := metrics.New(cfg.ServiceName)

	// 4. Database
	database, err := db.Init(db.Config{
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	})
	if err != nil {
		logger.Error(ctx, "failed to connect database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if cfg.Environment == "dev" {
		if err := database.AutoMigrate(&domain.AffiliateCode{}); err != nil {
			logger.Error(ctx, "failed to migrate database", "error", err)
		}
	}

	// 5. Repository & Application
	repo := mysql.NewAffiliateCodeRepository(database.DB)
	app := application.NewAffiliateApplicationService(repo)

	// 6. HTTP
	gin.SetMode(gin.ReleaseMode)
	if cfg.Environment == "dev" {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery(), middleware.Metrics(m))
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	handler := httpserver.NewAffiliateHandler(app)
	handler.RegisterRoutes(&r.RouterGroup)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(ctx, "HTTP server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown failed", "error", err)
	}
}
