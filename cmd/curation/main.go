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

	"github.com/lelekart/storefront/internal/curation/application"
	"github.com/lelekart/storefront/internal/curation/infrastructure/persistence/mysql"
	"github.com/lelekart/storefront/internal/curation/interfaces/events"
	httpserver "github.com/lelekart/storefront/internal/curation/interfaces/http"
	"github.com/lelekart/storefront/pkg/cache"
	"github.com/lelekart/storefront/pkg/config"
	"github.com/lelekart/storefront/pkg/db"
	"github.com/lelekart/storefront/pkg/logger"
	"github.com/lelekart/storefront/pkg/metrics"
	"github.com/lelekart/storefront/pkg/middleware"
	"github.com/lelekart/storefront/pkg/mq"
)

var configPath = flag.String("config", "configs/curation/config.toml", "config file path")

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	// 5. Redis
	redisCache, err := cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Error(ctx, "failed to connect redis", "error", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	// 6. Application
	reader := mysql.NewProductReader(database.DB)
	app := application.NewCurationQueryService(reader, redisCache)

	// 7. Kafka consumer：商品事件失效首页快照
	eventHandler := events.NewProductEventHandler(app)
	consumer, err := mq.NewConsumer(mq.KafkaConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		SessionTimeout: cfg.Kafka.SessionTimeout,
	}, eventHandler.Topics())
	if err != nil {
		logger.Error(ctx, "failed to create kafka consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	go func() {
		if err := consumer.Consume(ctx, eventHandler.Handle); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "kafka consumer stopped", "error", err)
		}
	}()

	// 8. HTTP
	gin.SetMode(gin.ReleaseMode)
	if cfg.Environment == "dev" {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery(), middleware.Metrics(m))
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	handler := httpserver.NewCurationHandler(app)
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

	// 9. Graceful shutdown
	<-ctx.Done()

	logger.Info(context.Background(), "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(context.Background(), "HTTP server shutdown failed", "error", err)
	}
}
