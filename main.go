package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ewm_backend/internals/configs"
	database "ewm_backend/internals/databases"
	statsCache "ewm_backend/internals/features/stats/cache"
	statsClient "ewm_backend/internals/features/stats/client"
	statsService "ewm_backend/internals/features/stats/service"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/logger"
	middlewares "ewm_backend/internals/middlewares"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/gormstore"
	"ewm_backend/internals/repository/memstore"
	routes "ewm_backend/internals/route"
	"ewm_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// store
	var (
		store repository.Store
		db    *gorm.DB
	)
	switch cfg.Store.Driver {
	case "memory":
		zl.Warn("using in-memory store, data is lost on restart")
		store = memstore.New()
	default:
		if cfg.DB.Migrations {
			if err := database.RunMigrations(cfg.DB.PostgresURL(), zl); err != nil {
				zl.Fatal("migrations failed", zap.Error(err))
			}
		}
		db, err = database.ConnectDB(cfg.DB, zl)
		if err != nil {
			zl.Fatal("db connect failed", zap.Error(err))
		}
		if err := database.TunePool(db, cfg.DB); err != nil {
			zl.Fatal("db pool setup failed", zap.Error(err))
		}
		database.WarmUpQueries(db, zl)
		store = gormstore.New(db)
	}
	if cfg.Store.Seed {
		if err := seeds.RunAllSeeds(context.Background(), store, zl); err != nil {
			zl.Fatal("seeding failed", zap.Error(err))
		}
	}

	// stats collaborator + optional views cache
	var rdb *redis.Client
	stats := statsService.NewStatsService(cfg.App.Name, statsClient.New(cfg.Stats.ServerURL, cfg.Stats.Timeout), nil, zl)
	if cfg.Redis.Addr != "" {
		rdb = statsCache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Warn("redis unavailable, views cache disabled", zap.Error(err))
			_ = rdb.Close()
			rdb = nil
		} else {
			stats.Cache = statsCache.NewViewsCache(rdb, cfg.Views.CacheTTL)
			zl.Info("views cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Views.CacheTTL))
		}
		cancel()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler(zl),
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg, zl)

	routes.SetupRoutes(app, routes.Deps{
		Store:       store,
		DB:          db,
		Stats:       stats,
		Log:         zl,
		AdminSecret: cfg.Admin.JWTSecret,
	})

	go func() {
		zl.Info("listening", zap.String("port", cfg.App.Port), zap.String("store", cfg.Store.Driver))
		if err := app.Listen("0.0.0.0:" + cfg.App.Port); err != nil {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if db != nil {
		if err := database.Close(db); err != nil {
			zl.Warn("db close failed", zap.Error(err))
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
