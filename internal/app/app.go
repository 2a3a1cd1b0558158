package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"refernet/internal/config"
	"refernet/internal/database"
	"refernet/internal/database/migration"
	dbpostgres "refernet/internal/database/postgres"
	"refernet/internal/database/seeder"
	"refernet/internal/delivery/http/middleware"
	"refernet/internal/delivery/http/routes"
	"refernet/internal/infrastructure/cache"
	"refernet/internal/infrastructure/storage"
	"refernet/internal/pkg/logging"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber  *fiber.App
	Logger *logging.Logger
}

// Bootstrap wires the whole service: database (migrated and seeded), cache,
// upload storage, middleware and routes. The returned cleanup closes what
// was opened.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := logging.New(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := prepareDatabase(ctx, db, cfg); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	store, err := storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.PublicBaseURL)
	if err != nil {
		_ = redisCache.Close()
		_ = db.Close()
		return nil, nil, fmt.Errorf("init upload storage: %w", err)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.Register(f, routes.Deps{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Store:  store,
		Logger: logger,
	})

	cleanup := func() error {
		_ = redisCache.Close()
		err := db.Close()
		_ = logger.Sync()
		return err
	}

	return &App{Fiber: f, Logger: logger}, cleanup, nil
}

func prepareDatabase(ctx context.Context, db database.DB, cfg config.Config) error {
	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	seeds := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seeds.Run(ctx, db); err != nil {
		return fmt.Errorf("run seeders: %w", err)
	}
	return nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
