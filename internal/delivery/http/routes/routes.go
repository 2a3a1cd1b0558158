package routes

import (
	"refernet/internal/config"
	"refernet/internal/database"
	"refernet/internal/delivery/http/handler"
	v1 "refernet/internal/delivery/http/routes/v1"
	"refernet/internal/infrastructure/cache"
	"refernet/internal/infrastructure/storage"
	"refernet/internal/pkg/logging"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

// Deps carries the shared infrastructure the route tree hangs off.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Store  *storage.LocalStore
	Logger *logging.Logger
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler().RegisterRoutes(app)

	if deps.Store != nil {
		app.Get("/uploads/*", static.New(deps.Store.Dir()))
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config: deps.Config,
		DB:     deps.DB,
		Cache:  deps.Cache,
		Store:  deps.Store,
		Logger: deps.Logger,
	})
}
