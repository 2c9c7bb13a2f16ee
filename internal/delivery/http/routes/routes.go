package routes

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/youtube"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything bootstrap has built by the time routes are
// registered.
type Deps struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	YouTube *youtube.Client
	Hub     *ws.Hub
	Logger  *log.Logger
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
