package routes

import (
	"log"

	"job-board/internal/config"
	"job-board/internal/database"
	handlerpkg "job-board/internal/delivery/http/handler"
	v1 "job-board/internal/delivery/http/routes/v1"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	health := handlerpkg.NewHealthHandler(deps.DB)
	health.RegisterRoutes(app)

	if deps.Hub != nil {
		wsHandler := ws.NewHandler(deps.Hub, deps.Logger)
		app.Get("/ws/events", wsHandler.HandleEvents)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config: deps.Config,
		DB:     deps.DB,
		Cache:  deps.Cache,
	})
}
