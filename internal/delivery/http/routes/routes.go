package routes

import (
	"jobradar/internal/delivery/http/handler"
	"jobradar/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health *handler.HealthHandler
	Ingest *handler.IngestHandler
	Search *handler.SearchHandler
	Admin  *handler.JobsAdminHandler
	WS     *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.Ingest.RegisterRoutes(v1)
	r.Search.RegisterRoutes(v1)
	r.Admin.RegisterRoutes(v1)

	if r.WS != nil {
		app.Get("/ws/jobs", r.WS.HandleJobsWS)
	}
}
