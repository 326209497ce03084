package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laredo-ist/workorder-service/internal/api/http/handlers"
	"github.com/laredo-ist/workorder-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	Routing        *handlers.RoutingHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Submission, the live preview, and
// the reference tables are public; the queue and ticket workflow
// actions require a staff token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	app.Post("/tickets", cfg.Tickets.Submit)

	routingGroup := app.Group("/routing")
	routingGroup.Get("/preview", cfg.Routing.Preview)
	routingGroup.Get("/reference", cfg.Routing.Reference)
	routingGroup.Get("/cascade", cfg.Routing.Cascade)

	staff := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	staff.Get("/", cfg.Tickets.Queue)
	staff.Get("/:key", cfg.Tickets.Get)
	staff.Post("/:key/escalate", cfg.Tickets.Escalate)
	staff.Post("/:key/resolve", cfg.Tickets.Resolve)
}
