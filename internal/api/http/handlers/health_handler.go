package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/laredo-ist/workorder-service/internal/persistence"
)

const readinessTimeout = 2 * time.Second

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	db          *persistence.Postgres
	cache       *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, db *persistence.Postgres, cache *persistence.Redis) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, db: db, cache: cache}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready GET /health/ready. Checks Postgres and Redis; a failed cache
// still fails readiness because queue stats depend on it.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), readinessTimeout)
	defer cancel()

	deps := fiber.Map{
		"postgres": pingStatus(h.db.Ping(ctx)),
		"redis":    pingStatus(h.cache.Ping(ctx)),
	}
	for _, status := range deps {
		if status != "ok" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "DEPENDENCY_UNAVAILABLE",
					"message": "one or more dependencies unavailable",
					"details": deps,
				},
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ready", "dependencies": deps})
}

func pingStatus(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}
