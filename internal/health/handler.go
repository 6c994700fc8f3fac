// Package health exposes liveness endpoints for load balancers and
// container health checks.
package health

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const serviceName = "fin-stack-server"

// Pinger is satisfied by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Check(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CheckDetailed additionally pings the database and reports 503 when it
// is unreachable.
func (h *Handler) CheckDetailed(c *fiber.Ctx) error {
	dbStatus := "healthy"
	status := fiber.StatusOK
	if err := h.db.Ping(c.UserContext()); err != nil {
		dbStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	overall := "healthy"
	if dbStatus != "healthy" {
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":    overall,
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": fiber.Map{
			"database": dbStatus,
		},
	})
}

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/health", h.Check)
	app.Get("/health/detailed", h.CheckDetailed)
}
