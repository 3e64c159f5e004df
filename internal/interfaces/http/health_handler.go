package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Maxito7/marea_backend/internal/logger"
)

// Pinger es lo único que el health check necesita de la base de datos
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log logger.Logger
}

func NewHealthHandler(db Pinger, log logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Error("database ping failed", logger.Err(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unavailable",
			"database": "unavailable",
		})
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": "ok",
	})
}
