package ingest

import (
	"context"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mtg-indexer/core/logger"
)

// Handler exposes the pass trigger.
type Handler struct {
	service *Service
	running atomic.Bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ingest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/index", h.HandleTriggerPass)
}

// HandleTriggerPass starts a full indexing pass in the background. Only one
// pass runs at a time.
// @Summary Trigger Indexing Pass
// @Tags ingest
// @Produce json
// @Success 202 {object} map[string]string "Accepted"
// @Failure 409 {object} map[string]string "Pass already running"
// @Router /index [post]
func (h *Handler) HandleTriggerPass(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	if !h.running.CompareAndSwap(false, true) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "indexing pass already running"})
	}

	// The pass outlives the request; it must not inherit its context.
	go func() {
		defer h.running.Store(false)
		if _, err := h.service.Run(context.Background()); err != nil {
			l.Error("indexing pass failed", zap.Error(err))
		}
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "indexing started"})
}
