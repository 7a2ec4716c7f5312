package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mtg-indexer/core/store"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new catalog feature.
func NewFeature(st store.Store, logger *zap.Logger) *Feature {
	svc := NewService(st, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the catalog service for other features.
func (f *Feature) Service() *Service {
	return f.service
}
