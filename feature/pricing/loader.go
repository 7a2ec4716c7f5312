package pricing

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new pricing feature.
func NewFeature(st store.Store, catalogSvc *catalog.Service, logger *zap.Logger) *Feature {
	svc := NewService(st, catalogSvc, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pricing"
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

// Service exposes the pricing service for other features.
func (f *Feature) Service() *Service {
	return f.service
}
