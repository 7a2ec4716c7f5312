package ingest

import (
	"github.com/gofiber/fiber/v2"

	"mtg-indexer/core/server"
)

// Feature implements the loader.Feature interface. The trigger route is
// only registered in full mode.
type Feature struct {
	service *Service
	handler *Handler
	mode    string
}

// NewFeature creates a new ingest feature.
func NewFeature(service *Service, mode string) *Feature {
	return &Feature{service: service, handler: NewHandler(service), mode: mode}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "ingest"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.mode != server.ModeReadonly
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the ingest service for the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
