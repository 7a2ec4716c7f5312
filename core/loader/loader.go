package loader

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is implemented by every mountable feature of the application.
type Feature interface {
	// Name returns the feature's identifier, used in logs and route groups.
	Name() string
	// IsEnabled reports whether the feature should be mounted.
	IsEnabled() bool
	// Load registers the feature's routes on the given router.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features and mounts them.
type Manager struct {
	log      *zap.Logger
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager(log *zap.Logger) *Manager {
	return &Manager{log: log}
}

// Register adds a feature to the registry. Registration order is mount order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll mounts every enabled feature under its own route group.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.log.Info("feature disabled, skipping", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return err
		}
		m.log.Info("feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
