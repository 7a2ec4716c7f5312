package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `mapstructure:"level" default:"info"`
	// Format selects the encoding: json or console.
	Format string `mapstructure:"format" default:"json"`
}

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// WithRequestID returns a logger with the request_id field set from the Fiber context.
func WithRequestID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("request_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("request_id", str))
	}
	return l
}
