package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Mode controls which routes are exposed (full, readonly).
	Mode string `mapstructure:"mode" default:"full"`
}

const (
	// ModeFull exposes every route, including ingest triggers.
	ModeFull = "full"
	// ModeReadonly exposes lookup and search routes only.
	ModeReadonly = "readonly"
)

// IsValidMode checks if the configured server mode is valid.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeFull, ModeReadonly:
		return true
	default:
		return false
	}
}
