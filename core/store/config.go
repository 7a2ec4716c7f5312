package store

// Config holds configuration for the Redis-backed store.
type Config struct {
	// Addr is the host:port of the Redis server.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the optional server password.
	Password string `mapstructure:"password" default:""`
	// DB is the logical database number.
	DB int `mapstructure:"db" default:"0"`
	// TimeoutSeconds is the dial timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
