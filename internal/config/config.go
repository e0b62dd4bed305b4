// Package config handles runtime settings for the relay server: defaults,
// environment overlay, then command-line flags.
package config

import "time"

const (
	BackendMemory     = "memory"
	BackendPersistent = "persistent"
)

// Config holds runtime settings for the relay server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - Backend: "memory" for an in-process store, "persistent" for redis+mongo.
//   - RedisAddr / RedisPassword / RedisDB: mailbox backend (persistent only).
//   - MongoURI / MongoDatabase: user registry backend (persistent only).
//   - ShutdownTimeout: grace period for draining in-flight requests.
//   - LogLevel: zap level string ("debug", "info", "warn", "error").
type Config struct {
	Addr            string
	Backend         string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	MongoURI        string
	MongoDatabase   string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with local development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = "localhost:9090"
	c.Backend = BackendMemory
	c.RedisAddr = "localhost:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "relay"
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
