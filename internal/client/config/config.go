package config

import "time"

// Config holds runtime settings for the gymtrack client.
//
// Fields:
//   - ServerBaseURL: base address of the gym backend, e.g. http://192.168.1.107:3333.
//   - RequestTimeout: upper bound for a single backend request.
//   - DataDir: directory holding the local session database.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DataDir        string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:3333"
	c.RequestTimeout = 3 * time.Second
	c.DataDir = ".gymtrack"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
