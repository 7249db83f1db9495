// Package config loads runtime settings for the CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the local SQLite store (":memory:" for an
//     ephemeral store).
//   - ExportDir: directory shim log exports are written into.
type Config struct {
	DatabasePath string
	ExportDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "gas.db"
	c.ExportDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a local .env file), a JSON file (if one
// was named) and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
