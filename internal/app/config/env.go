package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; a missing file is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GAS_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("GAS_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
}
