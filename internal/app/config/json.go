package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gasupport/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	ExportDir    string `json:"export_dir"`
}

// parseJson overlays Config with values loaded from the JSON file named via
// -c or -config. When no file was named the function returns without doing
// anything. Read or unmarshal errors panic; the caller decides whether to
// recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
}
