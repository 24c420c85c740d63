package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from "set to empty".
type JsonConfig struct {
	Backend    *string `json:"backend"`
	DataPath   *string `json:"data_path"`
	StorageKey *string `json:"storage_key"`
	IDStrategy *string `json:"id_strategy"`
	LogLevel   *string `json:"log_level"`
	LogFormat  *string `json:"log_format"`
}

// parseJson overlays cfg with the fields present in the JSON file at path.
// An empty path is a no-op.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", common.ErrorInvalidConfig, path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("%w: parse %s: %w", common.ErrorInvalidConfig, path, err)
	}

	overlay(&cfg.Backend, jc.Backend)
	overlay(&cfg.DataPath, jc.DataPath)
	overlay(&cfg.StorageKey, jc.StorageKey)
	overlay(&cfg.IDStrategy, jc.IDStrategy)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	return nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
