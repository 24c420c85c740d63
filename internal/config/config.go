package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/services"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

var (
	backends     = []string{BackendSQLite, BackendFile, BackendMemory}
	idStrategies = []string{services.IDStrategyUUIDv7, services.IDStrategyUUIDv4, services.IDStrategyLegacy}
	logFormats   = []string{logging.FormatText, logging.FormatJSON, logging.FormatPretty}
)

// Config holds runtime settings for the accountkeeper CLI.
//
// DataPath is a database file for the sqlite backend and a directory for
// the file backend. The memory backend ignores it.
type Config struct {
	Backend    string
	DataPath   string
	StorageKey string
	IDStrategy string
	LogLevel   string
	LogFormat  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.DataPath = "accounts.db"
	c.StorageKey = common.DefaultStorageKey
	c.IDStrategy = services.IDStrategyUUIDv7
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if !slices.Contains(backends, c.Backend) {
		return invalid("backend", c.Backend, backends)
	}
	if c.Backend != BackendMemory && strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("%w: data path is required for the %s backend", common.ErrorInvalidConfig, c.Backend)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("%w: storage key is empty", common.ErrorInvalidConfig)
	}
	if !slices.Contains(idStrategies, c.IDStrategy) {
		return invalid("id strategy", c.IDStrategy, idStrategies)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", common.ErrorInvalidConfig, c.LogLevel)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return invalid("log format", c.LogFormat, logFormats)
	}
	return nil
}

func invalid(field, value string, allowed []string) error {
	return fmt.Errorf("%w: unknown %s %q (want one of %s)",
		common.ErrorInvalidConfig, field, value, strings.Join(allowed, ", "))
}
