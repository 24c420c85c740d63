package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared with the CLI.
const (
	FlagConfig     = "config"
	FlagBackend    = "backend"
	FlagDataPath   = "data"
	FlagStorageKey = "key"
	FlagIDStrategy = "id-strategy"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
)

// Flags binds configuration flags to a flag set and later resolves the
// final Config from them.
type Flags struct {
	fs         *pflag.FlagSet
	configPath string
	values     Config
}

// RegisterFlags adds the configuration flags to fs. Flag defaults mirror
// LoadDefaults so help output stays accurate.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	var d Config
	d.LoadDefaults()

	fs.StringVarP(&f.configPath, FlagConfig, "c", "", "path to a JSON config file")
	fs.StringVar(&f.values.Backend, FlagBackend, d.Backend, "storage backend: sqlite, file or memory")
	fs.StringVar(&f.values.DataPath, FlagDataPath, d.DataPath, "sqlite database path or file backend directory")
	fs.StringVar(&f.values.StorageKey, FlagStorageKey, d.StorageKey, "storage key holding the account list")
	fs.StringVar(&f.values.IDStrategy, FlagIDStrategy, d.IDStrategy, "id generator: uuid7, uuid4 or legacy")
	fs.StringVar(&f.values.LogLevel, FlagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&f.values.LogFormat, FlagLogFormat, d.LogFormat, "log format: text, json or pretty")
	return f
}

// Load builds the Config: defaults, then the JSON file, then flags that
// were explicitly set. The result is validated.
func (f *Flags) Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, f.configPath); err != nil {
		return nil, err
	}
	f.parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseFlags copies only the flags the user changed, so an unset flag
// never hides a value from the JSON file.
func (f *Flags) parseFlags(cfg *Config) {
	set := func(name string, dst *string, v string) {
		if f.fs.Changed(name) {
			*dst = v
		}
	}
	set(FlagBackend, &cfg.Backend, f.values.Backend)
	set(FlagDataPath, &cfg.DataPath, f.values.DataPath)
	set(FlagStorageKey, &cfg.StorageKey, f.values.StorageKey)
	set(FlagIDStrategy, &cfg.IDStrategy, f.values.IDStrategy)
	set(FlagLogLevel, &cfg.LogLevel, f.values.LogLevel)
	set(FlagLogFormat, &cfg.LogFormat, f.values.LogFormat)
}
