package config

import (
	"testing"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f.Load()
}

func TestFlags_Load(t *testing.T) {
	jsonPath := writeTempJSON(t, map[string]any{
		"backend":     "file",
		"data_path":   "/from/json",
		"id_strategy": "legacy",
	})

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "defaults only",
			args: nil,
			expected: &Config{Backend: "sqlite", DataPath: "accounts.db", StorageKey: "accounts",
				IDStrategy: "uuid7", LogLevel: "warn", LogFormat: "text"},
		},
		{
			name: "flags override defaults",
			args: []string{"--backend", "memory", "--key", "team", "--log-level=debug"},
			expected: &Config{Backend: "memory", DataPath: "accounts.db", StorageKey: "team",
				IDStrategy: "uuid7", LogLevel: "debug", LogFormat: "text"},
		},
		{
			name: "json overrides defaults",
			args: []string{"-c", jsonPath},
			expected: &Config{Backend: "file", DataPath: "/from/json", StorageKey: "accounts",
				IDStrategy: "legacy", LogLevel: "warn", LogFormat: "text"},
		},
		{
			name: "explicit flags beat json, unset flags do not",
			args: []string{"--config", jsonPath, "--data", "/from/flag", "--log-format", "pretty"},
			expected: &Config{Backend: "file", DataPath: "/from/flag", StorageKey: "accounts",
				IDStrategy: "legacy", LogLevel: "warn", LogFormat: "pretty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load(t, tt.args...)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestFlags_LoadRejectsInvalid(t *testing.T) {
	_, err := load(t, "--backend", "s3")
	require.ErrorIs(t, err, common.ErrorInvalidConfig)

	_, err = load(t, "-c", "/definitely/not/here.json")
	require.ErrorIs(t, err, common.ErrorInvalidConfig)
}
