package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("overlays present fields only", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"backend":    "file",
			"data_path":  "/var/lib/ak",
			"log_format": "json",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, path))

		assert.Equal(t, "file", cfg.Backend)
		assert.Equal(t, "/var/lib/ak", cfg.DataPath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "accounts", cfg.StorageKey, "absent field keeps default")
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("empty path → no changes", func(t *testing.T) {
		cfg := &Config{Backend: "memory"}
		require.NoError(t, parseJson(cfg, ""))
		assert.Equal(t, "memory", cfg.Backend)
	})

	t.Run("missing file → error", func(t *testing.T) {
		cfg := &Config{}
		err := parseJson(cfg, filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorIs(t, err, common.ErrorInvalidConfig)
	})

	t.Run("invalid JSON → error, not panic", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.NotPanics(t, func() {
			err := parseJson(cfg, bad)
			require.ErrorIs(t, err, common.ErrorInvalidConfig)
		})
	})
}
