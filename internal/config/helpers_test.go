package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var knownEnv = []string{
	"EMAIL", "NEW_EMAIL", "PASSWORD", "NEW_PASSWORD",
	"API_BASE_URL", "API_REQUEST_TIMEOUT",
	"SUITE_TARGET", "SUITE_SMOKE_INTERVAL",
	"STUB_ADDRESS", "STUB_DATABASE_DSN",
	"LOG_LEVEL", "CONFIG", "DOTENV",
}

// isolateEnv unsets every variable the package reads and points DOTENV at a
// file that does not exist. Originals are restored on cleanup.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range knownEnv {
		unsetEnv(t, key)
	}
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "missing.env"))
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
