package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestGetEnvInt(t *testing.T) {
	os.Setenv("COLORSNAKE_TEST_INT", "12")
	defer os.Unsetenv("COLORSNAKE_TEST_INT")
	require.Equal(t, 12, getEnvInt("COLORSNAKE_TEST_INT", 3))

	os.Setenv("COLORSNAKE_TEST_INT", "twelve")
	require.Equal(t, 3, getEnvInt("COLORSNAKE_TEST_INT", 3))

	require.Equal(t, 7, getEnvInt("COLORSNAKE_TEST_UNSET", 7))
}

func writeConfig(t *testing.T, body string) (string, func()) {
	dir, err := ioutil.TempDir("", "colorsnake")
	require.NoError(t, err)
	path := filepath.Join(dir, "colorsnake.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0600))
	return path, func() { os.RemoveAll(dir) }
}

func TestLoadFile(t *testing.T) {
	path, cleanup := writeConfig(t, `
log_level: debug
log_file: /tmp/colorsnake.log
seed: 42
render_fps: 60
prometheus:
  enable: true
`)
	defer cleanup()
	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "debug", f.LogLevel)
	require.Equal(t, "/tmp/colorsnake.log", f.LogFile)
	require.Equal(t, int64(42), f.Seed)
	require.True(t, f.Prometheus.Enable)
	require.Equal(t, ":9090", f.Prometheus.Listen)
	require.Equal(t, rate.Limit(60), f.RenderLimit())
}

func TestLoadFile_Defaults(t *testing.T) {
	path, cleanup := writeConfig(t, "{}\n")
	defer cleanup()
	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, Default(), f)
	require.Equal(t, "info", f.LogLevel)
	require.Equal(t, RenderRate, f.RenderLimit())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(os.TempDir(), "colorsnake-missing.yaml"))
	require.Error(t, err)

	path, cleanup := writeConfig(t, "seed: [1, 2")
	defer cleanup()
	_, err = LoadFile(path)
	require.Error(t, err)
}
