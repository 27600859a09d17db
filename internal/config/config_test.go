package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.False(t, cfg.Graph.Reciprocal)
	require.Equal(t, "0.1.0", cfg.Network.Version)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FOLLOWERS_GRAPH_RECIPROCAL", "true")
	t.Setenv("FOLLOWERS_LOG_LEVEL", "debug")
	t.Setenv("FOLLOWERS_NETWORK_VERSION", "1.4.2")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Graph.Reciprocal)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "1.4.2", cfg.Network.Version)
}

func TestNewLogger(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "warn"
	cfg.Log.Format = "json"

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, logger.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Format = "xml"
	_, err = cfg.NewLogger()
	require.Error(t, err)

	cfg.Log.Format = "text"
	cfg.Log.Level = "loud"
	_, err = cfg.NewLogger()
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
