package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/keepitsafe/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerDiscards(t *testing.T) {
	dir := t.TempDir()
	entry := NewLogger(&config.AppConfig{ConfigDir: dir, Version: "1.0"})

	entry.Error("nothing to see")

	assert.Equal(t, logrus.ErrorLevel, entry.Logger.Level)
	assert.Equal(t, "1.0", entry.Data["version"])
	assert.NoFileExists(t, filepath.Join(dir, "development.log"))
}

func TestDevelopmentLoggerWritesJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	dir := t.TempDir()
	entry := NewLogger(&config.AppConfig{ConfigDir: dir, Debug: true})

	entry.Debug("hidden")
	entry.Info("shown")

	content, err := os.ReadFile(filepath.Join(dir, "development.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"shown"`)
	assert.NotContains(t, string(content), "hidden")
}

func TestGetLogLevelDefaultsToDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, logrus.DebugLevel, getLogLevel())
}
