package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	chdirForTest(t, t.TempDir())
	logDir := filepath.Join(t.TempDir(), "logs")

	// Test with missing token
	t.Setenv("SLASHBOT_BOT_TOKEN", "")
	t.Setenv("SLASHBOT_LOG_DIR", logDir)
	t.Setenv("SLASHBOT_GUILD_ID", "guild-1")
	t.Setenv("SLASHBOT_LOG_LEVEL", "debug")

	cfg, err := NewConfig()
	require.NoError(t, err, "loading must not require a token")
	require.Error(t, cfg.Validate())

	// Test with valid vars
	t.Setenv("SLASHBOT_BOT_TOKEN", "test_token")
	cfg, err = NewConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "test_token", cfg.GetBotToken())
	assert.Equal(t, "guild-1", cfg.GetGuildID())
	assert.Equal(t, logDir, cfg.GetLogDir())
	assert.Equal(t, log.DebugLevel, cfg.Logger.GetLevel())

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries, "a log file should be created")
}

func TestNewConfigDefaults(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("SLASHBOT_LOG_DIR", "")
	t.Setenv("SLASHBOT_METRICS_ADDR", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "./logs", cfg.GetLogDir())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.Empty(t, cfg.GetMetricsAddr())
	assert.False(t, cfg.GetUnregisterCommands())
}

func TestPruneOldLogFiles(t *testing.T) {
	dir := t.TempDir()
	oldFile := filepath.Join(dir, "slashbot_old.log")
	newFile := filepath.Join(dir, "slashbot_new.log")
	require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(newFile, []byte("new"), 0o644))

	stale := time.Now().Add(-8 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	cfg := NewMockConfig(map[string]interface{}{"log_dir": dir})
	require.NoError(t, cfg.PruneOldLogFiles())

	_, err := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err), "stale log should be removed")
	_, err = os.Stat(newFile)
	assert.NoError(t, err, "fresh log should be kept")
}

func TestSetLogLevel(t *testing.T) {
	cfg := NewMockConfig(nil)

	require.NoError(t, cfg.SetLogLevel("warn"))
	assert.Equal(t, log.WarnLevel, cfg.Logger.GetLevel())

	assert.Error(t, cfg.SetLogLevel("loud"))
	assert.Equal(t, log.WarnLevel, cfg.Logger.GetLevel(), "invalid level leaves the logger untouched")
}

// chdirForTest changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (unavailable before Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
