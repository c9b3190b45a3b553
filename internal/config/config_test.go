package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "taskscope.db"), cfg.Database)
	assert.Equal(t, 60*time.Second, cfg.WatchInterval())
	assert.Equal(t, 15*time.Minute, cfg.ApproachWindow())
	assert.Equal(t, 60*time.Minute, cfg.GraceWindow())
	assert.Equal(t, 25*time.Minute, cfg.PomodoroLength())

	// First run persists the defaults.
	_, err = os.Stat(filepath.Join(dir, "config.json"))
	assert.NoError(t, err)
}

func TestLoadReadsExistingFile(t *testing.T) {
	dir := t.TempDir()

	payload := `{
		"database": "/tmp/other.db",
		"watch_interval_seconds": 5,
		"pomodoro_minutes": 50,
		"styles": {"accent_color": "33"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(payload), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Database)
	assert.Equal(t, 5*time.Second, cfg.WatchInterval())
	assert.Equal(t, 50*time.Minute, cfg.PomodoroLength())
	assert.Equal(t, "33", cfg.Styles.AccentColor)
	// Untouched keys keep their defaults.
	assert.Equal(t, 15*time.Minute, cfg.ApproachWindow())
}
