package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, ScreenWidth, s.ScreenWidth)
	assert.Equal(t, ScreenHeight, s.ScreenHeight)
	assert.Equal(t, TicksPerSec, s.TicksPerSecond)
	assert.Equal(t, MainLevelName, s.StartLevel)
	assert.True(t, s.AudioEnabled)
	assert.Equal(t, 60*time.Second, s.SimulateFor)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "screen_width: 800\nscreen_height: 600\nstart_level: home\naudio_enabled: false\nsimulate_for: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 800, s.ScreenWidth)
	assert.Equal(t, 600, s.ScreenHeight)
	assert.Equal(t, HomeLevelName, s.StartLevel)
	assert.False(t, s.AudioEnabled)
	assert.Equal(t, 5*time.Second, s.SimulateFor)
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CTF_SEED", "42")

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.Seed)
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSettingsRejectsBadScreen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen_width: 0\n"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
