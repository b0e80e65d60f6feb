package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the file", func(t *testing.T) {
		// Given: a config file overriding some values
		path := writeConfig(t, `
log-level: debug
frontend: terminal
window:
  title: board
  width: 800
  height: 600
colors:
  x: "#00ff00"
  o: "#ffff00"
timing:
  placement: 250ms
  confirmation: 300ms
sound:
  enabled: true
`)

		// When: the config is loaded
		conf, err := Load(path, true)

		// Then: the file values win and the rest are defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, FrontendTerminal, conf.Frontend)
		assert.Equal(t, Window{Title: "board", Width: 800, Height: 600, TPS: 60}, conf.Window)
		assert.Equal(t, 250*time.Millisecond, conf.Timing.Placement)
		assert.Equal(t, 300*time.Millisecond, conf.Timing.Confirmation)
		assert.True(t, conf.Sound.Enabled)
		assert.InDelta(t, -1, conf.Sound.Volume, 1e-9)

		x, o, err := conf.Colors.Parse()
		require.NoError(t, err)
		assert.Equal(t, colorful.Color{G: 1}, x)
		assert.Equal(t, colorful.Color{R: 1, G: 1}, o)
	})

	t.Run("Defaults without a file", func(t *testing.T) {
		// When: the config file does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"), false)

		// Then: every value is a default
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, FrontendWindow, conf.Frontend)
		assert.Equal(t, 500*time.Millisecond, conf.Timing.Placement)
		assert.Equal(t, 600*time.Millisecond, conf.Timing.Confirmation)
		assert.Equal(t, Colors{X: "#ff0000", O: "#0000ff"}, conf.Colors)
		assert.False(t, conf.Sound.Enabled)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: a color in the environment
		t.Setenv("COLOR_X", "#123456")

		// When: the config is loaded
		conf, err := Load("", false)

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "#123456", conf.Colors.X)
	})

	t.Run("Missing required file", func(t *testing.T) {
		// Given: an explicit path that does not exist
		path := filepath.Join(t.TempDir(), "typo.yml")

		// When: the config is loaded
		_, err := Load(path, true)

		// Then: it fails instead of running on defaults
		require.ErrorIs(t, err, ErrConfigNotFound)
		assert.Panics(t, func() { MustLoad(path, true) })
	})

	t.Run("Unknown frontend", func(t *testing.T) {
		path := writeConfig(t, "frontend: browser\n")

		_, err := Load(path, true)

		require.ErrorIs(t, err, ErrUnknownFrontend)
	})

	t.Run("Bad color", func(t *testing.T) {
		path := writeConfig(t, "colors:\n  o: blue\n")

		_, err := Load(path, true)

		require.ErrorIs(t, err, ErrInvalidColor)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := writeConfig(t, "window: [1, 2\n")

		assert.Panics(t, func() { MustLoad(path, true) })
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Frontend: FrontendWindow,
		Window:   Window{Width: 10, Height: 10},
		Colors:   Colors{X: "#ff0000", O: "#0000ff"},
		Timing:   Timing{Placement: time.Millisecond, Confirmation: time.Millisecond},
	}
	require.NoError(t, valid.Validate())

	noTiming := valid
	noTiming.Timing.Confirmation = 0
	require.ErrorIs(t, noTiming.Validate(), ErrInvalidTiming)

	noWindow := valid
	noWindow.Window.Height = 0
	require.ErrorIs(t, noWindow.Validate(), ErrInvalidWindow)
}
