package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinish(t *testing.T) {
	t.Run("Clean exit closes the log", func(t *testing.T) {
		var stderr bytes.Buffer
		closed := false

		code := finish(nil, &stderr, func() { closed = true })

		assert.Equal(t, 0, code)
		assert.True(t, closed)
		assert.Empty(t, stderr.String())
	})

	t.Run("Panic closes the log before failing", func(t *testing.T) {
		// Given: a recovered panic
		var stderr bytes.Buffer
		closed := false

		// When: the run is finished
		code := finish("app run failed: boom", &stderr, func() { closed = true })

		// Then: the log is closed and the panic reported
		assert.Equal(t, 1, code)
		assert.True(t, closed)
		assert.Contains(t, stderr.String(), "recovered from panic: app run failed: boom")
	})
}

func TestInitConfig(t *testing.T) {
	t.Run("Explicit path must exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "typo.yml")

		assert.Panics(t, func() { initConfig(path) })
	})

	t.Run("Explicit path is read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))

		conf := initConfig(path)

		assert.Equal(t, "debug", conf.LogLevel)
	})
}
