package logging

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDefaultsOutputPaths verifies a config without output paths
// still produces a logger that writes somewhere.
func TestNewDefaultsOutputPaths(t *testing.T) {
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = old }()

	logger, err := New(Config{Level: "info"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("sink check")
	w.Close()
	os.Stderr = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "sink check")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestDefaultConfigSinks(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
	assert.Equal(t, "info", cfg.Level)

	dev := DevelopmentConfig()
	assert.Equal(t, "debug", dev.Level)
	assert.True(t, dev.Development)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	logger := Nop()
	assert.Same(t, logger, OrNop(logger))
}

func TestNamed(t *testing.T) {
	logger := Nop().Named("stage")
	assert.NotNil(t, logger)
}
