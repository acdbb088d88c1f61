package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 64, cfg.GetMaxDepth())
	assert.Equal(t, 10000, cfg.GetMaxSteps())
	assert.Equal(t, 30*time.Second, cfg.GetDeadline())
	assert.Equal(t, 300*time.Millisecond, cfg.GetDebounce())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Search, cfg.Search)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "planner.yaml")

	cfg := DefaultConfig()
	cfg.Search.MaxDepth = "128"
	cfg.Logging.Verbose = true
	cfg.Logging.TraceFormat = "yaml"
	cfg.Watch.Debounce = "1s"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 128, loaded.GetMaxDepth())
	assert.True(t, loaded.Logging.Verbose)
	assert.Equal(t, "yaml", loaded.Logging.TraceFormat)
	assert.Equal(t, time.Second, loaded.GetDebounce())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [this is not a mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMalformedNumericFieldsFallBackToDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.MaxDepth = "not-a-number"
	cfg.Search.MaxSteps = ""
	cfg.Search.Deadline = "not-a-duration"
	cfg.Watch.Debounce = "also-not-a-duration"

	assert.Equal(t, 64, cfg.GetMaxDepth())
	assert.Equal(t, 10000, cfg.GetMaxSteps())
	assert.Equal(t, 30*time.Second, cfg.GetDeadline())
	assert.Equal(t, 300*time.Millisecond, cfg.GetDebounce())
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PLANNER_VERBOSE", "1")
	t.Setenv("PLANNER_TRACE_FORMAT", "yaml")
	t.Setenv("PLANNER_DEADLINE", "5s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Logging.Verbose)
	assert.Equal(t, "yaml", cfg.Logging.TraceFormat)
	assert.Equal(t, 5*time.Second, cfg.GetDeadline())
}
