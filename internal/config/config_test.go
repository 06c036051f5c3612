package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twopointers/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twopointers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_FromTags(t *testing.T) {
	want := &config.Config{
		Log: config.LogConfig{Level: "info", Format: "console"},
		Harness: config.HarnessConfig{
			Random: config.RandomConfig{Count: 20, Size: 12, Min: -10, Max: 11},
		},
	}
	assert.Equal(t, want, config.Default())
	assert.NoError(t, config.Default().Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
harness:
  scenarios: scenarios.yaml
  random:
    count: 5
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "unset fields keep their default")
	assert.Equal(t, "scenarios.yaml", cfg.Harness.Scenarios)
	assert.Equal(t, 5, cfg.Harness.Random.Count)
	assert.Equal(t, 12, cfg.Harness.Random.Size)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvScenarios, "/tmp/s.yaml")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/s.yaml", cfg.Harness.Scenarios)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "log: [unterminated"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "log:\n  level: loud\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"count", func(c *config.Config) { c.Harness.Random.Count = -1 }},
		{"size", func(c *config.Config) { c.Harness.Random.Size = -1 }},
		{"range", func(c *config.Config) { c.Harness.Random.Min = 3; c.Harness.Random.Max = 3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
	assert.NoError(t, config.Default().Validate())
}
