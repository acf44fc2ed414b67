package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SIM_STEPS", "SIM_SEED", "SIM_LOG_FILE", "SIM_LOG_LEVEL", "SIM_STEPS_PER_SECOND", "SIM_FIXTURES"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.StepsSet)
	assert.False(t, cfg.SeedSet)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Zero(t, cfg.StepsPerSecond)
	assert.Empty(t, cfg.Fixtures)
}

func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_STEPS", "20")
	t.Setenv("SIM_SEED", "-42")
	t.Setenv("SIM_LOG_FILE", "run.log")
	t.Setenv("SIM_LOG_LEVEL", "debug")
	t.Setenv("SIM_STEPS_PER_SECOND", "2.5")
	t.Setenv("SIM_FIXTURES", "books.yaml")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Steps:          20,
		StepsSet:       true,
		Seed:           -42,
		SeedSet:        true,
		LogFile:        "run.log",
		LogLevel:       "debug",
		StepsPerSecond: 2.5,
		Fixtures:       "books.yaml",
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_STEPS", "-1")
	t.Setenv("SIM_SEED", "abc")
	t.Setenv("SIM_STEPS_PER_SECOND", "fast")

	cfg, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIM_STEPS")
	assert.Contains(t, err.Error(), "SIM_SEED")
	assert.Contains(t, err.Error(), "SIM_STEPS_PER_SECOND")
	assert.False(t, cfg.StepsSet)
	assert.False(t, cfg.SeedSet)
}

func TestLoad_ReadsDotEnvLocal(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SIM_STEPS")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("SIM_STEPS=7\n"), 0o644))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("SIM_STEPS") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.StepsSet)
	assert.Equal(t, 7, cfg.Steps)
}
