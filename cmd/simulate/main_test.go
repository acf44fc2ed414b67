package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"booklibrary/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Steps(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("abc\n-3\n12\n"), &out)

	steps, err := p.steps()
	require.NoError(t, err)
	assert.Equal(t, 12, steps)
	assert.Contains(t, out.String(), "Not a valid number")
	assert.Contains(t, out.String(), "cannot be negative")
}

func TestPrompter_Seed(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("x\n -7 \n"), &out)

	seed, err := p.seed()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), seed)
}

func TestPrompter_InputClosed(t *testing.T) {
	p := newPrompter(strings.NewReader("nope\n"), &bytes.Buffer{})
	_, err := p.steps()
	assert.ErrorIs(t, err, errNoInput)
}

func TestRun_PromptsForMissingValues(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "simulation.log")
	var out bytes.Buffer

	err := run(context.Background(), config.Config{LogFile: logPath, LogLevel: "info"}, false,
		strings.NewReader("3\n42\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Enter the number of simulation steps")
	assert.Contains(t, out.String(), "simulation finished")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "steps=3 seed=42")
}

func TestRun_NoPromptWhenConfigured(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Config{Steps: 2, StepsSet: true, Seed: 1, SeedSet: true, LogLevel: "info"}

	err := run(context.Background(), cfg, false, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Enter")
	assert.Contains(t, out.String(), "simulation finished")
}

func TestRun_BadLogLevel(t *testing.T) {
	cfg := config.Config{StepsSet: true, SeedSet: true, LogLevel: "loud"}
	err := run(context.Background(), cfg, true, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRootCmd_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SIM_STEPS", "100")
	t.Setenv("SIM_SEED", "5")
	t.Setenv("SIM_LOG_FILE", "")
	t.Setenv("SIM_LOG_LEVEL", "")
	t.Setenv("SIM_STEPS_PER_SECOND", "")
	t.Setenv("SIM_FIXTURES", "")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--steps", "1", "--log-file", "", "--log-level", "debug"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "steps=1 seed=5")
}
