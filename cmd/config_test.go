package cmd

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tighten.dev/pkg/tighten/internal/adapter"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "tighten", configBaseName)
	assert.Equal(t, "tighten.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "TIGHTEN", envPrefix)
	assert.Equal(t, "GIT", vcsBinaryEnv)
	assert.Equal(t, "CARGO", buildBinaryEnv)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, 1, viper.GetInt(batchMinConfigKey))
	assert.Equal(t, 15, viper.GetInt(batchMaxConfigKey))
	assert.Equal(t, 1000, viper.GetInt(maxDrawsConfigKey))
	assert.Equal(t, "50ms", viper.GetString(pollIntervalConfigKey))
	assert.True(t, viper.GetBool(buildFormatConfigKey))
}

func TestConfig_GitEnvOverridesVCSBinary(t *testing.T) {
	t.Setenv("GIT", "/opt/git/bin/git")

	assert.Equal(t, "/opt/git/bin/git", viper.GetString(vcsBinaryConfigKey))
}

func TestConfig_CargoEnvOverridesBuildBinary(t *testing.T) {
	t.Setenv("CARGO", "/opt/cargo/bin/cargo")

	assert.Equal(t, "/opt/cargo/bin/cargo", viper.GetString(buildBinaryConfigKey))
}

func TestConfig_PrefixedEnv(t *testing.T) {
	t.Setenv("TIGHTEN_RUN_BATCH_MAX", "3")

	assert.Equal(t, 3, viper.GetInt(batchMaxConfigKey))
}

func TestPollInterval(t *testing.T) {
	t.Run("parses duration", func(t *testing.T) {
		t.Setenv("TIGHTEN_RUN_POLL_INTERVAL", "120ms")
		assert.Equal(t, 120*time.Millisecond, pollInterval())
	})

	t.Run("falls back on garbage", func(t *testing.T) {
		t.Setenv("TIGHTEN_RUN_POLL_INTERVAL", "soon")
		assert.Equal(t, adapter.DefaultPollInterval, pollInterval())
	})
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.in, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logPath := filepath.Join(t.TempDir(), "tighten.log")
	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	slog.Debug("hello")
	assert.FileExists(t, logPath)
}

func TestConfigCmd_PrintsYAML(t *testing.T) {
	cmd := newConfigCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var settings map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &settings))

	assert.Contains(t, settings, "run")
	assert.Contains(t, settings, "vcs")
	assert.Contains(t, settings, "build")
}
