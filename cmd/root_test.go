package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tighten.dev/pkg/tighten/internal/controller"
	m "tighten.dev/pkg/tighten/internal/model"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "tighten", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{dirFlagName, excludeFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "narrows Rust visibility")
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"run", "list", "init", "config", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestWireDependencies(t *testing.T) {
	viper.Set(tuiConfigKey, false)
	t.Cleanup(func() { viper.Set(tuiConfigKey, defaultTUI) })

	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&bytes.Buffer{})

	wireDependencies(cmd)

	require.NotNil(t, token)
	require.NotNil(t, workflow)
	assert.IsType(t, &controller.SimpleUI{}, ui)
	assert.False(t, token.Cancelled())
}

func TestBuildRunArgs(t *testing.T) {
	t.Setenv("TIGHTEN_RUN_MAX_ITERATIONS", "7")
	t.Setenv("TIGHTEN_RUN_SEED", "42")

	viper.Set(buildExtraArgsKey, []string{"--workspace"})
	t.Cleanup(func() { viper.Set(buildExtraArgsKey, []string{}) })

	args := buildRunArgs([]string{"--", "--test-threads=1"})

	assert.Equal(t, m.Path(viper.GetString(dirConfigKey)), args.Root)
	assert.Equal(t, 7, args.MaxIterations)
	assert.Equal(t, uint64(42), args.Seed)
	assert.Equal(t, []string{"--workspace", "--", "--test-threads=1"}, args.Batch.ExtraArgs)
	assert.Equal(t, 1, args.Sample.BatchMin)
	assert.Equal(t, 1000, args.Sample.MaxDraws)
}
