package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tighten.dev/pkg/tighten/internal/domain"
	domainmocks "tighten.dev/pkg/tighten/internal/domain/mocks"
	"tighten.dev/pkg/tighten/pkg/interrupt"
)

// useMockWorkflow makes commands run against a mock workflow instead of the
// real adapters.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWire := wire
	wire = func(*cobra.Command) {
		token = interrupt.New()
		workflow = mockWorkflow
	}

	t.Cleanup(func() { wire = originalWire })

	return mockWorkflow
}

func executeWith(t *testing.T, sub *cobra.Command, args ...string) error {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	// flags after "--" belong to cargo, so the log file goes first.
	cmd.SetArgs(append([]string{"--log-file=" + t.TempDir() + "/tighten.log"}, args...))

	return cmd.Execute()
}

func TestRunCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Sample.BatchMin == domain.DefaultBatchMin &&
			args.Sample.BatchMax == domain.DefaultBatchMax &&
			args.MaxIterations == 0 &&
			args.Batch.Format
	})).Return(nil).Once()

	require.NoError(t, executeWith(t, newRunCmd(), "run"))
}

func TestRunCmd_Flags(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	t.Cleanup(func() {
		noFormatFlag = false
		viper.Set(tuiConfigKey, defaultTUI)
	})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Sample.BatchMin == 2 &&
			args.Sample.BatchMax == 4 &&
			args.MaxIterations == 3 &&
			args.Seed == 99 &&
			!args.Batch.Format &&
			len(args.Batch.ExtraArgs) == 2 && args.Batch.ExtraArgs[0] == "--lib"
	})).Return(nil).Once()

	err := executeWith(t, newRunCmd(), "run",
		"--batch-min", "2", "--batch-max", "4", "-n", "3", "--seed", "99", "--no-format", "--no-tui",
		"--", "--lib", "--quiet")
	require.NoError(t, err)
	require.False(t, viper.GetBool(tuiConfigKey))
}

func TestRunCmd_Interrupted(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(interrupt.ErrInterrupted).Once()

	err := executeWith(t, newRunCmd(), "run")
	require.ErrorIs(t, err, interrupt.ErrInterrupted)
}
