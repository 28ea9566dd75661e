package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tighten.dev/pkg/tighten/internal/domain"
)

const runLongDescription = `Run a tightening campaign on the project.

Each iteration resets the work tree, samples a random batch of visibility
edits, applies them, and runs cargo test with RUSTFLAGS="-D warnings
-A unused-imports". A passing batch is formatted with cargo fmt and
committed; a failing one is discarded. One status token (PASS, FAIL or
ERROR) is printed per iteration. The campaign runs until interrupted
unless --max-iterations is set.`

var runParallelFlag int
var batchMinFlag int
var batchMaxFlag int
var maxIterationsFlag int
var seedFlag uint64
var noFormatFlag bool
var noTUIFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- cargo test args...]",
		Short: "Run a visibility tightening campaign",
		Long:  runLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			if noTUIFlag {
				viper.Set(tuiConfigKey, false)
			}

			wire(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := token.NotifyOnSignal()
			defer stop()

			return workflow.Run(cmd.Context(), buildRunArgs(args))
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&batchMinFlag, batchMinFlagName, viper.GetInt(batchMinConfigKey), "smallest number of edits per batch")
	bindFlagToConfig(cmd.Flags().Lookup(batchMinFlagName), batchMinConfigKey)

	cmd.Flags().IntVar(&batchMaxFlag, batchMaxFlagName, viper.GetInt(batchMaxConfigKey), "largest number of edits per batch")
	bindFlagToConfig(cmd.Flags().Lookup(batchMaxFlagName), batchMaxConfigKey)

	cmd.Flags().IntVarP(&maxIterationsFlag, maxIterationsFlagName, "n", viper.GetInt(maxIterationsConfigKey), "stop after this many iterations (0 runs until interrupted)")
	bindFlagToConfig(cmd.Flags().Lookup(maxIterationsFlagName), maxIterationsConfigKey)

	cmd.Flags().Uint64Var(&seedFlag, seedFlagName, viper.GetUint64(seedConfigKey), "random seed for batch sampling (0 picks one)")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), seedConfigKey)

	cmd.Flags().BoolVar(&noFormatFlag, noFormatFlagName, !viper.GetBool(buildFormatConfigKey), "do not run cargo fmt before committing")
	cmd.Flags().BoolVar(&noTUIFlag, noTUIFlagName, false, "print plain status tokens even on a terminal")
}

func buildRunArgs(extraArgs []string) domain.RunArgs {
	extra := append([]string{}, viper.GetStringSlice(buildExtraArgsKey)...)
	extra = append(extra, extraArgs...)

	return domain.RunArgs{
		Root:    projectDir(),
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Sample: domain.SampleArgs{
			BatchMin: viper.GetInt(batchMinConfigKey),
			BatchMax: viper.GetInt(batchMaxConfigKey),
			MaxDraws: viper.GetInt(maxDrawsConfigKey),
		},
		Batch: domain.BatchArgs{
			ExtraArgs: extra,
			Format:    viper.GetBool(buildFormatConfigKey) && !noFormatFlag,
		},
		MaxIterations: viper.GetInt(maxIterationsConfigKey),
		Seed:          viper.GetUint64(seedConfigKey),
	}
}
