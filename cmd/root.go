// Package cmd provides the root command and CLI setup for tighten.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tighten.dev/pkg/tighten/internal/adapter"
	"tighten.dev/pkg/tighten/internal/controller"
	"tighten.dev/pkg/tighten/internal/domain"
	m "tighten.dev/pkg/tighten/internal/model"
	"tighten.dev/pkg/tighten/pkg/interrupt"
)

// exitInterrupted is the conventional status for a run stopped by SIGINT.
const exitInterrupted = interrupt.ExitCode

var token *interrupt.Token
var ui controller.UI
var workflow domain.Workflow

// dirFlag is a root-level flag naming the Cargo project to operate on.
var dirFlag string

// excludePatterns is a root-level flag that filters source files.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

const rootLongDescription = `tighten narrows Rust visibility modifiers that nothing needs.

It repeatedly picks a random batch of visibility edits (pub -> pub(crate),
pub(self), pub(super) or private), applies them to a Cargo project, runs
cargo test with warnings denied, and commits the batch with git when the
project still builds and passes. Failing batches are discarded.

The project must be a git work tree with a clean state: every iteration
starts with git reset --hard.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tighten",
		Short:        "Rust visibility tightening tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&dirFlag, dirFlagName, "C", viper.GetString(dirConfigKey), "path of the Cargo project to operate on")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dirFlagName), dirConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude source files matching a glob, relative to the project (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// wire is called by the PreRun of every command that needs the workflow.
var wire = wireDependencies

// wireDependencies builds the adapters and the workflow from the effective
// configuration. Collaborator output goes wherever the UI wants it.
func wireDependencies(cmd *cobra.Command) {
	token = interrupt.New()
	ui = controller.NewUI(cmd, viper.GetBool(tuiConfigKey) && controller.IsTTY(os.Stdout))

	process := adapter.NewLocalProcessAdapter(token, adapter.WithPollInterval(pollInterval()))
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	buildAdapter := adapter.NewLocalCargoAdapter(process, viper.GetString(buildBinaryConfigKey), ui.Output())
	vcsAdapter := adapter.NewLocalGitAdapter(process, viper.GetString(vcsBinaryConfigKey), ui.Output())

	orchestrator := domain.NewOrchestrator(fsAdapter, buildAdapter, vcsAdapter)
	mutagen := domain.NewMutagen(adapter.NewLocalRustFileAdapter())

	workflow = domain.NewWorkflow(fsAdapter, vcsAdapter, ui, orchestrator, mutagen, token)
}

func projectDir() m.Path {
	return m.Path(viper.GetString(dirConfigKey))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if errors.Is(err, interrupt.ErrInterrupted) {
		os.Exit(exitInterrupted)
	}

	os.Exit(1)
}
