package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tighten.dev/pkg/tighten/internal/domain"
)

const listLongDescription = `List every visibility edit the campaign could try, without changing
anything. Use --diff to print each edit as a unified diff.`

var showDiffFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidate visibility edits",
		Long:  listLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			wire(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			stop := token.NotifyOnSignal()
			defer stop()

			return workflow.List(cmd.Context(), domain.ListArgs{
				Root:     projectDir(),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				Threads:  viper.GetInt(runParallelConfigKey),
				ShowDiff: showDiffFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&showDiffFlag, diffFlagName, "d", false, "print a unified diff for every edit")
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files parsed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
