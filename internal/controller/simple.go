package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "tighten.dev/pkg/tighten/internal/model"
)

// SimpleUI implements UI using cobra Command's output. A campaign prints one
// status token per iteration and nothing else.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Output passes collaborator output straight through.
func (s *SimpleUI) Output() io.Writer {
	return s.cmd.OutOrStdout()
}

// DisplayCampaignInfo is silent; the campaign is described in the log.
func (s *SimpleUI) DisplayCampaignInfo(_ context.Context, _ CampaignInfo) {}

// DisplayIterationStart is silent.
func (s *SimpleUI) DisplayIterationStart(_ context.Context, _ int, _ []m.Mutation) {}

// DisplayIteration prints the iteration's status token.
func (s *SimpleUI) DisplayIteration(_ context.Context, iteration m.Iteration) {
	s.printf("%s\n", iteration.Status)
}

// DisplayMutations prints the candidate table and, when asked, each diff.
func (s *SimpleUI) DisplayMutations(ctx context.Context, mutations []m.Mutation, showDiff bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderMutationTable(mutations))

	if !showDiff {
		return nil
	}

	for _, mutation := range mutations {
		diff, err := mutation.Diff()
		if err != nil {
			return fmt.Errorf("render diff for %s: %w", mutation, err)
		}

		s.printf("%s\n", diff)
	}

	return nil
}

func renderMutationTable(mutations []m.Mutation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Position", "Item", "Name", "From", "To"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	files := make(map[m.Path]struct{})

	for _, mutation := range mutations {
		path := m.Path("")
		if mutation.Source != nil {
			path = mutation.Source.RelPath
		}

		files[path] = struct{}{}

		table.Append([]string{
			string(path),
			mutation.Span.Start.String(),
			string(mutation.Kind),
			mutation.Name,
			mutation.From.String(),
			mutation.Op.String(),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(files)),
		"", "", "", "",
		fmt.Sprintf("%d", len(mutations)),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
