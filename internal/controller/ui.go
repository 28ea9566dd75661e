// Package controller provides output adapters for displaying tightening
// campaigns and candidate listings.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "tighten.dev/pkg/tighten/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeCampaign
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	onQuit func()
}

// WithListMode sets the UI to candidate listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithCampaignMode sets the UI to campaign mode.
func WithCampaignMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCampaign
	}
}

// WithQuitHandler registers the function called when the user asks to stop.
func WithQuitHandler(onQuit func()) StartOption {
	return func(c *StartConfig) {
		c.onQuit = onQuit
	}
}

// NewStartConfig applies options over the campaign-mode default.
func NewStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeCampaign}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// Mode returns the selected mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// OnQuit returns the quit handler, or nil when none was registered.
func (c StartConfig) OnQuit() func() {
	return c.onQuit
}

// CampaignInfo describes a campaign before its first iteration.
type CampaignInfo struct {
	Root          m.Path
	Sources       int
	MaxIterations int
	Seed          uint64
}

// UI defines the interface for displaying campaign progress and listings.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	// Output is where collaborator processes write their merged output.
	Output() io.Writer
	DisplayCampaignInfo(ctx context.Context, info CampaignInfo)
	DisplayIterationStart(ctx context.Context, number int, batch []m.Mutation)
	DisplayIteration(ctx context.Context, iteration m.Iteration)
	DisplayMutations(ctx context.Context, mutations []m.Mutation, showDiff bool) error
}

// NewUI returns a TUI when useTTY is set and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal. Redirected output and
// non-file writers are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
