package adapter

import (
	"context"
	"io"

	m "tighten.dev/pkg/tighten/internal/model"
)

const (
	// DefaultCargoBinary is used when no override is configured.
	DefaultCargoBinary = "cargo"

	// cargoTestSubcommand is the fixed base of every validation run.
	cargoTestSubcommand = "test"
	cargoFmtSubcommand  = "fmt"

	// rustFlags turns warnings into errors but tolerates unused imports, which
	// a narrowed item can legitimately leave behind.
	rustFlags = "RUSTFLAGS=-D warnings -A unused-imports"
)

// BuildAdapter validates and formats a project through its build tool.
type BuildAdapter interface {
	// Test builds the project and runs its tests.
	Test(ctx context.Context, dir m.Path, extraArgs []string) (m.BuildResult, error)
	// Format runs the project's formatter.
	Format(ctx context.Context, dir m.Path) (m.BuildResult, error)
}

// LocalCargoAdapter drives cargo through a ProcessAdapter.
type LocalCargoAdapter struct {
	process ProcessAdapter
	binary  string
	output  io.Writer
}

// NewLocalCargoAdapter constructs a LocalCargoAdapter. An empty binary
// selects DefaultCargoBinary; output receives cargo's merged output.
func NewLocalCargoAdapter(process ProcessAdapter, binary string, output io.Writer) *LocalCargoAdapter {
	if binary == "" {
		binary = DefaultCargoBinary
	}

	return &LocalCargoAdapter{
		process: process,
		binary:  binary,
		output:  output,
	}
}

// Test runs `cargo test <extraArgs...>` with warnings denied.
func (a *LocalCargoAdapter) Test(ctx context.Context, dir m.Path, extraArgs []string) (m.BuildResult, error) {
	args := append([]string{cargoTestSubcommand}, extraArgs...)

	return a.process.Run(ctx, m.Command{
		Name:   a.binary,
		Args:   args,
		Dir:    dir,
		Env:    []string{rustFlags},
		Output: a.output,
	})
}

// Format runs `cargo fmt`.
func (a *LocalCargoAdapter) Format(ctx context.Context, dir m.Path) (m.BuildResult, error) {
	return a.process.Run(ctx, m.Command{
		Name:   a.binary,
		Args:   []string{cargoFmtSubcommand},
		Dir:    dir,
		Output: a.output,
	})
}
