package adapter

import (
	"context"
	"io"

	m "tighten.dev/pkg/tighten/internal/model"
)

// DefaultGitBinary is used when the GIT environment variable is not set.
const DefaultGitBinary = "git"

// VCSAdapter performs the version-control operations of a campaign.
type VCSAdapter interface {
	// Reset restores the working tree to the last commit.
	Reset(ctx context.Context, dir m.Path) (m.BuildResult, error)
	// Discard drops uncommitted changes to tracked files.
	Discard(ctx context.Context, dir m.Path) (m.BuildResult, error)
	// Commit records every change to tracked files.
	Commit(ctx context.Context, dir m.Path, subject, body string) (m.BuildResult, error)
	// IsClean reports whether tracked files match the last commit.
	IsClean(ctx context.Context, dir m.Path) (bool, error)
}

// LocalGitAdapter drives git through a ProcessAdapter.
type LocalGitAdapter struct {
	process ProcessAdapter
	binary  string
	output  io.Writer
}

// NewLocalGitAdapter constructs a LocalGitAdapter. An empty binary selects
// DefaultGitBinary.
func NewLocalGitAdapter(process ProcessAdapter, binary string, output io.Writer) *LocalGitAdapter {
	if binary == "" {
		binary = DefaultGitBinary
	}

	return &LocalGitAdapter{
		process: process,
		binary:  binary,
		output:  output,
	}
}

// Reset runs `git reset --hard HEAD`.
func (a *LocalGitAdapter) Reset(ctx context.Context, dir m.Path) (m.BuildResult, error) {
	return a.run(ctx, dir, "reset", "--hard", "--quiet", "HEAD")
}

// Discard runs `git checkout -- .`.
func (a *LocalGitAdapter) Discard(ctx context.Context, dir m.Path) (m.BuildResult, error) {
	return a.run(ctx, dir, "checkout", "--quiet", "--", ".")
}

// Commit runs `git commit -a` with the given subject and optional body.
func (a *LocalGitAdapter) Commit(ctx context.Context, dir m.Path, subject, body string) (m.BuildResult, error) {
	args := []string{"commit", "--all", "--quiet", "-m", subject}
	if body != "" {
		args = append(args, "-m", body)
	}

	return a.run(ctx, dir, args...)
}

// IsClean runs `git diff --quiet HEAD`, which exits 0 only when tracked files
// match HEAD.
func (a *LocalGitAdapter) IsClean(ctx context.Context, dir m.Path) (bool, error) {
	result, err := a.run(ctx, dir, "diff", "--quiet", "HEAD")
	if err != nil {
		return false, err
	}

	return result.Succeeded(), nil
}

func (a *LocalGitAdapter) run(ctx context.Context, dir m.Path, args ...string) (m.BuildResult, error) {
	return a.process.Run(ctx, m.Command{
		Name:   a.binary,
		Args:   args,
		Dir:    dir,
		Output: a.output,
	})
}
