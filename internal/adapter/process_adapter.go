package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	m "tighten.dev/pkg/tighten/internal/model"
	"tighten.dev/pkg/tighten/pkg/interrupt"
)

// DefaultPollInterval is how often a running collaborator is checked for
// completion and the interrupt token is polled.
const DefaultPollInterval = 50 * time.Millisecond

// DefaultKillGrace is how long a terminated process group gets to exit
// before the child is killed outright.
const DefaultKillGrace = 10 * time.Second

// LaunchError reports a collaborator that could not be started at all, for
// example because the binary is missing.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to spawn %s: %v", e.Name, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ProcessAdapter runs collaborator processes.
type ProcessAdapter interface {
	// Run starts the command and waits for it. A nonzero exit is reported as
	// m.Failure with a nil error; errors are reserved for launch failures,
	// cancellation and wait problems.
	Run(ctx context.Context, command m.Command) (m.BuildResult, error)
}

// ChildTerminator stops a child process together with anything it spawned.
// A child that already exited is not an error.
type ChildTerminator interface {
	// Terminate asks the child and its descendants to exit.
	Terminate(process *os.Process) error
	// Kill stops them without giving them a chance to clean up.
	Kill(process *os.Process) error
}

// ProcessOption customizes a LocalProcessAdapter.
type ProcessOption func(*LocalProcessAdapter)

// WithPollInterval overrides DefaultPollInterval.
func WithPollInterval(interval time.Duration) ProcessOption {
	return func(a *LocalProcessAdapter) {
		if interval > 0 {
			a.pollInterval = interval
		}
	}
}

// WithTerminator overrides the platform terminator.
func WithTerminator(terminator ChildTerminator) ProcessOption {
	return func(a *LocalProcessAdapter) {
		if terminator != nil {
			a.terminator = terminator
		}
	}
}

// WithKillGrace overrides DefaultKillGrace.
func WithKillGrace(grace time.Duration) ProcessOption {
	return func(a *LocalProcessAdapter) {
		if grace > 0 {
			a.killGrace = grace
		}
	}
}

// LocalProcessAdapter runs commands with os/exec, each in its own process
// group, polling for completion so the interrupt token is observed promptly.
type LocalProcessAdapter struct {
	token        *interrupt.Token
	terminator   ChildTerminator
	pollInterval time.Duration
	killGrace    time.Duration
}

// NewLocalProcessAdapter constructs a LocalProcessAdapter bound to token.
func NewLocalProcessAdapter(token *interrupt.Token, options ...ProcessOption) *LocalProcessAdapter {
	a := &LocalProcessAdapter{
		token:        token,
		terminator:   DefaultTerminator(),
		pollInterval: DefaultPollInterval,
		killGrace:    DefaultKillGrace,
	}

	for _, option := range options {
		option(a)
	}

	return a
}

// Run implements ProcessAdapter.
func (a *LocalProcessAdapter) Run(ctx context.Context, command m.Command) (m.BuildResult, error) {
	if err := a.token.Check(); err != nil {
		return m.Failure, err
	}

	cmd := a.buildCmd(command)

	slog.Debug("starting collaborator", "command", command.Name, "args", command.Args, "dir", command.Dir)

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to spawn collaborator", "command", command.Name, "error", err)
		return m.Failure, &LaunchError{Name: command.Name, Err: err}
	}

	done := make(chan error, 1)

	go func() {
		done <- cmd.Wait()
	}()

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		if err := a.token.Check(); err != nil {
			return m.Failure, a.abort(cmd, done, err)
		}

		select {
		case waitErr := <-done:
			return exitResult(command.Name, waitErr)
		case <-ctx.Done():
			return m.Failure, a.abort(cmd, done, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (a *LocalProcessAdapter) buildCmd(command m.Command) *exec.Cmd {
	// #nosec G204 - collaborator binaries come from configuration
	cmd := exec.Command(command.Name, command.Args...)
	cmd.Dir = string(command.Dir)
	cmd.Stdin = nil

	output := command.Output
	if output == nil {
		output = io.Discard
	}

	cmd.Stdout = output
	cmd.Stderr = output

	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}

	configureProcessGroup(cmd)

	// descendants holding the output pipe must not keep Wait blocked forever
	cmd.WaitDelay = a.killGrace

	return cmd
}

// abort terminates the child's process group, waits for the child to exit
// and returns cause so callers see the cancellation rather than a result.
// A failed terminate still waits out the grace period and escalates to kill.
func (a *LocalProcessAdapter) abort(cmd *exec.Cmd, done <-chan error, cause error) error {
	slog.Warn("terminating collaborator", "pid", cmd.Process.Pid, "cause", cause)

	var terminateErr error

	if err := a.terminator.Terminate(cmd.Process); err != nil {
		slog.Error("Failed to terminate collaborator", "pid", cmd.Process.Pid, "error", err)
		terminateErr = fmt.Errorf("failed to terminate child: %w", err)
	}

	select {
	case <-done:
	case <-time.After(a.killGrace):
		slog.Warn("collaborator ignored termination, killing", "pid", cmd.Process.Pid)

		if err := a.terminator.Kill(cmd.Process); err != nil {
			slog.Error("Failed to kill collaborator", "pid", cmd.Process.Pid, "error", err)
		}

		<-done
	}

	return errors.Join(cause, terminateErr)
}

func exitResult(name string, waitErr error) (m.BuildResult, error) {
	if waitErr == nil {
		return m.Success, nil
	}

	if errors.Is(waitErr, exec.ErrWaitDelay) {
		slog.Warn("collaborator left output open after exiting", "command", name)
		return m.Success, nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		slog.Debug("collaborator failed", "command", name, "exitCode", exitErr.ExitCode())
		return m.Failure, nil
	}

	slog.Error("Failed to wait for collaborator", "command", name, "error", waitErr)

	return m.Failure, fmt.Errorf("wait for %s: %w", name, waitErr)
}
