//go:build unix

package adapter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tighten.dev/pkg/tighten/internal/model"
	"tighten.dev/pkg/tighten/pkg/interrupt"
)

// recordingTerminator counts calls and forwards them to the real terminator.
type recordingTerminator struct {
	terminated atomic.Int32
	killed     atomic.Int32
}

func (r *recordingTerminator) Terminate(process *os.Process) error {
	r.terminated.Add(1)
	return DefaultTerminator().Terminate(process)
}

func (r *recordingTerminator) Kill(process *os.Process) error {
	r.killed.Add(1)
	return DefaultTerminator().Kill(process)
}

// refusingTerminator fails to terminate, as when the group is not ours to
// signal, and forwards Kill to the real terminator.
type refusingTerminator struct {
	killed atomic.Int32
}

func (r *refusingTerminator) Terminate(*os.Process) error {
	return errors.New("operation not permitted")
}

func (r *refusingTerminator) Kill(process *os.Process) error {
	r.killed.Add(1)
	return DefaultTerminator().Kill(process)
}

func shell(script string) m.Command {
	return m.Command{Name: "/bin/sh", Args: []string{"-c", script}}
}

func newTestProcessAdapter(token *interrupt.Token, options ...ProcessOption) *LocalProcessAdapter {
	options = append([]ProcessOption{WithPollInterval(10 * time.Millisecond)}, options...)
	return NewLocalProcessAdapter(token, options...)
}

func TestLocalProcessAdapter_Run(t *testing.T) {
	t.Run("zero exit is success", func(t *testing.T) {
		result, err := newTestProcessAdapter(interrupt.New()).Run(context.Background(), shell("exit 0"))
		require.NoError(t, err)
		assert.Equal(t, m.Success, result)
	})

	t.Run("nonzero exit is failure without error", func(t *testing.T) {
		result, err := newTestProcessAdapter(interrupt.New()).Run(context.Background(), shell("exit 3"))
		require.NoError(t, err)
		assert.Equal(t, m.Failure, result)
	})

	t.Run("stdout and stderr are merged", func(t *testing.T) {
		var out bytes.Buffer

		command := shell("echo to-stdout; echo to-stderr >&2")
		command.Output = &out

		_, err := newTestProcessAdapter(interrupt.New()).Run(context.Background(), command)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "to-stdout")
		assert.Contains(t, out.String(), "to-stderr")
	})

	t.Run("extra env and working directory", func(t *testing.T) {
		dir := t.TempDir()

		var out bytes.Buffer

		command := shell(`echo "$TIGHTEN_TEST_VALUE"; pwd`)
		command.Env = []string{"TIGHTEN_TEST_VALUE=narrowed"}
		command.Dir = m.Path(dir)
		command.Output = &out

		_, err := newTestProcessAdapter(interrupt.New()).Run(context.Background(), command)
		require.NoError(t, err)

		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "narrowed")
		assert.Contains(t, out.String(), resolved)
	})

	t.Run("missing binary is a launch error", func(t *testing.T) {
		result, err := newTestProcessAdapter(interrupt.New()).Run(context.Background(), m.Command{
			Name: filepath.Join(t.TempDir(), "no-such-binary"),
		})

		var launchErr *LaunchError
		require.True(t, errors.As(err, &launchErr), "error = %v", err)
		assert.Equal(t, m.Failure, result)
		assert.True(t, strings.HasPrefix(launchErr.Error(), "failed to spawn"))
	})

	t.Run("cancelled token does not launch", func(t *testing.T) {
		token := interrupt.New()
		token.Cancel()

		marker := filepath.Join(t.TempDir(), "ran")

		_, err := newTestProcessAdapter(token).Run(context.Background(), shell("touch "+marker))
		require.ErrorIs(t, err, interrupt.ErrInterrupted)
		assert.NoFileExists(t, marker)
	})
}

func TestLocalProcessAdapter_Cancellation(t *testing.T) {
	t.Run("token cancel terminates the child", func(t *testing.T) {
		token := interrupt.New()
		terminator := &recordingTerminator{}
		process := newTestProcessAdapter(token, WithTerminator(terminator))

		time.AfterFunc(100*time.Millisecond, token.Cancel)

		start := time.Now()
		_, err := process.Run(context.Background(), shell("sleep 30"))

		require.ErrorIs(t, err, interrupt.ErrInterrupted)
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.Equal(t, int32(1), terminator.terminated.Load())
		assert.Zero(t, terminator.killed.Load())
	})

	t.Run("context cancel terminates the child", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		time.AfterFunc(100*time.Millisecond, cancel)

		_, err := newTestProcessAdapter(interrupt.New()).Run(ctx, shell("sleep 30"))
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("grandchildren are terminated with the group", func(t *testing.T) {
		token := interrupt.New()
		marker := filepath.Join(t.TempDir(), "survived")

		time.AfterFunc(100*time.Millisecond, token.Cancel)

		_, err := newTestProcessAdapter(token).Run(context.Background(), shell("(sleep 1; touch "+marker+") & wait"))
		require.ErrorIs(t, err, interrupt.ErrInterrupted)

		time.Sleep(1500 * time.Millisecond)
		assert.NoFileExists(t, marker)
	})

	t.Run("ignored terminate escalates to kill", func(t *testing.T) {
		token := interrupt.New()
		terminator := &recordingTerminator{}
		process := newTestProcessAdapter(token, WithTerminator(terminator), WithKillGrace(200*time.Millisecond))

		time.AfterFunc(100*time.Millisecond, token.Cancel)

		start := time.Now()
		_, err := process.Run(context.Background(), shell(`trap "" TERM; sleep 30`))

		require.ErrorIs(t, err, interrupt.ErrInterrupted)
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.Equal(t, int32(1), terminator.killed.Load())
	})

	t.Run("failed terminate still escalates to kill", func(t *testing.T) {
		token := interrupt.New()
		terminator := &refusingTerminator{}
		process := newTestProcessAdapter(token, WithTerminator(terminator), WithKillGrace(200*time.Millisecond))

		time.AfterFunc(100*time.Millisecond, token.Cancel)

		start := time.Now()
		_, err := process.Run(context.Background(), shell("sleep 30"))

		require.ErrorIs(t, err, interrupt.ErrInterrupted)
		assert.ErrorContains(t, err, "operation not permitted")
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.Equal(t, int32(1), terminator.killed.Load())
	})
}
