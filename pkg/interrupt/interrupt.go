// Package interrupt provides a one-shot cancellation token set by operating
// system interrupts and polled cooperatively by long-running work.
package interrupt

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// ErrInterrupted is returned by work that observed a cancelled token.
var ErrInterrupted = errors.New("interrupted")

// ExitCode is the process status used when a second signal forces an exit.
const ExitCode = 130

var forceExit = os.Exit

// Token is a shared cancellation flag. Once cancelled it stays cancelled.
// The zero value is not usable; call New.
type Token struct {
	cancelled atomic.Bool
	once      sync.Once
	done      chan struct{}
}

// New returns a token that is not cancelled.
func New() *Token {
	return &Token{done: make(chan struct{})}
}

// Cancel sets the token. Calling it more than once is harmless.
func (t *Token) Cancel() {
	t.once.Do(func() {
		t.cancelled.Store(true)
		close(t.done)
	})
}

// Cancelled reports whether Cancel has been called.
func (t *Token) Cancelled() bool {
	return t.cancelled.Load()
}

// Check returns ErrInterrupted once the token is cancelled, nil before.
func (t *Token) Check() error {
	if t.Cancelled() {
		return ErrInterrupted
	}

	return nil
}

// Done returns a channel closed when the token is cancelled.
func (t *Token) Done() <-chan struct{} {
	return t.done
}

// NotifyOnSignal cancels the token on SIGINT or SIGTERM. A second signal
// exits the process with ExitCode without waiting for cleanup. The returned
// function stops signal delivery.
func (t *Token) NotifyOnSignal() func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	stop := make(chan struct{})

	go func() {
		select {
		case sig := <-signals:
			slog.Warn("interrupt received", "signal", sig.String())
			t.Cancel()
		case <-stop:
			return
		}

		select {
		case sig := <-signals:
			slog.Warn("second interrupt received, exiting", "signal", sig.String())
			forceExit(ExitCode)
		case <-stop:
		}
	}()

	var stopOnce sync.Once

	return func() {
		stopOnce.Do(func() {
			signal.Stop(signals)
			close(stop)
		})
	}
}
