// Package history keeps an append-only, disk-backed record of campaign
// results so an unbounded run does not hold every result in memory.
package history

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Log is an append-only sequence of T stored in a temporary file.
type Log[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(fn func(index uint64, item T) error) error
	// Close releases the file and removes it.
	Close() error
}

type fileLog[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
	closed  bool
}

// New creates an empty Log in dir. An empty dir selects os.TempDir.
func New[T any](dir string) (Log[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create history directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "tighten-history-*.gob")
	if err != nil {
		slog.Error("failed to create history file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create history file: %w", err)
	}

	slog.Debug("created history", "path", file.Name())

	return &fileLog[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append implements Log.
func (l *fileLog[T]) Append(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return errors.New("history is closed")
	}

	if err := l.encoder.Encode(item); err != nil {
		slog.Error("failed to encode history item", "path", l.path, "index", l.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	l.length++

	return nil
}

// Path implements Log.
func (l *fileLog[T]) Path() string {
	return l.path
}

// Len implements Log.
func (l *fileLog[T]) Len() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.length
}

// Range implements Log. Items are decoded in append order; an error from fn
// stops the iteration and is returned.
func (l *fileLog[T]) Range(fn func(index uint64, item T) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return errors.New("history is closed")
	}

	file, err := os.Open(l.path)
	if err != nil {
		slog.Error("failed to open history for range", "path", l.path, "error", err)
		return fmt.Errorf("failed to open history: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close history", "path", l.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range l.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode history item", "path", l.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements Log.
func (l *fileLog[T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true

	closeErr := l.file.Close()
	removeErr := os.Remove(l.path)

	if err := errors.Join(closeErr, removeErr); err != nil {
		slog.Error("failed to release history", "path", l.path, "error", err)
		return err
	}

	return nil
}
