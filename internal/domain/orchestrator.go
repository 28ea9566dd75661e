package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tighten.dev/pkg/tighten/internal/adapter"
	m "tighten.dev/pkg/tighten/internal/model"
	"tighten.dev/pkg/tighten/pkg/interrupt"
)

// DefaultCommitSubject is the first line of every campaign commit.
const DefaultCommitSubject = "tighten: narrow visibility"

// BatchArgs configures how a batch is validated and committed.
type BatchArgs struct {
	Root      m.Path
	ExtraArgs []string
	Format    bool
	Subject   string
}

// Orchestrator applies a batch of mutations to the working tree, validates it
// with the build tool, and commits it on success or reverts it otherwise.
type Orchestrator interface {
	// TestBatch resolves one batch. The returned error is only set when the
	// campaign must stop: cancellation or an unusable batch.
	TestBatch(ctx context.Context, batch []m.Mutation, args BatchArgs) (m.IterationStatus, error)
}

type orchestrator struct {
	fsAdapter    adapter.SourceFSAdapter
	buildAdapter adapter.BuildAdapter
	vcsAdapter   adapter.VCSAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem, build and version-control adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, buildAdapter adapter.BuildAdapter, vcsAdapter adapter.VCSAdapter) Orchestrator {
	return &orchestrator{
		fsAdapter:    fsAdapter,
		buildAdapter: buildAdapter,
		vcsAdapter:   vcsAdapter,
	}
}

func (o *orchestrator) TestBatch(ctx context.Context, batch []m.Mutation, args BatchArgs) (m.IterationStatus, error) {
	if err := o.applyBatch(ctx, batch); err != nil {
		if isCancellation(err) || errors.Is(err, m.ErrOverlappingEdit) || errors.Is(err, m.ErrSpanOutOfRange) {
			return m.StatusError, err
		}

		return o.revert(ctx, args.Root, m.StatusError)
	}

	result, err := o.buildAdapter.Test(ctx, args.Root, args.ExtraArgs)
	if err != nil {
		if isCancellation(err) {
			return m.StatusError, err
		}

		slog.Error("Failed to run build", "root", args.Root, "error", err)

		return o.revert(ctx, args.Root, m.StatusError)
	}

	if !result.Succeeded() {
		slog.Debug("batch rejected", "size", len(batch))
		return o.revert(ctx, args.Root, m.StatusFail)
	}

	if args.Format {
		if err := o.format(ctx, args.Root); err != nil {
			return m.StatusError, err
		}
	}

	return o.commit(ctx, batch, args)
}

// applyBatch groups the batch by file and writes each file once with all of
// its edits composed. Every file is composed before the first write, so a
// batch that cannot be applied leaves the tree untouched.
func (o *orchestrator) applyBatch(ctx context.Context, batch []m.Mutation) error {
	var order []m.Path

	byFile := make(map[m.Path][]m.Mutation)

	for _, mu := range batch {
		if mu.Source == nil {
			return fmt.Errorf("mutation without source: %s", mu)
		}

		if _, seen := byFile[mu.Source.RelPath]; !seen {
			order = append(order, mu.Source.RelPath)
		}

		byFile[mu.Source.RelPath] = append(byFile[mu.Source.RelPath], mu)
	}

	rendered := make([][]byte, len(order))

	for i, rel := range order {
		mutations := byFile[rel]

		code, err := m.ApplyMutations(mutations[0].Source.Code(), mutations)
		if err != nil {
			slog.Error("Failed to apply mutations", "path", rel, "error", err)
			return fmt.Errorf("failed to apply mutations to %s: %w", rel, err)
		}

		rendered[i] = mutations[0].Source.Render(code)
	}

	for i, rel := range order {
		source := byFile[rel][0].Source

		if err := o.fsAdapter.WriteFile(ctx, source.Path, rendered[i]); err != nil {
			slog.Error("Failed to write mutated file", "path", source.Path, "error", err)
			return fmt.Errorf("failed to write mutated file: %w", err)
		}
	}

	return nil
}

// format is best-effort: a formatter that fails or is missing leaves the
// batch uncommitted-formatted, which does not affect its validity.
func (o *orchestrator) format(ctx context.Context, root m.Path) error {
	result, err := o.buildAdapter.Format(ctx, root)
	if err != nil {
		if isCancellation(err) {
			return err
		}

		slog.Warn("formatter could not run", "root", root, "error", err)

		return nil
	}

	if !result.Succeeded() {
		slog.Warn("formatter exited with failure", "root", root)
	}

	return nil
}

func (o *orchestrator) commit(ctx context.Context, batch []m.Mutation, args BatchArgs) (m.IterationStatus, error) {
	subject := args.Subject
	if subject == "" {
		subject = DefaultCommitSubject
	}

	result, err := o.vcsAdapter.Commit(ctx, args.Root, subject, commitBody(batch))
	if err != nil {
		if isCancellation(err) {
			return m.StatusError, err
		}

		slog.Error("Failed to commit batch", "root", args.Root, "error", err)

		return o.revert(ctx, args.Root, m.StatusError)
	}

	if !result.Succeeded() {
		slog.Error("Failed to commit batch", "root", args.Root, "result", result)
		return o.revert(ctx, args.Root, m.StatusError)
	}

	return m.StatusPass, nil
}

// revert discards the batch. A failed discard is only logged: the reset at
// the start of the next iteration restores the tree anyway.
func (o *orchestrator) revert(ctx context.Context, root m.Path, status m.IterationStatus) (m.IterationStatus, error) {
	result, err := o.vcsAdapter.Discard(ctx, root)
	if err != nil {
		if isCancellation(err) {
			return status, err
		}

		slog.Error("Failed to discard batch", "root", root, "error", err)

		return status, nil
	}

	if !result.Succeeded() {
		slog.Error("Failed to discard batch", "root", root, "result", result)
	}

	return status, nil
}

func commitBody(batch []m.Mutation) string {
	lines := make([]string, 0, len(batch))
	for _, mu := range batch {
		lines = append(lines, mu.String())
	}

	return strings.Join(lines, "\n")
}

func isCancellation(err error) bool {
	return errors.Is(err, interrupt.ErrInterrupted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
