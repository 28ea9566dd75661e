package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tighten.dev/pkg/tighten/internal/adapter"
	"tighten.dev/pkg/tighten/internal/controller"
	m "tighten.dev/pkg/tighten/internal/model"
	"tighten.dev/pkg/tighten/pkg/history"
	"tighten.dev/pkg/tighten/pkg/interrupt"
)

// RunArgs contains the arguments for a tightening campaign.
type RunArgs struct {
	Root          m.Path
	Exclude       []string
	Sample        SampleArgs
	Batch         BatchArgs
	MaxIterations int
	Seed          uint64
	// HistoryDir holds the on-disk record of committed mutations. Empty
	// selects the system temp directory.
	HistoryDir string
}

// committedMutation is one history entry.
type committedMutation struct {
	Iteration int
	Mutation  string
}

// ListArgs contains the arguments for listing candidate mutations.
type ListArgs struct {
	Root     m.Path
	Exclude  []string
	Threads  int
	ShowDiff bool
}

// Workflow defines the user-facing operations: the campaign loop and the
// candidate listing.
type Workflow interface {
	// Run loops reset, sample, apply, validate and commit-or-revert until
	// MaxIterations is reached (0 means forever) or the token is cancelled.
	Run(ctx context.Context, args RunArgs) error
	// List discovers every candidate mutation without touching the tree.
	List(ctx context.Context, args ListArgs) error
}

// SamplerFactory builds the sampler of a campaign from its seed.
type SamplerFactory func(mutagen Mutagen, seed uint64) Sampler

type workflow struct {
	adapter.SourceFSAdapter
	adapter.VCSAdapter
	controller.UI
	Orchestrator
	Mutagen

	token      *interrupt.Token
	newSampler SamplerFactory
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	vcsAdapter adapter.VCSAdapter,
	ui controller.UI,
	orchestrator Orchestrator,
	mutagen Mutagen,
	token *interrupt.Token,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		VCSAdapter:      vcsAdapter,
		UI:              ui,
		Orchestrator:    orchestrator,
		Mutagen:         mutagen,
		token:           token,
		newSampler:      NewSampler,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	tree, err := NewSourceTree(ctx, w.SourceFSAdapter, args.Root, args.Exclude)
	if err != nil {
		return err
	}

	paths, err := tree.Paths(ctx)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithCampaignMode(), controller.WithQuitHandler(w.token.Cancel)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayCampaignInfo(ctx, controller.CampaignInfo{
		Root:          args.Root,
		Sources:       len(paths),
		MaxIterations: args.MaxIterations,
		Seed:          args.Seed,
	})

	slog.Info("starting campaign", "root", args.Root, "sources", len(paths), "seed", args.Seed)

	committed, err := history.New[committedMutation](args.HistoryDir)
	if err != nil {
		return err
	}
	defer summarize(committed)

	args.Batch.Root = args.Root
	sampler := w.newSampler(w.Mutagen, args.Seed)

	for number := 1; args.MaxIterations <= 0 || number <= args.MaxIterations; number++ {
		iteration, err := w.iterate(ctx, tree, sampler, args, number)
		if err != nil {
			if errors.Is(err, interrupt.ErrInterrupted) {
				slog.Warn("campaign interrupted", "iteration", number)
			}

			return err
		}

		if iteration.Status == m.StatusPass {
			record(committed, iteration)
		}

		w.DisplayIteration(ctx, iteration)
	}

	return nil
}

func record(committed history.Log[committedMutation], iteration m.Iteration) {
	for _, mu := range iteration.Batch {
		if err := committed.Append(committedMutation{Iteration: iteration.Number, Mutation: mu.String()}); err != nil {
			slog.Warn("failed to record committed mutation", "iteration", iteration.Number, "error", err)
			return
		}
	}
}

// summarize writes every committed mutation to the log and releases the
// history.
func summarize(committed history.Log[committedMutation]) {
	slog.Info("campaign finished", "committed", committed.Len())

	err := committed.Range(func(_ uint64, entry committedMutation) error {
		slog.Info("committed mutation", "iteration", entry.Iteration, "mutation", entry.Mutation)
		return nil
	})
	if err != nil {
		slog.Warn("failed to read history", "path", committed.Path(), "error", err)
	}

	_ = committed.Close()
}

func (w *workflow) iterate(ctx context.Context, tree *SourceTree, sampler Sampler, args RunArgs, number int) (m.Iteration, error) {
	start := time.Now()

	if err := w.token.Check(); err != nil {
		return m.Iteration{}, err
	}

	if err := w.reset(ctx, args.Root); err != nil {
		return m.Iteration{}, err
	}

	batch, err := sampler.Sample(ctx, tree, args.Sample)
	if err != nil {
		slog.Error("Failed to sample batch", "iteration", number, "error", err)
		return m.Iteration{}, fmt.Errorf("sample batch: %w", err)
	}

	slog.Info("testing batch", "iteration", number, "size", len(batch))

	for _, mu := range batch {
		slog.Debug("batch mutation", "iteration", number, "mutation", mu.String())
	}

	w.DisplayIterationStart(ctx, number, batch)

	status, err := w.TestBatch(ctx, batch, args.Batch)
	if err != nil {
		return m.Iteration{}, err
	}

	slog.Info("batch resolved", "iteration", number, "status", status)

	return m.Iteration{
		Number:   number,
		Batch:    batch,
		Status:   status,
		Duration: time.Since(start),
	}, nil
}

// reset restores the tree to HEAD and verifies it. Any failure here stops the
// campaign: sampling a dirty tree would commit stray changes.
func (w *workflow) reset(ctx context.Context, root m.Path) error {
	result, err := w.Reset(ctx, root)
	if err != nil {
		slog.Error("Failed to reset working tree", "root", root, "error", err)
		return fmt.Errorf("reset working tree: %w", err)
	}

	if !result.Succeeded() {
		slog.Error("Failed to reset working tree", "root", root, "result", result)
		return fmt.Errorf("reset working tree: %w", m.ErrDirtyTree)
	}

	clean, err := w.IsClean(ctx, root)
	if err != nil {
		slog.Error("Failed to check working tree", "root", root, "error", err)
		return fmt.Errorf("check working tree: %w", err)
	}

	if !clean {
		return fmt.Errorf("%w: %s", m.ErrDirtyTree, root)
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	tree, err := NewSourceTree(ctx, w.SourceFSAdapter, args.Root, args.Exclude)
	if err != nil {
		return err
	}

	paths, err := tree.Paths(ctx)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	perFile, err := w.discoverAll(ctx, tree, paths, args.Threads)
	if err != nil {
		slog.Error("Failed to discover mutations", "error", err)
		return fmt.Errorf("discover mutations: %w", err)
	}

	var all []m.Mutation
	for _, mutations := range perFile {
		all = append(all, mutations...)
	}

	if err := w.DisplayMutations(ctx, all, args.ShowDiff); err != nil {
		slog.Error("Failed to display mutations", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// discoverAll runs discovery over paths with at most threads workers and
// returns the results in path order. Unreadable or unparsable files are
// logged and left empty.
func (w *workflow) discoverAll(ctx context.Context, tree *SourceTree, paths []m.Path, threads int) ([][]m.Mutation, error) {
	results := make([][]m.Mutation, len(paths))

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, rel := range paths {
		group.Go(func() error {
			if err := w.token.Check(); err != nil {
				return err
			}

			source, err := tree.Load(groupCtx, rel)
			if err != nil {
				slog.Warn("skipping source", "path", rel, "error", err)
				return nil
			}

			mutations, err := w.Discover(groupCtx, source)
			if err != nil {
				if isCancellation(err) {
					return err
				}

				slog.Warn("skipping source", "path", rel, "error", err)

				return nil
			}

			mu.Lock()
			results[i] = mutations
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
