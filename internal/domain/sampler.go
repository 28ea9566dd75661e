package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	m "tighten.dev/pkg/tighten/internal/model"
)

const (
	// DefaultBatchMin is the smallest batch drawn per iteration.
	DefaultBatchMin = 1
	// DefaultBatchMax is the largest batch drawn per iteration.
	DefaultBatchMax = 15
	// DefaultMaxDraws caps how many files are drawn while filling one batch.
	DefaultMaxDraws = 1000
)

// SampleArgs bounds one batch draw.
type SampleArgs struct {
	BatchMin int
	BatchMax int
	MaxDraws int
}

func (a SampleArgs) normalized() SampleArgs {
	if a.BatchMin < 1 {
		a.BatchMin = DefaultBatchMin
	}

	if a.BatchMax == 0 {
		a.BatchMax = DefaultBatchMax
	}

	if a.BatchMax < a.BatchMin {
		a.BatchMax = a.BatchMin
	}

	if a.MaxDraws < 1 {
		a.MaxDraws = DefaultMaxDraws
	}

	return a
}

// Sampler draws random batches of non-overlapping mutations from a tree.
type Sampler interface {
	Sample(ctx context.Context, tree *SourceTree, args SampleArgs) ([]m.Mutation, error)
}

type sampler struct {
	mutagen Mutagen
	rng     *rand.Rand
}

// NewSampler creates a Sampler seeded with seed. A zero seed picks a random one.
func NewSampler(mutagen Mutagen, seed uint64) Sampler {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &sampler{
		mutagen: mutagen,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Sample picks a batch size in [BatchMin, BatchMax], then repeatedly draws a
// random file, discovers its candidates afresh, shuffles them and keeps the
// first one that does not overlap a mutation already in the batch.
//
// Files that cannot be read or parsed are logged and redrawn. When MaxDraws
// draws do not fill the batch, the partial batch is returned; an empty one
// yields m.ErrDiscoveryExhausted.
func (s *sampler) Sample(ctx context.Context, tree *SourceTree, args SampleArgs) ([]m.Mutation, error) {
	args = args.normalized()

	paths, err := tree.Paths(ctx)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no sources under %s", m.ErrDiscoveryExhausted, tree.Root())
	}

	size := args.BatchMin + s.rng.IntN(args.BatchMax-args.BatchMin+1)
	batch := make([]m.Mutation, 0, size)

	for draws := 0; len(batch) < size; draws++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if draws >= args.MaxDraws {
			if len(batch) == 0 {
				return nil, fmt.Errorf("%w: %d draws over %d files", m.ErrDiscoveryExhausted, draws, len(paths))
			}

			slog.Debug("batch left short", "size", len(batch), "wanted", size, "draws", draws)

			break
		}

		if picked, ok := s.draw(ctx, tree, paths[s.rng.IntN(len(paths))], batch); ok {
			batch = append(batch, picked)
		}
	}

	return batch, nil
}

func (s *sampler) draw(ctx context.Context, tree *SourceTree, rel m.Path, batch []m.Mutation) (m.Mutation, bool) {
	source, err := tree.Load(ctx, rel)
	if err != nil {
		slog.Warn("skipping source", "path", rel, "error", err)
		return m.Mutation{}, false
	}

	candidates, err := s.mutagen.Discover(ctx, source)
	if err != nil {
		slog.Warn("skipping source", "path", rel, "error", err)
		return m.Mutation{}, false
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for len(candidates) > 0 {
		picked := candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		if !conflicts(batch, picked) {
			return picked, true
		}
	}

	return m.Mutation{}, false
}

// conflicts reports whether mu touches text already claimed by the batch.
func conflicts(batch []m.Mutation, mu m.Mutation) bool {
	for _, other := range batch {
		if other.Source.RelPath == mu.Source.RelPath && other.Span.Overlaps(mu.Span) {
			return true
		}
	}

	return false
}
