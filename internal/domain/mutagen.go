// Package domain contains the visibility tightening campaign and its logic.
package domain

import (
	"context"
	"fmt"

	"tighten.dev/pkg/tighten/internal/adapter"
	m "tighten.dev/pkg/tighten/internal/model"
)

// Mutagen discovers the visibility mutations available in a source file.
type Mutagen interface {
	// Discover returns every candidate mutation of source in document order.
	// It is deterministic: the same snapshot always yields the same list.
	Discover(ctx context.Context, source *m.SourceFile) ([]m.Mutation, error)
}

// mutagen handles pure mutation discovery logic.
type mutagen struct {
	adapter.RustFileAdapter
}

// NewMutagen creates a new Mutagen instance.
func NewMutagen(rustFileAdapter adapter.RustFileAdapter) Mutagen {
	return &mutagen{
		RustFileAdapter: rustFileAdapter,
	}
}

func (mg *mutagen) Discover(ctx context.Context, source *m.SourceFile) ([]m.Mutation, error) {
	if source == nil {
		return nil, fmt.Errorf("missing source file")
	}

	if mg.RustFileAdapter == nil {
		return nil, fmt.Errorf("missing adapters")
	}

	tree, err := mg.Parse(ctx, []byte(source.Code()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source.RelPath, err)
	}
	defer tree.Close()

	v := newVisitor(source)
	v.visit(tree.RootNode(), 0)

	return v.mutations, nil
}
