package domain

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"unicode/utf8"

	"tighten.dev/pkg/tighten/internal/adapter"
	m "tighten.dev/pkg/tighten/internal/model"
)

const (
	manifestFile = "Cargo.toml"
	sourceDir    = "src"
	sourceExt    = ".rs"
)

// SourceTree is the set of Rust sources of one Cargo project: every .rs file
// under <root>/src, minus gitignored and excluded paths.
type SourceTree struct {
	fs      adapter.SourceFSAdapter
	root    m.Path
	exclude []string
}

// NewSourceTree validates that root is a Cargo project and returns its tree.
// A root without a Cargo.toml file yields m.ErrNotProject.
func NewSourceTree(ctx context.Context, fs adapter.SourceFSAdapter, root m.Path, exclude []string) (*SourceTree, error) {
	manifest := fs.JoinPath(string(root), manifestFile)

	info, err := fs.FileInfo(ctx, manifest)
	if err != nil || !info.Mode().IsRegular() {
		slog.Error("Failed to find cargo manifest", "root", root, "error", err)
		return nil, fmt.Errorf("%w: %s has no %s, point --dir at a crate", m.ErrNotProject, root, manifestFile)
	}

	return &SourceTree{
		fs:      fs,
		root:    root,
		exclude: exclude,
	}, nil
}

// Root returns the project root.
func (t *SourceTree) Root() m.Path {
	return t.root
}

// Paths lists the source files relative to the root, sorted.
func (t *SourceTree) Paths(ctx context.Context) ([]m.Path, error) {
	paths, err := t.fs.ListSources(ctx, t.root, sourceDir, sourceExt, t.exclude)
	if err != nil {
		slog.Error("Failed to list sources", "root", t.root, "error", err)
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	return paths, nil
}

// Load reads one file of the tree into a fresh snapshot.
func (t *SourceTree) Load(ctx context.Context, rel m.Path) (*m.SourceFile, error) {
	return LoadSourceFile(ctx, t.fs, t.root, rel)
}

// SourceFiles yields a snapshot of every source file in path order. Files
// that cannot be read are logged and skipped.
func (t *SourceTree) SourceFiles(ctx context.Context) iter.Seq[*m.SourceFile] {
	return func(yield func(*m.SourceFile) bool) {
		paths, err := t.Paths(ctx)
		if err != nil {
			return
		}

		for _, rel := range paths {
			source, err := t.Load(ctx, rel)
			if err != nil {
				slog.Warn("skipping unreadable source", "path", rel, "error", err)
				continue
			}

			if !yield(source) {
				return
			}
		}
	}
}

// LoadSourceFile reads root/rel and returns its normalized snapshot. Content
// that is not valid UTF-8 is rejected.
func LoadSourceFile(ctx context.Context, fs adapter.SourceFSAdapter, root, rel m.Path) (*m.SourceFile, error) {
	raw, err := fs.ReadFile(ctx, fs.JoinPath(string(root), string(rel)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rel, err)
	}

	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("failed to read %s: not valid UTF-8", rel)
	}

	return m.NewSourceFile(root, rel, raw), nil
}
