// Package adapter contains infrastructure adapters for the tighten CLI: the
// filesystem, the Rust parser, and the collaborator processes.
package adapter

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	m "tighten.dev/pkg/tighten/internal/model"
)

// skipDirs are never descended into while listing sources.
var skipDirs = map[string]struct{}{
	"target":       {},
	"node_modules": {},
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and rewriting user projects. It hides direct `os`
// access so the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the content of an existing file, keeping its mode.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// ListSources returns the files under root/dir with the given extension,
	// relative to root and sorted. Files ignored by root/.gitignore or
	// matching one of the exclude globs are left out.
	ListSources(ctx context.Context, root m.Path, dir, ext string, exclude []string) ([]m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the project's own source listing
	return os.ReadFile(string(path))
}

// WriteFile writes content over an existing file, keeping its permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return err
	}

	return os.WriteFile(string(path), content, info.Mode().Perm())
}

// ListSources walks root/dir in lexical order and collects matching files.
// Unreadable entries are logged and skipped so one bad directory does not
// hide the rest of the tree.
func (a *LocalSourceFSAdapter) ListSources(ctx context.Context, root m.Path, dir, ext string, exclude []string) ([]m.Path, error) {
	rootStr := string(root)
	start := filepath.Join(rootStr, dir)
	gitignore := loadGitignore(rootStr)

	var sources []m.Path

	err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == start {
				return err
			}

			slog.Warn("error walking source tree", "path", path, "error", err)

			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path == start {
				return nil
			}

			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() || !strings.EqualFold(filepath.Ext(name), ext) {
			return nil
		}

		rel, err := filepath.Rel(rootStr, path)
		if err != nil {
			slog.Warn("source outside of root", "path", path, "error", err)
			return nil
		}

		if isExcluded(filepath.ToSlash(rel), gitignore, exclude) {
			slog.Debug("skipping excluded source", "path", rel)
			return nil
		}

		sources = append(sources, m.Path(rel))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i] < sources[j]
	})

	return sources, nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to read .gitignore", "root", root, "error", err)
		}

		return nil
	}

	return gi
}

func isExcluded(rel string, gitignore *ignore.GitIgnore, exclude []string) bool {
	if gitignore != nil && gitignore.MatchesPath(rel) {
		return true
	}

	for _, pattern := range exclude {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			slog.Warn("invalid exclude pattern", "pattern", pattern, "error", err)
			continue
		}

		if matched {
			return true
		}
	}

	return false
}
