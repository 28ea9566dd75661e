package adapter

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	m "tighten.dev/pkg/tighten/internal/model"
)

var (
	rustLang     *sitter.Language
	rustLangOnce sync.Once
)

func rustLanguage() *sitter.Language {
	rustLangOnce.Do(func() {
		rustLang = rust.GetLanguage()
	})

	return rustLang
}

// RustFileAdapter encapsulates Rust parsing so the domain layer can focus on
// visibility rules while delegating syntax details to tree-sitter.
type RustFileAdapter interface {
	// Parse builds a syntax tree for src. Source with syntax errors yields
	// m.ErrParse. Callers must Close the returned tree.
	Parse(ctx context.Context, src []byte) (*sitter.Tree, error)
}

// LocalRustFileAdapter provides a RustFileAdapter backed by tree-sitter.
type LocalRustFileAdapter struct{}

// NewLocalRustFileAdapter constructs a LocalRustFileAdapter.
func NewLocalRustFileAdapter() *LocalRustFileAdapter {
	return &LocalRustFileAdapter{}
}

// Parse uses a fresh parser per call; tree-sitter parsers are not safe for
// concurrent use.
func (a *LocalRustFileAdapter) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(rustLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse rust source: %w", err)
	}

	if tree.RootNode().HasError() {
		tree.Close()
		return nil, m.ErrParse
	}

	return tree, nil
}
