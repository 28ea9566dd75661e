package model

import "errors"

var (
	// ErrNotProject is returned when a directory is not a Cargo project root.
	ErrNotProject = errors.New("not a cargo project")
	// ErrSpanOutOfRange is returned when a span does not exist in a document.
	ErrSpanOutOfRange = errors.New("span out of range")
	// ErrOverlappingEdit is returned when two edits of a batch touch the same text.
	ErrOverlappingEdit = errors.New("overlapping edits")
	// ErrDiscoveryExhausted is returned when sampling cannot fill a batch.
	ErrDiscoveryExhausted = errors.New("no mutable declarations found")
	// ErrDirtyTree is returned when the working tree is not clean after a reset.
	ErrDirtyTree = errors.New("working tree not clean after reset")
	// ErrParse is returned when a source file does not parse as Rust.
	ErrParse = errors.New("syntax error")
)
