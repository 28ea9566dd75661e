// Package model defines the data structures for visibility mutation campaigns.
package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// LineEnding identifies the line terminator a file used on disk.
type LineEnding string

const (
	// LineEndingLF is the Unix convention.
	LineEndingLF LineEnding = "\n"
	// LineEndingCRLF is the Windows convention.
	LineEndingCRLF LineEnding = "\r\n"
)

// SourceFile is an immutable snapshot of one Rust source file.
//
// The code is normalized to LF line endings when loaded. Mutations derived
// from the file share the snapshot by pointer and never modify it; rewritten
// content is always a new string.
type SourceFile struct {
	// Path is the full path of the file (root joined with RelPath).
	Path Path
	// RelPath is the path relative to the project root, used for display.
	RelPath Path
	// LineEnding is the convention the file used before normalization.
	LineEnding LineEnding

	code string
}

// NewSourceFile builds a snapshot from raw file bytes.
func NewSourceFile(root, rel Path, raw []byte) *SourceFile {
	code := string(raw)
	ending := LineEndingLF

	if strings.Contains(code, "\r\n") {
		ending = LineEndingCRLF
		code = strings.ReplaceAll(code, "\r\n", "\n")
	}

	full := rel
	if root != "" {
		full = Path(filepath.Join(string(root), string(rel)))
	}

	return &SourceFile{
		Path:       full,
		RelPath:    rel,
		LineEnding: ending,
		code:       code,
	}
}

// Code returns the normalized text of the file.
func (sf *SourceFile) Code() string {
	return sf.code
}

// Render converts normalized text back to the file's original line endings.
func (sf *SourceFile) Render(code string) []byte {
	if sf.LineEnding == LineEndingCRLF {
		return []byte(strings.ReplaceAll(code, "\n", "\r\n"))
	}

	return []byte(code)
}

// String implements fmt.Stringer without dumping the file contents.
func (sf *SourceFile) String() string {
	return fmt.Sprintf("SourceFile(%s)", sf.RelPath)
}
