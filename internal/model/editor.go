package model

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ReplaceRegion returns document with the text between start (inclusive) and
// end (exclusive) replaced by replacement. Every byte outside the region is
// kept as is. A position that does not exist in the document yields
// ErrSpanOutOfRange.
func ReplaceRegion(document string, start, end Position, replacement string) (string, error) {
	if end.Before(start) {
		return "", fmt.Errorf("%w: end %s before start %s", ErrSpanOutOfRange, end, start)
	}

	startOffset, err := byteOffset(document, start)
	if err != nil {
		return "", err
	}

	endOffset, err := byteOffset(document, end)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.Grow(len(document) - (endOffset - startOffset) + len(replacement))
	b.WriteString(document[:startOffset])
	b.WriteString(replacement)
	b.WriteString(document[endOffset:])

	return b.String(), nil
}

// byteOffset converts a 1-based line/column position into a byte offset.
// The column just past the last character of a line is accepted so that a
// span may end at a line break or at the end of the document.
func byteOffset(document string, pos Position) (int, error) {
	if pos.Line < 1 || pos.Column < 1 {
		return 0, fmt.Errorf("%w: %s", ErrSpanOutOfRange, pos)
	}

	lineStart := 0

	for line := 1; line < pos.Line; line++ {
		next := strings.IndexByte(document[lineStart:], '\n')
		if next < 0 {
			return 0, fmt.Errorf("%w: line %d beyond end of document", ErrSpanOutOfRange, pos.Line)
		}

		lineStart += next + 1
	}

	lineEnd := len(document)
	if next := strings.IndexByte(document[lineStart:], '\n'); next >= 0 {
		lineEnd = lineStart + next
	}

	offset := lineStart

	for column := 1; column < pos.Column; column++ {
		if offset >= lineEnd {
			return 0, fmt.Errorf("%w: column %d beyond end of line %d", ErrSpanOutOfRange, pos.Column, pos.Line)
		}

		_, size := utf8.DecodeRuneInString(document[offset:lineEnd])
		offset += size
	}

	return offset, nil
}

// ApplyMutations composes several mutations of the same file into a single
// rewritten document. Edits are applied from the end of the document towards
// the start so earlier positions stay valid. Overlapping spans are rejected
// with ErrOverlappingEdit.
func ApplyMutations(code string, mutations []Mutation) (string, error) {
	ordered := make([]Mutation, len(mutations))
	copy(ordered, mutations)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[j].Span.Start.Before(ordered[i].Span.Start)
	})

	for i := 1; i < len(ordered); i++ {
		if ordered[i].Span.Overlaps(ordered[i-1].Span) {
			return "", fmt.Errorf("%w: %s and %s", ErrOverlappingEdit, ordered[i].Span, ordered[i-1].Span)
		}
	}

	result := code

	for _, mutation := range ordered {
		var err error

		result, err = ReplaceRegion(result, mutation.Span.Start, mutation.Span.End, mutation.Op.Replacement())
		if err != nil {
			return "", err
		}
	}

	return result, nil
}
