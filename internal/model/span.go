package model

import "fmt"

// Position is a 1-based (line, column) location in a source file. Columns are
// counted in characters, not bytes.
type Position struct {
	Line   int
	Column int
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before other in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}

	return p.Column < other.Column
}

// Span is a contiguous region of a source file. Start is the first character
// of the region and End is the position just after its last character, so a
// span with Start == End is empty.
type Span struct {
	Start Position
	End   Position
}

// String formats the span as start-end.
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Valid reports whether the span is well formed: positive coordinates and
// Start not after End.
func (s Span) Valid() bool {
	if s.Start.Line < 1 || s.Start.Column < 1 || s.End.Line < 1 || s.End.Column < 1 {
		return false
	}

	return !s.End.Before(s.Start)
}

// Overlaps reports whether two spans share at least one character. Identical
// empty spans are considered overlapping since they insert at the same point.
func (s Span) Overlaps(other Span) bool {
	if s == other {
		return true
	}

	return s.Start.Before(other.End) && other.Start.Before(s.End)
}
