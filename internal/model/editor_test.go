package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(line, column int) Position {
	return Position{Line: line, Column: column}
}

func TestReplaceRegion(t *testing.T) {
	tests := []struct {
		name        string
		document    string
		start, end  Position
		replacement string
		want        string
	}{
		{
			name:        "narrows leading pub",
			document:    "pub struct Foo;\n",
			start:       pos(1, 1),
			end:         pos(1, 4),
			replacement: "pub(crate)",
			want:        "pub(crate) struct Foo;\n",
		},
		{
			name:        "removes modifier",
			document:    "pub struct Foo;\n",
			start:       pos(1, 1),
			end:         pos(1, 4),
			replacement: "",
			want:        " struct Foo;\n",
		},
		{
			name:        "second line",
			document:    "fn a() {}\npub fn b() {}\n",
			start:       pos(2, 1),
			end:         pos(2, 4),
			replacement: "pub(super)",
			want:        "fn a() {}\npub(super) fn b() {}\n",
		},
		{
			name:        "columns count characters",
			document:    "/* é */ pub fn x() {}",
			start:       pos(1, 9),
			end:         pos(1, 12),
			replacement: "pub(self)",
			want:        "/* é */ pub(self) fn x() {}",
		},
		{
			name:        "empty span inserts",
			document:    "fn x() {}",
			start:       pos(1, 1),
			end:         pos(1, 1),
			replacement: "pub ",
			want:        "pub fn x() {}",
		},
		{
			name:        "span ends at end of document",
			document:    "pub",
			start:       pos(1, 1),
			end:         pos(1, 4),
			replacement: "pub(crate)",
			want:        "pub(crate)",
		},
		{
			name:        "span across lines",
			document:    "pub(\n  crate) fn x() {}",
			start:       pos(1, 1),
			end:         pos(2, 9),
			replacement: "pub(self)",
			want:        "pub(self) fn x() {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReplaceRegion(tt.document, tt.start, tt.end, tt.replacement)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplaceRegion_OutOfRange(t *testing.T) {
	document := "pub fn a() {}\n"

	tests := []struct {
		name       string
		start, end Position
	}{
		{name: "line beyond document", start: pos(3, 1), end: pos(3, 2)},
		{name: "column beyond line", start: pos(1, 1), end: pos(1, 20)},
		{name: "zero line", start: pos(0, 1), end: pos(1, 2)},
		{name: "zero column", start: pos(1, 0), end: pos(1, 2)},
		{name: "end before start", start: pos(1, 5), end: pos(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReplaceRegion(document, tt.start, tt.end, "x")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSpanOutOfRange)
		})
	}
}

func TestReplaceRegion_KeepsSurroundingText(t *testing.T) {
	documents := []string{
		"pub struct A;\npub struct B;\n",
		"mod m {\n    pub(crate) fn f() {}\n}\n",
		"// ünïcödé\npub enum E { A, B }\n",
	}

	for _, document := range documents {
		lines := strings.Split(document, "\n")

		for line := 1; line <= len(lines); line++ {
			width := len([]rune(lines[line-1]))
			for column := 1; column <= width; column++ {
				start := pos(line, column)
				end := pos(line, width+1)

				got, err := ReplaceRegion(document, start, end, "#")
				require.NoError(t, err)

				offset, err := byteOffset(document, start)
				require.NoError(t, err)

				endOffset, err := byteOffset(document, end)
				require.NoError(t, err)

				assert.True(t, strings.HasPrefix(got, document[:offset]), "prefix changed at %s", start)
				assert.True(t, strings.HasSuffix(got, document[endOffset:]), "suffix changed at %s", start)
			}
		}
	}
}

func TestApplyMutations(t *testing.T) {
	source := NewSourceFile("", "src/lib.rs", []byte("pub struct A {\n    pub x: i32,\n}\n"))

	structMutation := Mutation{Source: source, Op: ToVisCrate, Span: Span{Start: pos(1, 1), End: pos(1, 4)}}
	fieldMutation := Mutation{Source: source, Op: ToVisInherited, Span: Span{Start: pos(2, 5), End: pos(2, 8)}}

	want := "pub(crate) struct A {\n     x: i32,\n}\n"

	t.Run("document order", func(t *testing.T) {
		got, err := ApplyMutations(source.Code(), []Mutation{structMutation, fieldMutation})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("reverse order", func(t *testing.T) {
		got, err := ApplyMutations(source.Code(), []Mutation{fieldMutation, structMutation})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("same span twice", func(t *testing.T) {
		other := structMutation
		other.Op = ToVisSelf

		_, err := ApplyMutations(source.Code(), []Mutation{structMutation, other})
		if !errors.Is(err, ErrOverlappingEdit) {
			t.Fatalf("ApplyMutations() error = %v, want ErrOverlappingEdit", err)
		}
	})

	t.Run("source left untouched", func(t *testing.T) {
		_, err := ApplyMutations(source.Code(), []Mutation{structMutation})
		require.NoError(t, err)
		assert.Equal(t, "pub struct A {\n    pub x: i32,\n}\n", source.Code())
	})
}

func TestSpan(t *testing.T) {
	a := Span{Start: pos(1, 1), End: pos(1, 4)}
	adjacent := Span{Start: pos(1, 4), End: pos(1, 7)}
	inside := Span{Start: pos(1, 2), End: pos(1, 3)}
	empty := Span{Start: pos(2, 1), End: pos(2, 1)}

	assert.False(t, a.Overlaps(adjacent))
	assert.False(t, adjacent.Overlaps(a))
	assert.True(t, a.Overlaps(inside))
	assert.True(t, inside.Overlaps(a))
	assert.True(t, a.Overlaps(a))
	assert.True(t, empty.Overlaps(empty))
	assert.False(t, empty.Overlaps(a))

	assert.True(t, a.Valid())
	assert.True(t, empty.Valid())
	assert.False(t, Span{Start: pos(1, 4), End: pos(1, 1)}.Valid())
	assert.False(t, Span{Start: pos(0, 1), End: pos(1, 1)}.Valid())

	assert.Equal(t, "1:1-1:4", a.String())
}
