package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpsFor(t *testing.T) {
	tests := []struct {
		from Visibility
		want []MutationOp
	}{
		{from: VisPublic, want: []MutationOp{ToVisCrate, ToVisSelf, ToVisSuper, ToVisInherited}},
		{from: VisCrate, want: []MutationOp{ToVisSelf, ToVisSuper, ToVisInherited}},
		{from: VisRestricted, want: nil},
		{from: VisInherited, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, OpsFor(tt.from))
		})
	}
}

func TestMutationOp_Replacement(t *testing.T) {
	assert.Equal(t, "pub(crate)", ToVisCrate.Replacement())
	assert.Equal(t, "pub(self)", ToVisSelf.Replacement())
	assert.Equal(t, "pub(super)", ToVisSuper.Replacement())
	assert.Empty(t, ToVisInherited.Replacement())
	assert.Equal(t, "inherited", ToVisInherited.String())
}

func TestMutation(t *testing.T) {
	code := "pub struct A;\n\npub fn f() {}\n"
	source := NewSourceFile("/work", "src/lib.rs", []byte(code))

	mu := Mutation{
		Source: source,
		Op:     ToVisCrate,
		Span:   Span{Start: pos(3, 1), End: pos(3, 4)},
		Kind:   DeclFunction,
		Name:   "f",
		From:   VisPublic,
	}

	t.Run("Mutate", func(t *testing.T) {
		got, err := mu.Mutate()
		require.NoError(t, err)
		assert.Equal(t, "pub struct A;\n\npub(crate) fn f() {}\n", got)
		assert.Equal(t, code, source.Code())
	})

	t.Run("Diff", func(t *testing.T) {
		diff, err := mu.Diff()
		require.NoError(t, err)
		assert.Contains(t, diff, "--- src/lib.rs")
		assert.Contains(t, diff, "-pub fn f() {}")
		assert.Contains(t, diff, "+pub(crate) fn f() {}")
		assert.NotContains(t, diff, "pub struct A;")
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "src/lib.rs:3:1 fn f: pub -> pub(crate)", mu.String())
	})

	t.Run("Mutate out of range", func(t *testing.T) {
		bad := mu
		bad.Span = Span{Start: pos(9, 1), End: pos(9, 4)}

		_, err := bad.Mutate()
		assert.ErrorIs(t, err, ErrSpanOutOfRange)
	})
}

func TestSourceFile(t *testing.T) {
	t.Run("LF file", func(t *testing.T) {
		source := NewSourceFile("/work", "src/lib.rs", []byte("pub fn a() {}\n"))

		assert.Equal(t, Path("/work/src/lib.rs"), source.Path)
		assert.Equal(t, LineEndingLF, source.LineEnding)
		assert.Equal(t, []byte("fn a() {}\n"), source.Render("fn a() {}\n"))
	})

	t.Run("CRLF file is normalized and restored", func(t *testing.T) {
		source := NewSourceFile("", "src/lib.rs", []byte("pub fn a() {}\r\npub fn b() {}\r\n"))

		assert.Equal(t, Path("src/lib.rs"), source.Path)
		assert.Equal(t, LineEndingCRLF, source.LineEnding)
		assert.Equal(t, "pub fn a() {}\npub fn b() {}\n", source.Code())
		assert.Equal(t, []byte("pub(crate) fn a() {}\r\npub fn b() {}\r\n"), source.Render("pub(crate) fn a() {}\npub fn b() {}\n"))
	})

	t.Run("String hides content", func(t *testing.T) {
		source := NewSourceFile("", "src/lib.rs", []byte("secret"))
		assert.Equal(t, "SourceFile(src/lib.rs)", source.String())
	})
}
