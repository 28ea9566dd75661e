package model

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Visibility is the declared visibility of a Rust item.
type Visibility int

const (
	// VisInherited is the default (private) visibility: no modifier at all.
	VisInherited Visibility = iota
	// VisPublic is a bare `pub`.
	VisPublic
	// VisCrate is `pub(crate)` or the legacy `crate` modifier.
	VisCrate
	// VisRestricted is `pub(self)`, `pub(super)` or `pub(in path)`.
	VisRestricted
)

// String returns a short label for the visibility.
func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "pub"
	case VisCrate:
		return "pub(crate)"
	case VisRestricted:
		return "restricted"
	default:
		return "inherited"
	}
}

// MutationOp is a visibility-narrowing transition.
type MutationOp int

const (
	// ToVisCrate converts `pub` to `pub(crate)`.
	ToVisCrate MutationOp = iota
	// ToVisSelf converts to `pub(self)`.
	ToVisSelf
	// ToVisSuper converts to `pub(super)`.
	ToVisSuper
	// ToVisInherited removes the modifier entirely.
	ToVisInherited
)

// Replacement returns the literal text that replaces the visibility token.
func (op MutationOp) Replacement() string {
	switch op {
	case ToVisCrate:
		return "pub(crate)"
	case ToVisSelf:
		return "pub(self)"
	case ToVisSuper:
		return "pub(super)"
	default:
		return ""
	}
}

// String returns a readable name for the operation.
func (op MutationOp) String() string {
	if op == ToVisInherited {
		return "inherited"
	}

	return op.Replacement()
}

// OpsFor returns the legal narrowing operations for a declared visibility.
// Restricted and inherited visibilities yield none.
func OpsFor(v Visibility) []MutationOp {
	switch v {
	case VisPublic:
		return []MutationOp{ToVisCrate, ToVisSelf, ToVisSuper, ToVisInherited}
	case VisCrate:
		return []MutationOp{ToVisSelf, ToVisSuper, ToVisInherited}
	default:
		return nil
	}
}

// DeclKind identifies the kind of declaration a mutation targets.
type DeclKind string

const (
	// DeclStruct is a `struct` item.
	DeclStruct DeclKind = "struct"
	// DeclFunction is a free function or a method.
	DeclFunction DeclKind = "fn"
	// DeclEnum is an `enum` item.
	DeclEnum DeclKind = "enum"
	// DeclVariant is an enum variant.
	DeclVariant DeclKind = "variant"
	// DeclField is a named struct or variant field.
	DeclField DeclKind = "field"
)

// Mutation is a candidate edit of one visibility token in one file.
type Mutation struct {
	// Source is the shared snapshot the mutation was discovered in.
	Source *SourceFile
	// Op is the narrowing to apply.
	Op MutationOp
	// Span locates the visibility token in Source.
	Span Span
	// Kind and Name describe the declaration, for reporting only.
	Kind DeclKind
	Name string
	// From is the visibility the declaration had when discovered.
	From Visibility
}

// Mutate returns the whole text of the file with the mutation applied.
// Source is left untouched.
func (mu Mutation) Mutate() (string, error) {
	return ReplaceRegion(mu.Source.Code(), mu.Span.Start, mu.Span.End, mu.Op.Replacement())
}

// Diff renders the mutation as a unified diff against its source file.
func (mu Mutation) Diff() (string, error) {
	mutated, err := mu.Mutate()
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(mu.Source.Code()),
		B:        difflib.SplitLines(mutated),
		FromFile: string(mu.Source.RelPath),
		ToFile:   string(mu.Source.RelPath),
		Context:  1,
	})
}

// String describes the mutation as path:line:col kind name: from -> to.
func (mu Mutation) String() string {
	path := Path("")
	if mu.Source != nil {
		path = mu.Source.RelPath
	}

	return fmt.Sprintf("%s:%s %s %s: %s -> %s", path, mu.Span.Start, mu.Kind, mu.Name, mu.From, mu.Op)
}
