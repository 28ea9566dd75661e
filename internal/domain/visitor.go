package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	m "tighten.dev/pkg/tighten/internal/model"
)

// maxTreeDepth bounds recursion on pathological inputs.
const maxTreeDepth = 1000

const (
	nodeVisibility   = "visibility_modifier"
	nodeFieldList    = "field_declaration_list"
	nodeField        = "field_declaration"
	nodeEnumVariant  = "enum_variant"
	fieldName        = "name"
	fieldBody        = "body"
	crateVisibility  = "crate"
	publicVisibility = "pub"
)

// declarationRules maps the item kinds that carry a mutable visibility to
// their handlers. Every other node is only descended into.
var declarationRules = map[string]func(*visitor, *sitter.Node){
	"struct_item":   (*visitor).visitStruct,
	"enum_item":     (*visitor).visitEnum,
	"function_item": (*visitor).visitFunction,
}

// visitor walks a Rust syntax tree depth-first and collects one mutation per
// legal narrowing of every visibility it finds, in document order.
type visitor struct {
	source     *m.SourceFile
	code       []byte
	lineStarts []int
	mutations  []m.Mutation
}

func newVisitor(source *m.SourceFile) *visitor {
	code := []byte(source.Code())

	lineStarts := []int{0}

	for i, b := range code {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &visitor{
		source:     source,
		code:       code,
		lineStarts: lineStarts,
	}
}

func (v *visitor) visit(node *sitter.Node, depth int) {
	if node == nil || depth > maxTreeDepth {
		return
	}

	if rule, ok := declarationRules[node.Type()]; ok {
		rule(v, node)
		return
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		v.visit(node.NamedChild(i), depth+1)
	}
}

// visitStruct handles the struct itself and its named fields. Tuple and unit
// structs contribute only the struct visibility.
func (v *visitor) visitStruct(node *sitter.Node) {
	v.emit(node, m.DeclStruct)

	if body := node.ChildByFieldName(fieldBody); body != nil && body.Type() == nodeFieldList {
		v.visitFields(body)
	}
}

func (v *visitor) visitEnum(node *sitter.Node) {
	v.emit(node, m.DeclEnum)

	body := node.ChildByFieldName(fieldBody)
	if body == nil {
		return
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		variant := body.NamedChild(i)
		if variant.Type() != nodeEnumVariant {
			continue
		}

		v.emit(variant, m.DeclVariant)

		if fields := variant.ChildByFieldName(fieldBody); fields != nil && fields.Type() == nodeFieldList {
			v.visitFields(fields)
		}
	}
}

// visitFunction does not enter the body; items nested in a function body
// are local and never visible outside it.
func (v *visitor) visitFunction(node *sitter.Node) {
	v.emit(node, m.DeclFunction)
}

func (v *visitor) visitFields(list *sitter.Node) {
	for i := 0; i < int(list.NamedChildCount()); i++ {
		if field := list.NamedChild(i); field.Type() == nodeField {
			v.emit(field, m.DeclField)
		}
	}
}

func (v *visitor) emit(decl *sitter.Node, kind m.DeclKind) {
	modifier := visibilityModifier(decl)
	if modifier == nil {
		return
	}

	from := classifyVisibility(modifier.Content(v.code))

	ops := m.OpsFor(from)
	if len(ops) == 0 {
		return
	}

	span := m.Span{
		Start: v.position(modifier.StartPoint()),
		End:   v.position(modifier.EndPoint()),
	}

	name := ""
	if n := decl.ChildByFieldName(fieldName); n != nil {
		name = n.Content(v.code)
	}

	for _, op := range ops {
		v.mutations = append(v.mutations, m.Mutation{
			Source: v.source,
			Op:     op,
			Span:   span,
			Kind:   kind,
			Name:   name,
			From:   from,
		})
	}
}

// position converts a tree-sitter point (zero-based row, byte column) into a
// one-based line and character column.
func (v *visitor) position(p sitter.Point) m.Position {
	row := int(p.Row)
	if row >= len(v.lineStarts) {
		row = len(v.lineStarts) - 1
	}

	start := v.lineStarts[row]

	end := start + int(p.Column)
	if end > len(v.code) {
		end = len(v.code)
	}

	return m.Position{
		Line:   row + 1,
		Column: utf8.RuneCount(v.code[start:end]) + 1,
	}
}

func visibilityModifier(decl *sitter.Node) *sitter.Node {
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		if child := decl.NamedChild(i); child.Type() == nodeVisibility {
			return child
		}
	}

	return nil
}

// classifyVisibility maps modifier text onto a Visibility. `pub(crate)` and
// the legacy `crate` are crate-visible; any other parenthesised form is
// already restricted.
func classifyVisibility(text string) m.Visibility {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, text)

	switch compact {
	case publicVisibility:
		return m.VisPublic
	case crateVisibility, "pub(crate)":
		return m.VisCrate
	default:
		return m.VisRestricted
	}
}
