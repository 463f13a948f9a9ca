// Package sumtype holds the model variantgen works on: the definition of a
// tagged union as read by a front end, and the declarations generated from it.
//
// Every value in this package is created fresh for one generation and is never
// shared between generations.
package sumtype

import (
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
)

// Kind distinguishes tagged unions from other type definitions a front end
// may hand to the generator.
type Kind int

const (
	KindOther Kind = iota
	KindUnion
)

// Visibility of a declaration. In Go it is encoded in the first letter of the
// declaration's name.
type Visibility int

const (
	Unexported Visibility = iota
	Exported
)

// Shape is the payload shape of a variant.
type Shape int

const (
	ShapeEmpty Shape = iota
	ShapePositional
	ShapeNamed
)

func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapePositional:
		return "positional"
	case ShapeNamed:
		return "named"
	default:
		return "unknown"
	}
}

// AttrKind classifies an annotation attached to a definition, variant or
// field.
type AttrKind int

const (
	// AttrDoc is a documentation comment line.
	AttrDoc AttrKind = iota
	// AttrConditional is a conditional-compilation line (//go:build).
	AttrConditional
	// AttrLint is a lint allow/deny directive (//nolint, //lint:ignore).
	AttrLint
	// AttrDirective is a //variantgen: line; Text holds what follows the tag.
	AttrDirective
	// AttrTag is a raw struct tag, without backquotes.
	AttrTag
	// AttrCapabilities is a capability bundle on a generated declaration;
	// Values holds the capability names.
	AttrCapabilities
	// AttrRaw is a variant directive item passed through verbatim.
	AttrRaw
	// AttrOther is any other comment directive. It is never copied.
	AttrOther
)

// Attribute is one opaque annotation. Attributes keep their source order.
type Attribute struct {
	Kind   AttrKind
	Text   string
	Values []string
}

// PassThrough reports whether the attribute belongs to the allow-list that is
// copied onto generated declarations.
func (a Attribute) PassThrough() bool {
	switch a.Kind {
	case AttrDoc, AttrConditional, AttrLint:
		return true
	default:
		return false
	}
}

// TypeParam is one generic parameter with its constraint, both copied
// verbatim onto every generated declaration.
type TypeParam struct {
	Name       string
	Constraint jen.Code
}

// Field is one payload element of a variant. Name is empty for positional
// payloads.
type Field struct {
	Name       string
	Type       jen.Code
	Attributes []Attribute
}

// Variant is one case of a tagged union.
type Variant struct {
	Name       string
	Fields     []Field
	Attributes []Attribute
}

// Definition is a tagged union definition as supplied by a front end.
type Definition struct {
	Name       string
	Kind       Kind
	Visibility Visibility
	TypeParams []TypeParam
	Variants   []Variant
	Attributes []Attribute
	// Reason explains why a front end classified the definition as
	// KindOther. Empty for unions.
	Reason string
}

// Directives returns the text of every directive attribute, in order.
func Directives(attrs []Attribute) []string {
	var out []string
	for _, a := range attrs {
		if a.Kind == AttrDirective {
			out = append(out, a.Text)
		}
	}
	return out
}

// TypeArgs returns the definition's type parameters as instantiation
// arguments, e.g. [T, E] for Result[T any, E error].
func TypeArgs(params []TypeParam) []jen.Code {
	args := make([]jen.Code, 0, len(params))
	for _, p := range params {
		args = append(args, jen.Id(p.Name))
	}
	return args
}

// TagCode renders a raw struct tag exactly as written. jen.Tag sorts keys,
// which would change the identity of anonymous struct types.
func TagCode(raw string) jen.Code {
	if strings.Contains(raw, "`") {
		return jen.Op(strconv.Quote(raw))
	}
	return jen.Op("`" + raw + "`")
}

// TypeParamDecls returns the parameter list as declared, e.g. [T any, E error].
func TypeParamDecls(params []TypeParam) []jen.Code {
	decls := make([]jen.Code, 0, len(params))
	for _, p := range params {
		constraint := p.Constraint
		if constraint == nil {
			constraint = jen.Any()
		}
		decls = append(decls, jen.Id(p.Name).Add(constraint))
	}
	return decls
}
