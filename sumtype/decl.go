package sumtype

import (
	"github.com/dave/jennifer/jen"
)

// Decl is one generated declaration.
type Decl interface {
	DeclName() string
	isDecl()
}

// ProductField is a field of a generated product type. Name is the field's
// name on the product type, Source the name of the same element in the
// union's payload.
type ProductField struct {
	Name       string
	Source     string
	Type       jen.Code
	Attributes []Attribute
}

// ProductType mirrors the payload of one retained variant.
type ProductType struct {
	Name       string
	Variant    string
	Visibility Visibility
	TypeParams []TypeParam
	Shape      Shape
	Fields     []ProductField
	Attributes []Attribute
}

func (p *ProductType) DeclName() string { return p.Name }
func (*ProductType) isDecl()            {}

// Capabilities returns every capability bundle on the product type, one entry
// per bundle, in attribute order.
func (p *ProductType) Capabilities() [][]string {
	var out [][]string
	for _, a := range p.Attributes {
		if a.Kind == AttrCapabilities {
			out = append(out, a.Values)
		}
	}
	return out
}

// Lift converts a product type back into the union, always under the
// originating variant.
type Lift struct {
	Name       string
	Product    string
	Union      string
	Variant    string
	Shape      Shape
	Fields     []ProductField
	TypeParams []TypeParam
}

func (l *Lift) DeclName() string { return l.Product + "." + l.Name }
func (*Lift) isDecl()            {}

// Projection converts a union value into a product type when the value's tag
// is the projection's variant, and fails with the unmodified input otherwise.
type Projection struct {
	Name       string
	Product    string
	Union      string
	Variant    string
	Shape      Shape
	Fields     []ProductField
	TypeParams []TypeParam
}

func (p *Projection) DeclName() string { return p.Name }
func (*Projection) isDecl()            {}

// MarkerStub binds a marker capability to a product type with an empty
// implementation.
type MarkerStub struct {
	Marker     string
	Product    string
	TypeParams []TypeParam
}

func (m *MarkerStub) DeclName() string { return m.Product + "." + m.Marker }
func (*MarkerStub) isDecl()            {}

// Reexport makes the original union visible, by reference, inside a
// namespace.
type Reexport struct {
	Union      string
	TypeParams []TypeParam
	Attributes []Attribute
}

func (r *Reexport) DeclName() string { return r.Union }
func (*Reexport) isDecl()            {}

// Namespace wraps generated declarations into one named scope.
type Namespace struct {
	Name     string
	Reexport *Reexport
	Decls    []Decl
}

func (n *Namespace) DeclName() string { return n.Name }
func (*Namespace) isDecl()            {}

// Output is everything generated for one definition.
type Output struct {
	Union      string
	TypeParams []TypeParam
	// Conditions are the union's conditional-compilation attributes, applied
	// to every generated file.
	Conditions []Attribute
	Decls      []Decl
}

// Walk calls fn for every declaration of the output in order, descending into
// namespaces after visiting them.
func (o *Output) Walk(fn func(Decl)) {
	var walk func([]Decl)
	walk = func(decls []Decl) {
		for _, d := range decls {
			fn(d)
			if ns, ok := d.(*Namespace); ok {
				if ns.Reexport != nil {
					fn(ns.Reexport)
				}
				walk(ns.Decls)
			}
		}
	}
	walk(o.Decls)
}
