package render

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dave/jennifer/jen"

	"github.com/ecordell/variantgen/sumtype"
)

// ErrUnknownCapability is returned when a capability bundle names a
// capability that has no Go implementation.
var ErrUnknownCapability = errors.New("unknown capability")

// deriver writes the methods implementing one capability on a product type.
type deriver func(buf *jen.File, p *sumtype.ProductType)

var derivers = map[string]deriver{
	"Equal":  deriveEqual,
	"String": deriveString,
	"Clone":  deriveClone,
	"Fields": deriveFields,
	"IsZero": deriveIsZero,
}

// Capabilities lists the capability names that can be rendered.
func Capabilities() []string {
	return []string{"Clone", "Equal", "Fields", "IsZero", "String"}
}

func unknownCapability(name string) error {
	return errors.WithHint(
		errors.Mark(errors.Newf("capability %q cannot be derived", name), ErrUnknownCapability),
		"supported capabilities: "+strings.Join(Capabilities(), ", "),
	)
}

// method starts a value-receiver method on the product type and returns the
// receiver's name alongside it.
func method(buf *jen.File, p *sumtype.ProductType, names locals, name string) (*jen.Statement, string) {
	recv := names.name("v")
	return buf.Func().Params(jen.Id(recv).Add(instance(p.Name, p.TypeParams))).Id(name), recv
}

func deriveEqual(buf *jen.File, p *sumtype.ProductType) {
	names := newLocals(p.TypeParams, p.Name)
	recv, other := names.name("v"), names.name("other")
	buf.Comment(fmt.Sprintf("Equal reports whether every field of %s equals the same field of %s.", recv, other))
	buf.Func().Params(jen.Id(recv).Add(instance(p.Name, p.TypeParams))).Id("Equal").Params(jen.Id(other).Add(instance(p.Name, p.TypeParams))).Bool().BlockFunc(func(grp *jen.Group) {
		if len(p.Fields) == 0 {
			grp.Return(jen.True())
			return
		}
		var cmp *jen.Statement
		for _, f := range p.Fields {
			if cmp == nil {
				cmp = jen.Id(recv).Dot(f.Name)
			} else {
				cmp.Op("&&").Id(recv).Dot(f.Name)
			}
			cmp.Op("==").Id(other).Dot(f.Name)
		}
		grp.Return(cmp)
	})
}

// stringFormat is the format used by String: Circle(%v), Rect{Width: %v} or
// Unit.
func stringFormat(p *sumtype.ProductType) string {
	switch p.Shape {
	case sumtype.ShapePositional:
		return p.Name + "(" + strings.TrimSuffix(strings.Repeat("%v, ", len(p.Fields)), ", ") + ")"
	case sumtype.ShapeNamed:
		parts := make([]string, 0, len(p.Fields))
		for _, f := range p.Fields {
			parts = append(parts, f.Name+": %v")
		}
		return p.Name + "{" + strings.Join(parts, ", ") + "}"
	default:
		return p.Name
	}
}

func deriveString(buf *jen.File, p *sumtype.ProductType) {
	buf.Comment("String returns the variant name and field values of " + article(p.Name) + " " + p.Name + ".")
	decl, recv := method(buf, p, newLocals(p.TypeParams, p.Name), "String")
	decl.Params().String().BlockFunc(func(grp *jen.Group) {
		if len(p.Fields) == 0 {
			grp.Return(jen.Lit(p.Name))
			return
		}
		args := []jen.Code{jen.Lit(stringFormat(p))}
		for _, f := range p.Fields {
			args = append(args, jen.Id(recv).Dot(f.Name))
		}
		grp.Return(jen.Qual("fmt", "Sprintf").Call(args...))
	})
}

func deriveClone(buf *jen.File, p *sumtype.ProductType) {
	names := newLocals(p.TypeParams, p.Name)
	buf.Comment("Clone returns a shallow copy of " + names.peek("v") + ".")
	decl, recv := method(buf, p, names, "Clone")
	decl.Params().Add(instance(p.Name, p.TypeParams)).Block(
		jen.Return(jen.Id(recv)),
	)
}

func deriveFields(buf *jen.File, p *sumtype.ProductType) {
	names := newLocals(p.TypeParams, p.Name)
	buf.Comment("Fields returns the fields of " + names.peek("v") + " in declaration order.")
	decl, recv := method(buf, p, names, "Fields")
	values := make([]jen.Code, 0, len(p.Fields))
	for _, f := range p.Fields {
		values = append(values, jen.Id(recv).Dot(f.Name))
	}
	decl.Params().Index().Any().Block(
		jen.Return(jen.Index().Any().Values(values...)),
	)
}

func deriveIsZero(buf *jen.File, p *sumtype.ProductType) {
	names := newLocals(p.TypeParams, p.Name)
	buf.Comment("IsZero reports whether " + names.peek("v") + " is the zero " + p.Name + ".")
	decl, recv := method(buf, p, names, "IsZero")
	decl.Params().Bool().Block(
		jen.Return(jen.Id(recv).Op("==").Add(instance(p.Name, p.TypeParams)).Values()),
	)
}
