package render

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/ecordell/variantgen/internal/directive"
	"github.com/ecordell/variantgen/sumtype"
)

// locals hands out names for the receivers, parameters and variables of
// generated code. A name never shadows a type parameter or a type the
// declaration refers to, and is never handed out twice.
type locals map[string]bool

func newLocals(params []sumtype.TypeParam, typeNames ...string) locals {
	l := make(locals, len(params)+len(typeNames))
	for _, p := range params {
		l[p.Name] = true
	}
	for _, n := range typeNames {
		l[n] = true
	}
	return l
}

// name returns base, or base followed by the first number that is free.
func (l locals) name(base string) string {
	name := l.peek(base)
	l[name] = true
	return name
}

// peek returns the name the next call to name(base) will hand out.
func (l locals) peek(base string) string {
	name := base
	for i := 0; l[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	return name
}

// article is the indefinite article for a type name.
func article(name string) string {
	if name != "" && strings.ContainsRune("AEIOUaeiou", rune(name[0])) {
		return "an"
	}
	return "a"
}

func writeAttributes(buf *jen.File, attrs []sumtype.Attribute) {
	for _, a := range attrs {
		switch a.Kind {
		case sumtype.AttrDoc, sumtype.AttrConditional, sumtype.AttrLint:
			buf.Comment(a.Text)
		case sumtype.AttrCapabilities:
			buf.Comment(directive.Tag + "capabilities(" + strings.Join(a.Values, ", ") + ")")
		case sumtype.AttrRaw:
			buf.Comment(directive.Tag + a.Text)
		}
	}
}

func writeProductType(buf *jen.File, p *sumtype.ProductType) error {
	writeAttributes(buf, p.Attributes)

	fields := make([]jen.Code, 0, len(p.Fields))
	for _, f := range p.Fields {
		for _, a := range f.Attributes {
			if a.PassThrough() {
				fields = append(fields, jen.Comment(a.Text))
			}
		}
		field := jen.Id(f.Name).Add(f.Type)
		for _, a := range f.Attributes {
			if a.Kind == sumtype.AttrTag {
				field.Add(sumtype.TagCode(a.Text))
			}
		}
		fields = append(fields, field)
	}
	buf.Add(declare(jen.Type().Id(p.Name), p.TypeParams).Struct(fields...))

	for _, bundle := range p.Capabilities() {
		for _, name := range bundle {
			derive, ok := derivers[name]
			if !ok {
				return unknownCapability(name)
			}
			buf.Line()
			derive(buf, p)
		}
	}
	return nil
}

// unwrapped reports whether the union stores the payload of this shape as a
// plain pointer to its only element.
func unwrapped(shape sumtype.Shape, fields []sumtype.ProductField) bool {
	return shape == sumtype.ShapePositional && len(fields) == 1
}

func writeLift(buf *jen.File, l *sumtype.Lift, helpersPath string) {
	names := newLocals(l.TypeParams, l.Union, l.Product)
	recv, out, p := names.name("v"), names.name("out"), names.name("p")

	buf.Comment(fmt.Sprintf("%s returns %s as %s %s holding the %s variant.", l.Name, recv, article(l.Union), l.Union, l.Variant))
	buf.Func().Params(jen.Id(recv).Add(instance(l.Product, l.TypeParams))).Id(l.Name).Params().Add(instance(l.Union, l.TypeParams)).BlockFunc(func(grp *jen.Group) {
		grp.Var().Id(out).Add(instance(l.Union, l.TypeParams))
		slot := jen.Op("&").Id(out).Dot(l.Variant)
		switch {
		case l.Shape == sumtype.ShapeEmpty:
			grp.Qual(helpersPath, "Alloc").Call(slot)
		case unwrapped(l.Shape, l.Fields):
			grp.Id(out).Dot(l.Variant).Op("=").Qual(helpersPath, "Ptr").Call(jen.Id(recv).Dot(l.Fields[0].Name))
		default:
			grp.Id(p).Op(":=").Qual(helpersPath, "Alloc").Call(slot)
			for _, f := range l.Fields {
				grp.Id(p).Dot(f.Source).Op("=").Id(recv).Dot(f.Name)
			}
		}
		grp.Return(jen.Id(out))
	})
}

func writeProjection(buf *jen.File, p *sumtype.Projection, helpersPath string) {
	recv := newLocals(p.TypeParams, p.Union, p.Product).name("v")

	values := make([]jen.Code, 0, len(p.Fields))
	for _, f := range p.Fields {
		var from *jen.Statement
		if unwrapped(p.Shape, p.Fields) {
			from = jen.Op("*").Id(recv).Dot(p.Variant)
		} else {
			from = jen.Id(recv).Dot(p.Variant).Dot(f.Source)
		}
		values = append(values, jen.Id(f.Name).Op(":").Add(from))
	}

	buf.Comment(fmt.Sprintf("%s returns the %s variant held by %s.", p.Name, p.Variant, recv))
	buf.Comment(fmt.Sprintf("Otherwise it returns a *helpers.MismatchError holding %s unchanged.", recv))
	buf.Add(declare(jen.Func().Id(p.Name), p.TypeParams)).
		Params(jen.Id(recv).Add(instance(p.Union, p.TypeParams))).
		Params(instance(p.Product, p.TypeParams), jen.Error()).
		BlockFunc(func(grp *jen.Group) {
			grp.If(jen.Id(recv).Dot(p.Variant).Op("!=").Nil()).Block(
				jen.Return(instance(p.Product, p.TypeParams).Values(values...), jen.Nil()),
			)
			grp.Return(
				instance(p.Product, p.TypeParams).Values(),
				jen.Op("&").Qual(helpersPath, "MismatchError").Types(instance(p.Union, p.TypeParams)).Values(
					jen.Id("Variant").Op(":").Lit(p.Variant),
					jen.Id("Value").Op(":").Id(recv),
				),
			)
		})
}

func writeMarker(buf *jen.File, m *sumtype.MarkerStub) {
	buf.Func().Params(instance(m.Product, m.TypeParams)).Id(m.Marker).Params().Block()
}

func writeReexport(buf *jen.File, r *sumtype.Reexport, unionPath string) {
	buf.Line()
	writeAttributes(buf, r.Attributes)
	target := jen.Qual(unionPath, r.Union)
	if len(r.TypeParams) > 0 {
		target.Types(sumtype.TypeArgs(r.TypeParams)...)
	}
	buf.Add(declare(jen.Type().Id(r.Union), r.TypeParams).Op("=").Add(target))
}
