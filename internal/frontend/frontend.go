// Package frontend reads tagged unions out of Go source. A union is a struct
// whose fields are all pointers; each field is one variant and exactly one of
// them is set at runtime.
package frontend

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/ecordell/variantgen/sumtype"
)

// TypeDecl is a type spec together with the doc comment that applies to it.
// For an unparenthesized declaration the doc comment hangs off the GenDecl.
type TypeDecl struct {
	Spec *ast.TypeSpec
	Doc  *ast.CommentGroup
}

// FindUnionDefsAST returns the type declarations of the file whose names are
// in names, in source order. Whether they are unions is decided by
// DefinitionFromAST.
func FindUnionDefsAST(file *ast.File, names map[string]struct{}) []TypeDecl {
	found := make([]TypeDecl, 0)
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name == nil {
				continue
			}
			if _, ok := names[ts.Name.Name]; !ok {
				continue
			}
			doc := ts.Doc
			if doc == nil && !gd.Lparen.IsValid() {
				doc = gd.Doc
			}
			found = append(found, TypeDecl{Spec: ts, Doc: doc})
		}
	}
	return found
}

// DefinitionFromAST builds the definition of decl. A declaration that does not
// follow the union encoding is returned with KindOther and a Reason; an error
// is only returned for type expressions that cannot be converted.
func DefinitionFromAST(file *ast.File, decl TypeDecl, resolver *ImportResolver) (*sumtype.Definition, error) {
	ts := decl.Spec
	def := &sumtype.Definition{
		Name:       ts.Name.Name,
		Kind:       sumtype.KindUnion,
		Visibility: sumtype.Unexported,
		Attributes: append(buildConstraints(file), commentAttributes(decl.Doc)...),
	}
	if ast.IsExported(def.Name) {
		def.Visibility = sumtype.Exported
	}

	other := func(format string, args ...any) (*sumtype.Definition, error) {
		def.Kind = sumtype.KindOther
		def.Reason = fmt.Sprintf(format, args...)
		def.Variants = nil
		return def, nil
	}

	if ts.Assign.IsValid() {
		return other("%s is a type alias", def.Name)
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return other("%s is not a struct type", def.Name)
	}

	var paramNames []string
	if ts.TypeParams != nil {
		for _, f := range ts.TypeParams.List {
			for _, n := range f.Names {
				paramNames = append(paramNames, n.Name)
			}
		}
	}
	conv := &typeConverter{resolver: resolver, typeParams: paramNames}

	if ts.TypeParams != nil {
		for _, f := range ts.TypeParams.List {
			constraint, err := conv.convert(f.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "type parameters of %s", def.Name)
			}
			for _, n := range f.Names {
				def.TypeParams = append(def.TypeParams, sumtype.TypeParam{Name: n.Name, Constraint: constraint})
			}
		}
	}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return other("%s embeds a field; every variant must be named", def.Name)
		}
		ptr, ok := field.Type.(*ast.StarExpr)
		if !ok {
			return other("variant %s.%s is not a pointer", def.Name, field.Names[0].Name)
		}
		payload, reason, err := conv.payload(ptr.X)
		if err != nil {
			return nil, errors.Wrapf(err, "variant %s.%s", def.Name, field.Names[0].Name)
		}
		if reason != "" {
			return other("variant %s.%s %s", def.Name, field.Names[0].Name, reason)
		}
		attrs := commentAttributes(field.Doc, field.Comment)
		for _, n := range field.Names {
			def.Variants = append(def.Variants, sumtype.Variant{
				Name:       n.Name,
				Fields:     payload,
				Attributes: attrs,
			})
		}
	}
	return def, nil
}

// payload reads the fields of a variant from the pointee of its field type.
// A non-empty reason means the pointee does not follow the encoding.
func (c *typeConverter) payload(pointee ast.Expr) ([]sumtype.Field, string, error) {
	st, ok := pointee.(*ast.StructType)
	if !ok {
		typ, err := c.convert(pointee)
		if err != nil {
			return nil, "", err
		}
		return []sumtype.Field{{Type: typ}}, "", nil
	}

	var names []string
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			return nil, "embeds a field in its payload", nil
		}
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
	}
	positional := isPositional(names)

	fields := make([]sumtype.Field, 0, len(names))
	for _, f := range st.Fields.List {
		typ, err := c.convert(f.Type)
		if err != nil {
			return nil, "", err
		}
		attrs := commentAttributes(f.Doc, f.Comment)
		if f.Tag != nil {
			raw, err := strconv.Unquote(f.Tag.Value)
			if err != nil {
				return nil, "", errors.Wrap(err, "invalid struct tag")
			}
			attrs = append(attrs, sumtype.Attribute{Kind: sumtype.AttrTag, Text: raw})
		}
		for _, n := range f.Names {
			field := sumtype.Field{Name: n.Name, Type: typ, Attributes: attrs}
			if positional {
				field.Name = ""
			}
			fields = append(fields, field)
		}
	}
	return fields, "", nil
}

// isPositional reports whether names are exactly F0..Fn-1 with n >= 2. A
// single element is written as a plain pointer instead.
func isPositional(names []string) bool {
	if len(names) < 2 {
		return false
	}
	for i, n := range names {
		if n != "F"+strconv.Itoa(i) {
			return false
		}
	}
	return true
}
