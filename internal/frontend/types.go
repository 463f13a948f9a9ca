package frontend

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dave/jennifer/jen"

	"github.com/ecordell/variantgen/sumtype"
)

// typeConverter turns type expressions read from a file into jen code that
// renders the same type from any package.
type typeConverter struct {
	resolver   *ImportResolver
	typeParams []string
}

// TypeToJenCode converts an AST type expression to jen code. Identifiers
// declared in the resolver's local package are qualified with its path;
// predeclared identifiers and the given type parameters are not.
func TypeToJenCode(expr ast.Expr, resolver *ImportResolver, typeParams ...string) (jen.Code, error) {
	c := &typeConverter{resolver: resolver, typeParams: typeParams}
	code, err := c.convert(expr)
	if err != nil {
		return nil, err
	}
	return code, nil
}

func (c *typeConverter) ident(name string) *jen.Statement {
	if types.Universe.Lookup(name) != nil || slices.Contains(c.typeParams, name) || c.resolver.LocalPath() == "" {
		return jen.Id(name)
	}
	return jen.Qual(c.resolver.LocalPath(), name)
}

func (c *typeConverter) convert(expr ast.Expr) (*jen.Statement, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return c.ident(t.Name), nil
	case *ast.StarExpr:
		x, err := c.convert(t.X)
		if err != nil {
			return nil, err
		}
		return jen.Op("*").Add(x), nil
	case *ast.SelectorExpr:
		if pkg, ok := t.X.(*ast.Ident); ok {
			importPath, ok := c.resolver.Resolve(pkg.Name)
			if !ok {
				return nil, errors.WithHint(
					errors.Newf("%s.%s refers to a package the file does not import", pkg.Name, t.Sel.Name),
					"dot imports are not supported in payload types",
				)
			}
			return jen.Qual(importPath, t.Sel.Name), nil
		}
		return nil, errors.Newf("unsupported selector type at %d", t.Pos())
	case *ast.ParenExpr:
		return c.convert(t.X)
	case *ast.ArrayType:
		elt, err := c.convert(t.Elt)
		if err != nil {
			return nil, err
		}
		if t.Len == nil {
			// slice
			return jen.Index().Add(elt), nil
		}
		n, err := c.value(t.Len)
		if err != nil {
			return nil, err
		}
		return jen.Index(n).Add(elt), nil
	case *ast.MapType:
		key, err := c.convert(t.Key)
		if err != nil {
			return nil, err
		}
		value, err := c.convert(t.Value)
		if err != nil {
			return nil, err
		}
		return jen.Map(key).Add(value), nil
	case *ast.ChanType:
		value, err := c.convert(t.Value)
		if err != nil {
			return nil, err
		}
		switch t.Dir {
		case ast.SEND:
			return jen.Chan().Op("<-").Add(value), nil
		case ast.RECV:
			return jen.Op("<-").Chan().Add(value), nil
		default:
			return jen.Chan().Add(value), nil
		}
	case *ast.Ellipsis:
		elt, err := c.convert(t.Elt)
		if err != nil {
			return nil, err
		}
		return jen.Op("...").Add(elt), nil
	case *ast.FuncType:
		return c.funcType(t)
	case *ast.InterfaceType:
		return c.interfaceType(t)
	case *ast.StructType:
		return c.structType(t)
	case *ast.IndexExpr:
		x, err := c.convert(t.X)
		if err != nil {
			return nil, err
		}
		arg, err := c.convert(t.Index)
		if err != nil {
			return nil, err
		}
		return x.Types(arg), nil
	case *ast.IndexListExpr:
		x, err := c.convert(t.X)
		if err != nil {
			return nil, err
		}
		args, err := c.list(t.Indices)
		if err != nil {
			return nil, err
		}
		return x.Types(args...), nil
	case *ast.UnaryExpr:
		if t.Op != token.TILDE {
			return nil, errors.Newf("unsupported type operator %s", t.Op)
		}
		x, err := c.convert(t.X)
		if err != nil {
			return nil, err
		}
		return jen.Op("~").Add(x), nil
	case *ast.BinaryExpr:
		if t.Op != token.OR {
			return nil, errors.Newf("unsupported type operator %s", t.Op)
		}
		x, err := c.convert(t.X)
		if err != nil {
			return nil, err
		}
		y, err := c.convert(t.Y)
		if err != nil {
			return nil, err
		}
		return jen.Union(x, y), nil
	default:
		return nil, errors.Newf("unsupported type expression %T", expr)
	}
}

func (c *typeConverter) list(exprs []ast.Expr) ([]jen.Code, error) {
	out := make([]jen.Code, 0, len(exprs))
	for _, e := range exprs {
		code, err := c.convert(e)
		if err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return out, nil
}

// value converts an array length. Only constant expressions built from
// literals and named constants are supported.
func (c *typeConverter) value(expr ast.Expr) (*jen.Statement, error) {
	switch v := expr.(type) {
	case *ast.BasicLit:
		return jen.Op(v.Value), nil
	case *ast.Ident:
		return c.ident(v.Name), nil
	case *ast.SelectorExpr:
		return c.convert(v)
	case *ast.ParenExpr:
		x, err := c.value(v.X)
		if err != nil {
			return nil, err
		}
		return jen.Parens(x), nil
	case *ast.BinaryExpr:
		x, err := c.value(v.X)
		if err != nil {
			return nil, err
		}
		y, err := c.value(v.Y)
		if err != nil {
			return nil, err
		}
		return x.Op(v.Op.String()).Add(y), nil
	default:
		return nil, errors.Newf("unsupported array length %T", expr)
	}
}

// fields converts a parameter, result or struct field list. Fields with
// several names expand to one entry per name.
func (c *typeConverter) fields(list *ast.FieldList) ([]jen.Code, error) {
	if list == nil {
		return nil, nil
	}
	var out []jen.Code
	for _, f := range list.List {
		typ, err := c.convert(f.Type)
		if err != nil {
			return nil, err
		}
		if len(f.Names) == 0 {
			out = append(out, typ)
			continue
		}
		for _, n := range f.Names {
			out = append(out, jen.Id(n.Name).Add(typ))
		}
	}
	return out, nil
}

func (c *typeConverter) funcType(t *ast.FuncType) (*jen.Statement, error) {
	params, err := c.fields(t.Params)
	if err != nil {
		return nil, err
	}
	results, err := c.fields(t.Results)
	if err != nil {
		return nil, err
	}
	fn := jen.Func().Params(params...)
	switch {
	case len(results) == 0:
		return fn, nil
	case len(results) == 1 && len(t.Results.List[0].Names) == 0:
		return fn.Add(results[0]), nil
	default:
		return fn.Params(results...), nil
	}
}

func (c *typeConverter) interfaceType(t *ast.InterfaceType) (*jen.Statement, error) {
	var methods []jen.Code
	for _, m := range t.Methods.List {
		if len(m.Names) == 0 {
			embedded, err := c.convert(m.Type)
			if err != nil {
				return nil, err
			}
			methods = append(methods, embedded)
			continue
		}
		ft, ok := m.Type.(*ast.FuncType)
		if !ok {
			return nil, errors.Newf("unsupported interface method %s", m.Names[0].Name)
		}
		params, err := c.fields(ft.Params)
		if err != nil {
			return nil, err
		}
		results, err := c.fields(ft.Results)
		if err != nil {
			return nil, err
		}
		sig := jen.Id(m.Names[0].Name).Params(params...)
		switch {
		case len(results) == 1 && len(ft.Results.List[0].Names) == 0:
			sig.Add(results[0])
		case len(results) > 0:
			sig.Params(results...)
		}
		methods = append(methods, sig)
	}
	return jen.Interface(methods...), nil
}

func (c *typeConverter) structType(t *ast.StructType) (*jen.Statement, error) {
	var fields []jen.Code
	for _, f := range t.Fields.List {
		typ, err := c.convert(f.Type)
		if err != nil {
			return nil, err
		}
		if f.Tag != nil {
			raw, err := strconv.Unquote(f.Tag.Value)
			if err != nil {
				return nil, errors.Wrap(err, "invalid struct tag")
			}
			typ = typ.Add(sumtype.TagCode(raw))
		}
		if len(f.Names) == 0 {
			fields = append(fields, typ)
			continue
		}
		for _, n := range f.Names {
			fields = append(fields, jen.Id(n.Name).Add(typ))
		}
	}
	return jen.Struct(fields...), nil
}
