// Package render writes the declarations generated for a tagged union as Go
// source with jennifer.
package render

import (
	"path"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/dave/jennifer/jen"

	"github.com/ecordell/variantgen/sumtype"
)

// Options locate the rendered code.
type Options struct {
	// PackageName and PackagePath describe the union's package.
	PackageName string
	PackagePath string
	// HelpersPath is the import path of the runtime helpers package.
	HelpersPath string `default:"github.com/ecordell/variantgen/helpers"`
	// Generator is named in the generated-code marker.
	Generator string `default:"github.com/ecordell/variantgen"`
	// ImportNames are the declared package names of imported packages, keyed
	// by import path. Packages whose name differs from the last element of
	// their path are imported under that name instead of a guessed alias.
	ImportNames map[string]string
}

// File is one rendered Go file. Dir is relative to the union's package
// directory and is empty for the union's own package.
type File struct {
	Dir         string
	PackagePath string
	*jen.File
}

type renderer struct {
	opts       Options
	conditions []sumtype.Attribute
}

// Render turns the outputs of one or more unions of the same package into Go
// files: one for the package itself and one for each namespace, in order of
// first appearance. All outputs must carry the same build constraints.
func Render(opts Options, outs ...*sumtype.Output) ([]File, error) {
	if len(outs) == 0 {
		return nil, errors.New("nothing to render")
	}
	if err := defaults.Set(&opts); err != nil {
		return nil, errors.Wrap(err, "failed to apply option defaults")
	}
	if opts.PackageName == "" || opts.PackagePath == "" {
		return nil, errors.WithHint(errors.New("package name and path are required"), "set render.Options.PackageName and PackagePath")
	}
	var conditions []sumtype.Attribute
	if outs[0] != nil {
		conditions = outs[0].Conditions
	}
	r := &renderer{opts: opts, conditions: conditions}

	var top *jen.File
	var files []File
	byDir := make(map[string]*jen.File)
	for _, out := range outs {
		if out == nil {
			return nil, errors.New("nothing to render")
		}
		if !slices.EqualFunc(out.Conditions, r.conditions, sameText) {
			return nil, errors.WithHint(
				errors.Newf("%s has different build constraints than %s", out.Union, outs[0].Union),
				"generate unions from files with different build constraints into separate outputs",
			)
		}
		for _, d := range out.Decls {
			ns, ok := d.(*sumtype.Namespace)
			if !ok {
				if top == nil {
					top = r.newFile(opts.PackagePath, opts.PackageName)
				}
				if err := r.decls(top, []sumtype.Decl{d}); err != nil {
					return nil, errors.Wrapf(err, "union %s", out.Union)
				}
				continue
			}
			buf, seen := byDir[ns.Name]
			if !seen {
				buf = r.newFile(path.Join(opts.PackagePath, ns.Name), ns.Name)
				byDir[ns.Name] = buf
				files = append(files, File{Dir: ns.Name, PackagePath: path.Join(opts.PackagePath, ns.Name), File: buf})
			}
			if err := r.namespace(buf, ns); err != nil {
				return nil, errors.Wrapf(err, "union %s", out.Union)
			}
		}
	}
	if top != nil || len(files) == 0 {
		if top == nil {
			top = r.newFile(opts.PackagePath, opts.PackageName)
		}
		files = append([]File{{PackagePath: opts.PackagePath, File: top}}, files...)
	}
	return files, nil
}

func sameText(a, b sumtype.Attribute) bool {
	return a.Kind == b.Kind && a.Text == b.Text
}

func (r *renderer) newFile(pkgPath, pkgName string) *jen.File {
	buf := jen.NewFilePathName(pkgPath, pkgName)
	for i, c := range r.conditions {
		text := c.Text
		if i == len(r.conditions)-1 {
			// blank line between the constraints and the generated-code marker
			text += "\n"
		}
		buf.HeaderComment(text)
	}
	// The marker is a header, not a package comment, so it never becomes the
	// package's documentation.
	buf.HeaderComment("// Code generated by " + r.opts.Generator + ". DO NOT EDIT.")
	buf.ImportNames(r.opts.ImportNames)
	buf.ImportName(r.opts.PackagePath, r.opts.PackageName)
	buf.ImportName(r.opts.HelpersPath, "helpers")
	return buf
}

// namespace renders a namespace into its sub-package, re-exposing the union
// through an alias.
func (r *renderer) namespace(buf *jen.File, ns *sumtype.Namespace) error {
	if ns.Reexport != nil {
		writeReexport(buf, ns.Reexport, r.opts.PackagePath)
	}
	if err := r.decls(buf, ns.Decls); err != nil {
		return errors.Wrapf(err, "namespace %s", ns.Name)
	}
	return nil
}

func (r *renderer) decls(buf *jen.File, decls []sumtype.Decl) error {
	for _, d := range decls {
		buf.Line()
		switch d := d.(type) {
		case *sumtype.ProductType:
			if err := writeProductType(buf, d); err != nil {
				return errors.Wrapf(err, "type %s", d.Name)
			}
		case *sumtype.Lift:
			writeLift(buf, d, r.opts.HelpersPath)
		case *sumtype.Projection:
			writeProjection(buf, d, r.opts.HelpersPath)
		case *sumtype.MarkerStub:
			writeMarker(buf, d)
		case *sumtype.Namespace:
			return errors.Newf("namespace %s cannot be nested", d.Name)
		default:
			return errors.Newf("unexpected declaration %T", d)
		}
	}
	return nil
}

// instance is name instantiated with the type parameters, e.g. Circle[T].
func instance(name string, params []sumtype.TypeParam) *jen.Statement {
	s := jen.Id(name)
	if len(params) > 0 {
		s.Types(sumtype.TypeArgs(params)...)
	}
	return s
}

// declare adds the type parameter list to a declaration, e.g. [T any].
func declare(s *jen.Statement, params []sumtype.TypeParam) *jen.Statement {
	if len(params) > 0 {
		s.Types(sumtype.TypeParamDecls(params)...)
	}
	return s
}
