// Package main implements variantgen, a code generator for tagged unions in Go.
//
// A tagged union is a struct whose fields are all pointers, exactly one of
// which is set. For every variant variantgen generates:
//   - a product type mirroring the variant's payload
//   - a lift method converting the product type back into the union
//   - a projection function converting the union into the product type
//   - optional capability methods and marker stubs
//
// Usage:
//
//	variantgen [flags] <package-path> <union-name> [<union-name>...]
//
// Flags:
//
//	--output <path>
//	    Location where generated code will be written (default: <union>_variants.go in the package)
//	--package <name>
//	    Name of package to use in output file (default: the union's package)
//	--keep-field-tags <key,...>
//	    Struct tag keys copied from payload fields onto product type fields
//	--check
//	    Fail with a diff instead of writing when generated files are stale
//	--verbose
//	    Log every union and file
//
// Example:
//
//	//go:generate go run github.com/ecordell/variantgen --output=shape_variants.go . Shape
//
// Directives:
//
//	// Shape is a shape.
//	//
//	//variantgen:namespace="shapes",capabilities(Equal, String),implement_markers(isShape)
//	type Shape struct {
//	    Circle *float64
//	    //variantgen:skip
//	    Point *struct{}
//	    //variantgen:capabilities(Clone)
//	    Rect *struct {
//	        Width  float64
//	        Height float64
//	    }
//	}
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/ecordell/variantgen/internal/frontend"
	"github.com/ecordell/variantgen/internal/logging"
	"github.com/ecordell/variantgen/internal/render"
	"github.com/ecordell/variantgen/internal/transform"
	"github.com/ecordell/variantgen/sumtype"
)

// WriterProvider opens the file at path for writing.
type WriterProvider func(path string) (io.WriteCloser, error)

// ErrStale is returned by --check when a generated file is missing or differs
// from what would be generated.
var ErrStale = errors.New("generated files are out of date")

type config struct {
	output        string
	pkgName       string
	keepFieldTags []string
	check         bool
	verbose       bool
}

func main() {
	if err := newRootCmd(fileWriter).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "variantgen: %v\n", err)
		for _, detail := range errors.GetAllDetails(err) {
			fmt.Fprintf(os.Stderr, "detail: %s\n", detail)
		}
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

func fileWriter(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
}

func newRootCmd(writer WriterProvider) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "variantgen [flags] <package-path> <union-name> [<union-name>...]",
		Short: "Generate product types and conversions for tagged unions",
		Long: `Generate one product type per variant of a tagged union, together with
a lift method (product type -> union) and a projection function
(union -> product type).

A tagged union is a struct whose fields are all pointers; the variant of a
value is the field that is set. Variants are configured with //variantgen:
comment directives.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cfg.verbose)
			if err != nil {
				return errors.Wrap(err, "failed to create logger")
			}
			defer func() { _ = logger.Sync() }()
			return run(cfg, args[0], args[1:], logger, writer, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&cfg.output, "output", "o", "", "Location where generated code will be written")
	cmd.Flags().StringVar(&cfg.pkgName, "package", "", "Name of package to use in output file")
	cmd.Flags().StringSliceVar(&cfg.keepFieldTags, "keep-field-tags", nil, "Struct tag keys copied from payload fields onto product type fields")
	cmd.Flags().BoolVar(&cfg.check, "check", false, "Fail with a diff instead of writing when generated files are stale")
	cmd.Flags().BoolVarP(&cfg.verbose, "verbose", "v", false, "Log every union and file")
	return cmd
}

func run(cfg config, pattern string, unionNames []string, logger *zap.SugaredLogger, writer WriterProvider, diffOut io.Writer) error {
	pkg, err := loadPackage(pattern)
	if err != nil {
		return err
	}
	logger.Debugw("loaded package", logging.FieldPackage, pkg.PkgPath, logging.FieldFiles, len(pkg.Syntax))

	filter := make(map[string]struct{}, len(unionNames))
	for _, name := range unionNames {
		filter[name] = struct{}{}
	}

	names := importNames(pkg)
	opts := transform.NewOptions()
	opts.KeepFieldTags = cfg.keepFieldTags

	var outs []*sumtype.Output
	found := make(map[string]struct{}, len(unionNames))
	for _, file := range pkg.Syntax {
		fileName := pkg.Fset.Position(file.Package).Filename
		for _, decl := range frontend.FindUnionDefsAST(file, filter) {
			out, err := generate(file, decl, pkg.PkgPath, names, opts)
			if err != nil {
				return errors.Wrapf(err, "%s", fileName)
			}
			found[decl.Spec.Name.Name] = struct{}{}
			logger.Debugw("generated union",
				logging.FieldFile, fileName,
				logging.FieldUnion, out.Union,
				logging.FieldDecls, len(out.Decls),
			)
			outs = append(outs, out)
		}
	}
	for _, name := range unionNames {
		if _, ok := found[name]; !ok {
			return errors.WithHint(
				errors.Newf("union %s not found in %s", name, pkg.PkgPath),
				"the union must be a type declared at package level",
			)
		}
	}

	pkgName := cfg.pkgName
	if pkgName == "" {
		pkgName = pkg.Name
	}
	files, err := render.Render(render.Options{PackageName: pkgName, PackagePath: pkg.PkgPath, ImportNames: names}, outs...)
	if err != nil {
		return err
	}

	output := cfg.output
	if output == "" {
		output = filepath.Join(pkg.Dir, strings.ToLower(unionNames[0])+"_variants.go")
	}

	stale := 0
	for _, f := range files {
		path := filepath.Join(filepath.Dir(output), f.Dir, filepath.Base(output))
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return errors.Wrapf(err, "failed to render %s", path)
		}

		if cfg.check {
			if diff := diffFile(path, buf.String()); diff != "" {
				stale++
				fmt.Fprintf(diffOut, "--- %s\n%s\n", path, diff)
			}
			continue
		}

		if err := write(writer, path, buf.Bytes()); err != nil {
			return err
		}
		logger.Infow("wrote generated file", logging.FieldOutput, path, logging.FieldPackage, f.PackagePath)
	}
	if stale > 0 {
		return errors.WithHint(
			errors.Wrapf(ErrStale, "%d file(s) differ", stale),
			"run go generate to update them",
		)
	}
	return nil
}

func loadPackage(pattern string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax | packages.NeedImports,
	}, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", pattern)
	}
	if len(pkgs) != 1 {
		return nil, errors.Newf("%s matched %d packages, expected exactly one", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, errors.Wrapf(pkg.Errors[0], "failed to load %s", pattern)
	}
	return pkg, nil
}

// importNames maps the import paths of pkg's direct imports to the names
// their packages declare.
func importNames(pkg *packages.Package) map[string]string {
	names := make(map[string]string, len(pkg.Imports))
	for importPath, imp := range pkg.Imports {
		if imp != nil && imp.Name != "" {
			names[importPath] = imp.Name
		}
	}
	return names
}

func generate(file *ast.File, decl frontend.TypeDecl, pkgPath string, names map[string]string, opts transform.Options) (*sumtype.Output, error) {
	resolver := frontend.NewImportResolver(file, pkgPath, names)
	def, err := frontend.DefinitionFromAST(file, decl, resolver)
	if err != nil {
		return nil, err
	}
	return transform.Generate(def, opts)
}

func write(writer WriterProvider, path string, content []byte) error {
	w, err := writer(path)
	if err != nil {
		return errors.Wrapf(err, "couldn't open %s for writing", path)
	}
	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return w.Close()
}

// diffFile returns a patch turning the file at path into want, or "" when they
// are equal.
func diffFile(path, want string) string {
	got, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err.Error()
	}
	if string(got) == want {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(got), want, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.PatchToText(dmp.PatchMake(string(got), diffs))
}
