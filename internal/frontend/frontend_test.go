package frontend

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecordell/variantgen/sumtype"
)

const localPath = "example.com/shapes"

func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "input.go", src, parser.ParseComments)
	require.NoError(t, err)
	return file
}

func definition(t *testing.T, src, name string) *sumtype.Definition {
	t.Helper()
	file := parse(t, src)
	decls := FindUnionDefsAST(file, map[string]struct{}{name: {}})
	require.Len(t, decls, 1)
	def, err := DefinitionFromAST(file, decls[0], NewImportResolver(file, localPath, nil))
	require.NoError(t, err)
	return def
}

func render(c jen.Code) string {
	return fmt.Sprintf("%#v", c)
}

func TestDefinitionFromAST(t *testing.T) {
	src := `//go:build linux

package shapes

import "time"

// Shape is a closed set of shapes.
//
//variantgen:capabilities(Equal)
//nolint:unused
type Shape struct {
	// Circle is round.
	Circle *float64
	Point  *struct{} //variantgen:skip
	Rect   *struct {
		Width  float64 ` + "`json:\"width\"`" + `
		Height float64 // tall
	}
	Pair *struct {
		F0 string
		F1 time.Duration
	}
	Named *Point
}

type Point struct{ X, Y int }
`
	def := definition(t, src, "Shape")
	require.Equal(t, sumtype.KindUnion, def.Kind)
	assert.Equal(t, "Shape", def.Name)
	assert.Equal(t, sumtype.Exported, def.Visibility)
	assert.Empty(t, def.Reason)

	assert.Equal(t, []sumtype.Attribute{
		{Kind: sumtype.AttrConditional, Text: "//go:build linux"},
		{Kind: sumtype.AttrDoc, Text: "// Shape is a closed set of shapes."},
		{Kind: sumtype.AttrDoc, Text: "//"},
		{Kind: sumtype.AttrDirective, Text: "capabilities(Equal)"},
		{Kind: sumtype.AttrLint, Text: "//nolint:unused"},
	}, def.Attributes)

	require.Len(t, def.Variants, 5)

	circle := def.Variants[0]
	assert.Equal(t, "Circle", circle.Name)
	assert.Equal(t, []sumtype.Attribute{{Kind: sumtype.AttrDoc, Text: "// Circle is round."}}, circle.Attributes)
	require.Len(t, circle.Fields, 1)
	assert.Empty(t, circle.Fields[0].Name)
	assert.Equal(t, "float64", render(circle.Fields[0].Type))

	point := def.Variants[1]
	assert.Empty(t, point.Fields)
	assert.Equal(t, []string{"skip"}, sumtype.Directives(point.Attributes))

	rect := def.Variants[2]
	require.Len(t, rect.Fields, 2)
	assert.Equal(t, "Width", rect.Fields[0].Name)
	assert.Equal(t, []sumtype.Attribute{{Kind: sumtype.AttrTag, Text: `json:"width"`}}, rect.Fields[0].Attributes)
	assert.Equal(t, "Height", rect.Fields[1].Name)
	assert.Equal(t, []sumtype.Attribute{{Kind: sumtype.AttrDoc, Text: "// tall"}}, rect.Fields[1].Attributes)

	pair := def.Variants[3]
	require.Len(t, pair.Fields, 2)
	assert.Empty(t, pair.Fields[0].Name)
	assert.Empty(t, pair.Fields[1].Name)
	assert.Equal(t, "time.Duration", render(pair.Fields[1].Type))

	named := def.Variants[4]
	require.Len(t, named.Fields, 1)
	assert.Equal(t, "shapes.Point", render(named.Fields[0].Type))
}

func TestDefinitionFromASTGenerics(t *testing.T) {
	src := `package result

type Result[T any, E interface{ error }] struct {
	Ok  *T
	Err *E
	Both *struct {
		F0 T
		F1 []E
	}
}
`
	def := definition(t, src, "Result")
	require.Equal(t, sumtype.KindUnion, def.Kind)
	require.Len(t, def.TypeParams, 2)
	assert.Equal(t, "T", def.TypeParams[0].Name)
	assert.Equal(t, "any", render(def.TypeParams[0].Constraint))
	assert.Equal(t, "E", def.TypeParams[1].Name)

	require.Len(t, def.Variants, 3)
	assert.Equal(t, "T", render(def.Variants[0].Fields[0].Type))
	assert.Equal(t, "[]E", render(def.Variants[2].Fields[1].Type))
}

func TestDefinitionFromASTUnexported(t *testing.T) {
	src := `package p

type token struct {
	word *string
	eof  *struct{}
}
`
	def := definition(t, src, "token")
	assert.Equal(t, sumtype.Unexported, def.Visibility)
	assert.Equal(t, "word", def.Variants[0].Name)
	assert.Equal(t, "eof", def.Variants[1].Name)
}

func TestDefinitionFromASTNotUnion(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		reason string
	}{
		{
			name:   "not a struct",
			src:    "package p\n\ntype U int\n",
			reason: "U is not a struct type",
		},
		{
			name:   "alias",
			src:    "package p\n\ntype U = struct{ A *int }\n",
			reason: "U is a type alias",
		},
		{
			name:   "non pointer variant",
			src:    "package p\n\ntype U struct{ A int }\n",
			reason: "variant U.A is not a pointer",
		},
		{
			name:   "embedded variant",
			src:    "package p\n\ntype U struct{ *Other }\n\ntype Other struct{}\n",
			reason: "U embeds a field; every variant must be named",
		},
		{
			name:   "embedded payload field",
			src:    "package p\n\ntype U struct{ A *struct{ Other } }\n\ntype Other struct{}\n",
			reason: "variant U.A embeds a field in its payload",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := definition(t, tt.src, "U")
			assert.Equal(t, sumtype.KindOther, def.Kind)
			assert.Equal(t, tt.reason, def.Reason)
			assert.Empty(t, def.Variants)
		})
	}
}

func TestImportResolver(t *testing.T) {
	file := parse(t, `package p

import (
	"database/sql"
	"math/rand/v2"
	_ "embed"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
	"example.com/lib/go-things"
	"example.com/lib/oddname"
	store "example.com/lib/storage"
)
`)
	r := NewImportResolver(file, localPath, map[string]string{"example.com/lib/oddname": "renamed"})

	tests := []struct {
		name string
		path string
	}{
		{"sql", "database/sql"},
		{"rand", "math/rand/v2"},
		{"chi", "github.com/go-chi/chi/v5"},
		{"yaml", "gopkg.in/yaml.v3"},
		{"things", "example.com/lib/go-things"},
		{"renamed", "example.com/lib/oddname"},
		{"store", "example.com/lib/storage"},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(tt.name)
		assert.True(t, ok, tt.name)
		assert.Equal(t, tt.path, got, tt.name)
	}

	for _, missing := range []string{"v2", "yaml.v3", "oddname", "storage", "_", "embed"} {
		_, ok := r.Resolve(missing)
		assert.False(t, ok, missing)
	}
}

func TestGuessPackageName(t *testing.T) {
	tests := map[string]string{
		"time":                        "time",
		"math/rand/v2":                "rand",
		"github.com/go-chi/chi/v5":    "chi",
		"gopkg.in/yaml.v3":            "yaml",
		"github.com/mattn/go-sqlite3": "sqlite3",
		"example.com/x/v2":            "x",
		"v2":                          "v2",
	}
	for importPath, want := range tests {
		assert.Equal(t, want, GuessPackageName(importPath), importPath)
	}
}

func TestDefinitionFromASTVersionedImport(t *testing.T) {
	src := `package shapes

import "math/rand/v2"

type Source struct {
	Seeded *rand.PCG
}
`
	def := definition(t, src, "Source")
	require.Len(t, def.Variants, 1)
	f := jen.NewFilePath(localPath)
	f.Var().Id("x").Add(def.Variants[0].Fields[0].Type)
	assert.Contains(t, fmt.Sprintf("%#v", f), `"math/rand/v2"`)
}

func TestDefinitionFromASTUnknownPackage(t *testing.T) {
	file := parse(t, `package shapes

import . "time"

type Event struct {
	At *time.Time
}
`)
	decls := FindUnionDefsAST(file, map[string]struct{}{"Event": {}})
	require.Len(t, decls, 1)
	_, err := DefinitionFromAST(file, decls[0], NewImportResolver(file, localPath, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time.Time refers to a package the file does not import")
}

func TestFindUnionDefsAST(t *testing.T) {
	src := `package p

// A doc.
type A struct{ X *int }

type (
	// B doc.
	B struct{ Y *int }
	C struct{ Z *int }
)
`
	file := parse(t, src)
	decls := FindUnionDefsAST(file, map[string]struct{}{"A": {}, "B": {}})
	require.Len(t, decls, 2)
	assert.Equal(t, "A", decls[0].Spec.Name.Name)
	require.NotNil(t, decls[0].Doc)
	assert.Equal(t, "// A doc.", decls[0].Doc.List[0].Text)
	assert.Equal(t, "B", decls[1].Spec.Name.Name)
	require.NotNil(t, decls[1].Doc)
	assert.Equal(t, "// B doc.", decls[1].Doc.List[0].Text)

	assert.Empty(t, FindUnionDefsAST(file, map[string]struct{}{"Missing": {}}))
}

func TestClassifyComment(t *testing.T) {
	tests := []struct {
		text string
		kind sumtype.AttrKind
		want string
	}{
		{"// plain doc", sumtype.AttrDoc, "// plain doc"},
		{"/* block */", sumtype.AttrDoc, "/* block */"},
		{"//variantgen:skip", sumtype.AttrDirective, "skip"},
		{"//go:build !windows", sumtype.AttrConditional, "//go:build !windows"},
		{"// +build linux", sumtype.AttrConditional, "// +build linux"},
		{"//nolint:revive", sumtype.AttrLint, "//nolint:revive"},
		{"//lint:ignore U1000 unused", sumtype.AttrLint, "//lint:ignore U1000 unused"},
		{"//go:generate variantgen . Shape", sumtype.AttrOther, "//go:generate variantgen . Shape"},
		{"// Note: not a directive", sumtype.AttrDoc, "// Note: not a directive"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := classifyComment(tt.text)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.want, got.Text)
		})
	}
}
