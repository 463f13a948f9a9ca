package frontend

import (
	"go/ast"
	"path"
	"regexp"
	"strings"
)

// ImportResolver maps package names to their full import paths
type ImportResolver struct {
	pkgToPath map[string]string
	// localPath is the import path of the package being read. Types declared
	// in it are qualified with it, so they render unqualified in the same
	// package and qualified from a namespace package.
	localPath string
}

// NewImportResolver creates an ImportResolver from a file's imports.
// Aliased imports use their alias. Otherwise the package name comes from
// names, keyed by import path, which the caller fills from the loaded
// package graph; paths missing from it fall back to a guess from the path.
func NewImportResolver(file *ast.File, localPath string, names map[string]string) *ImportResolver {
	resolver := &ImportResolver{pkgToPath: make(map[string]string), localPath: localPath}
	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, `"`)

		var pkgName string
		switch {
		case imp.Name != nil:
			pkgName = imp.Name.Name
		case names[importPath] != "":
			pkgName = names[importPath]
		default:
			pkgName = GuessPackageName(importPath)
		}
		if pkgName == "_" || pkgName == "." {
			continue
		}
		resolver.pkgToPath[pkgName] = importPath
	}
	return resolver
}

var (
	majorVersion  = regexp.MustCompile(`^v[0-9]+$`)
	gopkgVersion  = regexp.MustCompile(`\.v[0-9]+$`)
	notIdentifier = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// GuessPackageName applies the usual conventions to derive a package name
// from its import path: "math/rand/v2" is rand, "gopkg.in/yaml.v3" is yaml
// and "github.com/mattn/go-sqlite3" is sqlite3.
func GuessPackageName(importPath string) string {
	name := path.Base(importPath)
	if majorVersion.MatchString(name) && path.Dir(importPath) != "." {
		name = path.Base(path.Dir(importPath))
	}
	name = gopkgVersion.ReplaceAllString(name, "")
	name = strings.TrimPrefix(name, "go-")
	return notIdentifier.ReplaceAllString(name, "_")
}

// Resolve returns the full import path for a package name, and false when
// the file does not import a package by that name.
func (r *ImportResolver) Resolve(pkgName string) (string, bool) {
	importPath, ok := r.pkgToPath[pkgName]
	return importPath, ok
}

// LocalPath is the import path of the package the resolver reads from.
func (r *ImportResolver) LocalPath() string {
	return r.localPath
}
