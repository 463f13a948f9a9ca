// Package directive parses the //variantgen: comment directives attached to a
// tagged union and to its variants.
//
// Type level:
//
//	//variantgen:namespace="shapes",capabilities(Equal, String),implement_markers(isShape)
//
// Variant level:
//
//	//variantgen:skip
//	//variantgen:capabilities(Clone)
//
// A block may be split over several //variantgen: lines; the lines are joined
// with commas. Each directive may appear at most once per block.
package directive

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Tag is the reserved comment prefix that introduces a directive line.
const Tag = "//variantgen:"

const (
	keyNamespace    = "namespace"
	keyCapabilities = "capabilities"
	keyMarkers      = "implement_markers"
	keySkip         = "skip"
)

const (
	typeGrammar    = `expected //variantgen:namespace="name",capabilities(A, B),implement_markers(M1, M2) with every part optional`
	variantGrammar = `expected //variantgen:skip or //variantgen:capabilities(A, B); namespace and implement_markers are only valid on the union`
)

// ErrMalformedDirective marks every error caused by a directive that does not
// follow the grammar.
var ErrMalformedDirective = errors.New("malformed variantgen directive")

// TypeDirectives are the directives found on a tagged union.
type TypeDirectives struct {
	// Namespace is empty when no namespace was requested.
	Namespace string
	// Capabilities is nil when absent. An empty, non-nil slice means the
	// bundle was given with no entries.
	Capabilities []string
	Markers      []string
}

// VariantDirectives are the directives found on one variant.
type VariantDirectives struct {
	Skip bool
	// Capabilities is nil when absent.
	Capabilities []string
	// PassThrough holds every other item verbatim, in order.
	PassThrough []string
}

func malformed(err error, hint string) error {
	return errors.WithHint(errors.Mark(err, ErrMalformedDirective), hint)
}

// join concatenates directive lines into one block.
func join(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, ",")
}

// ParseType parses the directive lines of a tagged union. The lines are the
// text following Tag. No lines yields the zero TypeDirectives.
func ParseType(lines []string) (TypeDirectives, error) {
	var d TypeDirectives
	block := join(lines)
	if block == "" {
		return d, nil
	}

	items, err := parseItems(block)
	if err != nil {
		return TypeDirectives{}, malformed(err, typeGrammar)
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.key] {
			return TypeDirectives{}, malformed(errors.Newf("%q may only be given once", it.key), typeGrammar)
		}
		seen[it.key] = true

		switch it.key {
		case keyNamespace:
			name, err := namespaceValue(it)
			if err != nil {
				return TypeDirectives{}, malformed(err, typeGrammar)
			}
			d.Namespace = name

		case keyCapabilities:
			names, err := identList(it)
			if err != nil {
				return TypeDirectives{}, malformed(err, typeGrammar)
			}
			d.Capabilities = names

		case keyMarkers:
			names, err := identList(it)
			if err != nil {
				return TypeDirectives{}, malformed(err, typeGrammar)
			}
			d.Markers = names

		default:
			return TypeDirectives{}, malformed(errors.Newf("unsupported directive %q", it.text), typeGrammar)
		}
	}
	return d, nil
}

// ParseVariant parses the directive lines of one variant.
func ParseVariant(lines []string) (VariantDirectives, error) {
	var d VariantDirectives
	block := join(lines)
	if block == "" {
		return d, nil
	}

	items, err := parseItems(block)
	if err != nil {
		return VariantDirectives{}, malformed(err, variantGrammar)
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		switch it.key {
		case keySkip:
			if it.hasArgs || it.hasValue {
				return VariantDirectives{}, malformed(errors.Newf("%q takes no arguments", it.text), variantGrammar)
			}
			d.Skip = true

		case keyCapabilities:
			if seen[it.key] {
				return VariantDirectives{}, malformed(errors.Newf("%q may only be given once", it.key), variantGrammar)
			}
			names, err := identList(it)
			if err != nil {
				return VariantDirectives{}, malformed(err, variantGrammar)
			}
			d.Capabilities = names

		case keyNamespace, keyMarkers:
			return VariantDirectives{}, malformed(errors.Newf("%q is not allowed on a variant", it.key), variantGrammar)

		default:
			d.PassThrough = append(d.PassThrough, it.text)
		}
		seen[it.key] = true
	}
	return d, nil
}

func namespaceValue(it item) (string, error) {
	if !it.hasValue || it.hasArgs {
		return "", errors.Newf("%q must be of the form %s=\"name\"", it.text, keyNamespace)
	}
	if it.valueTok != token.STRING {
		return "", errors.Newf("value of %s must be a string literal, got %s", keyNamespace, it.value)
	}
	name, err := strconv.Unquote(it.value)
	if err != nil {
		return "", errors.Wrapf(err, "value of %s", keyNamespace)
	}
	if !token.IsIdentifier(name) {
		return "", errors.Newf("namespace %q is not a valid package name", name)
	}
	return name, nil
}

func identList(it item) ([]string, error) {
	if !it.hasArgs || it.hasValue {
		return nil, errors.Newf("%q must be of the form %s(A, B)", it.text, it.key)
	}
	names := make([]string, 0, len(it.args))
	for _, a := range it.args {
		if !a.ident {
			return nil, errors.Newf("%s entry %q is not a bare name", it.key, a.text)
		}
		names = append(names, a.text)
	}
	return names, nil
}
