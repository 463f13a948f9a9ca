package frontend

import (
	"go/ast"
	"go/build/constraint"
	"strings"

	"github.com/ecordell/variantgen/internal/directive"
	"github.com/ecordell/variantgen/sumtype"
)

// classifyComment sorts one raw comment line into an attribute.
func classifyComment(text string) sumtype.Attribute {
	switch {
	case strings.HasPrefix(text, directive.Tag):
		return sumtype.Attribute{Kind: sumtype.AttrDirective, Text: strings.TrimPrefix(text, directive.Tag)}
	case constraint.IsGoBuild(text) || constraint.IsPlusBuild(text):
		return sumtype.Attribute{Kind: sumtype.AttrConditional, Text: text}
	case strings.HasPrefix(text, "//nolint") || strings.HasPrefix(text, "//lint:"):
		return sumtype.Attribute{Kind: sumtype.AttrLint, Text: text}
	case isDirectiveComment(text):
		return sumtype.Attribute{Kind: sumtype.AttrOther, Text: text}
	default:
		return sumtype.Attribute{Kind: sumtype.AttrDoc, Text: text}
	}
}

// isDirectiveComment matches the //word:rest form used by go:generate,
// go:embed and other tool directives.
func isDirectiveComment(text string) bool {
	rest, ok := strings.CutPrefix(text, "//")
	if !ok {
		return false
	}
	word, _, found := strings.Cut(rest, ":")
	if !found || word == "" {
		return false
	}
	for _, r := range word {
		if !('a' <= r && r <= 'z' || '0' <= r && r <= '9') {
			return false
		}
	}
	return true
}

// commentAttributes classifies every line of the given comment groups in
// order. Nil groups are skipped.
func commentAttributes(groups ...*ast.CommentGroup) []sumtype.Attribute {
	var attrs []sumtype.Attribute
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			attrs = append(attrs, classifyComment(c.Text))
		}
	}
	return attrs
}

// buildConstraints returns the file's build constraint lines, which must
// appear before the package clause.
func buildConstraints(file *ast.File) []sumtype.Attribute {
	var attrs []sumtype.Attribute
	for _, g := range file.Comments {
		if g.Pos() >= file.Package {
			break
		}
		for _, c := range g.List {
			if constraint.IsGoBuild(c.Text) || constraint.IsPlusBuild(c.Text) {
				attrs = append(attrs, sumtype.Attribute{Kind: sumtype.AttrConditional, Text: c.Text})
			}
		}
	}
	return attrs
}
