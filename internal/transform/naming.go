package transform

import (
	"unicode"

	"github.com/ecordell/variantgen/sumtype"
)

// withVisibility cases the first letter of name so the identifier has the
// given visibility.
func withVisibility(vis sumtype.Visibility, name string) string {
	if vis == sumtype.Exported {
		return toTitle(name)
	}
	return unexport(name)
}

func unexport(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// toTitle capitalizes the first letter of a string (replaces deprecated strings.Title)
func toTitle(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
