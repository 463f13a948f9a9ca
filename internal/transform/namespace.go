package transform

import (
	"github.com/ecordell/variantgen/sumtype"
)

// wrap nests decls in the requested namespace, which re-exposes the union.
// Without a namespace decls are returned as they are.
func (st *state) wrap(decls []sumtype.Decl) []sumtype.Decl {
	if st.types.Namespace == "" {
		return decls
	}

	var attrs []sumtype.Attribute
	for _, a := range st.def.Attributes {
		if a.Kind == sumtype.AttrDoc || a.Kind == sumtype.AttrLint {
			attrs = append(attrs, a)
		}
	}
	return []sumtype.Decl{&sumtype.Namespace{
		Name: st.types.Namespace,
		Reexport: &sumtype.Reexport{
			Union:      st.def.Name,
			TypeParams: st.def.TypeParams,
			Attributes: attrs,
		},
		Decls: decls,
	}}
}
