package transform

import (
	"github.com/ecordell/variantgen/sumtype"
)

// markers binds every marker of the union to one product type.
func (st *state) markers(p *sumtype.ProductType) []sumtype.Decl {
	stubs := make([]sumtype.Decl, 0, len(st.types.Markers))
	for _, m := range st.types.Markers {
		stubs = append(stubs, &sumtype.MarkerStub{
			Marker:     m,
			Product:    p.Name,
			TypeParams: st.def.TypeParams,
		})
	}
	return stubs
}
