package transform

import (
	"github.com/ecordell/variantgen/sumtype"
)

// lift builds the total conversion from the product type back into the union
// under the originating variant.
func (st *state) lift(a analyzed, p *sumtype.ProductType) *sumtype.Lift {
	return &sumtype.Lift{
		Name:       withVisibility(st.def.Visibility, st.opts.LiftPrefix+toTitle(st.def.Name)),
		Product:    p.Name,
		Union:      st.def.Name,
		Variant:    a.variant.Name,
		Shape:      a.shape,
		Fields:     a.fields,
		TypeParams: st.def.TypeParams,
	}
}

// projection builds the partial conversion from the union into the product
// type. It fails with the unmodified input on any other variant.
func (st *state) projection(a analyzed, p *sumtype.ProductType) *sumtype.Projection {
	return &sumtype.Projection{
		Name:       p.Name + st.opts.ProjectionInfix + toTitle(st.def.Name),
		Product:    p.Name,
		Union:      st.def.Name,
		Variant:    a.variant.Name,
		Shape:      a.shape,
		Fields:     a.fields,
		TypeParams: st.def.TypeParams,
	}
}
