package transform

import (
	"github.com/ecordell/variantgen/sumtype"
)

// productType builds the product type of an analyzed variant. Attributes are
// ordered: allow-listed variant attributes, the union's capability bundle,
// the variant's capability bundle, then the variant's raw pass-through items.
// Bundles naming the same capability are both kept.
func (st *state) productType(a analyzed) *sumtype.ProductType {
	v := a.variant
	attrs := make([]sumtype.Attribute, 0, len(v.Attributes)+2+len(a.directives.PassThrough))
	for _, attr := range v.Attributes {
		if attr.PassThrough() {
			attrs = append(attrs, attr)
		}
	}
	if st.types.Capabilities != nil {
		attrs = append(attrs, sumtype.Attribute{Kind: sumtype.AttrCapabilities, Values: st.types.Capabilities})
	}
	if a.directives.Capabilities != nil {
		attrs = append(attrs, sumtype.Attribute{Kind: sumtype.AttrCapabilities, Values: a.directives.Capabilities})
	}
	for _, raw := range a.directives.PassThrough {
		attrs = append(attrs, sumtype.Attribute{Kind: sumtype.AttrRaw, Text: raw})
	}

	return &sumtype.ProductType{
		Name:       withVisibility(st.def.Visibility, v.Name),
		Variant:    v.Name,
		Visibility: st.def.Visibility,
		TypeParams: st.def.TypeParams,
		Shape:      a.shape,
		Fields:     a.fields,
		Attributes: attrs,
	}
}
