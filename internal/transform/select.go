package transform

import (
	"github.com/cockroachdb/errors"

	"github.com/ecordell/variantgen/internal/directive"
	"github.com/ecordell/variantgen/sumtype"
)

// retainedVariant is a variant that survived selection, with its parsed
// directives.
type retainedVariant struct {
	variant    *sumtype.Variant
	directives directive.VariantDirectives
}

// selectVariants drops every variant marked skip. Skipping is silent.
func (st *state) selectVariants() ([]retainedVariant, error) {
	retained := make([]retainedVariant, 0, len(st.def.Variants))
	for i := range st.def.Variants {
		v := &st.def.Variants[i]
		d, err := directive.ParseVariant(sumtype.Directives(v.Attributes))
		if err != nil {
			return nil, errors.Wrapf(err, "variant %s.%s", st.def.Name, v.Name)
		}
		if d.Skip {
			continue
		}
		retained = append(retained, retainedVariant{variant: v, directives: d})
	}
	return retained, nil
}
