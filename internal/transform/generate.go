// Package transform turns the definition of a tagged union into the
// declarations variantgen generates for it: a product type, a lift and a
// projection per retained variant, marker stubs, and an optional namespace.
//
// Generate is a pure function of its input. It keeps no state between calls
// and may be called concurrently for unrelated definitions.
package transform

import (
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"

	"github.com/ecordell/variantgen/internal/directive"
	"github.com/ecordell/variantgen/sumtype"
)

// ErrNotTaggedUnion is returned when the definition handed to Generate is not
// a tagged union.
var ErrNotTaggedUnion = errors.New("definition is not a tagged union")

// ErrNameCollision is returned when two payload fields of a variant get the
// same name once cased to the union's visibility.
var ErrNameCollision = errors.New("generated field names collide")

// Options tune generation. The zero value, after defaults are applied,
// reproduces the plain behavior: field tags are dropped.
type Options struct {
	// KeepFieldTags lists struct tag keys copied from payload fields onto the
	// generated product type fields.
	KeepFieldTags []string `default:"[]"`
	// LiftPrefix prefixes the union's name to form the lift method name.
	LiftPrefix string `default:"Into"`
	// ProjectionInfix joins the product and union names to form the
	// projection function name.
	ProjectionInfix string `default:"From"`
}

// NewOptions returns Options with defaults applied.
func NewOptions() Options {
	var opts Options
	defaults.MustSet(&opts)
	return opts
}

// state is what one Generate call threads through its stages.
type state struct {
	def   *sumtype.Definition
	opts  Options
	types directive.TypeDirectives
}

// Generate runs every stage over def. On error nothing is returned: a
// malformed definition never yields partial output.
func Generate(def *sumtype.Definition, opts Options) (*sumtype.Output, error) {
	if def == nil || def.Kind != sumtype.KindUnion {
		name, reason := "<nil>", ""
		if def != nil {
			name, reason = def.Name, def.Reason
		}
		err := errors.Mark(errors.Newf("%s cannot be used to generate variant types", name), ErrNotTaggedUnion)
		if reason != "" {
			err = errors.WithDetail(err, reason)
		}
		return nil, errors.WithHint(err, "variantgen only accepts structs whose fields are all pointer-typed variants")
	}
	if err := defaults.Set(&opts); err != nil {
		return nil, errors.Wrap(err, "failed to apply option defaults")
	}

	types, err := directive.ParseType(sumtype.Directives(def.Attributes))
	if err != nil {
		return nil, errors.Wrapf(err, "union %s", def.Name)
	}
	st := &state{def: def, opts: opts, types: types}

	retained, err := st.selectVariants()
	if err != nil {
		return nil, err
	}

	decls := make([]sumtype.Decl, 0, len(retained)*(3+len(types.Markers)))
	for _, rv := range retained {
		a, err := st.analyze(rv)
		if err != nil {
			return nil, err
		}
		product := st.productType(a)
		decls = append(decls, product, st.lift(a, product), st.projection(a, product))
		decls = append(decls, st.markers(product)...)
	}

	return &sumtype.Output{
		Union:      def.Name,
		TypeParams: def.TypeParams,
		Conditions: conditions(def.Attributes),
		Decls:      st.wrap(decls),
	}, nil
}

func conditions(attrs []sumtype.Attribute) []sumtype.Attribute {
	var out []sumtype.Attribute
	for _, a := range attrs {
		if a.Kind == sumtype.AttrConditional {
			out = append(out, a)
		}
	}
	return out
}
