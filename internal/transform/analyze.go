package transform

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/fatih/structtag"

	"github.com/ecordell/variantgen/sumtype"
)

// analyzed is a retained variant with its shape classified and its fields
// extracted.
type analyzed struct {
	retainedVariant
	shape  sumtype.Shape
	fields []sumtype.ProductField
}

// classify reads the payload shape off the field list.
func classify(v *sumtype.Variant) (sumtype.Shape, error) {
	if len(v.Fields) == 0 {
		return sumtype.ShapeEmpty, nil
	}
	named := 0
	for _, f := range v.Fields {
		if f.Name != "" {
			named++
		}
	}
	switch named {
	case 0:
		return sumtype.ShapePositional, nil
	case len(v.Fields):
		return sumtype.ShapeNamed, nil
	default:
		return 0, errors.Mark(errors.Newf("variant %s mixes named and positional fields", v.Name), ErrNotTaggedUnion)
	}
}

// PositionalName is the name of the i-th element of a positional payload.
func PositionalName(i int) string {
	return fmt.Sprintf("F%d", i)
}

func (st *state) analyze(rv retainedVariant) (analyzed, error) {
	shape, err := classify(rv.variant)
	if err != nil {
		return analyzed{}, errors.Wrapf(err, "union %s", st.def.Name)
	}

	a := analyzed{retainedVariant: rv, shape: shape}
	seen := make(map[string]string, len(rv.variant.Fields))
	for i, f := range rv.variant.Fields {
		source := f.Name
		if shape == sumtype.ShapePositional {
			source = PositionalName(i)
		}
		name := withVisibility(st.def.Visibility, source)
		if prev, ok := seen[name]; ok {
			return analyzed{}, errors.WithHint(
				errors.Mark(errors.Newf("fields %s and %s of variant %s.%s both become %s", prev, source, st.def.Name, rv.variant.Name, name), ErrNameCollision),
				"rename one of the fields; product type fields take the visibility of the union",
			)
		}
		seen[name] = source

		attrs, err := st.fieldAttributes(f)
		if err != nil {
			return analyzed{}, errors.Wrapf(err, "field %s of variant %s.%s", source, st.def.Name, rv.variant.Name)
		}
		a.fields = append(a.fields, sumtype.ProductField{
			Name:       name,
			Source:     source,
			Type:       f.Type,
			Attributes: attrs,
		})
	}
	return a, nil
}

// fieldAttributes keeps the allow-listed attributes of a payload field, plus
// the struct tag keys requested through Options.KeepFieldTags.
func (st *state) fieldAttributes(f sumtype.Field) ([]sumtype.Attribute, error) {
	var attrs []sumtype.Attribute
	for _, a := range f.Attributes {
		switch {
		case a.PassThrough():
			attrs = append(attrs, a)
		case a.Kind == sumtype.AttrTag && len(st.opts.KeepFieldTags) > 0:
			kept, err := keepTags(a.Text, st.opts.KeepFieldTags)
			if err != nil {
				return nil, err
			}
			if kept != "" {
				attrs = append(attrs, sumtype.Attribute{Kind: sumtype.AttrTag, Text: kept})
			}
		}
	}
	return attrs, nil
}

// keepTags filters a raw struct tag down to the given keys, preserving the
// tag's own key order.
func keepTags(raw string, keys []string) (string, error) {
	tags, err := structtag.Parse(raw)
	if err != nil {
		return "", errors.Wrapf(err, "invalid struct tag `%s`", raw)
	}
	kept := &structtag.Tags{}
	for _, tag := range tags.Tags() {
		if !slices.Contains(keys, tag.Key) {
			continue
		}
		if err := kept.Set(tag); err != nil {
			return "", err
		}
	}
	if kept.Len() == 0 {
		return "", nil
	}
	return kept.String(), nil
}
