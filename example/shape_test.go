package example

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecordell/variantgen/helpers"
)

var (
	_ Variant = Circle{}
	_ Variant = Rect{}
	_ Variant = Segment{}
	_ Variant = Origin{}
)

func TestRoundTrip(t *testing.T) {
	circle, err := CircleFromShape(Circle{F0: 2.5}.IntoShape())
	require.NoError(t, err)
	assert.Equal(t, Circle{F0: 2.5}, circle)

	rect, err := RectFromShape(Rect{Width: 2, Height: 4}.IntoShape())
	require.NoError(t, err)
	assert.Equal(t, Rect{Width: 2, Height: 4}, rect)

	seg := Segment{F0: Point{X: 1}, F1: Point{Y: 2}}
	got, err := SegmentFromShape(seg.IntoShape())
	require.NoError(t, err)
	assert.True(t, seg.Equal(got))

	origin, err := OriginFromShape(Origin{}.IntoShape())
	require.NoError(t, err)
	assert.Equal(t, Origin{}, origin)
}

func TestLiftSetsOnlyOneVariant(t *testing.T) {
	s := Rect{Width: 1, Height: 1}.IntoShape()
	require.NotNil(t, s.Rect)
	assert.Nil(t, s.Circle)
	assert.Nil(t, s.Segment)
	assert.Nil(t, s.Origin)
	assert.Nil(t, s.Unknown)

	assert.NotNil(t, Origin{}.IntoShape().Origin)
}

func TestProjectionMismatch(t *testing.T) {
	radius := 3.0
	in := Shape{Circle: &radius}

	_, err := SegmentFromShape(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, helpers.ErrVariantMismatch))
	assert.EqualError(t, err, "union holds another variant: expected Segment")

	original, ok := helpers.Original[Shape](err)
	require.True(t, ok)
	assert.Same(t, &radius, original.Circle)

	_, err = CircleFromShape(Shape{})
	assert.ErrorIs(t, err, helpers.ErrVariantMismatch)
}

func TestCapabilities(t *testing.T) {
	assert.True(t, Rect{Width: 1, Height: 2}.Equal(Rect{Width: 1, Height: 2}))
	assert.False(t, Rect{Width: 1, Height: 2}.Equal(Rect{Width: 2, Height: 1}))
	assert.True(t, Origin{}.Equal(Origin{}))

	assert.Equal(t, "Circle(1.5)", Circle{F0: 1.5}.String())
	assert.Equal(t, "Origin", Origin{}.String())

	seg := Segment{F0: Point{X: 1}, F1: Point{Y: 2}}
	assert.Equal(t, []any{Point{X: 1}, Point{Y: 2}}, seg.Fields())
}

func TestArea(t *testing.T) {
	assert.InDelta(t, 12.566, Area(Circle{F0: 2}.IntoShape()), 0.001)
	assert.Equal(t, 6.0, Area(Rect{Width: 2, Height: 3}.IntoShape()))
	assert.Zero(t, Area(Origin{}.IntoShape()))
	assert.Zero(t, Area(Shape{Unknown: &struct{}{}}))
}
