// Package example shows the code variantgen generates for a small union.
package example

import (
	"fmt"
	"math"
)

//go:generate go run github.com/ecordell/variantgen --output=shape_variants.go . Shape

// Shape is a closed set of plane shapes.
//
//variantgen:capabilities(Equal, String),implement_markers(isShape)
type Shape struct {
	// Circle is a circle with the given radius.
	Circle *float64
	Rect   *struct {
		Width  float64
		Height float64
	}
	//variantgen:capabilities(Fields)
	Segment *struct {
		F0 Point
		F1 Point
	}
	Origin *struct{}
	//variantgen:skip
	Unknown *struct{}
}

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Variant is implemented by the product type of every generated Shape variant.
type Variant interface {
	fmt.Stringer
	IntoShape() Shape
	isShape()
}

// Area returns the area enclosed by s. Shapes without an area report 0.
func Area(s Shape) float64 {
	if c, err := CircleFromShape(s); err == nil {
		return math.Pi * c.F0 * c.F0
	}
	if r, err := RectFromShape(s); err == nil {
		return r.Width * r.Height
	}
	return 0
}
