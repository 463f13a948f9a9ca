package namespace

// Shape is a closed set of shapes.
//
//variantgen:namespace="shapes"
type Shape struct {
	Circle *Radius
	Square *float64
}

type Radius float64
