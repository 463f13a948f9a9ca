package basic

// Shape is a closed set of shapes.
type Shape struct {
	// Circle is round.
	Circle *float64
	Rect   *struct {
		Width  float64
		Height float64
	}
	Segment *struct {
		F0 Point
		F1 Point
	}
	Origin *struct{}
}

type Point struct{ X, Y int }
