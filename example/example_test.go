package example_test

import (
	"fmt"

	"github.com/ecordell/variantgen/example"
	"github.com/ecordell/variantgen/helpers"
)

// Example lifts product types into a Shape and projects them back out.
func Example() {
	variants := []example.Variant{
		example.Circle{F0: 1},
		example.Rect{Width: 2, Height: 3},
		example.Segment{F0: example.Point{}, F1: example.Point{X: 1, Y: 1}},
		example.Origin{},
	}
	for _, v := range variants {
		fmt.Printf("%s has area %.2f\n", v, example.Area(v.IntoShape()))
	}

	// Projecting the wrong variant fails and hands the union back.
	_, err := example.RectFromShape(example.Circle{F0: 2}.IntoShape())
	fmt.Println(err)
	if original, ok := helpers.Original[example.Shape](err); ok {
		fmt.Printf("still a circle: %v\n", *original.Circle)
	}
	// Output:
	// Circle(1) has area 3.14
	// Rect{Width: 2, Height: 3} has area 6.00
	// Segment({0 0}, {1 1}) has area 0.00
	// Origin has area 0.00
	// union holds another variant: expected Rect
	// still a circle: 2
}
