package skip

type Shape struct {
	Circle *float64
	//variantgen:skip
	Square *float64
}
