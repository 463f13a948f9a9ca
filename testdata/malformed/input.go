package malformed

//variantgen:namespace=shapes
type Shape struct {
	Circle *float64
}
