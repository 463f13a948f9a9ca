package capabilities

//variantgen:capabilities(Equal, String)
type Shape struct {
	//variantgen:capabilities(Clone)
	Circle *float64
	Rect   *struct {
		Width  float64
		Height float64
	}
	//variantgen:capabilities(Equal, Fields),deprecated
	Unit *struct{}
}
