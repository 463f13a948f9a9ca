package generics

// Container is a generic container type
type Container[T any] struct {
	Value T
}

// Result holds either a value or an error.
//
//variantgen:implement_markers(isResult)
type Result[T any, E error] struct {
	Ok     *T
	Err    *E
	Nested *struct {
		Values    []Container[T]
		ByName    map[string]Container[T]
		Fallbacks *Container[E]
	}
}
