package not_union

type Config struct {
	Name string
	Port *int
}
