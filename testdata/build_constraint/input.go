//go:build !plan9

package build_constraint

type Shape struct {
	Circle *float64
}
