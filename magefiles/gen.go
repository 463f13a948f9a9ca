//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Gen mg.Namespace

var exampleArgs = []string{"run", ".", "--output=example/shape_variants.go", "./example", "Shape"}

// Example regenerates the example Shape variants
func (Gen) Example() error {
	fmt.Println("Regenerating example variants...")
	return sh.RunV("go", exampleArgs...)
}

// Verify checks that the generated example is up to date without rewriting it
func (Gen) Verify() error {
	fmt.Println("Verifying generated files are up to date...")
	args := append([]string{}, exampleArgs[:2]...)
	args = append(args, "--check")
	args = append(args, exampleArgs[2:]...)
	if err := sh.RunV("go", args...); err != nil {
		return fmt.Errorf("generated files are out of date, run 'mage gen:example': %w", err)
	}

	fmt.Println("Generated files are up to date!")
	return nil
}
