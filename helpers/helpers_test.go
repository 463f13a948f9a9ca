package helpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type union struct {
	A *int
	B *struct{ X, Y string }
}

func TestMismatchError(t *testing.T) {
	b := union{B: &struct{ X, Y string }{X: "x", Y: "y"}}
	var err error = &MismatchError[union]{Variant: "A", Value: b}

	assert.ErrorIs(t, err, ErrVariantMismatch)
	assert.Equal(t, "union holds another variant: expected A", err.Error())

	wrapped := fmt.Errorf("projecting: %w", err)
	assert.ErrorIs(t, wrapped, ErrVariantMismatch)

	got, ok := Original[union](wrapped)
	require.True(t, ok)
	assert.Equal(t, b, got)
	assert.Same(t, b.B, got.B)
}

func TestOriginalOtherError(t *testing.T) {
	_, ok := Original[union](errors.New("boom"))
	assert.False(t, ok)

	_, ok = Original[union](nil)
	assert.False(t, ok)

	// a mismatch for another union type does not match
	_, ok = Original[union](&MismatchError[int]{Variant: "A", Value: 1})
	assert.False(t, ok)
}

func TestAlloc(t *testing.T) {
	var u union
	p := Alloc(&u.B)
	p.X = "x"
	require.NotNil(t, u.B)
	assert.Equal(t, "x", u.B.X)
	assert.Nil(t, u.A)
}

func TestPtr(t *testing.T) {
	v := 3
	p := Ptr(v)
	*p = 4
	assert.Equal(t, 3, v)
	assert.Equal(t, 4, *p)
}
