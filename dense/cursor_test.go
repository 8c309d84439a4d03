// SPDX-License-Identifier: MIT
package dense_test

import (
	"testing"

	"github.com/katalvlaran/fieldkit/dense"
	"github.com/katalvlaran/fieldkit/dim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCursor_ForwardBackwardFind walks a vector both ways, then finds an
// element and mutates it through the cursor.
func TestCursor_ForwardBackwardFind(t *testing.T) {
	v := MustVector[float64, dim.D5](t, 0, 1, 2, 3, 4)

	var fwd []int
	for c := v.Begin(); c.Valid(); c.Next() {
		require.Equal(t, float64(c.Index()), c.Value())
		fwd = append(fwd, c.Index())
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, fwd)

	var rev []int
	for c := v.RBegin(); c.Valid(); c.Prev() {
		rev = append(rev, c.Index())
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, rev)

	c := v.Find(3)
	require.True(t, c.Valid())
	c.Set(30)
	*c.Ref() += 1
	x, err := v.At(3)
	require.NoError(t, err)
	assert.Equal(t, 31.0, x)

	end := v.Find(5)
	assert.False(t, end.Valid())
	assert.Equal(t, 5, end.Index())
	assert.False(t, v.Find(-1).Valid())
}

func TestCursor_InvalidPanics(t *testing.T) {
	v := dense.NewVector[float64, dim.D2]()
	c := v.Find(7)
	assert.Panics(t, func() { _ = c.Value() })
	assert.Panics(t, func() { c.Set(1) })
}

func TestCursor_OnMatrixRowWritesThrough(t *testing.T) {
	m := dense.NewMatrix[float64, dim.D2, dim.D3]()
	row, err := m.Row(1)
	require.NoError(t, err)
	for c := row.Begin(); c.Valid(); c.Next() {
		c.Set(float64(10 + c.Index()))
	}
	assert.Equal(t, 12.0, MustAt(t, m, 1, 2))
	assert.Equal(t, 0.0, MustAt(t, m, 0, 2))
}
