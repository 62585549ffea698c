package geom

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"
)

func unitCube(center r3.Vector) AABB {
	h := r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}
	return AABB{Min: center.Sub(h), Max: center.Add(h)}
}

func TestAABB_Validate(t *testing.T) {
	ok := AABB{Min: r3.Vector{X: -1}, Max: r3.Vector{X: 1}}
	require.NoError(t, ok.Validate())

	bad := AABB{Min: r3.Vector{X: 1}, Max: r3.Vector{X: -1}}
	require.ErrorIs(t, bad.Validate(), ErrDegenerateAABB)
}

func TestAABB_Overlaps(t *testing.T) {
	a := unitCube(r3.Vector{})
	b := unitCube(r3.Vector{X: 0.9})
	c := unitCube(r3.Vector{X: 5})

	require.True(t, a.Overlaps(b))
	require.True(t, b.Overlaps(a))
	require.False(t, a.Overlaps(c))
}

func TestAABB_UnionContains(t *testing.T) {
	a := unitCube(r3.Vector{})
	b := unitCube(r3.Vector{X: 5})
	u := a.Union(b)

	require.True(t, u.Contains(a))
	require.True(t, u.Contains(b))
	require.False(t, a.Contains(u))
}

func TestAABB_SurfaceArea(t *testing.T) {
	box := AABB{Min: r3.Vector{}, Max: r3.Vector{X: 2, Y: 3, Z: 4}}
	// 2*(2*3 + 3*4 + 4*2) = 2*(6+12+8) = 52
	require.InDelta(t, 52.0, box.SurfaceArea(), 1e-9)
}

func TestAABB_ExpandAndDirectional(t *testing.T) {
	box := unitCube(r3.Vector{})
	fat := box.Expand(0.08)
	require.True(t, fat.Contains(box))
	require.InDelta(t, -0.58, fat.Min.X, 1e-9)
	require.InDelta(t, 0.58, fat.Max.X, 1e-9)

	moving := box.ExpandDirectional(0.08, r3.Vector{X: 1})
	require.Greater(t, moving.Max.X, fat.Max.X)
	require.InDelta(t, fat.Min.X, moving.Min.X, 1e-9)
}

func TestAABB_LongestAxis(t *testing.T) {
	box := AABB{Min: r3.Vector{}, Max: r3.Vector{X: 1, Y: 5, Z: 2}}
	require.Equal(t, 1, box.LongestAxis())
}

func TestAABB_ContainsPoint(t *testing.T) {
	box := unitCube(r3.Vector{})
	require.True(t, box.ContainsPoint(r3.Vector{X: 0.4}))
	require.False(t, box.ContainsPoint(r3.Vector{X: 0.6}))
}
