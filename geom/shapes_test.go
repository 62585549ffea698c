package geom

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"
)

func TestSphere_ComputeAABB(t *testing.T) {
	s := Sphere{Radius: 2}
	tr := Identity()
	tr.Translation = r3.Vector{X: 1, Y: 2, Z: 3}

	box := s.ComputeAABB(tr)
	require.InDelta(t, -1, box.Min.X, 1e-9)
	require.InDelta(t, 3, box.Max.X, 1e-9)
}

func TestSphere_RaycastAndPointInside(t *testing.T) {
	s := Sphere{Radius: 1}
	ray := Ray{Point1: r3.Vector{X: -5}, Point2: r3.Vector{X: 5}, MaxFraction: 1}

	info, hit := s.Raycast(ray)
	require.True(t, hit)
	require.InDelta(t, -1, info.WorldPoint.X, 1e-6)

	require.True(t, s.TestPointInside(r3.Vector{X: 0.5}))
	require.False(t, s.TestPointInside(r3.Vector{X: 1.5}))
}

func TestBox_ComputeAABB(t *testing.T) {
	b := Box{HalfExtents: r3.Vector{X: 1, Y: 1, Z: 1}}
	box := b.ComputeAABB(Identity())
	require.InDelta(t, -1, box.Min.X, 1e-9)
	require.InDelta(t, 1, box.Max.X, 1e-9)
}

func TestBox_RaycastAndPointInside(t *testing.T) {
	b := Box{HalfExtents: r3.Vector{X: 1, Y: 1, Z: 1}}
	ray := Ray{Point1: r3.Vector{X: -5}, Point2: r3.Vector{X: 5}, MaxFraction: 1}

	info, hit := b.Raycast(ray)
	require.True(t, hit)
	require.InDelta(t, -1, info.WorldPoint.X, 1e-6)
	require.InDelta(t, -1, info.WorldNormal.X, 1e-6)

	require.True(t, b.TestPointInside(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}))
	require.False(t, b.TestPointInside(r3.Vector{X: 1.5}))
}
