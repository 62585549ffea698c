package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Sphere is a concrete CollisionShape centred on its local origin.
type Sphere struct {
	Radius float64
}

var _ CollisionShape = Sphere{}

// ComputeAABB returns the world AABB of the sphere under transform.
// Complexity: O(1).
func (s Sphere) ComputeAABB(transform Transform) AABB {
	center := transform.Translation
	r := r3.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return AABB{Min: center.Sub(r), Max: center.Add(r)}
}

// Raycast intersects localRay against the sphere.
// Complexity: O(1).
func (s Sphere) Raycast(localRay Ray) (RaycastInfo, bool) {
	d := localRay.Direction()
	oc := localRay.Point1
	a := d.Dot(d)
	if a == 0 {
		return RaycastInfo{}, false
	}
	b := oc.Dot(d)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - a*c
	if disc < 0 {
		return RaycastInfo{}, false
	}
	sqrtDisc := math.Sqrt(disc)
	t := (-b - sqrtDisc) / a
	if t < 0 || t > localRay.MaxFraction {
		t = (-b + sqrtDisc) / a
		if t < 0 || t > localRay.MaxFraction {
			return RaycastInfo{}, false
		}
	}
	point := oc.Add(d.Mul(t))
	normal := point.Mul(1.0 / s.Radius)
	return RaycastInfo{WorldPoint: point, WorldNormal: normal, HitFraction: t}, true
}

// TestPointInside reports whether localPoint lies within the sphere.
// Complexity: O(1).
func (s Sphere) TestPointInside(localPoint r3.Vector) bool {
	return localPoint.Dot(localPoint) <= s.Radius*s.Radius
}

// Box is a concrete CollisionShape: an axis-aligned box in its own local
// frame, described by half-extents from the local origin.
type Box struct {
	HalfExtents r3.Vector
}

var _ CollisionShape = Box{}

// ComputeAABB returns the world AABB of the (possibly rotated) box under
// transform. Because the box may be rotated, this recomputes a tight
// world-aligned box from all eight corners rather than simply translating
// HalfExtents.
// Complexity: O(1) (fixed 8 corners).
func (b Box) ComputeAABB(transform Transform) AABB {
	he := b.HalfExtents
	corners := [8]r3.Vector{
		{X: -he.X, Y: -he.Y, Z: -he.Z}, {X: he.X, Y: -he.Y, Z: -he.Z},
		{X: -he.X, Y: he.Y, Z: -he.Z}, {X: he.X, Y: he.Y, Z: -he.Z},
		{X: -he.X, Y: -he.Y, Z: he.Z}, {X: he.X, Y: -he.Y, Z: he.Z},
		{X: -he.X, Y: he.Y, Z: he.Z}, {X: he.X, Y: he.Y, Z: he.Z},
	}
	world := transform.TransformPoint(corners[0])
	box := AABB{Min: world, Max: world}
	for _, c := range corners[1:] {
		world = transform.TransformPoint(c)
		box = box.Union(AABB{Min: world, Max: world})
	}
	return box
}

// Raycast intersects localRay against the box via a slab test, reusing
// Ray.IntersectAABB's span logic but also recovering a hit fraction and a
// face normal.
// Complexity: O(1).
func (b Box) Raycast(localRay Ray) (RaycastInfo, bool) {
	box := AABB{Min: r3.Vector{X: -b.HalfExtents.X, Y: -b.HalfExtents.Y, Z: -b.HalfExtents.Z}, Max: b.HalfExtents}
	d := localRay.Direction()
	tmin, tmax := 0.0, localRay.MaxFraction
	normal := r3.Vector{}
	for axis := 0; axis < 3; axis++ {
		origin, dir, lo, hi := axisComponents(localRay.Point1, d, box, axis)
		if dir == 0 {
			if origin < lo || origin > hi {
				return RaycastInfo{}, false
			}
			continue
		}
		inv := 1.0 / dir
		t1, t2 := (lo-origin)*inv, (hi-origin)*inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tmin {
			tmin = t1
			normal = axisNormal(axis, sign)
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastInfo{}, false
		}
	}
	point := localRay.Point1.Add(d.Mul(tmin))
	return RaycastInfo{WorldPoint: point, WorldNormal: normal, HitFraction: tmin}, true
}

// TestPointInside reports whether localPoint lies within the box.
// Complexity: O(1).
func (b Box) TestPointInside(localPoint r3.Vector) bool {
	return math.Abs(localPoint.X) <= b.HalfExtents.X &&
		math.Abs(localPoint.Y) <= b.HalfExtents.Y &&
		math.Abs(localPoint.Z) <= b.HalfExtents.Z
}

func axisNormal(axis int, sign float64) r3.Vector {
	switch axis {
	case 0:
		return r3.Vector{X: sign}
	case 1:
		return r3.Vector{Y: sign}
	default:
		return r3.Vector{Z: sign}
	}
}
