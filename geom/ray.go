package geom

import "github.com/golang/geo/r3"

// Direction returns Point2 - Point1, the (generally non-unit) vector the ray
// travels over its full MaxFraction=1 extent.
// Complexity: O(1).
func (r Ray) Direction() r3.Vector {
	return r.Point2.Sub(r.Point1)
}

// IntersectAABB performs a slab test of r against box, restricted to
// fraction range [0, r.MaxFraction]. It reports whether the segment
// intersects box at all within that range; it does not compute an exact
// surface point (the tree only needs this for traversal pruning, §4.1).
// Complexity: O(1).
func (r Ray) IntersectAABB(box AABB) bool {
	d := r.Direction()
	tmin, tmax := 0.0, r.MaxFraction

	for axis := 0; axis < 3; axis++ {
		origin, dir, lo, hi := axisComponents(r.Point1, d, box, axis)
		if dir == 0 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}
		inv := 1.0 / dir
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}

func axisComponents(origin, dir r3.Vector, box AABB, axis int) (o, d, lo, hi float64) {
	switch axis {
	case 0:
		return origin.X, dir.X, box.Min.X, box.Max.X
	case 1:
		return origin.Y, dir.Y, box.Min.Y, box.Max.Y
	default:
		return origin.Z, dir.Z, box.Min.Z, box.Max.Z
	}
}
