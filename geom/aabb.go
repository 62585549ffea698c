package geom

import "github.com/golang/geo/r3"

// NewAABB builds an AABB from two corners, normalising Min/Max per axis so
// callers never have to pre-sort the corners themselves.
// Complexity: O(1).
func NewAABB(a, b r3.Vector) AABB {
	return AABB{
		Min: r3.Vector{X: min64(a.X, b.X), Y: min64(a.Y, b.Y), Z: min64(a.Z, b.Z)},
		Max: r3.Vector{X: max64(a.X, b.X), Y: max64(a.Y, b.Y), Z: max64(a.Z, b.Z)},
	}
}

// Validate reports ErrDegenerateAABB if Min exceeds Max on any axis.
// The tree and broad-phase never call this themselves (§7: numeric
// degeneracies are accepted as-is); it exists for callers who want to
// surface data-quality problems from upstream shape code.
// Complexity: O(1).
func (b AABB) Validate() error {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return ErrDegenerateAABB
	}
	return nil
}

// Center returns the midpoint of the box.
// Complexity: O(1).
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extents returns the half-widths along each axis.
// Complexity: O(1).
func (b AABB) Extents() r3.Vector {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Contains reports whether other is fully enclosed by b.
// Complexity: O(1).
func (b AABB) Contains(other AABB) bool {
	return b.Min.X <= other.Min.X && b.Min.Y <= other.Min.Y && b.Min.Z <= other.Min.Z &&
		b.Max.X >= other.Max.X && b.Max.Y >= other.Max.Y && b.Max.Z >= other.Max.Z
}

// ContainsPoint reports whether p lies within b, inclusive of the boundary.
// Complexity: O(1).
func (b AABB) ContainsPoint(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps reports whether b and other share at least one point.
// Complexity: O(1).
func (b AABB) Overlaps(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Union returns the smallest AABB enclosing both b and other.
// Complexity: O(1).
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: r3.Vector{X: min64(b.Min.X, other.Min.X), Y: min64(b.Min.Y, other.Min.Y), Z: min64(b.Min.Z, other.Min.Z)},
		Max: r3.Vector{X: max64(b.Max.X, other.Max.X), Y: max64(b.Max.Y, other.Max.Y), Z: max64(b.Max.Z, other.Max.Z)},
	}
}

// SurfaceArea returns twice the sum of the three face areas of b (the full
// surface area of the box). The factor of two is folded in rather than left
// for callers, matching how the SAH cost formulas in the dynamic tree use it
// directly (cost = 2 * area(...)).
// Complexity: O(1).
func (b AABB) SurfaceArea() float64 {
	d := b.Max.Sub(b.Min)
	return 2.0 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// Volume returns the box's volume; zero or negative for a degenerate box.
// Complexity: O(1).
func (b AABB) Volume() float64 {
	d := b.Max.Sub(b.Min)
	return d.X * d.Y * d.Z
}

// LongestAxis returns 0, 1, or 2 for the axis (X, Y, Z) along which b is
// widest. Nothing in this module calls it; the dynamic tree's SAH descent
// never needs an explicit split axis.
// Complexity: O(1).
func (b AABB) LongestAxis() int {
	d := b.Max.Sub(b.Min)
	axis := 0
	longest := d.X
	if d.Y > longest {
		axis, longest = 1, d.Y
	}
	if d.Z > longest {
		axis = 2
	}
	return axis
}

// Expand grows b by margin on every axis in both directions, returning a new
// AABB. This is how a tight AABB becomes a fat AABB.
// Complexity: O(1).
func (b AABB) Expand(margin float64) AABB {
	m := r3.Vector{X: margin, Y: margin, Z: margin}
	return AABB{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// ExpandDirectional grows b by margin on every axis, then additionally
// extends the box along displacement's direction of travel (only on the
// leading edge of each axis), modelling slack for a moving fat AABB.
// Complexity: O(1).
func (b AABB) ExpandDirectional(margin float64, displacement r3.Vector) AABB {
	out := b.Expand(margin)
	if displacement.X > 0 {
		out.Max.X += displacement.X
	} else {
		out.Min.X += displacement.X
	}
	if displacement.Y > 0 {
		out.Max.Y += displacement.Y
	} else {
		out.Min.Y += displacement.Y
	}
	if displacement.Z > 0 {
		out.Max.Z += displacement.Z
	} else {
		out.Min.Z += displacement.Z
	}
	return out
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
