package geom

import (
	"errors"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Sentinel errors for the geom package.
var (
	// ErrDegenerateAABB indicates an AABB whose Min exceeds its Max on some axis.
	ErrDegenerateAABB = errors.New("geom: degenerate aabb (min > max on some axis)")

	// ErrZeroLengthRay indicates a Ray whose two endpoints coincide.
	ErrZeroLengthRay = errors.New("geom: ray has zero length")
)

// AABB is an axis-aligned bounding box: one closed interval per axis.
type AABB struct {
	Min r3.Vector
	Max r3.Vector
}

// Transform is a rigid (rotation + translation) transform from a local frame
// into its parent frame. Rotation is a unit quaternion; composing two
// Transforms applies the child's rotation first, then translates.
type Transform struct {
	Rotation    quat.Number
	Translation r3.Vector
}

// Identity returns the identity rigid transform.
func Identity() Transform {
	return Transform{Rotation: quat.Number{Real: 1}, Translation: r3.Vector{}}
}

// Ray is a parametric segment from Point1 to Point2, traversed for
// t (MaxFraction) in [0, 1]. MaxFraction == 1 means the full segment.
type Ray struct {
	Point1      r3.Vector
	Point2      r3.Vector
	MaxFraction float64
}

// RaycastInfo is the result of a hit against a single collision shape.
type RaycastInfo struct {
	WorldPoint  r3.Vector
	WorldNormal r3.Vector
	HitFraction float64
}

// CollisionShape is the capability set the broad-phase and proxy-shape view
// require from any concrete shape type (box, sphere, capsule, mesh, ...).
// Geometry must be immutable with respect to a shape's own fields for the
// duration of a simulation step; only pose (carried externally on the proxy
// row) may vary step to step.
type CollisionShape interface {
	// ComputeAABB returns the tight world-space AABB of the shape under transform.
	ComputeAABB(transform Transform) AABB

	// Raycast intersects localRay (already in the shape's local frame) against
	// the shape, filling info on a hit. Returns false on a miss.
	Raycast(localRay Ray) (RaycastInfo, bool)

	// TestPointInside reports whether localPoint (in the shape's local frame)
	// lies within the shape's volume.
	TestPointInside(localPoint r3.Vector) bool
}
