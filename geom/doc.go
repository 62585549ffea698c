// Package geom defines the 3D geometry primitives shared by the spatial-indexing
// core: axis-aligned bounding boxes, rigid transforms, rays, and the capability
// set a collision shape must implement.
//
// Vectors are github.com/golang/geo/r3.Vector; rotations are
// gonum.org/v1/gonum/num/quat.Number. Both come from the ambient robotics/
// kinematics dependency set rather than a hand-rolled vector-math package, so
// the numerics behind AABB union/overlap and transform composition match the
// library behavior already exercised elsewhere in the module's dependency
// graph.
//
// Errors:
//
//	ErrDegenerateAABB - Validate() found an inverted interval on some axis.
package geom
