package geom

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Compose returns the rigid transform equivalent to applying child first,
// then parent: Compose(parent, child).TransformPoint(p) ==
// parent.TransformPoint(child.TransformPoint(p)). This is how the broad-phase
// builds Tworld = Tbody . localToBody each step (§4.2).
// Complexity: O(1).
func Compose(parent, child Transform) Transform {
	rot := normalizeQuat(quat.Mul(normalizeQuat(parent.Rotation), normalizeQuat(child.Rotation)))
	return Transform{
		Rotation:    rot,
		Translation: parent.TransformVector(child.Translation).Add(parent.Translation),
	}
}

// Inverse returns the rigid transform that undoes t.
// Complexity: O(1).
func (t Transform) Inverse() Transform {
	inv := quat.Conj(normalizeQuat(t.Rotation))
	out := Transform{Rotation: inv}
	out.Translation = out.TransformVector(t.Translation).Mul(-1)
	return out
}

// TransformPoint maps a point from t's local frame into its parent frame.
// Complexity: O(1).
func (t Transform) TransformPoint(p r3.Vector) r3.Vector {
	return rotateVector(t.Rotation, p).Add(t.Translation)
}

// TransformVector maps a free vector (direction, normal before
// renormalisation) from t's local frame into its parent frame, ignoring
// translation.
// Complexity: O(1).
func (t Transform) TransformVector(v r3.Vector) r3.Vector {
	return rotateVector(t.Rotation, v)
}

// TransformNormal maps a unit normal from t's local frame into its parent
// frame and renormalises the result, as required when a shape's raycast
// reports a normal back through the proxy-shape view (§4.3).
// Complexity: O(1).
func (t Transform) TransformNormal(n r3.Vector) r3.Vector {
	rotated := rotateVector(t.Rotation, n)
	norm := rotated.Norm()
	if norm == 0 {
		return rotated
	}
	return rotated.Mul(1.0 / norm)
}

func rotateVector(q quat.Number, v r3.Vector) r3.Vector {
	q = normalizeQuat(q)
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

func normalizeQuat(q quat.Number) quat.Number {
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1.0/n, q)
}
