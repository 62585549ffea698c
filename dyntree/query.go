package dyntree

import "github.com/kavelarth/broadphase/geom"

// OverlapCallback is invoked once per leaf whose fat AABB overlaps the query
// box, in unspecified order. It must not mutate the Tree it was called from.
type OverlapCallback func(leaf NodeID)

// ReportOverlaps calls cb once for every leaf whose fat AABB overlaps query,
// pruning whole subtrees whose fat AABB does not.
// Complexity: O(log N + k) expected, k the number of reported leaves.
func (t *Tree) ReportOverlaps(query geom.AABB, cb OverlapCallback) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == NullNode {
		return
	}
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !t.nodes[id].aabb.Overlaps(query) {
			continue
		}
		if t.isLeaf(id) {
			cb(id)
			continue
		}
		stack = append(stack, t.nodes[id].left, t.nodes[id].right)
	}
}

// RaycastCallback is invoked once per leaf whose fat AABB the ray still
// intersects at the time it is visited. Its return value controls the
// traversal:
//
//	< 0   ignore this leaf, keep traversing with the ray unchanged.
//	  0   stop the traversal immediately.
//	(0,1] shorten the ray to this fraction and keep traversing.
//
// It must not mutate the Tree it was called from.
type RaycastCallback func(leaf NodeID, ray geom.Ray) float64

// Raycast walks the tree in an order that prunes subtrees whose fat AABB the
// ray misses, calling cb at each surviving leaf. A callback that shortens
// the ray causes subsequently visited nodes to be tested against the
// shortened ray, so leaves beyond the new fraction are pruned without being
// visited.
// Complexity: O(log N + k) expected, k the number of leaves visited.
func (t *Tree) Raycast(ray geom.Ray, cb RaycastCallback) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == NullNode {
		return
	}
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !ray.IntersectAABB(t.nodes[id].aabb) {
			continue
		}
		if t.isLeaf(id) {
			fraction := cb(id, ray)
			switch {
			case fraction == 0:
				return
			case fraction > 0 && fraction <= 1:
				ray.MaxFraction = fraction
			}
			continue
		}
		stack = append(stack, t.nodes[id].left, t.nodes[id].right)
	}
}
