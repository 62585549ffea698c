package dyntree

import "github.com/kavelarth/broadphase/geom"

// insertLeaf inserts the already-allocated leaf slot into the tree using the
// surface-area heuristic: descend from the root, at each internal node
// comparing the cost of stopping here (making a new parent out of this node
// and the leaf) against the cost of pushing the leaf further into whichever
// child looks cheaper. Callers must hold t.mu (write lock) and must have set
// leaf's aabb and height==0 beforehand.
func (t *Tree) insertLeaf(leaf NodeID) {
	if t.root == NullNode {
		t.root = leaf
		t.nodes[leaf].parent = NullNode
		return
	}

	leafAABB := t.nodes[leaf].aabb
	index := t.root
	for !t.isLeaf(index) {
		left := t.nodes[index].left
		right := t.nodes[index].right

		area := t.nodes[index].aabb.SurfaceArea()
		combined := t.nodes[index].aabb.Union(leafAABB)
		combinedArea := combined.SurfaceArea()

		// Cost of creating a new parent for this node and the leaf.
		cost := 2 * combinedArea
		// Minimum cost of pushing the leaf further down this subtree.
		inheritedCost := 2 * (combinedArea - area)

		costLeft := descendCost(t, left, leafAABB, inheritedCost)
		costRight := descendCost(t, right, leafAABB, inheritedCost)

		if cost < costLeft && cost < costRight {
			break
		}
		if costLeft < costRight {
			index = left
		} else {
			index = right
		}
	}
	sibling := index

	oldParent := t.nodes[sibling].parent
	newParent := t.allocateNode()
	t.nodes[newParent].parent = oldParent
	t.nodes[newParent].aabb = leafAABB.Union(t.nodes[sibling].aabb)
	t.nodes[newParent].height = t.nodes[sibling].height + 1
	t.nodes[newParent].left = sibling
	t.nodes[newParent].right = leaf
	t.nodes[sibling].parent = newParent
	t.nodes[leaf].parent = newParent

	if oldParent != NullNode {
		if t.nodes[oldParent].left == sibling {
			t.nodes[oldParent].left = newParent
		} else {
			t.nodes[oldParent].right = newParent
		}
	} else {
		t.root = newParent
	}

	t.fixupwards(t.nodes[leaf].parent)
}

// descendCost is the cost of pushing the leaf down into child, given the
// inherited cost of every ancestor already passed through.
func descendCost(t *Tree, child NodeID, leafAABB geom.AABB, inherited float64) float64 {
	if t.isLeaf(child) {
		combined := t.nodes[child].aabb.Union(leafAABB)
		return combined.SurfaceArea() + inherited
	}
	combined := t.nodes[child].aabb.Union(leafAABB)
	oldArea := t.nodes[child].aabb.SurfaceArea()
	return (combined.SurfaceArea() - oldArea) + inherited
}

// fixupwards walks from index to the root, re-fitting AABBs and heights and
// applying rotations wherever a subtree has become unbalanced. Callers must
// hold t.mu.
func (t *Tree) fixupwards(index NodeID) {
	for index != NullNode {
		index = t.balance(index)

		left := t.nodes[index].left
		right := t.nodes[index].right
		t.nodes[index].height = 1 + maxInt16(t.nodes[left].height, t.nodes[right].height)
		t.nodes[index].aabb = t.nodes[left].aabb.Union(t.nodes[right].aabb)

		index = t.nodes[index].parent
	}
}

func maxInt16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}
