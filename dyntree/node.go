package dyntree

import "github.com/kavelarth/broadphase/geom"

// NodeID addresses a slot in a Tree's node arena. NullNode means "no node".
type NodeID int32

// NullNode is the sentinel NodeID meaning "absent".
const NullNode NodeID = -1

// node is one arena slot. A slot is either:
//   - a leaf: height == 0, left == right == NullNode, payload holds the
//     caller's value, aabb is the fat AABB.
//   - an internal node: height >= 1, left and right both valid, payload is
//     nil, aabb is the union of both children's AABBs.
//   - free: height == -1. parent is repurposed as the next-free pointer
//     (parentOrNextFree), threading every free slot into Tree.freeList.
type node struct {
	aabb       geom.AABB
	parent     NodeID
	left       NodeID
	right      NodeID
	height     int16
	payload    any
}

func (n *node) isFree() bool {
	return n.height == -1
}
