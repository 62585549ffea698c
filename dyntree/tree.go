package dyntree

import (
	"fmt"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/kavelarth/broadphase/geom"
)

// Tree is a dynamic, self-balancing AABB tree over arbitrary payloads. The
// zero value is not usable; construct one with NewTree.
type Tree struct {
	mu        sync.RWMutex
	options   TreeOptions
	nodes     []node
	freeList  NodeID
	root      NodeID
	leafCount int
}

// NewTree returns an empty Tree configured by opts (see DefaultTreeOptions).
func NewTree(opts ...TreeOption) *Tree {
	o := DefaultTreeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree{
		options:  o,
		root:     NullNode,
		freeList: NullNode,
	}
	if o.InitialCapacity > 0 {
		t.nodes = make([]node, o.InitialCapacity)
		for i := range t.nodes {
			t.nodes[i].height = -1
			if i+1 < len(t.nodes) {
				t.nodes[i].parent = NodeID(i + 1)
			} else {
				t.nodes[i].parent = NullNode
			}
		}
		t.freeList = 0
	}
	return t
}

// isLeaf reports whether id is a leaf slot. Callers must hold t.mu.
func (t *Tree) isLeaf(id NodeID) bool {
	return t.nodes[id].height == 0
}

// validIndex reports whether id addresses a slot within the arena.
func (t *Tree) validIndex(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// allocateNode pulls a slot from the free list, growing the arena by one if
// the free list is empty. Callers must hold t.mu (write lock).
func (t *Tree) allocateNode() NodeID {
	if t.freeList == NullNode {
		t.nodes = append(t.nodes, node{height: -1, parent: NullNode, left: NullNode, right: NullNode})
		return NodeID(len(t.nodes) - 1)
	}
	id := t.freeList
	t.freeList = t.nodes[id].parent
	t.nodes[id] = node{parent: NullNode, left: NullNode, right: NullNode, height: -1}
	return id
}

// freeNode returns id's slot to the free list. Callers must hold t.mu.
func (t *Tree) freeNode(id NodeID) {
	t.nodes[id] = node{parent: t.freeList, left: NullNode, right: NullNode, height: -1}
	t.freeList = id
}

// AddObject inserts payload with tight bounding box box, fattened by the
// tree's margin, and returns the new leaf's NodeID. box is accepted as-is,
// including degenerate or numerically unusual boxes; the tree never calls
// box.Validate() itself (see geom.AABB.Validate's doc comment).
// Complexity: O(log N) expected.
func (t *Tree) AddObject(box geom.AABB, payload any) (NodeID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.allocateNode()
	t.nodes[id].aabb = box.Expand(t.options.Margin)
	t.nodes[id].height = 0
	t.nodes[id].payload = payload
	t.insertLeaf(id)
	t.leafCount++
	return id, nil
}

// RemoveObject deletes the leaf id from the tree.
// Complexity: O(log N) expected.
func (t *Tree) RemoveObject(id NodeID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkLeaf(id); err != nil {
		return err
	}
	t.removeLeaf(id)
	t.freeNode(id)
	t.leafCount--
	return nil
}

// checkLeaf validates id addresses a live leaf slot. Callers must hold t.mu.
func (t *Tree) checkLeaf(id NodeID) error {
	if !t.validIndex(id) || t.nodes[id].isFree() || !t.isLeaf(id) {
		return fmt.Errorf("dyntree: node %d: %w", id, ErrInvalidNodeID)
	}
	return nil
}

// FatAABB returns leaf id's current fat bounding box.
// Complexity: O(1).
func (t *Tree) FatAABB(id NodeID) (geom.AABB, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := t.checkLeaf(id); err != nil {
		return geom.AABB{}, err
	}
	return t.nodes[id].aabb, nil
}

// Payload returns leaf id's payload.
// Complexity: O(1).
func (t *Tree) Payload(id NodeID) (any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := t.checkLeaf(id); err != nil {
		return nil, err
	}
	return t.nodes[id].payload, nil
}

// Stats is a read-only snapshot of a Tree's size and shape.
type Stats struct {
	LeafCount int
	NodeCount int // leaves + internal nodes, excluding free slots
	Height    int // -1 for an empty tree
}

// Stats returns a snapshot of the tree's current size and height.
// Complexity: O(1).
func (t *Tree) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	height := -1
	if t.root != NullNode {
		height = int(t.nodes[t.root].height)
	}
	internal := 0
	if t.leafCount > 0 {
		internal = t.leafCount - 1
	}
	return Stats{
		LeafCount: t.leafCount,
		NodeCount: t.leafCount + internal,
		Height:    height,
	}
}

// UpdateObject updates leaf id's tight AABB. If the new tight box (optionally
// extrapolated along displacement by the tree's prediction factor) is still
// contained in the leaf's current fat AABB, this is a no-op and returns
// false. Otherwise the leaf is removed and reinserted with a freshly
// fattened AABB and UpdateObject returns true.
// Complexity: O(1) in the common case; O(log N) expected when reinsertion is
// required.
// tight is accepted as-is, including degenerate boxes; the tree never calls
// tight.Validate() itself.
func (t *Tree) UpdateObject(id NodeID, tight geom.AABB, displacement r3.Vector) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkLeaf(id); err != nil {
		return false, err
	}

	predicted := tight
	if t.options.PredictionFactor > 0 && displacement != (r3.Vector{}) {
		scaled := displacement.Mul(t.options.PredictionFactor)
		extrapolated := geom.NewAABB(
			r3.Vector{X: tight.Min.X + scaled.X, Y: tight.Min.Y + scaled.Y, Z: tight.Min.Z + scaled.Z},
			r3.Vector{X: tight.Max.X + scaled.X, Y: tight.Max.Y + scaled.Y, Z: tight.Max.Z + scaled.Z},
		)
		predicted = tight.Union(extrapolated)
	}
	if t.nodes[id].aabb.Contains(predicted) {
		return false, nil
	}

	t.removeLeaf(id)
	var fat geom.AABB
	if displacement != (r3.Vector{}) {
		fat = tight.ExpandDirectional(t.options.Margin, displacement)
	} else {
		fat = tight.Expand(t.options.Margin)
	}
	t.nodes[id].aabb = fat
	t.insertLeaf(id)
	return true, nil
}
