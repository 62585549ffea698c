// Package dyntree implements a dynamic, self-balancing AABB tree: a binary
// tree of fat axis-aligned bounding boxes over arbitrary user payloads,
// supporting insertion, removal, fat-AABB-aware update, overlap queries, and
// ray queries in expected logarithmic time.
//
// Nodes live in a single growable arena (a slice of node slots) addressed by
// NodeID, an int32 index; NullNode (-1) means "no node". Freed slots are
// threaded through an intrusive free list reusing the node's parent field
// (parentOrNextFree), with height == -1 marking a slot as free — the node
// arena never shrinks, matching the teacher-repo convention of a single
// long-lived backing store plus an index map rather than per-node heap
// allocation (compare github.com/katalvlaran/lvlath/core.Graph's
// map-of-structs store).
//
// Insertion uses the surface-area heuristic: descending from the root,
// at each internal node it compares the cost of stopping here against the
// cost of descending further into each child, then inserts a new internal
// node above the chosen sibling. Every structural mutation re-fits ancestor
// AABBs and heights on the way back to the root and applies an AVL rotation
// wherever the left/right height difference would otherwise exceed 1.
//
// Concurrency: a Tree guards its arena with a single sync.RWMutex — read
// locks for queries, a write lock for any structural mutation — mirroring
// the per-store locking convention the rest of this module uses. Overlap and
// ray callbacks run under the tree's read lock; a callback must not mutate
// the same Tree, because AddObject, RemoveObject and UpdateObject wait for
// that read lock to be released.
//
// Errors:
//
//	ErrInvalidNodeID - a NodeID is out of range, free, or NullNode where a
//	                   live leaf was required.
package dyntree
