// Package broadphase produces, once per simulation step, the set of
// unordered proxy-shape pairs whose world AABBs overlap and whose owning
// bodies differ — input for a narrow-phase collision stage this package
// does not implement.
//
// A BroadPhase owns a dyntree.Tree indexed by proxy Entity payloads, the
// ecs.ProxyShapeComponents and ecs.TransformComponents stores backing those
// proxies and their owning bodies, an entity allocator, a moved-shape set,
// and a reusable potential-pairs buffer.
//
// AddProxyCollisionShape indexes an already-registered proxy row at its
// initial world AABB. UpdateProxyShape and UpdateProxyShapes recompute a
// proxy's (or every enabled proxy's) world AABB from its owning body's
// current transform and feed it to the tree, recording any leaf whose fat
// AABB actually changed in the moved-shape set. ComputeOverlappingPairs
// drains that set: for each moved leaf it queries the tree for overlapping
// leaves, accumulates candidate (min,max) pairs into the potential-pairs
// buffer, sorts and two-pointer-deduplicates the buffer, and notifies the
// caller once per surviving cross-body pair.
//
// Errors:
//
//	ecs.ErrNotIndexed     - UpdateProxyShape/TestOverlappingShapes/
//	                        RemoveProxyCollisionShape called on a proxy whose
//	                        row has no tree leaf (NodeID == ecs.NoNode).
//	                        Raycast returns no error; leaves it cannot
//	                        resolve are skipped.
//	ecs.ErrAlreadyIndexed - AddProxyCollisionShape called on a proxy whose
//	                        row already carries a tree leaf.
package broadphase
