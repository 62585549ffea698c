// Package proxyshape provides View, a thin per-instance facade over one
// proxy shape's row in a broadphase.BroadPhase. All mutable state lives in
// the broad-phase's component stores (ecs.ProxyShapeComponents,
// ecs.TransformComponents); a View only holds the entity handles needed to
// address that state and forwards to it.
//
// SetLocalToBody additionally wakes the owning body and re-indexes the
// shape with the broad-phase (broadphase.BroadPhase.UpdateProxyShape).
// SetFilterBits deliberately does not: it only changes which
// category-filtered raycasts a shape participates in, never its tree
// position (ComputeOverlappingPairs does not read the filter bits) (SPEC_FULL.md §4.3 records this asymmetry as intentional, not an
// oversight).
package proxyshape
