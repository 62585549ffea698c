// Package ecs provides the entity handle type and the dense, columnar
// component stores the broad-phase subsystem is built on: a proxy-shape
// component column (body entity, shape handle, local-to-body transform,
// broad-phase node id, category/mask bits, user data) and a sibling
// transform component column keyed by body entity.
//
// The proxy-shape store is a slice of rows 0..N-1 plus an entity→row index,
// with the row slice partitioned into an enabled prefix [0,E) and a disabled
// suffix [E,N) maintained by swap-remove, so the broad-phase's per-step
// update loop can walk [0,E) without a branch per row. The transform store
// is a map from body entity to row. Concurrency guards mirror
// github.com/katalvlaran/lvlath/core's per-store sync.RWMutex convention:
// one lock per store, read locks for queries, write locks for structural
// mutation.
//
// Errors:
//
//	ErrNilEntity              - the zero Entity{} was used as a key.
//	ErrEntityNotFound         - no row exists for the given entity.
//	ErrEntityAlreadyExists    - Add called for an entity that already has a row.
//	ErrStaleEntity            - an Entity's generation does not match the live one.
//	ErrEnabledCountExceedsTotal - an internal invariant violation (see Audit).
package ecs
