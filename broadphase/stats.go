package broadphase

import "github.com/kavelarth/broadphase/dyntree"

// Stats is a read-only snapshot of a BroadPhase's current size.
type Stats struct {
	Tree          dyntree.Stats
	ProxyCount    int
	EnabledProxy  int
	MovedPending  int
}

// Stats returns a snapshot of the broad-phase's current size: tree
// occupancy, total and enabled proxy-shape row counts, and the number of
// proxies pending the next ComputeOverlappingPairs.
// Complexity: O(1).
func (bp *BroadPhase) Stats() Stats {
	bp.mu.RLock()
	moved := len(bp.moved)
	bp.mu.RUnlock()

	return Stats{
		Tree:         bp.tree.Stats(),
		ProxyCount:   bp.proxies.TotalCount(),
		EnabledProxy: bp.proxies.EnabledCount(),
		MovedPending: moved,
	}
}
