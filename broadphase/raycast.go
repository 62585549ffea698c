package broadphase

import (
	"github.com/kavelarth/broadphase/dyntree"
	"github.com/kavelarth/broadphase/ecs"
	"github.com/kavelarth/broadphase/geom"
)

// RaycastTest is the narrow-phase collaborator a Raycast call delegates to
// for each surviving leaf: given the proxy and the ray (already possibly
// shortened by an earlier hit), it returns a fraction with the same
// semantics as dyntree.RaycastCallback (negative ignore, 0 stop, (0,1]
// shorten and continue).
type RaycastTest func(proxy ecs.Entity, ray geom.Ray) float64

// Raycast walks the tree along ray, skipping any leaf whose proxy's
// category bits AND categoryMask is zero, and forwarding every other leaf to
// test.
// Complexity: O(log N + k) expected, k the number of leaves visited.
func (bp *BroadPhase) Raycast(ray geom.Ray, test RaycastTest, categoryMask uint16) {
	bp.tree.Raycast(ray, func(leaf dyntree.NodeID, r geom.Ray) float64 {
		payload, err := bp.tree.Payload(leaf)
		if err != nil {
			return -1
		}
		proxy := payload.(ecs.Entity)
		row, err := bp.proxies.Get(proxy)
		if err != nil {
			return -1
		}
		if row.CategoryBits&categoryMask == 0 {
			return -1
		}
		return test(proxy, r)
	})
}
