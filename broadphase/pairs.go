package broadphase

import (
	"fmt"
	"sort"

	"github.com/kavelarth/broadphase/dyntree"
	"github.com/kavelarth/broadphase/ecs"
)

// pair is a canonical (min, max) node id pair: min <= max always.
type pair struct {
	a, b dyntree.NodeID
}

func makePair(x, y dyntree.NodeID) pair {
	if x <= y {
		return pair{a: x, b: y}
	}
	return pair{a: y, b: x}
}

func lessPair(p, q pair) bool {
	if p.a != q.a {
		return p.a < q.a
	}
	return p.b < q.b
}

// TestOverlappingShapes reports whether a and b's current fat AABBs
// overlap. Both must be indexed proxy shapes.
// Complexity: O(1).
func (bp *BroadPhase) TestOverlappingShapes(a, b ecs.Entity) (bool, error) {
	aNode, err := bp.nodeIDFor(a)
	if err != nil {
		return false, err
	}
	bNode, err := bp.nodeIDFor(b)
	if err != nil {
		return false, err
	}
	aBox, err := bp.tree.FatAABB(aNode)
	if err != nil {
		return false, fmt.Errorf("broadphase: TestOverlappingShapes(%s,%s): %w", a, b, err)
	}
	bBox, err := bp.tree.FatAABB(bNode)
	if err != nil {
		return false, fmt.Errorf("broadphase: TestOverlappingShapes(%s,%s): %w", a, b, err)
	}
	return aBox.Overlaps(bBox), nil
}

func (bp *BroadPhase) nodeIDFor(proxy ecs.Entity) (dyntree.NodeID, error) {
	row, err := bp.proxies.Get(proxy)
	if err != nil {
		return dyntree.NullNode, fmt.Errorf("broadphase: %s: %w", proxy, err)
	}
	if row.NodeID == ecs.NoNode {
		return dyntree.NullNode, fmt.Errorf("broadphase: %s: %w", proxy, ecs.ErrNotIndexed)
	}
	return dyntree.NodeID(row.NodeID), nil
}

// PairNotifier is called once per unique, cross-body overlapping pair
// discovered by ComputeOverlappingPairs.
type PairNotifier func(a, b ecs.Entity)

// ComputeOverlappingPairs runs the pair-generation sweep: for each leaf in
// the moved-shape set it queries the tree for overlapping leaves, collects
// candidate (min,max) node-id pairs into a reusable buffer, sorts and
// two-pointer-deduplicates the buffer, then notifies notify once per
// surviving pair whose two proxies belong to different bodies. The
// moved-shape set is cleared afterward, whether or not this returns an
// error.
// Complexity: O(M log M + P) where M is the number of candidate pairs found
// and P is the buffer size after dedup.
func (bp *BroadPhase) ComputeOverlappingPairs(notify PairNotifier) error {
	bp.mu.Lock()
	moved := make([]ecs.Entity, 0, len(bp.moved))
	for proxy := range bp.moved {
		moved = append(moved, proxy)
	}
	clear(bp.moved)
	bp.mu.Unlock()

	bp.pairScratch = bp.pairScratch[:0]
	for _, proxy := range moved {
		row, err := bp.proxies.Get(proxy)
		if err != nil || row.NodeID == ecs.NoNode {
			continue
		}
		m := dyntree.NodeID(row.NodeID)
		fat, err := bp.tree.FatAABB(m)
		if err != nil {
			continue
		}
		bp.overlapBuf = bp.overlapBuf[:0]
		bp.tree.ReportOverlaps(fat, func(leaf dyntree.NodeID) {
			bp.overlapBuf = append(bp.overlapBuf, leaf)
		})
		for _, o := range bp.overlapBuf {
			if o == m {
				continue
			}
			bp.pairScratch = append(bp.pairScratch, makePair(m, o))
		}
	}

	sort.Slice(bp.pairScratch, func(i, j int) bool {
		return lessPair(bp.pairScratch[i], bp.pairScratch[j])
	})

	i := 0
	for i < len(bp.pairScratch) {
		current := bp.pairScratch[i]
		j := i + 1
		for j < len(bp.pairScratch) && bp.pairScratch[j] == current {
			j++
		}
		if err := bp.notifyPair(current, notify); err != nil {
			return err
		}
		i = j
	}
	return nil
}

func (bp *BroadPhase) notifyPair(p pair, notify PairNotifier) error {
	aPayload, err := bp.tree.Payload(p.a)
	if err != nil {
		return err
	}
	bPayload, err := bp.tree.Payload(p.b)
	if err != nil {
		return err
	}
	a := aPayload.(ecs.Entity)
	b := bPayload.(ecs.Entity)

	aRow, err := bp.proxies.Get(a)
	if err != nil {
		return err
	}
	bRow, err := bp.proxies.Get(b)
	if err != nil {
		return err
	}
	if aRow.BodyEntity != bRow.BodyEntity {
		notify(a, b)
	}
	return nil
}
