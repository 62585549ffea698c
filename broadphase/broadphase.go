package broadphase

import (
	"fmt"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/kavelarth/broadphase/dyntree"
	"github.com/kavelarth/broadphase/ecs"
	"github.com/kavelarth/broadphase/geom"
)

// BroadPhase owns the spatial index and the component stores it operates
// over: proxy-shape rows, body transforms, and an entity allocator shared by
// both kinds of handle.
type BroadPhase struct {
	tree     *dyntree.Tree
	proxies  *ecs.ProxyShapeComponents
	bodies   *ecs.TransformComponents
	entities *ecs.Allocator
	options  Options

	mu          sync.RWMutex
	moved       map[ecs.Entity]struct{}
	pairScratch []pair
	overlapBuf  []dyntree.NodeID
}

// New returns an empty BroadPhase configured by opts.
func New(opts ...Option) *BroadPhase {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &BroadPhase{
		tree:     dyntree.NewTree(o.TreeOptions...),
		proxies:  ecs.NewProxyShapeComponents(),
		bodies:   ecs.NewTransformComponents(),
		entities: ecs.NewAllocator(),
		options:  o,
		moved:    make(map[ecs.Entity]struct{}),
	}
}

// Entities returns the entity allocator shared by bodies and proxy shapes.
func (bp *BroadPhase) Entities() *ecs.Allocator { return bp.entities }

// Proxies returns the proxy-shape component store.
func (bp *BroadPhase) Proxies() *ecs.ProxyShapeComponents { return bp.proxies }

// Bodies returns the body transform component store.
func (bp *BroadPhase) Bodies() *ecs.TransformComponents { return bp.bodies }

// Tree returns the underlying dynamic AABB tree.
func (bp *BroadPhase) Tree() *dyntree.Tree { return bp.tree }

// AddBody registers a new body with the given initial world transform and
// returns its entity handle.
// Complexity: O(1).
func (bp *BroadPhase) AddBody(world geom.Transform) (ecs.Entity, error) {
	body := bp.entities.New()
	if err := bp.bodies.Add(body, world); err != nil {
		return ecs.Entity{}, err
	}
	return body, nil
}

// RemoveBody removes body's transform row and every enabled proxy shape
// attached to it. Only the enabled prefix of Proxies() is searched: a
// disabled proxy shape attached to body keeps its row and its tree leaf.
// Complexity: O(enabled proxy count).
func (bp *BroadPhase) RemoveBody(body ecs.Entity) error {
	var attached []ecs.Entity
	err := bp.proxies.ForEachEnabled(func(proxy ecs.Entity, row ecs.ProxyShapeRow) error {
		if row.BodyEntity == body {
			attached = append(attached, proxy)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, proxy := range attached {
		if err := bp.RemoveProxyCollisionShape(proxy); err != nil {
			return err
		}
		if err := bp.proxies.Remove(proxy); err != nil {
			return err
		}
	}
	if err := bp.bodies.Remove(body); err != nil {
		return err
	}
	return bp.entities.Free(body)
}

// AddProxyCollisionShape registers proxy (whose row must already exist in
// Proxies()) as a tree leaf at initialWorldAABB, and adds it to the
// moved-shape set. Returns ecs.ErrAlreadyIndexed if proxy's row already
// carries a live NodeID.
// Complexity: O(log N) expected.
func (bp *BroadPhase) AddProxyCollisionShape(proxy ecs.Entity, initialWorldAABB geom.AABB) error {
	row, err := bp.proxies.Get(proxy)
	if err != nil {
		return fmt.Errorf("broadphase: AddProxyCollisionShape(%s): %w", proxy, err)
	}
	if row.NodeID != ecs.NoNode {
		return fmt.Errorf("broadphase: AddProxyCollisionShape(%s): %w", proxy, ecs.ErrAlreadyIndexed)
	}
	id, err := bp.tree.AddObject(initialWorldAABB, proxy)
	if err != nil {
		return fmt.Errorf("broadphase: AddProxyCollisionShape(%s): %w", proxy, err)
	}
	if err := bp.proxies.SetNodeID(proxy, int32(id)); err != nil {
		return err
	}
	bp.markMoved(proxy)
	return nil
}

// RemoveProxyCollisionShape frees proxy's tree leaf and removes it from the
// moved-shape set. Returns ecs.ErrNotIndexed if proxy's row has no live
// NodeID.
// Complexity: O(log N) expected.
func (bp *BroadPhase) RemoveProxyCollisionShape(proxy ecs.Entity) error {
	row, err := bp.proxies.Get(proxy)
	if err != nil {
		return fmt.Errorf("broadphase: RemoveProxyCollisionShape(%s): %w", proxy, err)
	}
	if row.NodeID == ecs.NoNode {
		return fmt.Errorf("broadphase: RemoveProxyCollisionShape(%s): %w", proxy, ecs.ErrNotIndexed)
	}
	if err := bp.tree.RemoveObject(dyntree.NodeID(row.NodeID)); err != nil {
		return fmt.Errorf("broadphase: RemoveProxyCollisionShape(%s): %w", proxy, err)
	}
	if err := bp.proxies.SetNodeID(proxy, ecs.NoNode); err != nil {
		return err
	}
	bp.mu.Lock()
	delete(bp.moved, proxy)
	bp.mu.Unlock()
	return nil
}

func (bp *BroadPhase) markMoved(proxy ecs.Entity) {
	bp.mu.Lock()
	bp.moved[proxy] = struct{}{}
	bp.mu.Unlock()
}

// worldAABBFor recomputes proxy's current world AABB from its row and its
// owning body's world transform. The displacement hint comes from
// displacementFor.
func (bp *BroadPhase) worldAABBFor(row ecs.ProxyShapeRow) (geom.AABB, error) {
	body, err := bp.bodies.Get(row.BodyEntity)
	if err != nil {
		return geom.AABB{}, err
	}
	worldTransform := geom.Compose(body.World, row.LocalToBody)
	return row.Shape.ComputeAABB(worldTransform), nil
}

// displacementFor returns the displacement hint UpdateObject should use for
// row: zero unless displacement prediction is enabled (§7: off by default),
// otherwise the owning body's LinearVelocity as stored. The velocity is not
// multiplied by a time step.
func (bp *BroadPhase) displacementFor(row ecs.ProxyShapeRow) (r3.Vector, error) {
	if !bp.options.PredictEnabled {
		return r3.Vector{}, nil
	}
	body, err := bp.bodies.Get(row.BodyEntity)
	if err != nil {
		return r3.Vector{}, err
	}
	return body.LinearVelocity, nil
}

// UpdateProxyShape recomputes proxy's world AABB from its current body
// transform and feeds it to the tree, recording it in the moved-shape set if
// its fat AABB changed. Returns ecs.ErrNotIndexed if proxy has not been added
// via AddProxyCollisionShape.
// Complexity: O(1) typical; O(log N) expected when reinsertion is required.
func (bp *BroadPhase) UpdateProxyShape(proxy ecs.Entity) error {
	row, err := bp.proxies.Get(proxy)
	if err != nil {
		return fmt.Errorf("broadphase: UpdateProxyShape(%s): %w", proxy, err)
	}
	if row.NodeID == ecs.NoNode {
		return fmt.Errorf("broadphase: UpdateProxyShape(%s): %w", proxy, ecs.ErrNotIndexed)
	}
	worldAABB, err := bp.worldAABBFor(row)
	if err != nil {
		return fmt.Errorf("broadphase: UpdateProxyShape(%s): %w", proxy, err)
	}

	displacement, err := bp.displacementFor(row)
	if err != nil {
		return fmt.Errorf("broadphase: UpdateProxyShape(%s): %w", proxy, err)
	}
	moved, err := bp.tree.UpdateObject(dyntree.NodeID(row.NodeID), worldAABB, displacement)
	if err != nil {
		return fmt.Errorf("broadphase: UpdateProxyShape(%s): %w", proxy, err)
	}
	if moved {
		bp.markMoved(proxy)
	}
	return nil
}

// UpdateProxyShapes recomputes the world AABB of every enabled, indexed
// proxy shape, exactly as repeated calls to UpdateProxyShape would, in
// row order.
// Complexity: O(enabled proxy count) typical.
func (bp *BroadPhase) UpdateProxyShapes() error {
	var toUpdate []ecs.Entity
	err := bp.proxies.ForEachEnabled(func(proxy ecs.Entity, row ecs.ProxyShapeRow) error {
		if row.NodeID != ecs.NoNode {
			toUpdate = append(toUpdate, proxy)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, proxy := range toUpdate {
		if err := bp.UpdateProxyShape(proxy); err != nil {
			return err
		}
	}
	return nil
}
