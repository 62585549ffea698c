// SPDX-License-Identifier: MIT
package ecs

import (
	"fmt"
	"sync"

	"github.com/kavelarth/broadphase/geom"
)

// NoNode is the broad-phase node id recorded on a proxy-shape row that has
// not (yet, or no longer) been indexed by the dynamic tree.
const NoNode int32 = -1

// ProxyShapeRow is one proxy shape's attributes: the body it is attached to,
// its collision geometry, its offset within that body, its index into the
// broad-phase's tree (NoNode if unindexed), its collision filter bits, and
// an opaque user payload.
type ProxyShapeRow struct {
	BodyEntity   Entity
	Shape        geom.CollisionShape
	LocalToBody  geom.Transform
	NodeID       int32
	CategoryBits uint16
	MaskBits     uint16
	UserData     any
}

// ProxyShapeComponents is the dense, columnar store of ProxyShapeRow values
// keyed by a proxy-shape Entity. Rows [0,enabled) are "enabled" and visited
// by the broad-phase's per-step update loop; rows [enabled,len(rows)) are
// disabled and skipped. SetEnabled moves a row across that boundary by
// swapping; Remove swap-removes from wherever the row currently sits.
type ProxyShapeComponents struct {
	mu      sync.RWMutex
	rows    []ProxyShapeRow
	owners  []Entity       // owners[i] is the proxy Entity owning rows[i]
	index   map[Entity]int // proxy Entity -> row index
	enabled int            // rows[0:enabled] are enabled
}

// NewProxyShapeComponents returns an empty store.
func NewProxyShapeComponents() *ProxyShapeComponents {
	return &ProxyShapeComponents{index: make(map[Entity]int)}
}

// Add inserts a new row for proxy, initially enabled and unindexed
// (NodeID == NoNode). Returns ErrNilEntity if proxy is the zero Entity,
// ErrEntityAlreadyExists if proxy already has a row.
// Complexity: O(N): disabled rows are shifted and every index entry is
// visited.
func (c *ProxyShapeComponents) Add(proxy Entity, row ProxyShapeRow) error {
	if proxy.IsNil() {
		return ErrNilEntity
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.index[proxy]; exists {
		return fmt.Errorf("ecs: Add(%s): %w", proxy, ErrEntityAlreadyExists)
	}
	row.NodeID = NoNode

	// New rows are enabled: inserted at the boundary, pushing any existing
	// disabled rows one slot to the right.
	c.rows = append(c.rows, ProxyShapeRow{})
	c.owners = append(c.owners, Entity{})
	copy(c.rows[c.enabled+1:], c.rows[c.enabled:len(c.rows)-1])
	copy(c.owners[c.enabled+1:], c.owners[c.enabled:len(c.owners)-1])
	c.rows[c.enabled] = row
	c.owners[c.enabled] = proxy

	// Shift every index past the insertion point by one.
	for e, i := range c.index {
		if i >= c.enabled {
			c.index[e] = i + 1
		}
	}
	c.index[proxy] = c.enabled
	c.enabled++
	return nil
}

// Remove swap-removes proxy's row. Returns ErrEntityNotFound if proxy has no
// row.
// Complexity: O(1).
func (c *ProxyShapeComponents) Remove(proxy Entity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[proxy]
	if !ok {
		return fmt.Errorf("ecs: Remove(%s): %w", proxy, ErrEntityNotFound)
	}
	last := len(c.rows) - 1

	if i < c.enabled {
		// Swap with the last enabled row, then shrink the enabled prefix.
		lastEnabled := c.enabled - 1
		c.swap(i, lastEnabled)
		i = lastEnabled
		c.enabled--
	}
	// i now indexes a disabled (or just-demoted) row at the tail side;
	// swap it with the last row overall and shrink.
	c.swap(i, last)
	delete(c.index, proxy)
	c.rows = c.rows[:last]
	c.owners = c.owners[:last]
	return nil
}

func (c *ProxyShapeComponents) swap(i, j int) {
	if i == j {
		return
	}
	c.rows[i], c.rows[j] = c.rows[j], c.rows[i]
	c.owners[i], c.owners[j] = c.owners[j], c.owners[i]
	c.index[c.owners[i]] = i
	c.index[c.owners[j]] = j
}

// SetEnabled moves proxy's row across the enabled/disabled boundary if
// needed. Disabled rows are skipped by ForEachEnabled.
// Complexity: O(1).
func (c *ProxyShapeComponents) SetEnabled(proxy Entity, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[proxy]
	if !ok {
		return fmt.Errorf("ecs: SetEnabled(%s): %w", proxy, ErrEntityNotFound)
	}
	isEnabled := i < c.enabled
	if isEnabled == enabled {
		return nil
	}
	if enabled {
		// Move from the disabled region up to the boundary.
		c.swap(i, c.enabled)
		c.enabled++
	} else {
		// Move from the enabled region down to just before the boundary.
		c.enabled--
		c.swap(i, c.enabled)
	}
	return nil
}

// Get returns a copy of proxy's row.
// Complexity: O(1).
func (c *ProxyShapeComponents) Get(proxy Entity) (ProxyShapeRow, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[proxy]
	if !ok {
		return ProxyShapeRow{}, fmt.Errorf("ecs: Get(%s): %w", proxy, ErrEntityNotFound)
	}
	return c.rows[i], nil
}

// Set overwrites proxy's row wholesale, including any field a concurrent
// writer changed since the caller's Get (the store does not expose per-field
// locks). SetNodeID, SetLocalToBody and SetFilterBits each change one field.
// Complexity: O(1).
func (c *ProxyShapeComponents) Set(proxy Entity, row ProxyShapeRow) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[proxy]
	if !ok {
		return fmt.Errorf("ecs: Set(%s): %w", proxy, ErrEntityNotFound)
	}
	c.rows[i] = row
	return nil
}

// SetNodeID updates just the NodeID field of proxy's row.
// Complexity: O(1).
func (c *ProxyShapeComponents) SetNodeID(proxy Entity, nodeID int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[proxy]
	if !ok {
		return fmt.Errorf("ecs: SetNodeID(%s): %w", proxy, ErrEntityNotFound)
	}
	c.rows[i].NodeID = nodeID
	return nil
}

// SetLocalToBody updates just the LocalToBody field of proxy's row.
// Complexity: O(1).
func (c *ProxyShapeComponents) SetLocalToBody(proxy Entity, t geom.Transform) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[proxy]
	if !ok {
		return fmt.Errorf("ecs: SetLocalToBody(%s): %w", proxy, ErrEntityNotFound)
	}
	c.rows[i].LocalToBody = t
	return nil
}

// SetFilterBits updates just the CategoryBits/MaskBits fields of proxy's
// row. Unlike SetLocalToBody, this never touches the broad-phase tree or the
// owning body's sleeping flag (§4.3: the asymmetry is intentional).
// Complexity: O(1).
func (c *ProxyShapeComponents) SetFilterBits(proxy Entity, category, mask uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[proxy]
	if !ok {
		return fmt.Errorf("ecs: SetFilterBits(%s): %w", proxy, ErrEntityNotFound)
	}
	c.rows[i].CategoryBits = category
	c.rows[i].MaskBits = mask
	return nil
}

// EnabledCount reports the size of the enabled prefix.
// Complexity: O(1).
func (c *ProxyShapeComponents) EnabledCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// TotalCount reports the total number of live rows (enabled + disabled).
// Complexity: O(1).
func (c *ProxyShapeComponents) TotalCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rows)
}

// ForEachEnabled calls fn once per row in the enabled prefix, in row order,
// passing the owning proxy Entity and a copy of its row. fn must not mutate
// the store; ForEachEnabled holds a read lock for its whole traversal. If fn
// returns an error, iteration stops and that error is returned.
// Complexity: O(enabledCount).
func (c *ProxyShapeComponents) ForEachEnabled(fn func(proxy Entity, row ProxyShapeRow) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := 0; i < c.enabled; i++ {
		if err := fn(c.owners[i], c.rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// Audit re-derives the store's invariants from scratch and returns an error
// describing the first violation found: index map disagreement, or an
// enabled count larger than the row count. It exists for tests and for an
// engine's debug overlay; nothing in the hot path calls it.
// Complexity: O(N).
func (c *ProxyShapeComponents) Audit() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.enabled > len(c.rows) {
		return ErrEnabledCountExceedsTotal
	}
	if len(c.owners) != len(c.rows) {
		return fmt.Errorf("ecs: Audit: owners/rows length mismatch (%d vs %d)", len(c.owners), len(c.rows))
	}
	for i, owner := range c.owners {
		if idx, ok := c.index[owner]; !ok || idx != i {
			return fmt.Errorf("ecs: Audit: index[%s]=%d, want %d", owner, idx, i)
		}
	}
	return nil
}
