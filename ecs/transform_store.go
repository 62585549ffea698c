// SPDX-License-Identifier: MIT
package ecs

import (
	"fmt"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/kavelarth/broadphase/geom"
)

// BodyRow is one rigid body's world transform, sleeping state, and linear
// velocity. LinearVelocity only feeds the optional displacement-prediction
// hook (SPEC_FULL.md §7); it plays no part otherwise.
type BodyRow struct {
	World          geom.Transform
	Sleeping       bool
	LinearVelocity r3.Vector
}

// TransformComponents is the sibling columnar store (§3 "Transform
// component") keyed by body Entity, read once per proxy shape per step to
// build Tworld = Tbody . localToBody.
type TransformComponents struct {
	mu    sync.RWMutex
	rows  map[Entity]*BodyRow
}

// NewTransformComponents returns an empty store.
func NewTransformComponents() *TransformComponents {
	return &TransformComponents{rows: make(map[Entity]*BodyRow)}
}

// Add registers body with the given initial world transform, awake.
// Complexity: O(1).
func (c *TransformComponents) Add(body Entity, world geom.Transform) error {
	if body.IsNil() {
		return ErrNilEntity
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.rows[body]; exists {
		return fmt.Errorf("ecs: Add(%s): %w", body, ErrEntityAlreadyExists)
	}
	c.rows[body] = &BodyRow{World: world}
	return nil
}

// Remove deletes body's row.
// Complexity: O(1).
func (c *TransformComponents) Remove(body Entity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.rows[body]; !exists {
		return fmt.Errorf("ecs: Remove(%s): %w", body, ErrEntityNotFound)
	}
	delete(c.rows, body)
	return nil
}

// Get returns a copy of body's row.
// Complexity: O(1).
func (c *TransformComponents) Get(body Entity) (BodyRow, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	row, ok := c.rows[body]
	if !ok {
		return BodyRow{}, fmt.Errorf("ecs: Get(%s): %w", body, ErrEntityNotFound)
	}
	return *row, nil
}

// SetWorldTransform updates body's world transform.
// Complexity: O(1).
func (c *TransformComponents) SetWorldTransform(body Entity, world geom.Transform) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.rows[body]
	if !ok {
		return fmt.Errorf("ecs: SetWorldTransform(%s): %w", body, ErrEntityNotFound)
	}
	row.World = world
	return nil
}

// SetLinearVelocity updates body's linear velocity (used only by the
// displacement-prediction hook).
// Complexity: O(1).
func (c *TransformComponents) SetLinearVelocity(body Entity, v r3.Vector) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.rows[body]
	if !ok {
		return fmt.Errorf("ecs: SetLinearVelocity(%s): %w", body, ErrEntityNotFound)
	}
	row.LinearVelocity = v
	return nil
}

// Wake clears body's sleeping flag. SetLocalToBody on a proxy-shape view
// calls this on the owning body (§4.3).
// Complexity: O(1).
func (c *TransformComponents) Wake(body Entity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.rows[body]
	if !ok {
		return fmt.Errorf("ecs: Wake(%s): %w", body, ErrEntityNotFound)
	}
	row.Sleeping = false
	return nil
}

// SetSleeping sets body's sleeping flag directly.
// Complexity: O(1).
func (c *TransformComponents) SetSleeping(body Entity, sleeping bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.rows[body]
	if !ok {
		return fmt.Errorf("ecs: SetSleeping(%s): %w", body, ErrEntityNotFound)
	}
	row.Sleeping = sleeping
	return nil
}
