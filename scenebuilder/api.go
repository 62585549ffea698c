// SPDX-License-Identifier: MIT
package scenebuilder

import (
	"fmt"

	"github.com/kavelarth/broadphase/broadphase"
)

// SceneConstructor applies a deterministic (or seeded-random) set of bodies
// and proxy shapes to a broadphase.BroadPhase using the resolved
// sceneConfig. Constructors must validate parameters early and return
// sentinel errors rather than panicking.
type SceneConstructor func(bp *broadphase.BroadPhase, cfg *sceneConfig) error

// BuildScene resolves opts into a sceneConfig and applies each constructor
// to bp in order. A constructor error is wrapped with "BuildScene: %w" and
// returned immediately.
// Complexity: sum of each constructor's own cost, plus O(len(cons)).
func BuildScene(bp *broadphase.BroadPhase, opts []SceneOption, cons ...SceneConstructor) error {
	cfg := newSceneConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildScene: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(bp, cfg); err != nil {
			return fmt.Errorf("BuildScene: %w", err)
		}
	}
	return nil
}
