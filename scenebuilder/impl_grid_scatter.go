// SPDX-License-Identifier: MIT
package scenebuilder

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/kavelarth/broadphase/broadphase"
)

const (
	methodGridScatter = "GridScatter"
	minGridScatterDim = 1
)

// GridScatter returns a SceneConstructor that places a rows x cols x layers
// lattice of same-radius sphere bodies, spacing apart on every axis,
// centered on the origin, in row-major (then layer-major) order.
// Complexity: O(N log N) expected, N = rows*cols*layers (each
// AddProxyCollisionShape is O(log N) expected).
func GridScatter(rows, cols, layers int, spacing, radius float64) SceneConstructor {
	return func(bp *broadphase.BroadPhase, cfg *sceneConfig) error {
		if rows < minGridScatterDim || cols < minGridScatterDim || layers < minGridScatterDim {
			return fmt.Errorf("%s: rows=%d cols=%d layers=%d (each must be >= %d): %w",
				methodGridScatter, rows, cols, layers, minGridScatterDim, ErrTooFewBodies)
		}
		if spacing <= 0 {
			return fmt.Errorf("%s: spacing=%g: %w", methodGridScatter, spacing, ErrInvalidExtent)
		}
		if radius <= 0 {
			return fmt.Errorf("%s: radius=%g: %w", methodGridScatter, radius, ErrInvalidRadiusRange)
		}

		originOffset := r3.Vector{
			X: -spacing * float64(rows-1) / 2,
			Y: -spacing * float64(layers-1) / 2,
			Z: -spacing * float64(cols-1) / 2,
		}

		for r := 0; r < rows; r++ {
			for l := 0; l < layers; l++ {
				for c := 0; c < cols; c++ {
					center := r3.Vector{
						X: originOffset.X + float64(r)*spacing,
						Y: originOffset.Y + float64(l)*spacing,
						Z: originOffset.Z + float64(c)*spacing,
					}
					if err := addSphereBody(bp, cfg, center, radius); err != nil {
						return fmt.Errorf("%s: cell (%d,%d,%d): %w", methodGridScatter, r, l, c, err)
					}
				}
			}
		}
		return nil
	}
}
