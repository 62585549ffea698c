// SPDX-License-Identifier: MIT
package scenebuilder

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/kavelarth/broadphase/broadphase"
	"github.com/kavelarth/broadphase/ecs"
	"github.com/kavelarth/broadphase/geom"
)

const (
	methodRandomScatter      = "RandomScatter"
	minRandomScatterBodies   = 1
	fixedScatterSeed   int64 = 1
)

// RandomScatter returns a SceneConstructor that places n bodies, each with a
// single sphere proxy shape of radius drawn uniformly from
// [radiusMin, radiusMax], at independently sampled positions uniform over
// [-extent, extent] on every axis. Without WithSeed, a fixed package-private
// seed is used so the scene is still reproducible run to run.
// Complexity: O(n log n) expected (each AddProxyCollisionShape is O(log n)
// expected against the growing tree).
func RandomScatter(n int, extent, radiusMin, radiusMax float64) SceneConstructor {
	return func(bp *broadphase.BroadPhase, cfg *sceneConfig) error {
		if n < minRandomScatterBodies {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomScatter, n, minRandomScatterBodies, ErrTooFewBodies)
		}
		if extent <= 0 {
			return fmt.Errorf("%s: extent=%g: %w", methodRandomScatter, extent, ErrInvalidExtent)
		}
		if radiusMin <= 0 || radiusMin > radiusMax {
			return fmt.Errorf("%s: radius range [%g,%g]: %w", methodRandomScatter, radiusMin, radiusMax, ErrInvalidRadiusRange)
		}

		rng := cfg.rng
		if rng == nil {
			seeded := newSceneConfig(WithSeed(fixedScatterSeed))
			rng = seeded.rng
		}

		for i := 0; i < n; i++ {
			center := r3.Vector{
				X: (rng.Float64()*2 - 1) * extent,
				Y: (rng.Float64()*2 - 1) * extent,
				Z: (rng.Float64()*2 - 1) * extent,
			}
			radius := radiusMin + rng.Float64()*(radiusMax-radiusMin)

			if err := addSphereBody(bp, cfg, center, radius); err != nil {
				return fmt.Errorf("%s: body %d: %w", methodRandomScatter, i, err)
			}
		}
		return nil
	}
}

// addSphereBody registers one new body at center with a single sphere proxy
// shape, indexed with the broad-phase.
func addSphereBody(bp *broadphase.BroadPhase, cfg *sceneConfig, center r3.Vector, radius float64) error {
	world := geom.Transform{Translation: center, Rotation: geom.Identity().Rotation}
	body, err := bp.AddBody(world)
	if err != nil {
		return err
	}

	proxy := bp.Entities().New()
	shape := geom.Sphere{Radius: radius}
	row := ecs.ProxyShapeRow{
		BodyEntity:   body,
		Shape:        shape,
		LocalToBody:  geom.Identity(),
		CategoryBits: cfg.categoryBits,
		MaskBits:     cfg.maskBits,
	}
	if err := bp.Proxies().Add(proxy, row); err != nil {
		return err
	}
	return bp.AddProxyCollisionShape(proxy, shape.ComputeAABB(world))
}
