// SPDX-License-Identifier: MIT
package scenebuilder

import "errors"

var (
	// ErrTooFewBodies indicates a constructor's requested body count was
	// below its minimum (usually 1).
	ErrTooFewBodies = errors.New("scenebuilder: too few bodies requested")

	// ErrInvalidExtent indicates a non-positive scatter extent or spacing.
	ErrInvalidExtent = errors.New("scenebuilder: extent or spacing must be positive")

	// ErrInvalidRadiusRange indicates a radius range with min > max or a
	// non-positive minimum.
	ErrInvalidRadiusRange = errors.New("scenebuilder: invalid radius range")

	// ErrConstructFailed wraps a nil SceneConstructor passed to BuildScene.
	ErrConstructFailed = errors.New("scenebuilder: scene construction failed")
)
