package scenebuilder

import "math/rand"

// SceneOption customizes a sceneConfig before a scene's constructors run.
type SceneOption func(cfg *sceneConfig)

// sceneConfig holds the configurable parameters shared by scene
// constructors: an optional RNG source (nil makes random-layout
// constructors use a fixed package-private seed) and category/mask bits applied to every shape a constructor adds,
// unless the constructor documents otherwise.
type sceneConfig struct {
	rng          *rand.Rand
	categoryBits uint16
	maskBits     uint16
}

func newSceneConfig(opts ...SceneOption) *sceneConfig {
	cfg := &sceneConfig{categoryBits: 0xFFFF, maskBits: 0xFFFF}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the scene's RNG for reproducible random layouts. Without
// it, random-layout constructors (e.g. RandomScatter) fall back to a
// package-private fixed seed rather than real nondeterminism, so scenes stay
// reproducible by default.
func WithSeed(seed int64) SceneOption {
	return func(cfg *sceneConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithFilterBits sets the category/mask bits every constructor in this scene
// assigns to the shapes it adds.
func WithFilterBits(category, mask uint16) SceneOption {
	return func(cfg *sceneConfig) {
		cfg.categoryBits = category
		cfg.maskBits = mask
	}
}
