package broadphase

import "github.com/kavelarth/broadphase/dyntree"

// Options controls a BroadPhase's tree configuration and optional
// displacement-prediction behavior.
type Options struct {
	// TreeOptions are forwarded verbatim to dyntree.NewTree.
	TreeOptions []dyntree.TreeOption

	// PredictEnabled turns on feeding a body's current linear velocity to
	// the tree as an UpdateObject displacement hint, so a fast-moving
	// proxy's fat AABB is stretched ahead of travel instead of merely
	// re-centered. Off by default: most callers recompute AABBs often
	// enough that the plain margin is sufficient, and prediction adds a
	// per-step velocity read this module has no other use for.
	PredictEnabled bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the broad-phase's default configuration:
// displacement prediction disabled, default tree options.
func DefaultOptions() Options {
	return Options{}
}

// WithDisplacementPrediction turns displacement-based fat-AABB prediction on
// or off (see Options.PredictEnabled).
func WithDisplacementPrediction(enabled bool) Option {
	return func(o *Options) { o.PredictEnabled = enabled }
}

// WithTreeOptions forwards opts to the underlying dyntree.Tree's
// construction.
func WithTreeOptions(opts ...dyntree.TreeOption) Option {
	return func(o *Options) { o.TreeOptions = opts }
}
