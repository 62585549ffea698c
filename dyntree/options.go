package dyntree

// TreeOptions controls the fattening margin, displacement-prediction factor,
// and initial arena capacity of a Tree. Use DefaultTreeOptions and the
// With... functions rather than constructing TreeOptions directly.
type TreeOptions struct {
	// Margin is added uniformly around a leaf's tight AABB to produce its fat
	// AABB, so that small motions don't force a tree update.
	Margin float64

	// PredictionFactor scales a leaf's displacement when extrapolating its
	// predicted AABB during UpdateObject; 0 turns off that extrapolation, so
	// the containment test uses the tight box alone. A non-zero displacement
	// still extends a reinserted leaf's fat AABB along its direction.
	PredictionFactor float64

	// InitialCapacity pre-sizes the node arena to avoid early reallocation.
	InitialCapacity int
}

// TreeOption configures a TreeOptions value.
type TreeOption func(*TreeOptions)

// DefaultTreeOptions returns the tree's default configuration: a 0.08 fat
// margin, a 2.0 displacement-prediction factor, and an initial capacity of 8
// nodes.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		Margin:           0.08,
		PredictionFactor: 2.0,
		InitialCapacity:  8,
	}
}

// WithMargin overrides the fat-AABB margin. Panics if margin is negative.
func WithMargin(margin float64) TreeOption {
	if margin < 0 {
		panic("dyntree: WithMargin: negative margin")
	}
	return func(o *TreeOptions) { o.Margin = margin }
}

// WithPredictionFactor overrides the displacement-prediction factor. Panics
// if factor is negative.
func WithPredictionFactor(factor float64) TreeOption {
	if factor < 0 {
		panic("dyntree: WithPredictionFactor: negative factor")
	}
	return func(o *TreeOptions) { o.PredictionFactor = factor }
}

// WithInitialCapacity overrides the initial arena capacity. Panics if
// capacity is not positive.
func WithInitialCapacity(capacity int) TreeOption {
	if capacity <= 0 {
		panic("dyntree: WithInitialCapacity: non-positive capacity")
	}
	return func(o *TreeOptions) { o.InitialCapacity = capacity }
}
