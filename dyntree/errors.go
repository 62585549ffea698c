package dyntree

import "errors"

// ErrInvalidNodeID is returned when a NodeID is NullNode, out of range, or
// currently free where a live leaf was required.
var ErrInvalidNodeID = errors.New("dyntree: invalid node id")
