package flownet

import "errors"

// Sentinel errors shared by flownet and the algorithm packages layered
// on top of it (maxflow, mincut, matching). Only these two variables are
// exposed; callers MUST branch with errors.Is, not string comparison.
// Implementations attach call context with %w wrapping.
var (
	// ErrInvalidArgument reports malformed input: a non-positive node
	// count, a self-loop, a negative capacity, equal source and sink,
	// or negative partition sizes.
	ErrInvalidArgument = errors.New("flownet: invalid argument")

	// ErrOutOfRange reports a node, source, sink, or vertex reference
	// outside the valid index range [0, NumNodes).
	ErrOutOfRange = errors.New("flownet: index out of range")
)
