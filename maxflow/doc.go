// Package maxflow implements two interchangeable maximum-flow engines
// over a flownet.Network:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting
//     paths, early-exited once the sink is discovered; bottleneck and
//     augmentation walks over the single-parent tree.
//
//   - Time:   O(V · E²) worst case.
//
//   - Memory: O(V) per search round for the parent tree and queue.
//
//   - Dinic
//
//   - Method: phases of full BFS level assignment followed by a
//     blocking flow found with a recursive, level-respecting DFS that
//     uses a per-node "next arc" cursor (reset only between phases).
//
//   - Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V) per phase for levels and cursors; DFS depth ≤ V.
//
// Both mutate the network's residual capacities in place and leave it in
// a maximum-flow state, so source-side reachability over positive
// residual arcs afterwards defines the minimum cut (see package mincut).
// For any network, source, and sink the two engines return the same flow
// value — the max-flow-min-cut duality guarantee — though their counters
// and wall-clock cost differ arbitrarily.
//
// # Counters
//
// Each call owns and returns a fresh Counters record: search rounds
// (BFSCount), augmentations (AugmentCount), level-graph rebuilds
// (PhaseCount), recursive sends (DFSCalls), and arc-scan tallies split
// by search kind plus a shared total. They are diagnostics only and
// serialize to stable snake_case keys via AsMap for tabulation.
//
// # Contract
//
// A network carries the flow of exactly one engine call; build a fresh
// network to run another. Calls are synchronous and run to completion —
// no cancellation, no partial results. Capacities are non-negative
// float64 values; bottlenecks take the path minimum and flow accumulates
// by exact floating-point summation.
//
// # Errors
//
//	flownet.ErrInvalidArgument — source equals sink
//	flownet.ErrOutOfRange      — source or sink outside [0, NumNodes)
package maxflow
