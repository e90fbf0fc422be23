// Package netgen produces the synthetic graph families used by the
// flowlab experiments: Erdős–Rényi digraphs, layered digraphs, and
// random bipartite pair sets.
//
// Contract (shared by all generators):
//   - Validate parameters first; fail fast with sentinel-wrapped errors
//     and zero side effects on invalid input.
//   - Deterministic for a fixed *rand.Rand seed: stable node order,
//     stable trial order (outer index ascending, inner ascending), so
//     equal seeds reproduce equal edge lists.
//   - Generators return edge lists, not networks; Build assembles a
//     flownet.Network when one is needed.
//
// Capacities are drawn uniformly from the integers [1, capMax] and
// returned as float64, matching the engines' numeric policy.
package netgen
