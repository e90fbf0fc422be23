// Package flownet provides the residual network underlying all flowlab
// algorithms: a directed capacitated multigraph over integer node IDs
// in [0, NumNodes), stored as one growable arc arena per node.
//
// # Representation
//
// Every AddEdge(u, v, c) call appends exactly two arcs:
//
//	forward: u's list ← Arc{To: v, Residual: c, Original: c}
//	twin:    v's list ← Arc{To: u, Residual: 0, Original: 0}
//
// Each records the other's position in its sibling list via Rev, so flow
// pushed on an arc is cancelled by raising the twin's residual — no
// separate flow structure exists. The invariant, at all times:
//
//	e.Residual + twin(e).Residual == e.Original + twin(e).Original
//
// Twin back-references are indices, not pointers: the adjacency arenas
// may reallocate as arcs are appended, and (node, index-in-list) is the
// only arc identity the package exposes.
//
// # Contract
//
//   - Node count is fixed at construction; there is no vertex API.
//   - Parallel arcs between the same ordered pair are kept independent,
//     never merged.
//   - Self-loops are rejected: augmenting-path search gains nothing from
//     them and they complicate residual reasoning.
//   - Arcs must be added before an algorithm runs; a network carries the
//     flow of exactly one engine call and is rebuilt, not reset.
//   - Not safe for concurrent writers. Read-only queries after an
//     algorithm completes are safe.
//
// # Errors
//
//	ErrInvalidArgument — non-positive node count, self-loop, negative capacity
//	ErrOutOfRange      — node index outside [0, NumNodes)
//
// Branch with errors.Is; messages add call context via %w wrapping.
package flownet
