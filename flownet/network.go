package flownet

import "fmt"

// Arc is one directed edge record inside a node's adjacency arena.
//
// Residual is the only mutable field; engines decrement it on the
// forward arc and increment it on the twin by the same amount, which
// preserves the conservation invariant documented in doc.go.
// Original is zero for twin arcs, which is how derivations distinguish
// caller-created arcs from the reverse bookkeeping pairs.
type Arc struct {
	// To is the destination node of this arc.
	To int

	// Rev is the index, within To's adjacency list, of this arc's twin.
	Rev int

	// Residual is the remaining capacity on this arc.
	Residual float64

	// Original is the capacity at creation time; immutable afterwards.
	Original float64
}

// Network is the residual network: one ordered arc arena per node.
// Insertion order is significant — it fixes traversal order during
// search and therefore the tie-break policy for augmenting paths.
type Network struct {
	adj [][]Arc
}

// New creates a network with numNodes nodes and no arcs.
// Returns ErrInvalidArgument if numNodes <= 0.
func New(numNodes int) (*Network, error) {
	if numNodes <= 0 {
		return nil, fmt.Errorf("New: numNodes=%d must be positive: %w", numNodes, ErrInvalidArgument)
	}
	return &Network{adj: make([][]Arc, numNodes)}, nil
}

// NumNodes reports the fixed node count chosen at construction.
func (n *Network) NumNodes() int { return len(n.adj) }

// AddEdge appends a forward arc u→v with the given capacity and its
// zero-capacity twin v→u, recording each as the other's Rev index.
// Parallel arcs between the same ordered pair stay independent.
//
// Errors:
//   - ErrOutOfRange if u or v is not a valid node index.
//   - ErrInvalidArgument on a self-loop (u == v) or negative capacity.
func (n *Network) AddEdge(u, v int, capacity float64) error {
	if u < 0 || u >= len(n.adj) || v < 0 || v >= len(n.adj) {
		return fmt.Errorf("AddEdge(%d,%d): node index outside [0,%d): %w", u, v, len(n.adj), ErrOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): self-loops are not supported: %w", u, v, ErrInvalidArgument)
	}
	if capacity < 0 {
		return fmt.Errorf("AddEdge(%d,%d): capacity %g must be non-negative: %w", u, v, capacity, ErrInvalidArgument)
	}

	// Each arc's Rev is the position its twin is about to occupy.
	forward := Arc{To: v, Rev: len(n.adj[v]), Residual: capacity, Original: capacity}
	twin := Arc{To: u, Rev: len(n.adj[u]), Residual: 0, Original: 0}

	n.adj[u] = append(n.adj[u], forward)
	n.adj[v] = append(n.adj[v], twin)

	return nil
}

// Arcs returns the live adjacency slice of u. The backing array is
// shared with the network: engines index into it to mutate residuals
// in place (arcs := net.Arcs(u); arcs[i].Residual -= f). Callers must
// not append to the returned slice.
//
// No bounds check: u comes from the network's own [0, NumNodes) range
// in every supported call path; an invalid index is a programmer error
// and panics as any slice access would.
func (n *Network) Arcs(u int) []Arc { return n.adj[u] }

// OriginalArc pairs a tail node with one of its caller-created arcs.
type OriginalArc struct {
	From int
	Arc  Arc
}

// OriginalArcs collects every non-twin arc (Original > 0) with its tail
// node, in tail-then-insertion order. Zero-capacity caller arcs carry no
// flow and cannot cross a cut, so excluding them alongside twins is safe.
func (n *Network) OriginalArcs() []OriginalArc {
	var out []OriginalArc
	for u, arcs := range n.adj {
		for _, a := range arcs {
			if a.Original > 0 {
				out = append(out, OriginalArc{From: u, Arc: a})
			}
		}
	}
	return out
}
