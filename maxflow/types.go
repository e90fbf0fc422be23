package maxflow

import (
	"fmt"

	"github.com/katalvlaran/flowlab/flownet"
)

// Counters are the diagnostic tallies of one engine call. They never
// affect the computed flow; they exist so experiments can compare
// algorithmic behavior beyond wall-clock time.
type Counters struct {
	// BFSCount is the number of breadth-first search rounds.
	BFSCount int

	// AugmentCount is the number of successful augmenting paths
	// (Edmonds–Karp only; zero for Dinic).
	AugmentCount int

	// PhaseCount is the number of level-graph rebuilds
	// (Dinic only; zero for Edmonds–Karp).
	PhaseCount int

	// DFSCalls is the number of recursive blocking-flow invocations
	// (Dinic only).
	DFSCalls int

	// BFSEdgeScans counts arcs examined during breadth-first search.
	BFSEdgeScans int

	// DFSEdgeScans counts arcs examined during depth-first sends.
	DFSEdgeScans int

	// EdgeScans is the shared total of all arc examinations.
	EdgeScans int
}

// AsMap serializes the counters under stable snake_case keys, one
// column per key in downstream trial tables.
func (c Counters) AsMap() map[string]int {
	return map[string]int{
		"bfs_count":      c.BFSCount,
		"augment_count":  c.AugmentCount,
		"phase_count":    c.PhaseCount,
		"dfs_calls":      c.DFSCalls,
		"bfs_edge_scans": c.BFSEdgeScans,
		"dfs_edge_scans": c.DFSEdgeScans,
		"edge_scans":     c.EdgeScans,
	}
}

// Result is the outcome of one engine call: the total flow pushed from
// source to sink plus the call's own counters.
type Result struct {
	FlowValue float64
	Counters  Counters
}

// Func is the shared engine signature; EdmondsKarp and Dinic both
// satisfy it so callers can select an algorithm by value.
type Func func(net *flownet.Network, source, sink int) (Result, error)

// Algorithm names accepted by ByName.
const (
	NameEdmondsKarp = "edmonds_karp"
	NameDinic       = "dinic"
)

// ByName resolves an engine from its canonical name, for callers that
// select algorithms through configuration.
func ByName(name string) (Func, error) {
	switch name {
	case NameEdmondsKarp:
		return EdmondsKarp, nil
	case NameDinic:
		return Dinic, nil
	default:
		return nil, fmt.Errorf("maxflow: unknown algorithm %q: %w", name, flownet.ErrInvalidArgument)
	}
}

// validate applies the shared engine contract checks, eagerly and
// before any mutation.
func validate(net *flownet.Network, source, sink int) error {
	if source == sink {
		return fmt.Errorf("maxflow: source %d equals sink: %w", source, flownet.ErrInvalidArgument)
	}
	n := net.NumNodes()
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return fmt.Errorf("maxflow: source=%d sink=%d outside [0,%d): %w", source, sink, n, flownet.ErrOutOfRange)
	}
	return nil
}
