package maxflow

import (
	"math"

	"github.com/katalvlaran/flowlab/flownet"
)

// Dinic computes the maximum flow from source to sink in phases.
//
// Each phase first runs one full BFS over positive-residual arcs,
// assigning every reached node a level equal to its arc distance from
// the source (no early exit at the sink — the whole reachable set is
// leveled). If the sink ends up unleveled the current flow is maximum.
// Otherwise a recursive DFS repeatedly sends flow along paths that
// advance exactly one level per arc, guided by a per-node "next arc"
// cursor so an exhausted subtree is never re-scanned within the phase;
// the cursors reset only when the next level graph is built. A zero
// send signals phase exhaustion and a new phase begins.
//
// The cursor is an amortization device, not a correctness requirement;
// recursion depth is bounded by the node count.
//
// The network is mutated in place; see the package contract.
//
// Complexity: O(V² · E) time generally, O(E · √V) on unit capacities;
// O(V) extra space per phase.
func Dinic(net *flownet.Network, source, sink int) (Result, error) {
	if err := validate(net, source, sink); err != nil {
		return Result{}, err
	}

	var (
		counters Counters
		flow     float64
	)
	n := net.NumNodes()

	level := make([]int, n)
	iter := make([]int, n)

	// send is the recursive blocking-flow push; every invocation is
	// tallied, matching the engine's DFSCalls contract.
	var send func(u int, pushed float64) float64
	send = func(u int, pushed float64) float64 {
		counters.DFSCalls++
		if pushed <= 0 {
			return 0
		}
		if u == sink {
			return pushed
		}
		arcs := net.Arcs(u)
		for iter[u] < len(arcs) {
			i := iter[u]
			counters.DFSEdgeScans++
			counters.EdgeScans++
			a := arcs[i]
			if a.Residual > 0 && level[a.To] == level[u]+1 {
				sent := send(a.To, math.Min(pushed, a.Residual))
				if sent > 0 {
					arcs[i].Residual -= sent
					net.Arcs(a.To)[a.Rev].Residual += sent
					return sent
				}
			}
			iter[u]++
		}
		return 0
	}

	for {
		counters.PhaseCount++
		counters.BFSCount++

		// Level assignment: full BFS, not early-exited at the sink.
		for i := range level {
			level[i] = -1
		}
		queue := make([]int, 0, n)
		queue = append(queue, source)
		level[source] = 0
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, a := range net.Arcs(u) {
				counters.BFSEdgeScans++
				counters.EdgeScans++
				if a.Residual <= 0 {
					continue
				}
				if level[a.To] != -1 {
					continue
				}
				level[a.To] = level[u] + 1
				queue = append(queue, a.To)
			}
		}

		if level[sink] == -1 {
			break
		}

		// Cursors reset once per phase.
		for i := range iter {
			iter[i] = 0
		}

		for {
			pushed := send(source, math.Inf(1))
			if pushed == 0 {
				break
			}
			flow += pushed
		}
	}

	return Result{FlowValue: flow, Counters: counters}, nil
}
