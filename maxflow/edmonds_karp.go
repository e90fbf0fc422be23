package maxflow

import (
	"math"

	"github.com/katalvlaran/flowlab/flownet"
)

// parentRef records how a node was discovered: the predecessor node and
// the index of the arc used, within the predecessor's adjacency list.
// A node value of -1 means undiscovered.
type parentRef struct {
	node int
	arc  int
}

// EdmondsKarp computes the maximum flow from source to sink by
// repeatedly augmenting along a shortest (fewest-arc) residual path.
//
// Each round runs one BFS restricted to arcs with positive residual
// capacity, building a single-parent tree and stopping discovery early
// once the sink is reached. If the sink stays undiscovered the current
// flow is maximum and the engine returns. Otherwise the parent chain is
// walked twice — once for the bottleneck, once to apply it to each
// forward arc and its twin — and the search repeats.
//
// The network is mutated in place; see the package contract.
//
// Complexity: O(V · E²) time, O(V) extra space per round.
func EdmondsKarp(net *flownet.Network, source, sink int) (Result, error) {
	if err := validate(net, source, sink); err != nil {
		return Result{}, err
	}

	var (
		counters Counters
		flow     float64
	)
	n := net.NumNodes()

	for {
		counters.BFSCount++

		parent := make([]parentRef, n)
		for i := range parent {
			parent[i] = parentRef{node: -1, arc: -1}
		}
		parent[source] = parentRef{node: source, arc: -1}

		queue := make([]int, 0, n)
		queue = append(queue, source)

		for len(queue) > 0 && parent[sink].node < 0 {
			u := queue[0]
			queue = queue[1:]
			arcs := net.Arcs(u)
			for i := range arcs {
				counters.BFSEdgeScans++
				counters.EdgeScans++
				a := arcs[i]
				if a.Residual <= 0 {
					continue
				}
				if parent[a.To].node >= 0 {
					continue
				}
				parent[a.To] = parentRef{node: u, arc: i}
				if a.To == sink {
					break
				}
				queue = append(queue, a.To)
			}
		}

		if parent[sink].node < 0 {
			break
		}

		// First walk: bottleneck along the parent chain.
		bottleneck := math.Inf(1)
		for v := sink; v != source; {
			p := parent[v]
			if a := net.Arcs(p.node)[p.arc]; a.Residual < bottleneck {
				bottleneck = a.Residual
			}
			v = p.node
		}

		// Second walk: push the bottleneck onto each arc and its twin.
		for v := sink; v != source; {
			p := parent[v]
			arcs := net.Arcs(p.node)
			arcs[p.arc].Residual -= bottleneck
			net.Arcs(v)[arcs[p.arc].Rev].Residual += bottleneck
			v = p.node
		}

		flow += bottleneck
		counters.AugmentCount++
	}

	return Result{FlowValue: flow, Counters: counters}, nil
}
