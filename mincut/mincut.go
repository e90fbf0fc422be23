// Package mincut derives a minimum s-t cut from a network that an
// engine has already brought to maximum flow.
//
// One breadth-first traversal over arcs with positive residual capacity
// marks every node reachable from the source; the cut is exactly the
// set of original (non-twin) arcs crossing from a reachable tail to an
// unreachable head, and by max-flow-min-cut duality its total original
// capacity equals the flow value the engine returned. That equality is
// the chief correctness oracle of the repository and is asserted
// wherever flow and cut are computed together.
//
// The derivation is pure and read-only; running it on a zero-flow
// network is valid but yields the trivial cut of whatever the source
// cannot reach.
package mincut

import (
	"fmt"

	"github.com/katalvlaran/flowlab/flownet"
)

// CutArc is one original arc crossing the cut, tail-side to sink-side.
type CutArc struct {
	From     int
	To       int
	Capacity float64
}

// Result describes the source side of the cut and the arcs crossing it.
type Result struct {
	// Reachable flags, per node, whether the residual graph still has a
	// positive-capacity path from the source.
	Reachable []bool

	// CutArcs are the original arcs from reachable to unreachable, in
	// tail-then-insertion order.
	CutArcs []CutArc

	// CutCapacity is the total original capacity of CutArcs; equals the
	// maximum flow value once an engine has run.
	CutCapacity float64
}

// MinCut computes source-side reachability over the residual graph and
// collects the crossing arcs. Returns flownet.ErrOutOfRange if source
// is not a valid node index.
func MinCut(net *flownet.Network, source int) (Result, error) {
	if source < 0 || source >= net.NumNodes() {
		return Result{}, fmt.Errorf("MinCut: source=%d outside [0,%d): %w", source, net.NumNodes(), flownet.ErrOutOfRange)
	}

	reachable := make([]bool, net.NumNodes())
	queue := []int{source}
	reachable[source] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range net.Arcs(u) {
			if a.Residual <= 0 || reachable[a.To] {
				continue
			}
			reachable[a.To] = true
			queue = append(queue, a.To)
		}
	}

	res := Result{Reachable: reachable}
	for _, oa := range net.OriginalArcs() {
		if !reachable[oa.From] || reachable[oa.Arc.To] {
			continue
		}
		res.CutArcs = append(res.CutArcs, CutArc{From: oa.From, To: oa.Arc.To, Capacity: oa.Arc.Original})
		res.CutCapacity += oa.Arc.Original
	}

	return res, nil
}
