// Package matching computes bipartite maximum matching by reduction to
// maximum flow on a unit-capacity network.
//
// The reduction builds one source, one node per left vertex, one node
// per right vertex, and one sink; unit arcs source→left, left→right for
// each candidate pair, and right→sink. Any maxflow engine then yields
// the matching size as the flow value, and the matched pairs are read
// back from the left→right arcs whose residual dropped below their
// original capacity (flow of exactly 1 was sent).
//
// The default engine is Dinic, for its better asymptotic behavior on
// unit-capacity graphs.
package matching

import (
	"fmt"

	"github.com/katalvlaran/flowlab/flownet"
	"github.com/katalvlaran/flowlab/maxflow"
)

// Pair is one (left, right) vertex pair, both sides zero-indexed within
// their own partition.
type Pair struct {
	Left  int
	Right int
}

// Result is the decoded matching plus the underlying flow result.
type Result struct {
	// Pairs lists the matched pairs in left-then-insertion order.
	Pairs []Pair

	// Size is len(Pairs); never exceeds min(numLeft, numRight).
	Size int

	// Flow is the engine result the matching was decoded from.
	Flow maxflow.Result
}

// MaximumMatching computes a maximum matching between numLeft left
// vertices and numRight right vertices over the candidate pairs.
// A nil algo selects maxflow.Dinic.
//
// Errors:
//   - flownet.ErrInvalidArgument on negative partition sizes.
//   - flownet.ErrOutOfRange if a pair endpoint is outside its declared
//     partition range.
func MaximumMatching(numLeft, numRight int, pairs []Pair, algo maxflow.Func) (Result, error) {
	if numLeft < 0 || numRight < 0 {
		return Result{}, fmt.Errorf("MaximumMatching: numLeft=%d numRight=%d must be non-negative: %w",
			numLeft, numRight, flownet.ErrInvalidArgument)
	}
	if algo == nil {
		algo = maxflow.Dinic
	}

	// Node layout: source, left block, right block, sink.
	const source = 0
	leftOffset := 1
	rightOffset := leftOffset + numLeft
	sink := rightOffset + numRight

	net, err := flownet.New(sink + 1)
	if err != nil {
		return Result{}, err
	}

	for u := 0; u < numLeft; u++ {
		if err = net.AddEdge(source, leftOffset+u, 1); err != nil {
			return Result{}, err
		}
	}
	for v := 0; v < numRight; v++ {
		if err = net.AddEdge(rightOffset+v, sink, 1); err != nil {
			return Result{}, err
		}
	}
	for _, p := range pairs {
		if p.Left < 0 || p.Left >= numLeft || p.Right < 0 || p.Right >= numRight {
			return Result{}, fmt.Errorf("MaximumMatching: pair (%d,%d) outside %dx%d: %w",
				p.Left, p.Right, numLeft, numRight, flownet.ErrOutOfRange)
		}
		if err = net.AddEdge(leftOffset+p.Left, rightOffset+p.Right, 1); err != nil {
			return Result{}, err
		}
	}

	flowRes, err := algo(net, source, sink)
	if err != nil {
		return Result{}, err
	}

	res := Result{Flow: flowRes}
	for u := 0; u < numLeft; u++ {
		for _, a := range net.Arcs(leftOffset + u) {
			if a.Original != 1 {
				continue // twin arcs
			}
			if a.To < rightOffset || a.To >= sink {
				continue
			}
			if a.Original-a.Residual > 0 {
				res.Pairs = append(res.Pairs, Pair{Left: u, Right: a.To - rightOffset})
			}
		}
	}
	res.Size = len(res.Pairs)

	return res, nil
}
