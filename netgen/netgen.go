package netgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/flowlab/flownet"
	"github.com/katalvlaran/flowlab/matching"
)

// Edge is one (tail, head, capacity) triple of a generated digraph.
type Edge struct {
	U        int
	V        int
	Capacity float64
}

// Probability domain for all Bernoulli trials.
const (
	probMin = 0.0
	probMax = 1.0
)

// ErdosRenyi samples a directed graph over n nodes: every ordered pair
// u→v with u != v is kept independently with probability p, capacity
// uniform in [1, capMax].
//
// Errors (all flownet.ErrInvalidArgument): n <= 0, p outside [0,1],
// capMax <= 0, nil rng.
func ErdosRenyi(rng *rand.Rand, n int, p float64, capMax int) ([]Edge, error) {
	if err := validateCommon(rng, "ErdosRenyi", p); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("ErdosRenyi: n=%d must be positive: %w", n, flownet.ErrInvalidArgument)
	}
	if capMax <= 0 {
		return nil, fmt.Errorf("ErdosRenyi: capMax=%d must be positive: %w", capMax, flownet.ErrInvalidArgument)
	}

	var edges []Edge
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if rng.Float64() < p {
				edges = append(edges, Edge{U: u, V: v, Capacity: randCap(rng, capMax)})
			}
		}
	}
	return edges, nil
}

// Layered samples a layered digraph: node 0 is the source, nodes
// 1..layers*width form the grid layer by layer, and the last node is
// the sink. The source fans into the whole first layer and the whole
// last layer fans into the sink (both with random capacities); each
// consecutive layer pair is connected by Bernoulli(p) arcs.
//
// Returns the total node count alongside the edge list so callers can
// size the network; the sink index is numNodes-1.
func Layered(rng *rand.Rand, layers, width int, p float64, capMax int) (numNodes int, edges []Edge, err error) {
	if err = validateCommon(rng, "Layered", p); err != nil {
		return 0, nil, err
	}
	if layers <= 0 || width <= 0 {
		return 0, nil, fmt.Errorf("Layered: layers=%d width=%d must be positive: %w", layers, width, flownet.ErrInvalidArgument)
	}
	if capMax <= 0 {
		return 0, nil, fmt.Errorf("Layered: capMax=%d must be positive: %w", capMax, flownet.ErrInvalidArgument)
	}

	const source = 0
	firstLayer := 1
	sink := 1 + layers*width
	numNodes = sink + 1

	for i := 0; i < width; i++ {
		edges = append(edges, Edge{U: source, V: firstLayer + i, Capacity: randCap(rng, capMax)})
	}
	lastLayer := firstLayer + (layers-1)*width
	for i := 0; i < width; i++ {
		edges = append(edges, Edge{U: lastLayer + i, V: sink, Capacity: randCap(rng, capMax)})
	}

	for layer := 0; layer < layers-1; layer++ {
		baseU := firstLayer + layer*width
		baseV := firstLayer + (layer+1)*width
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				if rng.Float64() < p {
					edges = append(edges, Edge{U: baseU + i, V: baseV + j, Capacity: randCap(rng, capMax)})
				}
			}
		}
	}

	return numNodes, edges, nil
}

// Bipartite samples candidate pairs: each (left, right) combination is
// kept independently with probability p. Partition sizes may be zero.
func Bipartite(rng *rand.Rand, numLeft, numRight int, p float64) ([]matching.Pair, error) {
	if err := validateCommon(rng, "Bipartite", p); err != nil {
		return nil, err
	}
	if numLeft < 0 || numRight < 0 {
		return nil, fmt.Errorf("Bipartite: numLeft=%d numRight=%d must be non-negative: %w",
			numLeft, numRight, flownet.ErrInvalidArgument)
	}

	var pairs []matching.Pair
	for u := 0; u < numLeft; u++ {
		for v := 0; v < numRight; v++ {
			if rng.Float64() < p {
				pairs = append(pairs, matching.Pair{Left: u, Right: v})
			}
		}
	}
	return pairs, nil
}

// Build assembles a fresh network from a generated edge list.
func Build(numNodes int, edges []Edge) (*flownet.Network, error) {
	net, err := flownet.New(numNodes)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = net.AddEdge(e.U, e.V, e.Capacity); err != nil {
			return nil, err
		}
	}
	return net, nil
}

// validateCommon applies the checks every generator shares.
func validateCommon(rng *rand.Rand, method string, p float64) error {
	if rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, flownet.ErrInvalidArgument)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%g not in [%g,%g]: %w", method, p, probMin, probMax, flownet.ErrInvalidArgument)
	}
	return nil
}

// randCap draws an integer capacity uniform in [1, capMax].
func randCap(rng *rand.Rand, capMax int) float64 {
	return float64(1 + rng.Intn(capMax))
}
