package maxflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowlab/flownet"
	"github.com/katalvlaran/flowlab/maxflow"
)

// buildNetwork assembles a network from (u, v, cap) triples.
func buildNetwork(t require.TestingT, numNodes int, edges [][3]float64) *flownet.Network {
	net, err := flownet.New(numNodes)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, net.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	return net
}

// diamondEdges is the 4-node reference network with max flow 5:
// (0→1 cap 3), (0→2 cap 2), (1→2 cap 1), (1→3 cap 2), (2→3 cap 4).
var diamondEdges = [][3]float64{
	{0, 1, 3}, {0, 2, 2}, {1, 2, 1}, {1, 3, 2}, {2, 3, 4},
}

// EdmondsKarpSuite groups tests for the augmenting-path engine.
type EdmondsKarpSuite struct {
	suite.Suite
}

// TestSingleEdge: 0→1 (cap 5) ⇒ max flow 5.
func (s *EdmondsKarpSuite) TestSingleEdge() {
	net := buildNetwork(s.T(), 2, [][3]float64{{0, 1, 5}})

	res, err := maxflow.EdmondsKarp(net, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, res.FlowValue)
	require.Equal(s.T(), 0.0, net.Arcs(0)[0].Residual, "forward exhausted")
	require.Equal(s.T(), 5.0, net.Arcs(1)[0].Residual, "twin carries the flow")
}

// TestDiamond: the reference 4-node network ⇒ max flow 5.
func (s *EdmondsKarpSuite) TestDiamond() {
	net := buildNetwork(s.T(), 4, diamondEdges)

	res, err := maxflow.EdmondsKarp(net, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, res.FlowValue)
}

// TestChainBottleneck: 0→1(5), 1→2(2), 2→3(7) ⇒ the middle arc caps the
// flow at 2.
func (s *EdmondsKarpSuite) TestChainBottleneck() {
	net := buildNetwork(s.T(), 4, [][3]float64{{0, 1, 5}, {1, 2, 2}, {2, 3, 7}})

	res, err := maxflow.EdmondsKarp(net, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, res.FlowValue)
}

// TestDisconnectedSink: no path ⇒ zero flow after a single search round.
func (s *EdmondsKarpSuite) TestDisconnectedSink() {
	net := buildNetwork(s.T(), 3, [][3]float64{{0, 1, 4}})

	res, err := maxflow.EdmondsKarp(net, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, res.FlowValue)
	require.Equal(s.T(), 1, res.Counters.BFSCount)
	require.Equal(s.T(), 0, res.Counters.AugmentCount)
}

// TestParallelArcsSum: unmerged parallel arcs both carry flow.
func (s *EdmondsKarpSuite) TestParallelArcsSum() {
	net := buildNetwork(s.T(), 2, [][3]float64{{0, 1, 2}, {0, 1, 5}})

	res, err := maxflow.EdmondsKarp(net, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, res.FlowValue)
}

// TestCounters verifies the engine's counter semantics: one trailing
// empty search round, augment-only tallies, and the shared scan total.
func (s *EdmondsKarpSuite) TestCounters() {
	net := buildNetwork(s.T(), 4, diamondEdges)

	res, err := maxflow.EdmondsKarp(net, 0, 3)
	require.NoError(s.T(), err)

	c := res.Counters
	require.Equal(s.T(), c.AugmentCount+1, c.BFSCount, "one failed round terminates the engine")
	require.Positive(s.T(), c.AugmentCount)
	require.Zero(s.T(), c.PhaseCount, "phases belong to Dinic")
	require.Zero(s.T(), c.DFSCalls)
	require.Zero(s.T(), c.DFSEdgeScans)
	require.Equal(s.T(), c.BFSEdgeScans, c.EdgeScans)
}

// TestValidation covers the shared eager checks.
func (s *EdmondsKarpSuite) TestValidation() {
	net := buildNetwork(s.T(), 2, [][3]float64{{0, 1, 1}})

	_, err := maxflow.EdmondsKarp(net, 1, 1)
	require.True(s.T(), errors.Is(err, flownet.ErrInvalidArgument))

	_, err = maxflow.EdmondsKarp(net, -1, 1)
	require.True(s.T(), errors.Is(err, flownet.ErrOutOfRange))

	_, err = maxflow.EdmondsKarp(net, 0, 2)
	require.True(s.T(), errors.Is(err, flownet.ErrOutOfRange))
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
