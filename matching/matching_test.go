package matching_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowlab/flownet"
	"github.com/katalvlaran/flowlab/matching"
	"github.com/katalvlaran/flowlab/maxflow"
)

type MatchingSuite struct {
	suite.Suite
}

// referencePairs is the 3x3 instance with a perfect matching:
// {(0,0),(0,1),(1,1),(1,2),(2,2)}.
var referencePairs = []matching.Pair{
	{Left: 0, Right: 0}, {Left: 0, Right: 1},
	{Left: 1, Right: 1}, {Left: 1, Right: 2},
	{Left: 2, Right: 2},
}

// TestPerfectMatchingDefaultEngine: size 3 with the default (Dinic)
// engine, and the flow result matches the matching size.
func (s *MatchingSuite) TestPerfectMatchingDefaultEngine() {
	res, err := matching.MaximumMatching(3, 3, referencePairs, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Size)
	require.Equal(s.T(), 3.0, res.Flow.FlowValue)
	requireValidMatching(s.T(), 3, 3, res.Pairs)
}

// TestPerfectMatchingEdmondsKarp: same instance, explicit engine choice.
func (s *MatchingSuite) TestPerfectMatchingEdmondsKarp() {
	res, err := matching.MaximumMatching(3, 3, referencePairs, maxflow.EdmondsKarp)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Size)
}

// TestUnmatchableVertex: a left vertex with no candidates caps the size.
func (s *MatchingSuite) TestUnmatchableVertex() {
	pairs := []matching.Pair{{Left: 0, Right: 0}, {Left: 1, Right: 0}}
	res, err := matching.MaximumMatching(3, 2, pairs, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Size)
	requireValidMatching(s.T(), 3, 2, res.Pairs)
}

// TestEmptyInstances: zero pairs or zero-sized partitions match nothing.
func (s *MatchingSuite) TestEmptyInstances() {
	res, err := matching.MaximumMatching(2, 2, nil, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Size)

	res, err = matching.MaximumMatching(0, 0, nil, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Size)
}

// TestValidation: negative sizes and out-of-range pair endpoints.
func (s *MatchingSuite) TestValidation() {
	_, err := matching.MaximumMatching(-1, 2, nil, nil)
	require.True(s.T(), errors.Is(err, flownet.ErrInvalidArgument))

	_, err = matching.MaximumMatching(2, 2, []matching.Pair{{Left: 2, Right: 0}}, nil)
	require.True(s.T(), errors.Is(err, flownet.ErrOutOfRange))

	_, err = matching.MaximumMatching(2, 2, []matching.Pair{{Left: 0, Right: -1}}, nil)
	require.True(s.T(), errors.Is(err, flownet.ErrOutOfRange))
}

// TestRandomizedEnginesAgree: across seeds, both engines produce
// matchings of equal size and every matching is structurally valid.
func (s *MatchingSuite) TestRandomizedEnginesAgree() {
	const (
		numLeft  = 9
		numRight = 7
		p        = 0.3
	)
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		var pairs []matching.Pair
		for u := 0; u < numLeft; u++ {
			for v := 0; v < numRight; v++ {
				if rng.Float64() < p {
					pairs = append(pairs, matching.Pair{Left: u, Right: v})
				}
			}
		}

		di, err := matching.MaximumMatching(numLeft, numRight, pairs, maxflow.Dinic)
		require.NoError(s.T(), err)
		ek, err := matching.MaximumMatching(numLeft, numRight, pairs, maxflow.EdmondsKarp)
		require.NoError(s.T(), err)

		require.Equal(s.T(), di.Size, ek.Size, "seed %d", seed)
		requireValidMatching(s.T(), numLeft, numRight, di.Pairs)
		requireValidMatching(s.T(), numLeft, numRight, ek.Pairs)
	}
}

// requireValidMatching checks the structural invariants: valid indices,
// no vertex reused on either side, size within min(left, right).
func requireValidMatching(t require.TestingT, numLeft, numRight int, pairs []matching.Pair) {
	limit := numLeft
	if numRight < limit {
		limit = numRight
	}
	require.LessOrEqual(t, len(pairs), limit)

	leftSeen := make(map[int]bool, len(pairs))
	rightSeen := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		require.GreaterOrEqual(t, p.Left, 0)
		require.Less(t, p.Left, numLeft)
		require.GreaterOrEqual(t, p.Right, 0)
		require.Less(t, p.Right, numRight)
		require.False(t, leftSeen[p.Left], "left vertex %d matched twice", p.Left)
		require.False(t, rightSeen[p.Right], "right vertex %d matched twice", p.Right)
		leftSeen[p.Left] = true
		rightSeen[p.Right] = true
	}
}

func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}
