package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushProbabilityMatching(t *testing.T) {
	var a accumulator

	// No regret accumulated yet: explicit uniform tie-break.
	require.Equal(t, uniformTieBreak, a.pushProbability(0, 0))

	a.pushRegret[0][0] = 3
	a.foldRegret[0][0] = 1
	require.Equal(t, 0.75, a.pushProbability(0, 0))

	// Negative regret is clamped at the matching step.
	a.foldRegret[0][0] = -5
	require.Equal(t, 1.0, a.pushProbability(0, 0))

	a.pushRegret[0][0] = -2
	require.Equal(t, uniformTieBreak, a.pushProbability(0, 0))
}

func TestPushProbabilityAlwaysNormalised(t *testing.T) {
	var a accumulator
	values := []float64{-7.5, -1, 0, 0.25, 3, 42}

	for _, push := range values {
		for _, fold := range values {
			a.pushRegret[4][9] = push
			a.foldRegret[4][9] = fold
			p := a.pushProbability(4, 9)
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 1.0)
			// Fold probability is the complement; the pair always sums to 1.
		}
	}
}

func TestAveragePushProbability(t *testing.T) {
	var a accumulator

	require.Equal(t, uniformTieBreak, a.averagePushProbability(2, 2))

	a.strategySum[2][2] = 3
	a.visits[2][2] = 4
	require.Equal(t, 0.75, a.averagePushProbability(2, 2))
}

func TestAccumulatorMerge(t *testing.T) {
	var a, b accumulator
	a.pushRegret[1][2] = 1.5
	a.visits[1][2] = 2
	b.pushRegret[1][2] = 2.5
	b.foldRegret[3][4] = -1
	b.strategySum[3][4] = 0.5
	b.visits[3][4] = 1

	a.merge(&b)
	require.Equal(t, 4.0, a.pushRegret[1][2])
	require.Equal(t, 2.0, a.visits[1][2])
	require.Equal(t, -1.0, a.foldRegret[3][4])
	require.Equal(t, 0.5, a.strategySum[3][4])
	require.Equal(t, 1.0, a.visits[3][4])
}
