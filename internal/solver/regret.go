package solver

// uniformTieBreak is the push probability used when a hand class has no
// positive accumulated regret for either action. Rarely visited or dominated
// cells converge from this point, so the rule is fixed rather than left to
// fall out of the arithmetic.
const uniformTieBreak = 0.5

// accumulator holds one seat's cumulative regrets and strategy sums, one cell
// per starting-hand class. Regret sums may go negative; clamping happens at
// the matching step, not at accumulation.
type accumulator struct {
	pushRegret  [13][13]float64
	foldRegret  [13][13]float64
	strategySum [13][13]float64
	visits      [13][13]float64
}

// pushProbability derives the current strategy for a cell by regret matching:
// proportional to positive push regret versus positive fold regret, with the
// uniform tie-break when neither is positive.
func (a *accumulator) pushProbability(row, col int) float64 {
	push, fold := a.pushRegret[row][col], a.foldRegret[row][col]
	if push < 0 {
		push = 0
	}
	if fold < 0 {
		fold = 0
	}
	if push+fold <= 0 {
		return uniformTieBreak
	}
	return push / (push + fold)
}

// averagePushProbability is the time-averaged strategy for a cell: the
// cumulative per-visit strategy normalised by visit count. Unvisited cells
// report the tie-break value.
func (a *accumulator) averagePushProbability(row, col int) float64 {
	if a.visits[row][col] <= 0 {
		return uniformTieBreak
	}
	return a.strategySum[row][col] / a.visits[row][col]
}

// merge adds another accumulator's sums into this one. Regret and strategy
// sums are associative, which is what makes batched parallel iteration sound.
func (a *accumulator) merge(other *accumulator) {
	for i := 0; i < 13; i++ {
		for j := 0; j < 13; j++ {
			a.pushRegret[i][j] += other.pushRegret[i][j]
			a.foldRegret[i][j] += other.foldRegret[i][j]
			a.strategySum[i][j] += other.strategySum[i][j]
			a.visits[i][j] += other.visits[i][j]
		}
	}
}
