package solver

import "errors"

// DefaultIterations is the iteration count used when none is configured.
const DefaultIterations = 1000000

// Config aggregates the game and run parameters the solver depends on. Chip
// amounts share one unit; stacks include the blinds about to be posted.
type Config struct {
	SmallBlind    int   `json:"small_blind"`
	BigBlind      int   `json:"big_blind"`
	ButtonStack   int   `json:"button_stack"`
	BigBlindStack int   `json:"big_blind_stack"`
	Iterations    int   `json:"iterations"`
	Seed          int64 `json:"seed"`

	// Workers > 1 runs iteration batches concurrently with per-worker RNG
	// streams, merging accumulators at batch boundaries. Results remain
	// deterministic for a fixed seed and worker count.
	Workers int `json:"workers,omitempty"`
}

// Validate ensures the parameters describe a playable game.
func (c Config) Validate() error {
	if c.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}
	if c.BigBlind < c.SmallBlind {
		return errors.New("big blind must be >= small blind")
	}
	if c.ButtonStack < c.BigBlind || c.BigBlindStack < c.BigBlind {
		return errors.New("stacks must cover the big blind")
	}
	if c.Iterations <= 0 {
		return errors.New("iterations must be > 0")
	}
	return nil
}
