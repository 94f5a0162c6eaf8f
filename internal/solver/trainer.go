// Package solver computes approximate Nash-equilibrium push/fold strategies
// for heads-up all-in-or-fold Texas Hold'em by counterfactual regret
// minimization: repeated self-play over randomly dealt hands, regret matching
// for the per-iteration strategies, and a time-averaged strategy as output.
package solver

import (
	"context"
	"fmt"

	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pushfold/internal/deck"
	"github.com/lox/pushfold/internal/handrank"
	"github.com/lox/pushfold/internal/randutil"
	"github.com/lox/pushfold/internal/strategy"
)

// Seat identifies a player position. The button posts the small blind and
// acts first; the big blind decides only when facing a push.
type Seat int

const (
	Button Seat = iota
	BigBlindSeat
)

// ShowdownEvaluator resolves an all-in confrontation. The production
// implementation is handrank.Evaluator over the two-plus-two table.
type ShowdownEvaluator interface {
	Showdown(a, b deck.StartingHand, board [5]deck.Card) handrank.Outcome
}

// Progress is emitted periodically during a run.
type Progress struct {
	Iteration int
}

// Trainer runs the CFR iterations and accumulates per-seat regrets and
// strategy sums keyed by starting-hand class.
type Trainer struct {
	cfg       Config
	eval      ShowdownEvaluator
	acc       [2]accumulator
	rng       *rand.Rand
	iteration int

	// parallelBatch is the per-worker iteration count between accumulator
	// merges when Workers > 1.
	parallelBatch int
}

// NewTrainer validates the configuration and prepares a trainer.
func NewTrainer(cfg Config, eval ShowdownEvaluator) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("solver config: %w", err)
	}
	if eval == nil {
		return nil, fmt.Errorf("solver: showdown evaluator is required")
	}
	return &Trainer{
		cfg:           cfg,
		eval:          eval,
		rng:           randutil.New(cfg.Seed),
		parallelBatch: 8192,
	}, nil
}

// Run executes the configured number of iterations, invoking progress (if
// non-nil) roughly every 1% of the run. Cancelling the context stops the run
// early with ctx.Err(); accumulated state remains usable.
func (t *Trainer) Run(ctx context.Context, progress func(Progress)) error {
	if t.cfg.Workers > 1 {
		return t.runParallel(ctx, progress)
	}

	report := t.cfg.Iterations / 100
	if report == 0 {
		report = 1
	}

	d := deck.New(t.rng)
	for t.iteration < t.cfg.Iterations {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t.runIteration(d, &t.acc)
		t.iteration++

		if progress != nil && t.iteration%report == 0 {
			progress(Progress{Iteration: t.iteration})
		}
	}
	return nil
}

// runParallel fans iteration batches out to Workers goroutines. Each worker
// reads the shared accumulators (frozen for the batch) and writes into a
// local pair, which are merged in worker order at the batch boundary so runs
// stay deterministic under a fixed seed.
func (t *Trainer) runParallel(ctx context.Context, progress func(Progress)) error {
	workers := t.cfg.Workers

	locals := make([][2]accumulator, workers)
	decks := make([]*deck.Deck, workers)
	for w := range decks {
		// Worker RNG streams derive from the master stream in a fixed order.
		decks[w] = deck.New(randutil.New(t.rng.Int64()))
	}

	for t.iteration < t.cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return err
		}

		remaining := t.cfg.Iterations - t.iteration
		batch := t.parallelBatch * workers
		if batch > remaining {
			batch = remaining
		}

		g, _ := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			share := batch / workers
			if w < batch%workers {
				share++
			}
			local, d := &locals[w], decks[w]
			g.Go(func() error {
				for i := 0; i < share; i++ {
					t.runIteration(d, local)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for w := range locals {
			t.acc[Button].merge(&locals[w][Button])
			t.acc[BigBlindSeat].merge(&locals[w][BigBlindSeat])
			locals[w] = [2]accumulator{}
		}
		t.iteration += batch

		if progress != nil {
			progress(Progress{Iteration: t.iteration})
		}
	}
	return nil
}

// runIteration plays out one random deal. Current strategies are read from
// the shared accumulators; updates go to out, which is the same storage in
// the sequential case and a worker-local copy in the parallel case.
func (t *Trainer) runIteration(d *deck.Deck, out *[2]accumulator) {
	d.Shuffle()
	var cards [9]deck.Card
	for i := range cards {
		cards[i], _ = d.Deal()
	}
	btnHand := deck.StartingHand{cards[0], cards[1]}
	bbHand := deck.StartingHand{cards[2], cards[3]}
	var board [5]deck.Card
	copy(board[:], cards[4:])

	// A called push plays for the effective stack; the winner nets it, a
	// tie nets nothing.
	effective := float64(min(t.cfg.ButtonStack, t.cfg.BigBlindStack))
	var btnShowdown float64
	switch t.eval.Showdown(btnHand, bbHand, board) {
	case handrank.Win:
		btnShowdown = effective
	case handrank.Lose:
		btnShowdown = -effective
	}

	btnRow, btnCol := strategy.HandIndex(btnHand[0], btnHand[1])
	bbRow, bbCol := strategy.HandIndex(bbHand[0], bbHand[1])

	pushProb := t.acc[Button].pushProbability(btnRow, btnCol)
	callProb := t.acc[BigBlindSeat].pushProbability(bbRow, bbCol)

	// Button node: pushing wins the big blind uncontested or goes to
	// showdown against a call; folding surrenders the posted small blind.
	evPush := callProb*btnShowdown + (1-callProb)*float64(t.cfg.BigBlind)
	evFold := -float64(t.cfg.SmallBlind)
	utility := pushProb*evPush + (1-pushProb)*evFold

	btn := &out[Button]
	btn.pushRegret[btnRow][btnCol] += evPush - utility
	btn.foldRegret[btnRow][btnCol] += evFold - utility
	btn.strategySum[btnRow][btnCol] += pushProb
	btn.visits[btnRow][btnCol]++

	// Big-blind node, reached only when the button pushes: regrets are
	// counterfactual, weighted by the button's push probability. Calling
	// plays the showdown from the other side; folding surrenders the big
	// blind.
	evCall := -btnShowdown
	evFoldBB := -float64(t.cfg.BigBlind)
	utilityBB := callProb*evCall + (1-callProb)*evFoldBB

	bb := &out[BigBlindSeat]
	bb.pushRegret[bbRow][bbCol] += pushProb * (evCall - utilityBB)
	bb.foldRegret[bbRow][bbCol] += pushProb * (evFoldBB - utilityBB)
	bb.strategySum[bbRow][bbCol] += callProb
	bb.visits[bbRow][bbCol]++
}

// Iteration returns the number of completed iterations.
func (t *Trainer) Iteration() int {
	return t.iteration
}

// Config returns the configuration the trainer was built with.
func (t *Trainer) Config() Config {
	return t.cfg
}

// AverageStrategies materialises the time-averaged strategy per seat. The
// average, not the final iteration's strategy, is what approximates the
// equilibrium.
func (t *Trainer) AverageStrategies() (button, bigBlind *strategy.Grid) {
	button = strategy.NewGrid(uniformTieBreak)
	bigBlind = strategy.NewGrid(uniformTieBreak)
	for i := 0; i < 13; i++ {
		for j := 0; j < 13; j++ {
			button.SetAt(i, j, t.acc[Button].averagePushProbability(i, j))
			bigBlind.SetAt(i, j, t.acc[BigBlindSeat].averagePushProbability(i, j))
		}
	}
	return button, bigBlind
}
