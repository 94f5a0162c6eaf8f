package handrank

import (
	"github.com/lox/pushfold/internal/deck"
)

// Outcome is a showdown result relative to the first hand.
type Outcome int

const (
	Win Outcome = iota
	Lose
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Invert flips the outcome to the other hand's perspective.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Lose
	case Lose:
		return Win
	default:
		return Tie
	}
}

// Evaluator ranks hands through the injected table. Higher rank values are
// stronger hands.
type Evaluator struct {
	table *Table
}

// NewEvaluator creates an evaluator over a loaded table.
func NewEvaluator(table *Table) *Evaluator {
	return &Evaluator{table: table}
}

// Rank folds the card sequence through the lookup chain: each card's index is
// added to the state produced so far to select the next table entry. The
// table encodes card-order invariance, so any permutation of the same cards
// yields the same rank. Callers must pass distinct, valid cards.
func (e *Evaluator) Rank(cards ...deck.Card) int32 {
	state := int32(initialIndex)
	for _, c := range cards {
		state = e.table.entries[state+int32(c)]
	}
	return state
}

// Showdown resolves two hole-card hands against a shared board, relative to
// hand a. All nine cards must be distinct; dealing guarantees this and the
// evaluator performs no validation.
func (e *Evaluator) Showdown(a, b deck.StartingHand, board [5]deck.Card) Outcome {
	ra := e.rankHand(a, board)
	rb := e.rankHand(b, board)
	switch {
	case ra > rb:
		return Win
	case ra < rb:
		return Lose
	default:
		return Tie
	}
}

func (e *Evaluator) rankHand(hand deck.StartingHand, board [5]deck.Card) int32 {
	state := e.table.entries[initialIndex+int32(hand[0])]
	state = e.table.entries[state+int32(hand[1])]
	for _, c := range board {
		state = e.table.entries[state+int32(c)]
	}
	return state
}
