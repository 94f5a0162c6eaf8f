// Package strategy stores push/fold strategies on the 13x13 starting-hand
// grid. A specific two-card hand (cards 1..52) collapses into one of 169
// strategically identical classes: the diagonal holds pocket pairs, cells
// above the diagonal (row < col) are suited and cells below are unsuited.
package strategy

import "github.com/lox/pushfold/internal/deck"

// HandIndex maps a specific starting hand to its grid cell. Pocket pairs map
// to (r, r); suited hands put the lower rank first, unsuited hands the higher
// rank first. The asymmetry is what separates suited from unsuited halves of
// the grid, so it must not be normalised away.
func HandIndex(c1, c2 deck.Card) (row, col int) {
	r1, r2 := c1.Rank(), c2.Rank()
	if r1 == r2 {
		return r1, r2
	}
	lo, hi := r1, r2
	if lo > hi {
		lo, hi = hi, lo
	}
	if c1.Suit() == c2.Suit() {
		return lo, hi
	}
	return hi, lo
}

// ClassName renders a grid cell in standard notation, e.g. "AKs", "T9o", "QQ".
func ClassName(row, col int) string {
	const ranks = "23456789TJQKA"
	if row == col {
		return string(ranks[row]) + string(ranks[col])
	}
	hi, lo, suffix := row, col, "o"
	if row < col {
		hi, lo, suffix = col, row, "s"
	}
	return string(ranks[hi]) + string(ranks[lo]) + suffix
}
