package strategy

import "github.com/lox/pushfold/internal/deck"

// Grid is a 13x13 table of push probabilities, one cell per starting-hand
// class, indexed per HandIndex.
type Grid struct {
	cells [13][13]float64
}

// NewGrid creates a grid with every cell set to the given initial probability.
func NewGrid(initial float64) *Grid {
	g := &Grid{}
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = initial
		}
	}
	return g
}

// Get returns the probability for a specific two-card hand.
func (g *Grid) Get(c1, c2 deck.Card) float64 {
	row, col := HandIndex(c1, c2)
	return g.cells[row][col]
}

// Set stores the probability for a specific two-card hand.
func (g *Grid) Set(c1, c2 deck.Card, value float64) {
	row, col := HandIndex(c1, c2)
	g.cells[row][col] = value
}

// At returns the probability for a cell already in index representation.
func (g *Grid) At(row, col int) float64 {
	return g.cells[row][col]
}

// SetAt stores the probability for a cell already in index representation.
func (g *Grid) SetAt(row, col int, value float64) {
	g.cells[row][col] = value
}

// Cells returns a copy of the underlying table, for serialisation.
func (g *Grid) Cells() [13][13]float64 {
	return g.cells
}

// FromCells reconstructs a grid from a serialised table.
func FromCells(cells [13][13]float64) *Grid {
	return &Grid{cells: cells}
}
