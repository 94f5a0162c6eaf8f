package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pushfold/internal/deck"
)

// All 1326 two-card combinations collapse into 169 classes: 13 pairs with 6
// combos each, 78 suited classes with 4 combos each and 78 unsuited classes
// with 12 combos each.
func TestHandIndexClassSizes(t *testing.T) {
	type cell struct{ row, col int }
	counts := make(map[cell]int)

	total := 0
	for c1 := deck.Card(1); c1 <= 52; c1++ {
		for c2 := c1 + 1; c2 <= 52; c2++ {
			row, col := HandIndex(c1, c2)
			require.GreaterOrEqual(t, row, 0)
			require.Less(t, row, 13)
			require.GreaterOrEqual(t, col, 0)
			require.Less(t, col, 13)
			counts[cell{row, col}]++
			total++
		}
	}

	require.Equal(t, 1326, total)
	require.Len(t, counts, 169)

	pairs, suited, unsuited := 0, 0, 0
	for c, n := range counts {
		switch {
		case c.row == c.col:
			require.Equal(t, 6, n, "pair class %s", ClassName(c.row, c.col))
			pairs++
		case c.row < c.col:
			require.Equal(t, 4, n, "suited class %s", ClassName(c.row, c.col))
			suited++
		default:
			require.Equal(t, 12, n, "unsuited class %s", ClassName(c.row, c.col))
			unsuited++
		}
	}
	require.Equal(t, 13, pairs)
	require.Equal(t, 78, suited)
	require.Equal(t, 78, unsuited)
}

func TestHandIndexOrderIndependent(t *testing.T) {
	for c1 := deck.Card(1); c1 <= 52; c1++ {
		for c2 := c1 + 1; c2 <= 52; c2++ {
			r1, col1 := HandIndex(c1, c2)
			r2, col2 := HandIndex(c2, c1)
			require.Equal(t, r1, r2)
			require.Equal(t, col1, col2)
		}
	}
}

func TestHandIndexConvention(t *testing.T) {
	tests := []struct {
		hand string
		row  int
		col  int
		name string
	}{
		{"AsAh", 12, 12, "AA"},
		{"2c2d", 0, 0, "22"},
		{"AsKs", 11, 12, "AKs"}, // suited: lower rank first
		{"AsKh", 12, 11, "AKo"}, // unsuited: higher rank first
		{"2c7c", 0, 5, "72s"},
		{"7d2c", 5, 0, "72o"},
	}

	for _, tt := range tests {
		cards := deck.MustParseCards(tt.hand)
		row, col := HandIndex(cards[0], cards[1])
		require.Equal(t, tt.row, row, tt.hand)
		require.Equal(t, tt.col, col, tt.hand)
		require.Equal(t, tt.name, ClassName(row, col), tt.hand)
	}
}

func TestGridRepresentationsAgree(t *testing.T) {
	g := NewGrid(1.0)

	for i := 0; i < 13; i++ {
		for j := 0; j < 13; j++ {
			require.Equal(t, 1.0, g.At(i, j))
		}
	}

	cards := deck.MustParseCards("AsKs")
	g.Set(cards[0], cards[1], 0.25)
	require.Equal(t, 0.25, g.Get(cards[0], cards[1]))
	require.Equal(t, 0.25, g.At(11, 12))

	// Every hand in the same class reads the same cell.
	other := deck.MustParseCards("AhKh")
	require.Equal(t, 0.25, g.Get(other[0], other[1]))

	g.SetAt(12, 11, 0.75)
	offsuit := deck.MustParseCards("AdKc")
	require.Equal(t, 0.75, g.Get(offsuit[0], offsuit[1]))
}

func TestGridCellsRoundTrip(t *testing.T) {
	g := NewGrid(0.5)
	g.SetAt(3, 7, 0.125)

	clone := FromCells(g.Cells())
	require.Equal(t, g.Cells(), clone.Cells())

	// Cells returns a copy, not a view.
	cells := g.Cells()
	cells[0][0] = 99
	require.Equal(t, 0.5, g.At(0, 0))
}
