package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pushfold/internal/solver"
	"github.com/lox/pushfold/internal/strategy"
)

type ChartCmd struct {
	Blueprint string `arg:"" help:"path to a blueprint written by solve --out"`
}

func (cmd *ChartCmd) Run() error {
	bp, err := solver.LoadBlueprint(cmd.Blueprint)
	if err != nil {
		return err
	}

	button, bigBlind := bp.Grids()
	fmt.Println(renderGrid("Button push", button))
	fmt.Println(renderGrid("Big blind call", bigBlind))
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	pushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	mixedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	foldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderGrid lays the 13x13 strategy out in the conventional chart
// orientation: aces in the top-left, suited classes in the upper-right
// triangle. Each cell shows the push percentage for its class.
//
// A chart cell at (rowRank, colRank) is suited when rowRank > colRank and the
// grid stores suited classes with the lower rank first, so the lookup is
// simply the transpose At(colRank, rowRank); the same holds for the unsuited
// half and the diagonal.
func renderGrid(title string, g *strategy.Grid) string {
	const ranks = "23456789TJQKA"

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString(" (cells are push %, suited above the diagonal)\n")

	w := tabwriter.NewWriter(&sb, 4, 0, 1, ' ', 0)

	fmt.Fprint(w, " ")
	for col := 12; col >= 0; col-- {
		fmt.Fprintf(w, "\t%s", rankStyle.Render(string(ranks[col])))
	}
	fmt.Fprintln(w)

	for row := 12; row >= 0; row-- {
		fmt.Fprint(w, rankStyle.Render(string(ranks[row])))
		for col := 12; col >= 0; col-- {
			fmt.Fprintf(w, "\t%s", renderCell(g.At(col, row)))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return sb.String()
}

func renderCell(p float64) string {
	pct := int(p*100 + 0.5)
	text := fmt.Sprintf("%3d", pct)
	switch {
	case pct >= 80:
		return pushStyle.Render(text)
	case pct <= 20:
		return foldStyle.Render(text)
	default:
		return mixedStyle.Render(text)
	}
}
