package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/pushfold/internal/deck"
	"github.com/lox/pushfold/internal/handrank"
)

type ShowdownCmd struct {
	Hands []string `arg:"" help:"two hole-card hands, e.g. 'AsKs' '9h9d'" required:""`
	Board string   `short:"b" help:"five community cards, e.g. 'Td7s8h2c2d'" required:""`
	Ranks string   `help:"path to the two-plus-two hand-rank table" default:"handranks.dat"`
}

func (cmd *ShowdownCmd) Run() error {
	if len(cmd.Hands) != 2 {
		return fmt.Errorf("exactly two hands are required, got %d", len(cmd.Hands))
	}

	var hands [2]deck.StartingHand
	for i, s := range cmd.Hands {
		cards, err := deck.ParseCards(s)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) != 2 {
			return fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(cards))
		}
		hands[i] = deck.StartingHand{cards[0], cards[1]}
	}

	boardCards, err := deck.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(boardCards) != 5 {
		return fmt.Errorf("board must contain exactly 5 cards, got %d", len(boardCards))
	}
	var board [5]deck.Card
	copy(board[:], boardCards)

	if err := validateDistinct(hands, board); err != nil {
		return err
	}

	table, err := handrank.Load(cmd.Ranks)
	if err != nil {
		return err
	}
	eval := handrank.NewEvaluator(table)

	outcome := eval.Showdown(hands[0], hands[1], board)
	outcomes := [2]handrank.Outcome{outcome, outcome.Invert()}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		titleStyle.Render("HAND"), titleStyle.Render("BOARD"),
		titleStyle.Render("RANK"), titleStyle.Render("RESULT"))
	for i, h := range hands {
		rank := eval.Rank(h[0], h[1], board[0], board[1], board[2], board[3], board[4])
		fmt.Fprintf(w, "%s\t%s%s%s%s%s\t%d\t%s\n",
			rankStyle.Render(h.String()),
			board[0], board[1], board[2], board[3], board[4],
			rank, renderOutcome(outcomes[i]))
	}
	return w.Flush()
}

func validateDistinct(hands [2]deck.StartingHand, board [5]deck.Card) error {
	seen := make(map[deck.Card]bool)
	check := func(c deck.Card) error {
		if seen[c] {
			return fmt.Errorf("duplicate card: %s", c)
		}
		seen[c] = true
		return nil
	}
	for _, h := range hands {
		for _, c := range h {
			if err := check(c); err != nil {
				return err
			}
		}
	}
	for _, c := range board {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

func renderOutcome(o handrank.Outcome) string {
	switch o {
	case handrank.Win:
		return pushStyle.Render("WIN")
	case handrank.Lose:
		return foldStyle.Render("LOSE")
	default:
		return mixedStyle.Render("TIE")
	}
}
