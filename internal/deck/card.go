package deck

import (
	"fmt"
	"strings"
)

// Card identifies a playing card as an integer in [1,52], ordered by rank
// then suit: 1=2c, 2=2d, 3=2h, 4=2s, 5=3c, ..., 49=Ac, 50=Ad, 51=Ah, 52=As.
// This is the index space used by the two-plus-two hand-rank table.
type Card int

// Suit constants, matching the (card-1)%4 derivation.
const (
	Clubs = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// MakeCard builds a card from a rank (0=deuce..12=ace) and suit (0..3).
func MakeCard(rank, suit int) Card {
	return Card(rank*4 + suit + 1)
}

// Rank returns the card's rank, 0=deuce through 12=ace.
func (c Card) Rank() int {
	return (int(c) - 1) / 4
}

// Suit returns the card's suit, 0..3 in club/diamond/heart/spade order.
func (c Card) Suit() int {
	return (int(c) - 1) % 4
}

// Valid reports whether the card lies in [1,52].
func (c Card) Valid() bool {
	return c >= 1 && c <= 52
}

// String renders the card in compact notation, e.g. "As" or "7d".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// StartingHand is an unordered pair of distinct hole cards.
type StartingHand [2]Card

// String renders both cards, e.g. "AsKh".
func (h StartingHand) String() string {
	return h[0].String() + h[1].String()
}

// ParseCards parses compact card notation into cards.
// Format: "AsKsQsJsTs" where each card is [Rank][Suit].
// Ranks: A, K, Q, J, T, 9..2. Suits: s, h, d, c.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	var cards []Card
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, fmt.Errorf("invalid rank '%c' at position %d: %w", s[i], i, err)
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid suit '%c' at position %d: %w", s[i+1], i+1, err)
		}
		cards = append(cards, MakeCard(rank, suit))
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (int, error) {
	switch c {
	case 'T', 't':
		return 8, nil
	case 'J', 'j':
		return 9, nil
	case 'Q', 'q':
		return 10, nil
	case 'K', 'k':
		return 11, nil
	case 'A', 'a':
		return 12, nil
	default:
		if c >= '2' && c <= '9' {
			return int(c - '2'), nil
		}
		return 0, fmt.Errorf("unknown rank character")
	}
}

func parseSuit(c byte) (int, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit character")
	}
}
