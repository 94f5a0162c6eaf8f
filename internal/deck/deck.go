package deck

import rand "math/rand/v2"

// Deck is a standard 52-card deck with a caller-supplied RNG so deals are
// reproducible under a fixed seed.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// New creates a full deck in canonical order.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := range d.cards {
		d.cards[i] = Card(i + 1)
	}
	return d
}

// Shuffle randomizes the deck and rewinds it to the top.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.next = 0
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, bool) {
	if d.next >= len(d.cards) {
		return 0, false
	}
	c := d.cards[d.next]
	d.next++
	return c, true
}

// CardsRemaining returns the number of undealt cards.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
