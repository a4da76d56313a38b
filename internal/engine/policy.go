package engine

import (
	"github.com/randomnetcat/hitlerbot/internal/shuffle"
)

// Policy represents a policy card
type Policy string

const (
	// PolicyLiberal is a liberal policy card
	PolicyLiberal Policy = "liberal"

	// PolicyFascist is a fascist policy card
	PolicyFascist Policy = "fascist"
)

const (
	// liberalCardCount is the number of liberal cards in a standard deck
	liberalCardCount = 6

	// fascistCardCount is the number of fascist cards in a standard deck
	fascistCardCount = 11
)

// Deck holds the draw and discard piles of policy cards.
// The front of the draw pile is the next card drawn.
type Deck struct {
	DrawPile    []Policy `json:"draw_pile"`
	DiscardPile []Policy `json:"discard_pile"`
}

// NewDeck creates a full standard deck, shuffled with the given shuffler
func NewDeck(shuffler shuffle.Shuffler) Deck {
	cards := make([]Policy, 0, liberalCardCount+fascistCardCount)
	for i := 0; i < liberalCardCount; i++ {
		cards = append(cards, PolicyLiberal)
	}
	for i := 0; i < fascistCardCount; i++ {
		cards = append(cards, PolicyFascist)
	}

	shuffler.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return Deck{
		DrawPile:    cards,
		DiscardPile: []Policy{},
	}
}

// Draw removes and returns n cards from the front of the draw pile.
// If the draw pile holds fewer than n cards, the discard pile is
// shuffled and appended to the draw pile first. The full deck always
// exceeds a single draw request, so one reshuffle is always enough.
func (d *Deck) Draw(n int, shuffler shuffle.Shuffler) []Policy {
	if len(d.DrawPile) < n {
		d.replenish(shuffler)
	}

	drawn := make([]Policy, n)
	copy(drawn, d.DrawPile[:n])
	d.DrawPile = d.DrawPile[n:]

	return drawn
}

// PeekTop returns the next n cards without removing them, reshuffling
// the discard pile into the draw pile first when too few remain.
func (d *Deck) PeekTop(n int, shuffler shuffle.Shuffler) []Policy {
	if len(d.DrawPile) < n {
		d.replenish(shuffler)
	}

	peeked := make([]Policy, n)
	copy(peeked, d.DrawPile[:n])

	return peeked
}

// replenish shuffles the discard pile and appends it to the draw pile
func (d *Deck) replenish(shuffler shuffle.Shuffler) {
	replenishment := make([]Policy, len(d.DiscardPile))
	copy(replenishment, d.DiscardPile)
	shuffler.Shuffle(len(replenishment), func(i, j int) {
		replenishment[i], replenishment[j] = replenishment[j], replenishment[i]
	})

	d.DrawPile = append(d.DrawPile, replenishment...)
	d.DiscardPile = []Policy{}
}

// Discard adds cards to the discard pile
func (d *Deck) Discard(cards ...Policy) {
	d.DiscardPile = append(d.DiscardPile, cards...)
}

// Size returns the total number of cards across both piles
func (d *Deck) Size() int {
	return len(d.DrawPile) + len(d.DiscardPile)
}
