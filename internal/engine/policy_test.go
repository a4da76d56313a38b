package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckTestSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeckComposition() {
	deck := NewDeck(identityShuffler{})

	s.Len(deck.DrawPile, 17)
	s.Empty(deck.DiscardPile)

	var liberals, fascists int
	for _, card := range deck.DrawPile {
		switch card {
		case PolicyLiberal:
			liberals++
		case PolicyFascist:
			fascists++
		}
	}

	s.Equal(6, liberals)
	s.Equal(11, fascists)
}

func (s *DeckTestSuite) TestDrawTakesFromTheFront() {
	deck := NewDeck(identityShuffler{})

	drawn := deck.Draw(3, identityShuffler{})

	s.Equal([]Policy{PolicyLiberal, PolicyLiberal, PolicyLiberal}, drawn)
	s.Len(deck.DrawPile, 14)
}

func (s *DeckTestSuite) TestDrawReshufflesDiscardWhenShort() {
	deck := Deck{
		DrawPile:    []Policy{PolicyLiberal},
		DiscardPile: []Policy{PolicyFascist, PolicyFascist, PolicyFascist},
	}

	drawn := deck.Draw(3, identityShuffler{})

	// The lone remaining card comes first, then the replenished cards
	s.Equal([]Policy{PolicyLiberal, PolicyFascist, PolicyFascist}, drawn)
	s.Equal([]Policy{PolicyFascist}, deck.DrawPile)
	s.Empty(deck.DiscardPile)
}

func (s *DeckTestSuite) TestDrawDoesNotReshuffleWhenEnough() {
	deck := Deck{
		DrawPile:    []Policy{PolicyLiberal, PolicyFascist, PolicyLiberal},
		DiscardPile: []Policy{PolicyFascist},
	}

	drawn := deck.Draw(3, identityShuffler{})

	s.Equal([]Policy{PolicyLiberal, PolicyFascist, PolicyLiberal}, drawn)
	s.Equal([]Policy{PolicyFascist}, deck.DiscardPile)
}

func (s *DeckTestSuite) TestPeekTopDoesNotRemove() {
	deck := NewDeck(identityShuffler{})

	peeked := deck.PeekTop(3, identityShuffler{})
	s.Equal([]Policy{PolicyLiberal, PolicyLiberal, PolicyLiberal}, peeked)
	s.Len(deck.DrawPile, 17)
}

func (s *DeckTestSuite) TestPeekTopReshufflesDiscardWhenShort() {
	deck := Deck{
		DrawPile:    []Policy{PolicyLiberal},
		DiscardPile: []Policy{PolicyFascist, PolicyFascist},
	}

	peeked := deck.PeekTop(3, identityShuffler{})

	s.Equal([]Policy{PolicyLiberal, PolicyFascist, PolicyFascist}, peeked)
	s.Len(deck.DrawPile, 3)
	s.Empty(deck.DiscardPile)
}

func (s *DeckTestSuite) TestCardConservation() {
	deck := NewDeck(identityShuffler{})

	// Draw three and discard them back, repeatedly
	for i := 0; i < 10; i++ {
		drawn := deck.Draw(3, identityShuffler{})
		s.Len(drawn, 3)
		deck.Discard(drawn...)
		s.Equal(17, deck.Size())
	}
}
