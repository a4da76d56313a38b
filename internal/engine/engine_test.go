package engine

import (
	"fmt"
)

// identityShuffler leaves every sequence in its original order so test
// outcomes are fully determined by construction order.
type identityShuffler struct{}

func (identityShuffler) Shuffle(n int, swap func(i, j int)) {}

// testUserID returns the user ID joined at the given position. With the
// identity shuffler, seat numbers match join order.
func testUserID(seat int) string {
	return fmt.Sprintf("user-%d", seat)
}

// newRunningGame joins and starts a game with the identity shuffler.
// Seats follow join order, roles follow the pool order (liberals first,
// then fascists, Hitler in the last seat) and the draw pile holds six
// liberal cards followed by eleven fascist cards.
func newRunningGame(playerCount int) (*Game, error) {
	g := NewGame()

	for i := 1; i <= playerCount; i++ {
		if _, err := g.Join(PlayerIdentity{
			UserID: testUserID(i),
			Name:   fmt.Sprintf("Player %d", i),
		}); err != nil {
			return nil, err
		}
	}

	if _, err := g.Start(identityShuffler{}); err != nil {
		return nil, err
	}

	return g, nil
}
