package engine

// PlayerNumber is the stable 1-based seat number of a player for the
// lifetime of a running game. It is distinct from the external Discord
// identity, which can reconnect without changing the seat.
type PlayerNumber int

// PlayerIdentity is the external identity behind a seat
type PlayerIdentity struct {
	// UserID is the Discord user ID
	UserID string `json:"user_id"`

	// Name is the display name used when rendering the game
	Name string `json:"name"`
}

// PlayerMap is the bijection between seat numbers and external
// identities, fixed once a game starts
type PlayerMap map[PlayerNumber]PlayerIdentity

// NumberOf returns the seat number for an external user ID
func (m PlayerMap) NumberOf(userID string) (PlayerNumber, bool) {
	for number, identity := range m {
		if identity.UserID == userID {
			return number, true
		}
	}
	return 0, false
}

// Count returns the number of seats
func (m PlayerMap) Count() int {
	return len(m)
}
