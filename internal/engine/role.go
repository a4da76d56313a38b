package engine

import (
	"github.com/randomnetcat/hitlerbot/internal/shuffle"
)

// Role is the secret role of a player
type Role string

const (
	// RoleLiberal is a liberal player
	RoleLiberal Role = "liberal"

	// RoleFascist is a plain fascist player
	RoleFascist Role = "fascist"

	// RoleHitler is the fascist leader
	RoleHitler Role = "hitler"
)

// Party represents a party membership card. Investigations reveal
// party membership only; Hitler's card shows fascist.
type Party string

const (
	// PartyLiberal is the liberal party
	PartyLiberal Party = "liberal"

	// PartyFascist is the fascist party
	PartyFascist Party = "fascist"
)

// Party returns the party membership card for the role
func (r Role) Party() Party {
	switch r {
	case RoleFascist, RoleHitler:
		return PartyFascist
	default:
		return PartyLiberal
	}
}

// RoleMap assigns a role to every seat in a running game
type RoleMap map[PlayerNumber]Role

// rolePool returns the role cards dealt for the given player count
func rolePool(playerCount int) ([]Role, error) {
	var liberals, fascists int
	switch playerCount {
	case 5:
		liberals, fascists = 3, 1
	case 6:
		liberals, fascists = 4, 1
	case 7:
		liberals, fascists = 4, 2
	case 8:
		liberals, fascists = 5, 2
	case 9:
		liberals, fascists = 5, 3
	case 10:
		liberals, fascists = 6, 3
	default:
		return nil, ErrInvalidPlayerCount
	}

	pool := make([]Role, 0, playerCount)
	for i := 0; i < liberals; i++ {
		pool = append(pool, RoleLiberal)
	}
	for i := 0; i < fascists; i++ {
		pool = append(pool, RoleFascist)
	}
	pool = append(pool, RoleHitler)

	return pool, nil
}

// assignRoles deals a shuffled role pool to seats 1..playerCount
func assignRoles(playerCount int, shuffler shuffle.Shuffler) (RoleMap, error) {
	pool, err := rolePool(playerCount)
	if err != nil {
		return nil, err
	}

	shuffler.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	roles := make(RoleMap, playerCount)
	for i, role := range pool {
		roles[PlayerNumber(i+1)] = role
	}

	return roles, nil
}
