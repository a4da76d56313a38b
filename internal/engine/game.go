package engine

import (
	"sort"

	"github.com/randomnetcat/hitlerbot/internal/shuffle"
)

// Status is the top-level lifecycle state of a game
type Status string

const (
	// StatusJoining indicates a game is waiting for players to join
	StatusJoining Status = "joining"

	// StatusRunning indicates a game is in progress
	StatusRunning Status = "running"

	// StatusCompleted indicates a game has ended
	StatusCompleted Status = "completed"
)

// ElectionState tracks president rotation, term limits and the
// election tracker
type ElectionState struct {
	// PresidentTicker is the seat whose turn the rotation is at. It is
	// consumed and pre-advanced when an election starts from rotation.
	PresidentTicker PlayerNumber `json:"president_ticker"`

	// TermLimited holds the last elected government, if any
	TermLimited *Government `json:"term_limited,omitempty"`

	// Tracker counts consecutive failed governments since the last
	// enacted policy
	Tracker int `json:"tracker"`

	// SpecialElection holds a one-shot president candidate override
	SpecialElection *PlayerNumber `json:"special_election,omitempty"`
}

// PowersState tracks the one-time bookkeeping of presidential powers
type PowersState struct {
	// Investigated holds seats that have already been investigated
	Investigated []PlayerNumber `json:"investigated"`

	// Executed holds seats that have been executed
	Executed []PlayerNumber `json:"executed"`
}

// Outcome records how a completed game ended
type Outcome struct {
	Winner Party     `json:"winner"`
	Reason WinReason `json:"reason"`
}

// Game is the complete state of one Secret Hitler game. It is a pure
// value: transitions validate before mutating and callers persist the
// value only when the transition returns no error. The engine never
// performs I/O, locking, or ambient randomness.
type Game struct {
	// Status is the lifecycle state; the fields below it are only
	// meaningful while Running or Completed
	Status Status `json:"status"`

	// Lobby holds the joined identities while Status is Joining
	Lobby []PlayerIdentity `json:"lobby,omitempty"`

	// Config is fixed when the game starts
	Config *Config `json:"config,omitempty"`

	// Players maps seats to external identities
	Players PlayerMap `json:"players,omitempty"`

	// Roles maps seats to secret roles
	Roles RoleMap `json:"roles,omitempty"`

	// Deck holds the draw and discard piles
	Deck Deck `json:"deck"`

	// LiberalPolicies counts enacted liberal policies
	LiberalPolicies int `json:"liberal_policies"`

	// FascistPolicies counts enacted fascist policies
	FascistPolicies int `json:"fascist_policies"`

	// Election tracks rotation, term limits and the tracker
	Election ElectionState `json:"election"`

	// Powers tracks investigations and executions
	Powers PowersState `json:"powers"`

	// Phase is the current ephemeral phase while Running
	Phase Phase `json:"-"`

	// Outcome is set when the game completes
	Outcome *Outcome `json:"outcome,omitempty"`
}

// NewGame creates a game in the joining state
func NewGame() *Game {
	return &Game{
		Status: StatusJoining,
		Lobby:  []PlayerIdentity{},
	}
}

// Join adds a player to the lobby
func (g *Game) Join(player PlayerIdentity) ([]Event, error) {
	if g.Status != StatusJoining {
		return nil, ErrInvalidState
	}

	if len(g.Lobby) >= MaxPlayers {
		return nil, ErrGameFull
	}

	for _, existing := range g.Lobby {
		if existing.UserID == player.UserID {
			return nil, ErrAlreadyJoined
		}
	}

	g.Lobby = append(g.Lobby, player)

	return []Event{PlayerJoinedEvent{
		Player:      player,
		PlayerCount: len(g.Lobby),
	}}, nil
}

// Leave removes a player from the lobby
func (g *Game) Leave(userID string) ([]Event, error) {
	if g.Status != StatusJoining {
		return nil, ErrInvalidState
	}

	for i, existing := range g.Lobby {
		if existing.UserID == userID {
			g.Lobby = append(g.Lobby[:i], g.Lobby[i+1:]...)

			return []Event{PlayerLeftEvent{
				Player:      existing,
				PlayerCount: len(g.Lobby),
			}}, nil
		}
	}

	return nil, ErrNotJoined
}

// Start seats the lobby, deals roles, builds the deck and opens the
// first election. Seat order and role assignment each come from one
// call to the injected shuffler.
func (g *Game) Start(shuffler shuffle.Shuffler) ([]Event, error) {
	if g.Status != StatusJoining {
		return nil, ErrInvalidState
	}

	if len(g.Lobby) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	playerCount := len(g.Lobby)

	config, err := StandardConfig(playerCount)
	if err != nil {
		return nil, err
	}

	seats := make([]PlayerIdentity, playerCount)
	copy(seats, g.Lobby)
	shuffler.Shuffle(len(seats), func(i, j int) {
		seats[i], seats[j] = seats[j], seats[i]
	})

	players := make(PlayerMap, playerCount)
	for i, identity := range seats {
		players[PlayerNumber(i+1)] = identity
	}

	roles, err := assignRoles(playerCount, shuffler)
	if err != nil {
		return nil, err
	}

	g.Status = StatusRunning
	g.Lobby = nil
	g.Config = config
	g.Players = players
	g.Roles = roles
	g.Deck = NewDeck(shuffler)
	g.LiberalPolicies = 0
	g.FascistPolicies = 0
	g.Election = ElectionState{PresidentTicker: 1}
	g.Powers = PowersState{
		Investigated: []PlayerNumber{},
		Executed:     []PlayerNumber{},
	}

	events := []Event{GameStartedEvent{
		PlayerCount: playerCount,
		Notices:     g.roleNotices(),
	}}
	events = append(events, g.beginElection())

	return events, nil
}

// roleNotices builds the secret start-of-game notice for each seat
func (g *Game) roleNotices() []RoleNotice {
	var fascists []PlayerNumber
	var hitler PlayerNumber
	for _, number := range g.seatNumbers() {
		switch g.Roles[number] {
		case RoleFascist:
			fascists = append(fascists, number)
		case RoleHitler:
			hitler = number
		}
	}

	notices := make([]RoleNotice, 0, g.Players.Count())
	for _, number := range g.seatNumbers() {
		notice := RoleNotice{
			Player: number,
			Role:   g.Roles[number],
		}

		switch g.Roles[number] {
		case RoleFascist:
			notice.KnownFascists = fascists
			notice.KnownHitler = hitler
		case RoleHitler:
			// Hitler only knows the other fascists in small games
			if g.Players.Count() <= 6 {
				notice.KnownFascists = fascists
			}
		}

		notices = append(notices, notice)
	}

	return notices
}

// seatNumbers returns every seat in order
func (g *Game) seatNumbers() []PlayerNumber {
	numbers := make([]PlayerNumber, 0, len(g.Players))
	for number := range g.Players {
		numbers = append(numbers, number)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return numbers
}

// IsAlive reports whether a seat is mapped and has not been executed
func (g *Game) IsAlive(number PlayerNumber) bool {
	if _, ok := g.Players[number]; !ok {
		return false
	}
	for _, executed := range g.Powers.Executed {
		if executed == number {
			return false
		}
	}
	return true
}

// AliveNumbers returns the living seats in order
func (g *Game) AliveNumbers() []PlayerNumber {
	var alive []PlayerNumber
	for _, number := range g.seatNumbers() {
		if g.IsAlive(number) {
			alive = append(alive, number)
		}
	}
	return alive
}

// aliveCount returns the number of living seats
func (g *Game) aliveCount() int {
	return len(g.AliveNumbers())
}

// nextLivingSeat returns the first living seat after the given one,
// wrapping around the table
func (g *Game) nextLivingSeat(after PlayerNumber) PlayerNumber {
	count := PlayerNumber(g.Players.Count())
	candidate := after
	for i := 0; i < g.Players.Count(); i++ {
		candidate = candidate%count + 1
		if g.IsAlive(candidate) {
			return candidate
		}
	}
	return after
}

// actingPlayer resolves an external user ID to a seat number
func (g *Game) actingPlayer(userID string) (PlayerNumber, error) {
	number, ok := g.Players.NumberOf(userID)
	if !ok {
		return 0, ErrNotPlayer
	}
	return number, nil
}

// beginElection opens the next election cycle. A pending special
// election supplies the candidate without touching the rotation;
// otherwise the ticker is consumed and advanced to the next living
// seat.
func (g *Game) beginElection() Event {
	var candidate PlayerNumber
	if g.Election.SpecialElection != nil {
		candidate = *g.Election.SpecialElection
		g.Election.SpecialElection = nil
	} else {
		candidate = g.Election.PresidentTicker
		if !g.IsAlive(candidate) {
			candidate = g.nextLivingSeat(candidate)
		}
		g.Election.PresidentTicker = g.nextLivingSeat(candidate)
	}

	g.Phase = ChancellorSelection{President: candidate}

	return ElectionStartedEvent{President: candidate}
}

// endGame completes the game with the given outcome
func (g *Game) endGame(winner Party, reason WinReason) Event {
	g.Status = StatusCompleted
	g.Phase = nil
	g.Outcome = &Outcome{
		Winner: winner,
		Reason: reason,
	}

	roles := make(RoleMap, len(g.Roles))
	for number, role := range g.Roles {
		roles[number] = role
	}

	return GameEndedEvent{
		Winner: winner,
		Reason: reason,
		Roles:  roles,
	}
}
