package engine

// GameError is a custom error type for rule violations. Every
// transition returns one of these for expected, user-facing failures
// and leaves the game state untouched.
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidState       GameError = "game is not in a valid state for this action"
	ErrNotPlayer          GameError = "player is not part of this game"
	ErrUnauthorized       GameError = "player is not allowed to perform this action"
	ErrIneligibleTarget   GameError = "target is not eligible for this action"
	ErrAlreadyVoted       GameError = "player has already voted in this election"
	ErrInvalidVote        GameError = "vote must be ja or nein"
	ErrInvalidPolicyIndex GameError = "policy choice is out of range"
	ErrVetoLocked         GameError = "veto power has not been unlocked"
	ErrVetoAlreadyUsed    GameError = "veto has already been requested for this government"
	ErrVetoNotRequested   GameError = "no veto request is pending"
	ErrGameFull           GameError = "game is at maximum capacity"
	ErrAlreadyJoined      GameError = "player has already joined this game"
	ErrNotJoined          GameError = "player has not joined this game"
	ErrNotEnoughPlayers   GameError = "not enough players to start the game"
	ErrInvalidPlayerCount GameError = "player count must be between 5 and 10"
)
