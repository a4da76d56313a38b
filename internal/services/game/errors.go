package game

// GameError is a custom error type for game service errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      GameError = "game not found"
	ErrGameAlreadyExists GameError = "a game is already running in this channel"
	ErrNilInput          GameError = "input cannot be nil"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilGameRepo       GameError = "game repository cannot be nil"
	ErrNilMessaging      GameError = "messaging service cannot be nil"
	ErrNilShuffler       GameError = "shuffler cannot be nil"
	ErrNotCreator        GameError = "only the game creator can do this"
)
