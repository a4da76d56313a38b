package models

import (
	"time"

	"github.com/randomnetcat/hitlerbot/internal/engine"
)

// Game is the persistence envelope around an engine game. The engine
// state carries the rules; the envelope carries the identifiers the
// bot needs to find and render it.
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// ChannelID is the Discord channel where the game is being played
	ChannelID string

	// CreatorID is the Discord user who created the game
	CreatorID string

	// State is the full engine state
	State *engine.Game

	// MessageID is the ID of the main board message in Discord
	MessageID string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// Status returns the lifecycle status of the underlying engine state
func (g *Game) Status() engine.Status {
	if g.State == nil {
		return engine.StatusJoining
	}
	return g.State.Status
}
