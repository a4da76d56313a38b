package game

import (
	"github.com/sirupsen/logrus"

	"github.com/randomnetcat/hitlerbot/internal/engine"
	"github.com/randomnetcat/hitlerbot/internal/models"
	gameRepo "github.com/randomnetcat/hitlerbot/internal/repositories/game"
	"github.com/randomnetcat/hitlerbot/internal/services/messaging"
	"github.com/randomnetcat/hitlerbot/internal/shuffle"
)

// Config holds configuration for the game service
type Config struct {
	// GameRepo persists game state
	GameRepo gameRepo.Repository

	// Messaging delivers notifications after commits
	Messaging messaging.Service

	// Shuffler supplies randomness for every shuffle
	Shuffler shuffle.Shuffler

	// Logger is optional; a default logger is used when nil
	Logger *logrus.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	ChannelID   string
	CreatorID   string
	CreatorName string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

type JoinGameInput struct {
	GameID   string
	UserID   string
	UserName string
}

type JoinGameOutput struct {
	Game *models.Game
}

type LeaveGameInput struct {
	GameID string
	UserID string
}

type LeaveGameOutput struct {
	Game *models.Game
}

type StartGameInput struct {
	GameID string
	UserID string
}

type StartGameOutput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameOutput struct {
	Game *models.Game
}

type GetGameByChannelInput struct {
	ChannelID string
}

type GetGameByChannelOutput struct {
	Game *models.Game
}

type NominateChancellorInput struct {
	GameID string
	UserID string
	Target engine.PlayerNumber
}

type NominateChancellorOutput struct {
	Game *models.Game
}

type CastVoteInput struct {
	GameID string
	UserID string
	Vote   engine.Vote
}

type CastVoteOutput struct {
	Game *models.Game

	// VotesOutstanding is how many living players have not voted yet
	VotesOutstanding int
}

type DiscardPolicyInput struct {
	GameID string
	UserID string

	// Index is the position of the discarded policy in the hand
	Index int
}

type DiscardPolicyOutput struct {
	Game *models.Game
}

type EnactPolicyInput struct {
	GameID string
	UserID string
	Index  int
}

type EnactPolicyOutput struct {
	Game *models.Game
}

type RequestVetoInput struct {
	GameID string
	UserID string
}

type RequestVetoOutput struct {
	Game *models.Game
}

type RespondToVetoInput struct {
	GameID  string
	UserID  string
	Approve bool
}

type RespondToVetoOutput struct {
	Game *models.Game
}

type InvestigatePlayerInput struct {
	GameID string
	UserID string
	Target engine.PlayerNumber
}

type InvestigatePlayerOutput struct {
	Game *models.Game
}

type CallSpecialElectionInput struct {
	GameID string
	UserID string
	Target engine.PlayerNumber
}

type CallSpecialElectionOutput struct {
	Game *models.Game
}

type ExecutePlayerInput struct {
	GameID string
	UserID string
	Target engine.PlayerNumber
}

type ExecutePlayerOutput struct {
	Game *models.Game
}

type AbandonGameInput struct {
	GameID string
	UserID string
}

type AbandonGameOutput struct {
	Success bool
}
