package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/randomnetcat/hitlerbot/internal/repositories/game Repository

import (
	"context"

	"github.com/randomnetcat/hitlerbot/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame persists a new game and returns it with an assigned ID
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByChannel retrieves a game by channel ID
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error)

	// UpdateGame applies an atomic read-modify-write to one game.
	// The update function sees the current state and may return any
	// error to abort with nothing written; concurrent updates to the
	// same game serialize, updates to different games do not contend.
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all games that have not completed
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
