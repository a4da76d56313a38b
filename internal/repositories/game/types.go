package game

import "github.com/randomnetcat/hitlerbot/internal/models"

type CreateGameInput struct {
	ChannelID string
	CreatorID string
}

type CreateGameOutput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameByChannelInput struct {
	ChannelID string
}

type UpdateGameInput struct {
	GameID string

	// Update mutates the freshly loaded game in place. Returning an
	// error aborts the update with nothing written and the error is
	// passed through to the caller unchanged.
	Update func(game *models.Game) error
}

type DeleteGameInput struct {
	GameID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}
