package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/randomnetcat/hitlerbot/internal/services/messaging Service

import "context"

// Service delivers game notifications to Discord. It is only ever
// called after a state change has been persisted, so players never
// hear about a state that was rolled back.
type Service interface {
	// SendToGame posts a message to the game's channel
	SendToGame(ctx context.Context, input *SendToGameInput) error

	// SendToPlayer sends a direct message to one player
	SendToPlayer(ctx context.Context, input *SendToPlayerInput) error
}
