package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Sender is the subset of the Discord session the service needs
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// Config holds configuration for the messaging service
type Config struct {
	// Session is the Discord session used to send messages
	Session Sender
}

// service implements the Service interface over a Discord session
type service struct {
	session Sender

	// dmChannels caches user ID to DM channel ID
	mu         sync.Mutex
	dmChannels map[string]string
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &service{
		session:    cfg.Session,
		dmChannels: make(map[string]string),
	}, nil
}

// SendToGame posts a message to the game's channel
func (s *service) SendToGame(ctx context.Context, input *SendToGameInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	if _, err := s.session.ChannelMessageSend(input.ChannelID, input.Content); err != nil {
		return fmt.Errorf("failed to send channel message: %w", err)
	}

	return nil
}

// SendToPlayer sends a direct message to one player, creating and
// caching the DM channel on first use
func (s *service) SendToPlayer(ctx context.Context, input *SendToPlayerInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	channelID, err := s.dmChannel(input.UserID)
	if err != nil {
		return err
	}

	if _, err := s.session.ChannelMessageSend(channelID, input.Content); err != nil {
		return fmt.Errorf("failed to send direct message: %w", err)
	}

	return nil
}

// dmChannel returns the cached DM channel for a user, creating it if
// needed
func (s *service) dmChannel(userID string) (string, error) {
	s.mu.Lock()
	channelID, ok := s.dmChannels[userID]
	s.mu.Unlock()
	if ok {
		return channelID, nil
	}

	channel, err := s.session.UserChannelCreate(userID)
	if err != nil {
		return "", fmt.Errorf("failed to create DM channel: %w", err)
	}

	s.mu.Lock()
	s.dmChannels[userID] = channel.ID
	s.mu.Unlock()

	return channel.ID, nil
}
