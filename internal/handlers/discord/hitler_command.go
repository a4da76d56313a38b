package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/randomnetcat/hitlerbot/internal/engine"
	"github.com/randomnetcat/hitlerbot/internal/services/game"
)

// HitlerCommand handles the /hitler command
type HitlerCommand struct {
	BaseCommand
	gameService game.Service
	log         *logrus.Logger
}

// NewHitlerCommand creates a new hitler command handler
func NewHitlerCommand(gameService game.Service, log *logrus.Logger) *HitlerCommand {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &HitlerCommand{
		BaseCommand: BaseCommand{
			Name:        "hitler",
			Description: "Secret Hitler game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Open a new game lobby in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the lobby in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave the lobby in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Deal roles and begin the game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the current board",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Abandon the game in this channel",
				},
			},
		},
		gameService: gameService,
		log:         log,
	}
}

// Handle processes a Discord interaction for the hitler command
func (c *HitlerCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	channelID := i.ChannelID
	userID, userName := interactionUser(i)

	var err error
	switch data.Options[0].Name {
	case "new":
		err = c.handleNew(s, i, channelID, userID, userName)
	case "join":
		err = c.handleJoin(s, i, channelID, userID, userName)
	case "leave":
		err = c.handleLeave(s, i, channelID, userID)
	case "start":
		err = c.handleStart(s, i, channelID, userID)
	case "status":
		err = c.handleStatus(s, i, channelID)
	case "abandon":
		err = c.handleAbandon(s, i, channelID, userID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleNew handles the new subcommand
func (c *HitlerCommand) handleNew(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, userName string) error {
	ctx := context.Background()

	output, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		ChannelID:   channelID,
		CreatorID:   userID,
		CreatorName: userName,
	})
	if err != nil {
		if errors.Is(err, game.ErrGameAlreadyExists) {
			return RespondWithError(s, i, "There is already a game in this channel. Use `/hitler abandon` to clear it first.")
		}
		c.log.WithError(err).Error("failed to create game")
		return RespondWithError(s, i, "Failed to create the game, try again.")
	}

	return RespondWithEmbedAndComponents(s, i, renderBoard(output.Game), renderComponents(output.Game))
}

// handleJoin handles the join subcommand
func (c *HitlerCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, userName string) error {
	ctx := context.Background()

	current, err := c.channelGame(ctx, s, i, channelID)
	if err != nil || current == nil {
		return err
	}

	output, err := c.gameService.JoinGame(ctx, &game.JoinGameInput{
		GameID:   current.Game.ID,
		UserID:   userID,
		UserName: userName,
	})
	if err != nil {
		return c.respondCommandError(s, i, err)
	}

	return RespondWithEmbedAndComponents(s, i, renderBoard(output.Game), renderComponents(output.Game))
}

// handleLeave handles the leave subcommand
func (c *HitlerCommand) handleLeave(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	ctx := context.Background()

	current, err := c.channelGame(ctx, s, i, channelID)
	if err != nil || current == nil {
		return err
	}

	output, err := c.gameService.LeaveGame(ctx, &game.LeaveGameInput{
		GameID: current.Game.ID,
		UserID: userID,
	})
	if err != nil {
		return c.respondCommandError(s, i, err)
	}

	return RespondWithEmbedAndComponents(s, i, renderBoard(output.Game), renderComponents(output.Game))
}

// handleStart handles the start subcommand
func (c *HitlerCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	ctx := context.Background()

	current, err := c.channelGame(ctx, s, i, channelID)
	if err != nil || current == nil {
		return err
	}

	output, err := c.gameService.StartGame(ctx, &game.StartGameInput{
		GameID: current.Game.ID,
		UserID: userID,
	})
	if err != nil {
		return c.respondCommandError(s, i, err)
	}

	return RespondWithEmbedAndComponents(s, i, renderBoard(output.Game), renderComponents(output.Game))
}

// handleStatus handles the status subcommand
func (c *HitlerCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	current, err := c.channelGame(ctx, s, i, channelID)
	if err != nil || current == nil {
		return err
	}

	return RespondWithEmbedAndComponents(s, i, renderBoard(current.Game), renderComponents(current.Game))
}

// handleAbandon handles the abandon subcommand
func (c *HitlerCommand) handleAbandon(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	ctx := context.Background()

	current, err := c.channelGame(ctx, s, i, channelID)
	if err != nil || current == nil {
		return err
	}

	_, err = c.gameService.AbandonGame(ctx, &game.AbandonGameInput{
		GameID: current.Game.ID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, game.ErrNotCreator) {
			return RespondWithError(s, i, "Only the player who opened the game can abandon it.")
		}
		return c.respondCommandError(s, i, err)
	}

	return RespondWithMessage(s, i, "The game has been abandoned.")
}

// channelGame looks up the game attached to this channel, responding
// with an error when there is none. A nil result with a nil error
// means the interaction has already been answered.
func (c *HitlerCommand) channelGame(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) (*game.GetGameByChannelOutput, error) {
	output, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, game.ErrGameNotFound) {
			return nil, RespondWithError(s, i, "There is no game in this channel. Use `/hitler new` to open one.")
		}
		c.log.WithError(err).Error("failed to look up channel game")
		return nil, RespondWithError(s, i, "Failed to look up the game, try again.")
	}

	return output, nil
}

// respondCommandError maps a failed subcommand to an ephemeral message
func (c *HitlerCommand) respondCommandError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	var gameErr engine.GameError
	if errors.As(err, &gameErr) {
		return RespondWithError(s, i, userFacingError(gameErr))
	}

	c.log.WithError(err).Error("subcommand failed")
	return RespondWithError(s, i, fmt.Sprintf("That did not work: %v", err))
}
