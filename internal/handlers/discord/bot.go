package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/randomnetcat/hitlerbot/internal/engine"
	"github.com/randomnetcat/hitlerbot/internal/models"
	"github.com/randomnetcat/hitlerbot/internal/services/game"
)

// Component actions. Custom IDs look like "sh:<action>[:<arg>]:<gameID>".
const (
	componentPrefix = "sh"

	actionJoin        = "join"
	actionLeave       = "leave"
	actionStart       = "start"
	actionNominate    = "nominate"
	actionVoteJa      = "voteja"
	actionVoteNein    = "votenein"
	actionDiscard     = "discard"
	actionEnact       = "enact"
	actionVetoRequest = "vetoreq"
	actionVetoApprove = "vetoyes"
	actionVetoReject  = "vetono"
	actionPowerTarget = "power"
)

// componentID joins an action and its arguments into a custom ID
func componentID(parts ...string) string {
	return componentPrefix + ":" + strings.Join(parts, ":")
}

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	config      *Config
	log         *logrus.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an existing Discord session to reuse. When nil a new
	// session is created from Token.
	Session *discordgo.Session

	// Discord bot token, required when Session is nil
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Logger is optional; a default logger is used when nil
	Logger *logrus.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	session := cfg.Session
	if session == nil {
		if cfg.Token == "" {
			return nil, errors.New("token cannot be empty")
		}

		var err error
		session, err = discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		config:      cfg,
		log:         log,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Session exposes the underlying Discord session, for wiring the
// messaging service against the same connection
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	hitlerCmd := NewHitlerCommand(b.gameService, b.log)
	if err := b.RegisterCommand(hitlerCmd); err != nil {
		return fmt.Errorf("failed to register hitler command: %w", err)
	}

	b.log.Info("bot is now running")
	return nil
}

// Stop deletes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.WithField("command", cmdName).WithError(err).Warn("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.WithField("command", cmd.GetName()).Info("registered command")

	return nil
}

// handleInteraction routes interactions to command or component handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var err error

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		if cmd, ok := b.commands[data.Name]; ok {
			err = cmd.Handle(s, i)
		}
	case discordgo.InteractionMessageComponent:
		err = b.handleComponent(s, i)
	}

	if err != nil {
		b.log.WithError(err).Error("failed to handle interaction")
	}
}

// handleComponent dispatches button and select menu interactions
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	parts := strings.Split(data.CustomID, ":")
	if len(parts) < 3 || parts[0] != componentPrefix {
		return nil
	}

	action := parts[1]
	gameID := parts[len(parts)-1]
	args := parts[2 : len(parts)-1]

	ctx := context.Background()
	userID, userName := interactionUser(i)

	switch action {
	case actionJoin:
		output, err := b.gameService.JoinGame(ctx, &game.JoinGameInput{
			GameID:   gameID,
			UserID:   userID,
			UserName: userName,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, output.Game)

	case actionLeave:
		output, err := b.gameService.LeaveGame(ctx, &game.LeaveGameInput{
			GameID: gameID,
			UserID: userID,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, output.Game)

	case actionStart:
		output, err := b.gameService.StartGame(ctx, &game.StartGameInput{
			GameID: gameID,
			UserID: userID,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, output.Game)

	case actionNominate:
		target, err := selectedSeat(data)
		if err != nil {
			return RespondWithError(s, i, "Invalid selection.")
		}
		output, err := b.gameService.NominateChancellor(ctx, &game.NominateChancellorInput{
			GameID: gameID,
			UserID: userID,
			Target: target,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, output.Game)

	case actionVoteJa, actionVoteNein:
		vote := engine.VoteJa
		if action == actionVoteNein {
			vote = engine.VoteNein
		}
		output, err := b.gameService.CastVote(ctx, &game.CastVoteInput{
			GameID: gameID,
			UserID: userID,
			Vote:   vote,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		if output.VotesOutstanding > 0 {
			return RespondWithEphemeral(s, i, fmt.Sprintf("Vote recorded. Waiting for %d more.", output.VotesOutstanding))
		}
		return b.respondBoard(s, i, output.Game)

	case actionDiscard:
		index, err := argIndex(args)
		if err != nil {
			return RespondWithError(s, i, "Invalid policy choice.")
		}
		output, err := b.gameService.DiscardPolicy(ctx, &game.DiscardPolicyInput{
			GameID: gameID,
			UserID: userID,
			Index:  index,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, output.Game)

	case actionEnact:
		index, err := argIndex(args)
		if err != nil {
			return RespondWithError(s, i, "Invalid policy choice.")
		}
		output, err := b.gameService.EnactPolicy(ctx, &game.EnactPolicyInput{
			GameID: gameID,
			UserID: userID,
			Index:  index,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, output.Game)

	case actionVetoRequest:
		output, err := b.gameService.RequestVeto(ctx, &game.RequestVetoInput{
			GameID: gameID,
			UserID: userID,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, output.Game)

	case actionVetoApprove, actionVetoReject:
		output, err := b.gameService.RespondToVeto(ctx, &game.RespondToVetoInput{
			GameID:  gameID,
			UserID:  userID,
			Approve: action == actionVetoApprove,
		})
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, output.Game)

	case actionPowerTarget:
		target, err := selectedSeat(data)
		if err != nil {
			return RespondWithError(s, i, "Invalid selection.")
		}
		updated, err := b.resolvePower(ctx, gameID, userID, target)
		if err != nil {
			return b.respondServiceError(s, i, err)
		}
		return b.respondBoard(s, i, updated)
	}

	return nil
}

// resolvePower looks up which power is pending and routes the target
// to the matching service call
func (b *Bot) resolvePower(ctx context.Context, gameID, userID string, target engine.PlayerNumber) (*models.Game, error) {
	current, err := b.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
	if err != nil {
		return nil, err
	}

	selection, ok := current.Game.State.Phase.(engine.PowerSelection)
	if !ok {
		return nil, engine.ErrInvalidState
	}

	switch selection.Power {
	case engine.PowerInvestigate:
		output, err := b.gameService.InvestigatePlayer(ctx, &game.InvestigatePlayerInput{
			GameID: gameID,
			UserID: userID,
			Target: target,
		})
		if err != nil {
			return nil, err
		}
		return output.Game, nil
	case engine.PowerSpecialElection:
		output, err := b.gameService.CallSpecialElection(ctx, &game.CallSpecialElectionInput{
			GameID: gameID,
			UserID: userID,
			Target: target,
		})
		if err != nil {
			return nil, err
		}
		return output.Game, nil
	case engine.PowerExecution:
		output, err := b.gameService.ExecutePlayer(ctx, &game.ExecutePlayerInput{
			GameID: gameID,
			UserID: userID,
			Target: target,
		})
		if err != nil {
			return nil, err
		}
		return output.Game, nil
	default:
		return nil, engine.ErrInvalidState
	}
}

// respondBoard answers an interaction with the refreshed board
func (b *Bot) respondBoard(s *discordgo.Session, i *discordgo.InteractionCreate, updated *models.Game) error {
	return RespondWithEmbedAndComponents(s, i, renderBoard(updated), renderComponents(updated))
}

// respondServiceError maps service and engine errors to an ephemeral
// user-facing message
func (b *Bot) respondServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	var gameErr engine.GameError
	if errors.As(err, &gameErr) {
		return RespondWithError(s, i, userFacingError(gameErr))
	}

	if errors.Is(err, game.ErrGameNotFound) {
		return RespondWithError(s, i, "That game no longer exists.")
	}

	b.log.WithError(err).Error("game action failed")
	return RespondWithError(s, i, "Something went wrong, try again.")
}

// userFacingError translates engine rule errors into friendly text
func userFacingError(err engine.GameError) string {
	switch err {
	case engine.ErrInvalidState:
		return "The game is not waiting for that action right now."
	case engine.ErrNotPlayer:
		return "You are not part of this game."
	case engine.ErrUnauthorized:
		return "It is not your turn to do that."
	case engine.ErrIneligibleTarget:
		return "That player cannot be chosen."
	case engine.ErrAlreadyVoted:
		return "You have already voted in this election."
	case engine.ErrVetoLocked:
		return "The veto power has not been unlocked yet."
	case engine.ErrVetoAlreadyUsed:
		return "This government has already used its veto request."
	case engine.ErrGameFull:
		return "The game is full."
	case engine.ErrAlreadyJoined:
		return "You have already joined this game."
	case engine.ErrNotJoined:
		return "You have not joined this game."
	case engine.ErrNotEnoughPlayers:
		return fmt.Sprintf("At least %d players are needed to start.", engine.MinPlayers)
	default:
		return err.Error()
	}
}

// interactionUser extracts the acting user's ID and display name
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

// selectedSeat parses the seat number from a select menu value
func selectedSeat(data discordgo.MessageComponentInteractionData) (engine.PlayerNumber, error) {
	if len(data.Values) != 1 {
		return 0, errors.New("expected exactly one selection")
	}

	seat, err := strconv.Atoi(data.Values[0])
	if err != nil {
		return 0, err
	}

	return engine.PlayerNumber(seat), nil
}

// argIndex parses the index argument of a policy button
func argIndex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected exactly one argument")
	}
	return strconv.Atoi(args[0])
}
