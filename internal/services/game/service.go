package game

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/randomnetcat/hitlerbot/internal/engine"
	"github.com/randomnetcat/hitlerbot/internal/models"
	gameRepo "github.com/randomnetcat/hitlerbot/internal/repositories/game"
	"github.com/randomnetcat/hitlerbot/internal/services/messaging"
	"github.com/randomnetcat/hitlerbot/internal/shuffle"
)

// service implements the Service interface
type service struct {
	gameRepo  gameRepo.Repository
	messaging messaging.Service
	shuffler  shuffle.Shuffler
	log       *logrus.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &service{
		gameRepo:  cfg.GameRepo,
		messaging: cfg.Messaging,
		shuffler:  cfg.Shuffler,
		log:       log,
	}, nil
}

// update runs an engine transition atomically against the stored game
// and notifies about the resulting events once the update committed
func (s *service) update(ctx context.Context, gameID string, transition func(state *engine.Game) ([]engine.Event, error)) (*models.Game, []engine.Event, error) {
	var events []engine.Event
	game, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: gameID,
		Update: func(game *models.Game) error {
			var transitionErr error
			events, transitionErr = transition(game.State)
			return transitionErr
		},
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, nil, ErrGameNotFound
		}
		return nil, nil, err
	}

	s.notify(ctx, game, events)

	return game, events, nil
}

// CreateGame opens a new game lobby in a Discord channel and seats the
// creator in it
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	existing, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, err
	}
	if err == nil && existing.Status() != engine.StatusCompleted {
		return nil, ErrGameAlreadyExists
	}

	created, err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
	})
	if err != nil {
		return nil, err
	}

	game, _, err := s.update(ctx, created.Game.ID, func(state *engine.Game) ([]engine.Event, error) {
		return state.Join(engine.PlayerIdentity{
			UserID: input.CreatorID,
			Name:   input.CreatorName,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":    game.ID,
		"channel_id": game.ChannelID,
	}).Info("created game")

	return &CreateGameOutput{Game: game}, nil
}

// JoinGame adds a player to a game lobby
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.Join(engine.PlayerIdentity{
			UserID: input.UserID,
			Name:   input.UserName,
		})
	})
	if err != nil {
		return nil, err
	}

	return &JoinGameOutput{Game: game}, nil
}

// LeaveGame removes a player from a game lobby
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.Leave(input.UserID)
	})
	if err != nil {
		return nil, err
	}

	return &LeaveGameOutput{Game: game}, nil
}

// StartGame seats the lobby, deals roles and opens the first election.
// Any player who has joined may start the game.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		if state.Status == engine.StatusJoining && !lobbyContains(state, input.UserID) {
			return nil, engine.ErrNotJoined
		}
		return state.Start(s.shuffler)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id": game.ID,
		"players": game.State.Players.Count(),
	}).Info("started game")

	return &StartGameOutput{Game: game}, nil
}

// lobbyContains reports whether a user has joined the lobby
func lobbyContains(state *engine.Game, userID string) bool {
	for _, player := range state.Lobby {
		if player.UserID == userID {
			return true
		}
	}
	return false
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &GetGameOutput{Game: game}, nil
}

// GetGameByChannel retrieves the game attached to a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &GetGameByChannelOutput{Game: game}, nil
}

// NominateChancellor proposes a government and opens voting
func (s *service) NominateChancellor(ctx context.Context, input *NominateChancellorInput) (*NominateChancellorOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.NominateChancellor(input.UserID, input.Target)
	})
	if err != nil {
		return nil, err
	}

	return &NominateChancellorOutput{Game: game}, nil
}

// CastVote records a ballot on the proposed government
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, events, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.CastVote(input.UserID, input.Vote, s.shuffler)
	})
	if err != nil {
		return nil, err
	}

	outstanding := 0
	for _, event := range events {
		if recorded, ok := event.(engine.VoteRecordedEvent); ok {
			outstanding = recorded.Remaining
		}
	}

	return &CastVoteOutput{
		Game:             game,
		VotesOutstanding: outstanding,
	}, nil
}

// DiscardPolicy is the president's discard from the drawn three
func (s *service) DiscardPolicy(ctx context.Context, input *DiscardPolicyInput) (*DiscardPolicyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.DiscardPolicy(input.UserID, input.Index)
	})
	if err != nil {
		return nil, err
	}

	return &DiscardPolicyOutput{Game: game}, nil
}

// EnactPolicy is the chancellor's choice from the remaining two
func (s *service) EnactPolicy(ctx context.Context, input *EnactPolicyInput) (*EnactPolicyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.EnactPolicy(input.UserID, input.Index, s.shuffler)
	})
	if err != nil {
		return nil, err
	}

	return &EnactPolicyOutput{Game: game}, nil
}

// RequestVeto is the chancellor's proposal to discard both policies
func (s *service) RequestVeto(ctx context.Context, input *RequestVetoInput) (*RequestVetoOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.RequestVeto(input.UserID)
	})
	if err != nil {
		return nil, err
	}

	return &RequestVetoOutput{Game: game}, nil
}

// RespondToVeto is the president's answer to a veto request
func (s *service) RespondToVeto(ctx context.Context, input *RespondToVetoInput) (*RespondToVetoOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.RespondToVeto(input.UserID, input.Approve, s.shuffler)
	})
	if err != nil {
		return nil, err
	}

	return &RespondToVetoOutput{Game: game}, nil
}

// InvestigatePlayer resolves the investigation power
func (s *service) InvestigatePlayer(ctx context.Context, input *InvestigatePlayerInput) (*InvestigatePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.InvestigatePlayer(input.UserID, input.Target)
	})
	if err != nil {
		return nil, err
	}

	return &InvestigatePlayerOutput{Game: game}, nil
}

// CallSpecialElection resolves the special election power
func (s *service) CallSpecialElection(ctx context.Context, input *CallSpecialElectionInput) (*CallSpecialElectionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.CallSpecialElection(input.UserID, input.Target)
	})
	if err != nil {
		return nil, err
	}

	return &CallSpecialElectionOutput{Game: game}, nil
}

// ExecutePlayer resolves the execution power
func (s *service) ExecutePlayer(ctx context.Context, input *ExecutePlayerInput) (*ExecutePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, _, err := s.update(ctx, input.GameID, func(state *engine.Game) ([]engine.Event, error) {
		return state.ExecutePlayer(input.UserID, input.Target)
	})
	if err != nil {
		return nil, err
	}

	return &ExecutePlayerOutput{Game: game}, nil
}

// AbandonGame deletes a game; only the creator may do this
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if game.CreatorID != input.UserID {
		return nil, ErrNotCreator
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	}); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":    game.ID,
		"channel_id": game.ChannelID,
	}).Info("abandoned game")

	return &AbandonGameOutput{Success: true}, nil
}
