package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/randomnetcat/hitlerbot/internal/services/game Service

import "context"

// Service defines the interface for game operations. Every mutating
// call runs its rule transition atomically against the stored game and
// sends notifications only after the new state has been persisted.
type Service interface {
	// CreateGame opens a new game lobby in a Discord channel
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a game lobby
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// LeaveGame removes a player from a game lobby
	LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error)

	// StartGame seats the lobby, deals roles and opens the first election
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameByChannel retrieves the game attached to a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error)

	// NominateChancellor proposes a government and opens voting
	NominateChancellor(ctx context.Context, input *NominateChancellorInput) (*NominateChancellorOutput, error)

	// CastVote records a ballot on the proposed government
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// DiscardPolicy is the president's discard from the drawn three
	DiscardPolicy(ctx context.Context, input *DiscardPolicyInput) (*DiscardPolicyOutput, error)

	// EnactPolicy is the chancellor's choice from the remaining two
	EnactPolicy(ctx context.Context, input *EnactPolicyInput) (*EnactPolicyOutput, error)

	// RequestVeto is the chancellor's proposal to discard both policies
	RequestVeto(ctx context.Context, input *RequestVetoInput) (*RequestVetoOutput, error)

	// RespondToVeto is the president's answer to a veto request
	RespondToVeto(ctx context.Context, input *RespondToVetoInput) (*RespondToVetoOutput, error)

	// InvestigatePlayer resolves the investigation power
	InvestigatePlayer(ctx context.Context, input *InvestigatePlayerInput) (*InvestigatePlayerOutput, error)

	// CallSpecialElection resolves the special election power
	CallSpecialElection(ctx context.Context, input *CallSpecialElectionInput) (*CallSpecialElectionOutput, error)

	// ExecutePlayer resolves the execution power
	ExecutePlayer(ctx context.Context, input *ExecutePlayerInput) (*ExecutePlayerOutput, error)

	// AbandonGame deletes a game; only the creator may do this
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)
}
