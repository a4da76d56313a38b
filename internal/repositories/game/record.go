package game

import (
	"fmt"
	"time"

	"github.com/randomnetcat/hitlerbot/internal/engine"
	"github.com/randomnetcat/hitlerbot/internal/models"
)

// schemaVersion tags every persisted record so future schema changes
// can migrate old games on read
const schemaVersion = 1

// Phase tags for the flattened ephemeral phase
const (
	phaseNone                   = ""
	phaseChancellorSelection    = "chancellor_selection"
	phaseVoting                 = "voting"
	phasePresidentPolicyChoice  = "president_policy_choice"
	phaseChancellorPolicyChoice = "chancellor_policy_choice"
	phasePowerSelection         = "power_selection"
)

// gameRecord is the persisted JSON form of a game
type gameRecord struct {
	Version   int          `json:"version"`
	ID        string       `json:"id"`
	ChannelID string       `json:"channel_id"`
	CreatorID string       `json:"creator_id"`
	MessageID string       `json:"message_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	State     *stateRecord `json:"state"`
}

// stateRecord flattens the engine state. The ephemeral phase is a sum
// type in the engine; here it becomes a tag plus one optional payload.
type stateRecord struct {
	Status          engine.Status           `json:"status"`
	Lobby           []engine.PlayerIdentity `json:"lobby,omitempty"`
	Config          *engine.Config          `json:"config,omitempty"`
	Players         engine.PlayerMap        `json:"players,omitempty"`
	Roles           engine.RoleMap          `json:"roles,omitempty"`
	Deck            engine.Deck             `json:"deck"`
	LiberalPolicies int                     `json:"liberal_policies"`
	FascistPolicies int                     `json:"fascist_policies"`
	Election        engine.ElectionState    `json:"election"`
	Powers          engine.PowersState      `json:"powers"`
	Outcome         *engine.Outcome         `json:"outcome,omitempty"`

	Phase                  string                         `json:"phase,omitempty"`
	ChancellorSelection    *engine.ChancellorSelection    `json:"chancellor_selection,omitempty"`
	Voting                 *engine.Voting                 `json:"voting,omitempty"`
	PresidentPolicyChoice  *engine.PresidentPolicyChoice  `json:"president_policy_choice,omitempty"`
	ChancellorPolicyChoice *engine.ChancellorPolicyChoice `json:"chancellor_policy_choice,omitempty"`
	PowerSelection         *engine.PowerSelection         `json:"power_selection,omitempty"`
}

// newGameRecord converts a domain game to its persisted form
func newGameRecord(game *models.Game) (*gameRecord, error) {
	record := &gameRecord{
		Version:   schemaVersion,
		ID:        game.ID,
		ChannelID: game.ChannelID,
		CreatorID: game.CreatorID,
		MessageID: game.MessageID,
		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}

	if game.State == nil {
		return record, nil
	}

	state := &stateRecord{
		Status:          game.State.Status,
		Lobby:           game.State.Lobby,
		Config:          game.State.Config,
		Players:         game.State.Players,
		Roles:           game.State.Roles,
		Deck:            game.State.Deck,
		LiberalPolicies: game.State.LiberalPolicies,
		FascistPolicies: game.State.FascistPolicies,
		Election:        game.State.Election,
		Powers:          game.State.Powers,
		Outcome:         game.State.Outcome,
	}

	switch phase := game.State.Phase.(type) {
	case nil:
		state.Phase = phaseNone
	case engine.ChancellorSelection:
		state.Phase = phaseChancellorSelection
		state.ChancellorSelection = &phase
	case engine.Voting:
		state.Phase = phaseVoting
		state.Voting = &phase
	case engine.PresidentPolicyChoice:
		state.Phase = phasePresidentPolicyChoice
		state.PresidentPolicyChoice = &phase
	case engine.ChancellorPolicyChoice:
		state.Phase = phaseChancellorPolicyChoice
		state.ChancellorPolicyChoice = &phase
	case engine.PowerSelection:
		state.Phase = phasePowerSelection
		state.PowerSelection = &phase
	default:
		return nil, fmt.Errorf("unknown game phase %T", phase)
	}

	record.State = state

	return record, nil
}

// toDomain converts a persisted record back to a domain game
func (r *gameRecord) toDomain() (*models.Game, error) {
	if r.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported game record version %d", r.Version)
	}

	game := &models.Game{
		ID:        r.ID,
		ChannelID: r.ChannelID,
		CreatorID: r.CreatorID,
		MessageID: r.MessageID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if r.State == nil {
		return game, nil
	}

	state := &engine.Game{
		Status:          r.State.Status,
		Lobby:           r.State.Lobby,
		Config:          r.State.Config,
		Players:         r.State.Players,
		Roles:           r.State.Roles,
		Deck:            r.State.Deck,
		LiberalPolicies: r.State.LiberalPolicies,
		FascistPolicies: r.State.FascistPolicies,
		Election:        r.State.Election,
		Powers:          r.State.Powers,
		Outcome:         r.State.Outcome,
	}

	switch r.State.Phase {
	case phaseNone:
	case phaseChancellorSelection:
		if r.State.ChancellorSelection == nil {
			return nil, fmt.Errorf("game record phase %q missing payload", r.State.Phase)
		}
		state.Phase = *r.State.ChancellorSelection
	case phaseVoting:
		if r.State.Voting == nil {
			return nil, fmt.Errorf("game record phase %q missing payload", r.State.Phase)
		}
		state.Phase = *r.State.Voting
	case phasePresidentPolicyChoice:
		if r.State.PresidentPolicyChoice == nil {
			return nil, fmt.Errorf("game record phase %q missing payload", r.State.Phase)
		}
		state.Phase = *r.State.PresidentPolicyChoice
	case phaseChancellorPolicyChoice:
		if r.State.ChancellorPolicyChoice == nil {
			return nil, fmt.Errorf("game record phase %q missing payload", r.State.Phase)
		}
		state.Phase = *r.State.ChancellorPolicyChoice
	case phasePowerSelection:
		if r.State.PowerSelection == nil {
			return nil, fmt.Errorf("game record phase %q missing payload", r.State.Phase)
		}
		state.Phase = *r.State.PowerSelection
	default:
		return nil, fmt.Errorf("unknown game record phase %q", r.State.Phase)
	}

	game.State = state

	return game, nil
}
