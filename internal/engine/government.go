package engine

import (
	"github.com/randomnetcat/hitlerbot/internal/shuffle"
)

// DiscardPolicy is called by the president to discard one of the three
// drawn policies. The remaining two pass to the chancellor.
func (g *Game) DiscardPolicy(userID string, index int) ([]Event, error) {
	if g.Status != StatusRunning {
		return nil, ErrInvalidState
	}

	choice, ok := g.Phase.(PresidentPolicyChoice)
	if !ok {
		return nil, ErrInvalidState
	}

	actor, err := g.actingPlayer(userID)
	if err != nil {
		return nil, err
	}

	if actor != choice.Government.President {
		return nil, ErrUnauthorized
	}

	if index < 0 || index >= len(choice.Policies) {
		return nil, ErrInvalidPolicyIndex
	}

	g.Deck.Discard(choice.Policies[index])

	remaining := make([]Policy, 0, len(choice.Policies)-1)
	for i, policy := range choice.Policies {
		if i != index {
			remaining = append(remaining, policy)
		}
	}

	g.Phase = ChancellorPolicyChoice{
		Government: choice.Government,
		Policies:   remaining,
		Veto:       VetoNotRequested,
	}

	return []Event{ChancellorPoliciesEvent{
		Chancellor: choice.Government.Chancellor,
		Policies:   remaining,
	}}, nil
}

// EnactPolicy is called by the chancellor to enact one of the two
// remaining policies. The other is discarded. A pending veto request
// must be answered by the president first.
func (g *Game) EnactPolicy(userID string, index int, shuffler shuffle.Shuffler) ([]Event, error) {
	if g.Status != StatusRunning {
		return nil, ErrInvalidState
	}

	choice, ok := g.Phase.(ChancellorPolicyChoice)
	if !ok {
		return nil, ErrInvalidState
	}

	actor, err := g.actingPlayer(userID)
	if err != nil {
		return nil, err
	}

	if actor != choice.Government.Chancellor {
		return nil, ErrUnauthorized
	}

	if choice.Veto == VetoRequested {
		return nil, ErrInvalidState
	}

	if index < 0 || index >= len(choice.Policies) {
		return nil, ErrInvalidPolicyIndex
	}

	for i, policy := range choice.Policies {
		if i != index {
			g.Deck.Discard(policy)
		}
	}

	return g.enactPolicy(choice.Policies[index], choice.Government, false, shuffler), nil
}

// RequestVeto is called by the chancellor to propose discarding both
// policies. Available once enough fascist policies are enacted, and
// only once per government.
func (g *Game) RequestVeto(userID string) ([]Event, error) {
	if g.Status != StatusRunning {
		return nil, ErrInvalidState
	}

	choice, ok := g.Phase.(ChancellorPolicyChoice)
	if !ok {
		return nil, ErrInvalidState
	}

	actor, err := g.actingPlayer(userID)
	if err != nil {
		return nil, err
	}

	if actor != choice.Government.Chancellor {
		return nil, ErrUnauthorized
	}

	if g.FascistPolicies < g.Config.VetoUnlockThreshold {
		return nil, ErrVetoLocked
	}

	if choice.Veto != VetoNotRequested {
		return nil, ErrVetoAlreadyUsed
	}

	choice.Veto = VetoRequested
	g.Phase = choice

	return []Event{VetoRequestedEvent{Government: choice.Government}}, nil
}

// RespondToVeto is called by the president to answer a veto request.
// Approval discards both policies and counts as a failed government;
// rejection forces the chancellor to enact.
func (g *Game) RespondToVeto(userID string, approve bool, shuffler shuffle.Shuffler) ([]Event, error) {
	if g.Status != StatusRunning {
		return nil, ErrInvalidState
	}

	choice, ok := g.Phase.(ChancellorPolicyChoice)
	if !ok {
		return nil, ErrInvalidState
	}

	actor, err := g.actingPlayer(userID)
	if err != nil {
		return nil, err
	}

	if actor != choice.Government.President {
		return nil, ErrUnauthorized
	}

	if choice.Veto != VetoRequested {
		return nil, ErrVetoNotRequested
	}

	if !approve {
		choice.Veto = VetoRejected
		g.Phase = choice

		return []Event{VetoRejectedEvent{Government: choice.Government}}, nil
	}

	g.Deck.Discard(choice.Policies...)

	return g.failVetoedGovernment(choice.Government, shuffler), nil
}

// enactPolicy places a policy on its track, resets the election
// tracker, checks win conditions and resolves any unlocked power.
// Chaos enactments bypass powers entirely. The track holds counts
// only, so the enacted card returns to the discard pile and the deck
// keeps all seventeen cards.
func (g *Game) enactPolicy(policy Policy, government Government, byChaos bool, shuffler shuffle.Shuffler) []Event {
	g.Deck.Discard(policy)

	switch policy {
	case PolicyLiberal:
		g.LiberalPolicies++
	case PolicyFascist:
		g.FascistPolicies++
	}

	g.Election.Tracker = 0

	events := []Event{PolicyEnactedEvent{
		Policy:          policy,
		LiberalPolicies: g.LiberalPolicies,
		FascistPolicies: g.FascistPolicies,
		ByChaos:         byChaos,
	}}

	if g.FascistPolicies >= g.Config.FascistPoliciesToWin {
		return append(events, g.endGame(PartyFascist, WinReasonPolicyGoal))
	}

	if g.LiberalPolicies >= g.Config.LiberalPoliciesToWin {
		return append(events, g.endGame(PartyLiberal, WinReasonPolicyGoal))
	}

	if byChaos || policy != PolicyFascist {
		return append(events, g.beginElection())
	}

	power, unlocked := g.Config.FascistPowerAt(g.FascistPolicies)
	if !unlocked {
		return append(events, g.beginElection())
	}

	if power == PowerPolicyPeek {
		// Resolves without further input
		events = append(events, PolicyPeekEvent{
			President: government.President,
			Policies:  g.Deck.PeekTop(3, shuffler),
		})
		return append(events, g.beginElection())
	}

	g.Phase = PowerSelection{
		President: government.President,
		Power:     power,
	}

	return append(events, PowerPendingEvent{
		President: government.President,
		Power:     power,
	})
}
