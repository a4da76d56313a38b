package engine

// powerSelection validates that the actor is the president of a
// pending power selection of the given kind and that the target is a
// living seat other than the president.
func (g *Game) powerSelection(userID string, power Power, target PlayerNumber) (PowerSelection, error) {
	if g.Status != StatusRunning {
		return PowerSelection{}, ErrInvalidState
	}

	selection, ok := g.Phase.(PowerSelection)
	if !ok || selection.Power != power {
		return PowerSelection{}, ErrInvalidState
	}

	actor, err := g.actingPlayer(userID)
	if err != nil {
		return PowerSelection{}, err
	}

	if actor != selection.President {
		return PowerSelection{}, ErrUnauthorized
	}

	if target == selection.President || !g.IsAlive(target) {
		return PowerSelection{}, ErrIneligibleTarget
	}

	return selection, nil
}

// EligiblePowerTargets lists the seats the president may target with
// the pending power. Empty outside the power selection phase.
func (g *Game) EligiblePowerTargets() []PlayerNumber {
	selection, ok := g.Phase.(PowerSelection)
	if !ok {
		return nil
	}

	var eligible []PlayerNumber
	for _, number := range g.AliveNumbers() {
		if number == selection.President {
			continue
		}
		if selection.Power == PowerInvestigate && g.wasInvestigated(number) {
			continue
		}
		eligible = append(eligible, number)
	}
	return eligible
}

// wasInvestigated reports whether a seat has been investigated before
func (g *Game) wasInvestigated(number PlayerNumber) bool {
	for _, investigated := range g.Powers.Investigated {
		if investigated == number {
			return true
		}
	}
	return false
}

// InvestigatePlayer is called by the president to reveal a player's
// party membership. A player can only be investigated once per game,
// and the result never distinguishes Hitler from a plain fascist.
func (g *Game) InvestigatePlayer(userID string, target PlayerNumber) ([]Event, error) {
	selection, err := g.powerSelection(userID, PowerInvestigate, target)
	if err != nil {
		return nil, err
	}

	if g.wasInvestigated(target) {
		return nil, ErrIneligibleTarget
	}

	g.Powers.Investigated = append(g.Powers.Investigated, target)

	events := []Event{InvestigationEvent{
		President: selection.President,
		Target:    target,
		Party:     g.Roles[target].Party(),
	}}

	return append(events, g.beginElection()), nil
}

// CallSpecialElection is called by the president to pick the next
// president candidate. The override lasts one election; the rotation
// resumes from the scheduled seat afterwards.
func (g *Game) CallSpecialElection(userID string, target PlayerNumber) ([]Event, error) {
	selection, err := g.powerSelection(userID, PowerSpecialElection, target)
	if err != nil {
		return nil, err
	}

	override := target
	g.Election.SpecialElection = &override

	events := []Event{SpecialElectionEvent{
		President: selection.President,
		Target:    target,
	}}

	return append(events, g.beginElection()), nil
}

// ExecutePlayer is called by the president to execute a player.
// Executing Hitler ends the game immediately; anyone else is removed
// from all future eligibility but stays seated for display.
func (g *Game) ExecutePlayer(userID string, target PlayerNumber) ([]Event, error) {
	selection, err := g.powerSelection(userID, PowerExecution, target)
	if err != nil {
		return nil, err
	}

	g.Powers.Executed = append(g.Powers.Executed, target)

	wasHitler := g.Roles[target] == RoleHitler

	events := []Event{ExecutionEvent{
		President: selection.President,
		Target:    target,
		WasHitler: wasHitler,
	}}

	if wasHitler {
		return append(events, g.endGame(PartyLiberal, WinReasonHitlerKilled)), nil
	}

	return append(events, g.beginElection()), nil
}
