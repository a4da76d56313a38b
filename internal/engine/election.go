package engine

import (
	"github.com/randomnetcat/hitlerbot/internal/shuffle"
)

// NominateChancellor is called by the president candidate to propose a
// government. Voting opens on success.
func (g *Game) NominateChancellor(userID string, candidate PlayerNumber) ([]Event, error) {
	if g.Status != StatusRunning {
		return nil, ErrInvalidState
	}

	selection, ok := g.Phase.(ChancellorSelection)
	if !ok {
		return nil, ErrInvalidState
	}

	actor, err := g.actingPlayer(userID)
	if err != nil {
		return nil, err
	}

	if actor != selection.President {
		return nil, ErrUnauthorized
	}

	if !g.chancellorEligible(selection.President, candidate) {
		return nil, ErrIneligibleTarget
	}

	government := Government{
		President:  selection.President,
		Chancellor: candidate,
	}

	g.Phase = Voting{
		Government: government,
		Votes:      map[PlayerNumber]Vote{},
	}

	return []Event{ChancellorNominatedEvent{Government: government}}, nil
}

// chancellorEligible applies the nomination rules: the candidate must
// be a living seat other than the president, must not be the
// term-limited chancellor, and must not be the term-limited president
// unless few enough players remain alive.
func (g *Game) chancellorEligible(president, candidate PlayerNumber) bool {
	if !g.IsAlive(candidate) {
		return false
	}

	if candidate == president {
		return false
	}

	limited := g.Election.TermLimited
	if limited == nil {
		return true
	}

	if candidate == limited.Chancellor {
		return false
	}

	if candidate == limited.President && g.aliveCount() > lastPresidentIneligibilityThreshold {
		return false
	}

	return true
}

// EligibleChancellors lists the seats the current president candidate
// may nominate. Empty outside the chancellor selection phase.
func (g *Game) EligibleChancellors() []PlayerNumber {
	selection, ok := g.Phase.(ChancellorSelection)
	if !ok {
		return nil
	}

	var eligible []PlayerNumber
	for _, number := range g.AliveNumbers() {
		if g.chancellorEligible(selection.President, number) {
			eligible = append(eligible, number)
		}
	}
	return eligible
}

// CastVote records one player's ballot. When every living player has
// voted the election resolves: a strict majority of ja elects the
// government, anything else fails it and advances the election
// tracker, possibly into chaos.
func (g *Game) CastVote(userID string, vote Vote, shuffler shuffle.Shuffler) ([]Event, error) {
	if g.Status != StatusRunning {
		return nil, ErrInvalidState
	}

	voting, ok := g.Phase.(Voting)
	if !ok {
		return nil, ErrInvalidState
	}

	if vote != VoteJa && vote != VoteNein {
		return nil, ErrInvalidVote
	}

	actor, err := g.actingPlayer(userID)
	if err != nil {
		return nil, err
	}

	if !g.IsAlive(actor) {
		return nil, ErrUnauthorized
	}

	if _, voted := voting.Votes[actor]; voted {
		return nil, ErrAlreadyVoted
	}

	voting.Votes[actor] = vote
	g.Phase = voting

	remaining := g.aliveCount() - len(voting.Votes)
	events := []Event{VoteRecordedEvent{
		Player:    actor,
		Remaining: remaining,
	}}

	if remaining > 0 {
		return events, nil
	}

	return append(events, g.resolveElection(voting, shuffler)...), nil
}

// resolveElection tallies a completed vote
func (g *Game) resolveElection(voting Voting, shuffler shuffle.Shuffler) []Event {
	var ja int
	for _, vote := range voting.Votes {
		if vote == VoteJa {
			ja++
		}
	}

	if ja*2 > g.aliveCount() {
		return g.electGovernment(voting, shuffler)
	}

	return g.failGovernment(GovernmentRejectedEvent{
		Government: voting.Government,
		Votes:      voting.Votes,
	}, shuffler)
}

// electGovernment installs an elected government. Electing Hitler as
// chancellor ends the game once enough fascist policies are on the
// board; the check runs before any policy is drawn.
func (g *Game) electGovernment(voting Voting, shuffler shuffle.Shuffler) []Event {
	government := voting.Government

	events := []Event{GovernmentElectedEvent{
		Government: government,
		Votes:      voting.Votes,
	}}

	if g.FascistPolicies >= g.Config.HitlerChancellorThreshold &&
		g.Roles[government.Chancellor] == RoleHitler {
		return append(events, g.endGame(PartyFascist, WinReasonHitlerChancellor))
	}

	g.Election.TermLimited = &Government{
		President:  government.President,
		Chancellor: government.Chancellor,
	}

	hand := g.Deck.Draw(3, shuffler)

	g.Phase = PresidentPolicyChoice{
		Government: government,
		Policies:   hand,
	}

	return append(events, PresidentPoliciesEvent{
		President: government.President,
		Policies:  hand,
	})
}

// failGovernment advances the election tracker after a rejected
// government or an approved veto
func (g *Game) failGovernment(rejection GovernmentRejectedEvent, shuffler shuffle.Shuffler) []Event {
	g.Election.Tracker++
	rejection.Tracker = g.Election.Tracker

	events := []Event{Event(rejection)}

	if g.Election.Tracker >= g.Config.ElectionTrackerMax {
		return append(events, g.resolveChaos(shuffler)...)
	}

	return append(events, g.beginElection())
}

// failVetoedGovernment is the veto-approved variant of failGovernment;
// it reports a veto event instead of a rejection
func (g *Game) failVetoedGovernment(government Government, shuffler shuffle.Shuffler) []Event {
	g.Election.Tracker++

	events := []Event{VetoApprovedEvent{
		Government: government,
		Tracker:    g.Election.Tracker,
	}}

	if g.Election.Tracker >= g.Config.ElectionTrackerMax {
		return append(events, g.resolveChaos(shuffler)...)
	}

	return append(events, g.beginElection())
}

// resolveChaos enacts the top card of the deck with no government.
// Term limits are forgotten along with the rest of the country's
// patience.
func (g *Game) resolveChaos(shuffler shuffle.Shuffler) []Event {
	g.Election.TermLimited = nil

	drawn := g.Deck.Draw(1, shuffler)

	return g.enactPolicy(drawn[0], Government{}, true, shuffler)
}
