package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type GovernmentTestSuite struct {
	suite.Suite
	game *Game
}

func (s *GovernmentTestSuite) SetupTest() {
	game, err := newRunningGame(5)
	s.Require().NoError(err)
	s.game = game
}

func TestGovernmentTestSuite(t *testing.T) {
	suite.Run(t, new(GovernmentTestSuite))
}

// presidentChoice places the game directly in the president's policy
// choice with the given hand.
func (s *GovernmentTestSuite) presidentChoice(hand ...Policy) {
	s.game.Phase = PresidentPolicyChoice{
		Government: Government{President: 1, Chancellor: 3},
		Policies:   hand,
	}
}

// chancellorChoice places the game directly in the chancellor's policy
// choice with the given hand.
func (s *GovernmentTestSuite) chancellorChoice(hand ...Policy) {
	s.game.Phase = ChancellorPolicyChoice{
		Government: Government{President: 1, Chancellor: 3},
		Policies:   hand,
		Veto:       VetoNotRequested,
	}
}

func (s *GovernmentTestSuite) TestDiscardPassesHandToChancellor() {
	s.presidentChoice(PolicyFascist, PolicyLiberal, PolicyFascist)

	events, err := s.game.DiscardPolicy(testUserID(1), 1)
	s.Require().NoError(err)

	choice, ok := s.game.Phase.(ChancellorPolicyChoice)
	s.Require().True(ok)
	s.Equal([]Policy{PolicyFascist, PolicyFascist}, choice.Policies)
	s.Equal(VetoNotRequested, choice.Veto)
	s.Equal([]Policy{PolicyLiberal}, s.game.Deck.DiscardPile)

	s.Require().Len(events, 1)
	handed, ok := events[0].(ChancellorPoliciesEvent)
	s.Require().True(ok)
	s.Equal(PlayerNumber(3), handed.Chancellor)
	s.Equal([]Policy{PolicyFascist, PolicyFascist}, handed.Policies)
}

func (s *GovernmentTestSuite) TestDiscardRejectsWrongActorAndIndex() {
	s.presidentChoice(PolicyFascist, PolicyLiberal, PolicyFascist)

	_, err := s.game.DiscardPolicy(testUserID(3), 0)
	s.ErrorIs(err, ErrUnauthorized)

	_, err = s.game.DiscardPolicy(testUserID(1), 3)
	s.ErrorIs(err, ErrInvalidPolicyIndex)

	_, err = s.game.DiscardPolicy(testUserID(1), -1)
	s.ErrorIs(err, ErrInvalidPolicyIndex)
}

func (s *GovernmentTestSuite) TestEnactPlacesPolicyAndDiscardsOther() {
	s.chancellorChoice(PolicyFascist, PolicyLiberal)

	events, err := s.game.EnactPolicy(testUserID(3), 1, identityShuffler{})
	s.Require().NoError(err)

	s.Equal(1, s.game.LiberalPolicies)
	s.Equal(0, s.game.FascistPolicies)

	// Both cards return to the deck: the rejected one, then the
	// enacted one, since the track only records counts
	s.Equal([]Policy{PolicyFascist, PolicyLiberal}, s.game.Deck.DiscardPile)
	s.Equal(0, s.game.Election.Tracker)
	s.IsType(ChancellorSelection{}, s.game.Phase)

	s.Require().Len(events, 2)
	enacted, ok := events[0].(PolicyEnactedEvent)
	s.Require().True(ok)
	s.Equal(PolicyLiberal, enacted.Policy)
	s.False(enacted.ByChaos)
	s.IsType(ElectionStartedEvent{}, events[1])
}

func (s *GovernmentTestSuite) TestEnactRejectsWrongActor() {
	s.chancellorChoice(PolicyFascist, PolicyLiberal)

	_, err := s.game.EnactPolicy(testUserID(1), 0, identityShuffler{})
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *GovernmentTestSuite) TestEnactResetsTracker() {
	s.game.Election.Tracker = 2
	s.chancellorChoice(PolicyLiberal, PolicyLiberal)

	_, err := s.game.EnactPolicy(testUserID(3), 0, identityShuffler{})
	s.Require().NoError(err)

	s.Equal(0, s.game.Election.Tracker)
}

func (s *GovernmentTestSuite) TestLiberalPolicyGoalWins() {
	s.game.LiberalPolicies = 4
	s.chancellorChoice(PolicyLiberal, PolicyFascist)

	events, err := s.game.EnactPolicy(testUserID(3), 0, identityShuffler{})
	s.Require().NoError(err)

	s.Equal(StatusCompleted, s.game.Status)
	s.Require().NotNil(s.game.Outcome)
	s.Equal(PartyLiberal, s.game.Outcome.Winner)
	s.Equal(WinReasonPolicyGoal, s.game.Outcome.Reason)

	ended, ok := events[len(events)-1].(GameEndedEvent)
	s.Require().True(ok)
	s.Len(ended.Roles, 5)
}

func (s *GovernmentTestSuite) TestFascistPolicyGoalWins() {
	s.game.FascistPolicies = 5
	s.chancellorChoice(PolicyFascist, PolicyLiberal)

	_, err := s.game.EnactPolicy(testUserID(3), 0, identityShuffler{})
	s.Require().NoError(err)

	s.Equal(StatusCompleted, s.game.Status)
	s.Equal(PartyFascist, s.game.Outcome.Winner)
}

func (s *GovernmentTestSuite) TestCompletedGameRefusesActions() {
	s.game.FascistPolicies = 5
	s.chancellorChoice(PolicyFascist, PolicyLiberal)

	_, err := s.game.EnactPolicy(testUserID(3), 0, identityShuffler{})
	s.Require().NoError(err)

	_, err = s.game.NominateChancellor(testUserID(1), 2)
	s.ErrorIs(err, ErrInvalidState)

	_, err = s.game.CastVote(testUserID(2), VoteJa, identityShuffler{})
	s.ErrorIs(err, ErrInvalidState)

	_, err = s.game.EnactPolicy(testUserID(3), 0, identityShuffler{})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *GovernmentTestSuite) TestHitlerChancellorEndsLateGame() {
	s.game.FascistPolicies = 3
	s.game.Phase = Voting{
		Government: Government{President: 1, Chancellor: 5},
		Votes:      map[PlayerNumber]Vote{},
	}

	var events []Event
	for _, seat := range s.game.AliveNumbers() {
		var err error
		events, err = s.game.CastVote(testUserID(int(seat)), VoteJa, identityShuffler{})
		s.Require().NoError(err)
	}

	// Seat five holds Hitler; electing them past the threshold ends it
	s.Equal(StatusCompleted, s.game.Status)
	s.Equal(PartyFascist, s.game.Outcome.Winner)
	s.Equal(WinReasonHitlerChancellor, s.game.Outcome.Reason)

	// No policies were drawn
	s.Len(s.game.Deck.DrawPile, 17)

	s.IsType(GameEndedEvent{}, events[len(events)-1])
}

func (s *GovernmentTestSuite) TestHitlerChancellorSafeEarly() {
	s.game.FascistPolicies = 2
	s.game.Phase = Voting{
		Government: Government{President: 1, Chancellor: 5},
		Votes:      map[PlayerNumber]Vote{},
	}

	for _, seat := range s.game.AliveNumbers() {
		_, err := s.game.CastVote(testUserID(int(seat)), VoteJa, identityShuffler{})
		s.Require().NoError(err)
	}

	s.Equal(StatusRunning, s.game.Status)
	s.IsType(PresidentPolicyChoice{}, s.game.Phase)
}

func (s *GovernmentTestSuite) TestPolicyPeekResolvesInline() {
	game, err := newRunningGame(6)
	s.Require().NoError(err)
	game.FascistPolicies = 2
	game.Phase = ChancellorPolicyChoice{
		Government: Government{President: 1, Chancellor: 3},
		Policies:   []Policy{PolicyFascist, PolicyLiberal},
		Veto:       VetoNotRequested,
	}

	events, err := game.EnactPolicy(testUserID(3), 0, identityShuffler{})
	s.Require().NoError(err)

	// Third fascist policy in a six player game: peek, then move on
	s.Require().Len(events, 3)
	peek, ok := events[1].(PolicyPeekEvent)
	s.Require().True(ok)
	s.Equal(PlayerNumber(1), peek.President)
	s.Equal([]Policy{PolicyLiberal, PolicyLiberal, PolicyLiberal}, peek.Policies)

	s.IsType(ElectionStartedEvent{}, events[2])
	s.IsType(ChancellorSelection{}, game.Phase)
}

func (s *GovernmentTestSuite) TestPolicyPeekReshufflesExhaustedDrawPile() {
	game, err := newRunningGame(6)
	s.Require().NoError(err)
	game.FascistPolicies = 2
	game.Deck = Deck{
		DrawPile:    []Policy{},
		DiscardPile: []Policy{PolicyLiberal, PolicyFascist, PolicyLiberal},
	}
	game.Phase = ChancellorPolicyChoice{
		Government: Government{President: 1, Chancellor: 3},
		Policies:   []Policy{PolicyFascist, PolicyLiberal},
		Veto:       VetoNotRequested,
	}

	events, err := game.EnactPolicy(testUserID(3), 0, identityShuffler{})
	s.Require().NoError(err)

	// The president still sees three cards: the discard pile is
	// reshuffled into the empty draw pile before the peek
	s.Require().Len(events, 3)
	peek, ok := events[1].(PolicyPeekEvent)
	s.Require().True(ok)
	s.Equal([]Policy{PolicyLiberal, PolicyFascist, PolicyLiberal}, peek.Policies)

	s.Len(game.Deck.DrawPile, 5)
	s.Empty(game.Deck.DiscardPile)
}

func (s *GovernmentTestSuite) TestStatefulPowerHaltsRotation() {
	game, err := newRunningGame(7)
	s.Require().NoError(err)
	game.FascistPolicies = 1
	game.Phase = ChancellorPolicyChoice{
		Government: Government{President: 1, Chancellor: 3},
		Policies:   []Policy{PolicyFascist, PolicyLiberal},
		Veto:       VetoNotRequested,
	}

	events, err := game.EnactPolicy(testUserID(3), 0, identityShuffler{})
	s.Require().NoError(err)

	// Second fascist policy in a seven player game: investigation
	selection, ok := game.Phase.(PowerSelection)
	s.Require().True(ok)
	s.Equal(PowerInvestigate, selection.Power)
	s.Equal(PlayerNumber(1), selection.President)

	s.Require().Len(events, 2)
	pending, ok := events[1].(PowerPendingEvent)
	s.Require().True(ok)
	s.Equal(PowerInvestigate, pending.Power)
}

func (s *GovernmentTestSuite) TestChaosBypassesPowers() {
	game, err := newRunningGame(7)
	s.Require().NoError(err)
	game.FascistPolicies = 1
	game.Election.Tracker = 2

	// Force a fascist card on top so chaos would cross a power threshold
	game.Deck.DrawPile = append([]Policy{PolicyFascist}, game.Deck.DrawPile...)
	game.Deck.DrawPile = game.Deck.DrawPile[:17]

	_, err = game.NominateChancellor(testUserID(1), 3)
	s.Require().NoError(err)
	for _, seat := range game.AliveNumbers() {
		_, err := game.CastVote(testUserID(int(seat)), VoteNein, identityShuffler{})
		s.Require().NoError(err)
	}

	s.Equal(2, game.FascistPolicies)
	s.IsType(ChancellorSelection{}, game.Phase)
}
