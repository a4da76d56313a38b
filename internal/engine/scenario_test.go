package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// ScenarioTestSuite plays full games through the public transitions
// only, the way the service layer drives them.
type ScenarioTestSuite struct {
	suite.Suite
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

// playGovernment nominates, passes the vote unanimously and has the
// government enact the policy at the given hand positions.
func (s *ScenarioTestSuite) playGovernment(g *Game, chancellor PlayerNumber, discardIndex, enactIndex int) {
	president := g.Phase.(ChancellorSelection).President

	_, err := g.NominateChancellor(g.Players[president].UserID, chancellor)
	s.Require().NoError(err)

	for _, seat := range g.AliveNumbers() {
		_, err := g.CastVote(g.Players[seat].UserID, VoteJa, identityShuffler{})
		s.Require().NoError(err)
	}

	if g.Status != StatusRunning {
		return
	}

	_, err = g.DiscardPolicy(g.Players[president].UserID, discardIndex)
	s.Require().NoError(err)

	_, err = g.EnactPolicy(g.Players[chancellor].UserID, enactIndex, identityShuffler{})
	s.Require().NoError(err)
}

func (s *ScenarioTestSuite) TestLiberalPolicyVictory() {
	g, err := newRunningGame(5)
	s.Require().NoError(err)

	// Stack the draw pile so every hand is all liberal
	stacked := make([]Policy, 0, 17)
	for i := 0; i < 15; i++ {
		stacked = append(stacked, PolicyLiberal)
	}
	stacked = append(stacked, PolicyFascist, PolicyFascist)
	g.Deck.DrawPile = stacked

	// Chancellors chosen to respect the term limits as they move
	for _, chancellor := range []PlayerNumber{3, 4, 1, 2, 1} {
		s.playGovernment(g, chancellor, 0, 0)
	}

	s.Equal(StatusCompleted, g.Status)
	s.Require().NotNil(g.Outcome)
	s.Equal(PartyLiberal, g.Outcome.Winner)
	s.Equal(WinReasonPolicyGoal, g.Outcome.Reason)
	s.Equal(5, g.LiberalPolicies)
}

func (s *ScenarioTestSuite) TestFascistTrackUnlocksPowersInOrder() {
	g, err := newRunningGame(7)
	s.Require().NoError(err)

	// All fascist hands throughout
	stacked := make([]Policy, 17)
	for i := range stacked {
		stacked[i] = PolicyFascist
	}
	g.Deck.DrawPile = stacked

	// First fascist policy carries no power in a seven player game
	s.playGovernment(g, 3, 0, 0)
	s.Equal(1, g.FascistPolicies)
	s.IsType(ChancellorSelection{}, g.Phase)

	// Second unlocks the investigation
	s.playGovernment(g, 4, 0, 0)
	selection := g.Phase.(PowerSelection)
	s.Equal(PowerInvestigate, selection.Power)

	president := selection.President
	_, err = g.InvestigatePlayer(g.Players[president].UserID, 6)
	s.Require().NoError(err)

	// Third unlocks the special election
	s.playGovernment(g, 1, 0, 0)
	selection = g.Phase.(PowerSelection)
	s.Equal(PowerSpecialElection, selection.Power)

	president = selection.President
	_, err = g.CallSpecialElection(g.Players[president].UserID, 5)
	s.Require().NoError(err)
	s.Equal(PlayerNumber(5), g.Phase.(ChancellorSelection).President)
}

func (s *ScenarioTestSuite) TestDeckIsConservedAcrossGovernments() {
	g, err := newRunningGame(5)
	s.Require().NoError(err)

	for _, chancellor := range []PlayerNumber{3, 4, 1} {
		if g.Status != StatusRunning {
			break
		}
		s.playGovernment(g, chancellor, 0, 0)
		s.Equal(17, g.Deck.Size())
	}
}
