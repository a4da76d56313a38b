package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PowerTestSuite struct {
	suite.Suite
	game *Game
}

func (s *PowerTestSuite) SetupTest() {
	game, err := newRunningGame(7)
	s.Require().NoError(err)
	s.game = game
}

func TestPowerTestSuite(t *testing.T) {
	suite.Run(t, new(PowerTestSuite))
}

func (s *PowerTestSuite) pending(power Power) {
	s.game.Phase = PowerSelection{President: 1, Power: power}
}

func (s *PowerTestSuite) TestOnlyPendingPresidentMayAct() {
	s.pending(PowerExecution)

	_, err := s.game.ExecutePlayer(testUserID(2), 5)
	s.ErrorIs(err, ErrUnauthorized)

	// The pending power must match the call
	_, err = s.game.InvestigatePlayer(testUserID(1), 5)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *PowerTestSuite) TestTargetMustBeLivingOther() {
	s.pending(PowerExecution)

	_, err := s.game.ExecutePlayer(testUserID(1), 1)
	s.ErrorIs(err, ErrIneligibleTarget)

	s.game.Powers.Executed = []PlayerNumber{4}
	_, err = s.game.ExecutePlayer(testUserID(1), 4)
	s.ErrorIs(err, ErrIneligibleTarget)
}

func (s *PowerTestSuite) TestInvestigationRevealsPartyOnly() {
	s.pending(PowerInvestigate)

	// Seat seven holds Hitler; the card still reads fascist
	events, err := s.game.InvestigatePlayer(testUserID(1), 7)
	s.Require().NoError(err)

	investigation, ok := events[0].(InvestigationEvent)
	s.Require().True(ok)
	s.Equal(PartyFascist, investigation.Party)
	s.Equal(PlayerNumber(7), investigation.Target)

	s.Equal([]PlayerNumber{7}, s.game.Powers.Investigated)
	s.IsType(ElectionStartedEvent{}, events[1])
	s.IsType(ChancellorSelection{}, s.game.Phase)
}

func (s *PowerTestSuite) TestInvestigateTwiceFails() {
	s.game.Powers.Investigated = []PlayerNumber{5}
	s.pending(PowerInvestigate)

	_, err := s.game.InvestigatePlayer(testUserID(1), 5)
	s.ErrorIs(err, ErrIneligibleTarget)

	// Eligible targets exclude the president and prior subjects
	s.Equal([]PlayerNumber{2, 3, 4, 6, 7}, s.game.EligiblePowerTargets())
}

func (s *PowerTestSuite) TestSpecialElectionOverridesOneRotation() {
	s.pending(PowerSpecialElection)

	events, err := s.game.CallSpecialElection(testUserID(1), 5)
	s.Require().NoError(err)

	// The chosen seat presides immediately and the ticker is untouched
	phase, ok := s.game.Phase.(ChancellorSelection)
	s.Require().True(ok)
	s.Equal(PlayerNumber(5), phase.President)
	s.Equal(PlayerNumber(2), s.game.Election.PresidentTicker)
	s.Nil(s.game.Election.SpecialElection)

	special, ok := events[0].(SpecialElectionEvent)
	s.Require().True(ok)
	s.Equal(PlayerNumber(5), special.Target)

	// The next regular election resumes the interrupted rotation
	_, err = s.game.NominateChancellor(testUserID(5), 3)
	s.Require().NoError(err)
	for _, seat := range s.game.AliveNumbers() {
		_, err := s.game.CastVote(testUserID(int(seat)), VoteNein, identityShuffler{})
		s.Require().NoError(err)
	}

	resumed := s.game.Phase.(ChancellorSelection)
	s.Equal(PlayerNumber(2), resumed.President)
	s.Equal(PlayerNumber(3), s.game.Election.PresidentTicker)
}

func (s *PowerTestSuite) TestExecutionRemovesSeat() {
	s.pending(PowerExecution)

	events, err := s.game.ExecutePlayer(testUserID(1), 4)
	s.Require().NoError(err)

	s.False(s.game.IsAlive(4))
	s.Equal(6, s.game.aliveCount())
	s.Equal(StatusRunning, s.game.Status)

	execution, ok := events[0].(ExecutionEvent)
	s.Require().True(ok)
	s.False(execution.WasHitler)
	s.IsType(ElectionStartedEvent{}, events[1])
}

func (s *PowerTestSuite) TestExecutingHitlerWinsForLiberals() {
	s.pending(PowerExecution)

	events, err := s.game.ExecutePlayer(testUserID(1), 7)
	s.Require().NoError(err)

	s.Equal(StatusCompleted, s.game.Status)
	s.Equal(PartyLiberal, s.game.Outcome.Winner)
	s.Equal(WinReasonHitlerKilled, s.game.Outcome.Reason)

	execution := events[0].(ExecutionEvent)
	s.True(execution.WasHitler)
	s.IsType(GameEndedEvent{}, events[1])
}

func (s *PowerTestSuite) TestRotationSkipsExecutedSeats() {
	// The ticker sits at seat two; execute it before the next election
	s.pending(PowerExecution)

	_, err := s.game.ExecutePlayer(testUserID(1), 2)
	s.Require().NoError(err)

	// Seat two was due but is dead, so seat three presides
	phase := s.game.Phase.(ChancellorSelection)
	s.Equal(PlayerNumber(3), phase.President)
	s.Equal(PlayerNumber(4), s.game.Election.PresidentTicker)
}
