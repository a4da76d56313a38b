package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type LobbyTestSuite struct {
	suite.Suite
	game *Game
}

func (s *LobbyTestSuite) SetupTest() {
	s.game = NewGame()
}

func TestLobbyTestSuite(t *testing.T) {
	suite.Run(t, new(LobbyTestSuite))
}

func (s *LobbyTestSuite) join(seat int) {
	_, err := s.game.Join(PlayerIdentity{UserID: testUserID(seat), Name: "p"})
	s.Require().NoError(err)
}

func (s *LobbyTestSuite) TestJoinAddsToLobby() {
	events, err := s.game.Join(PlayerIdentity{UserID: "user-1", Name: "Alice"})
	s.Require().NoError(err)

	s.Len(s.game.Lobby, 1)
	s.Require().Len(events, 1)

	joined, ok := events[0].(PlayerJoinedEvent)
	s.Require().True(ok)
	s.Equal("user-1", joined.Player.UserID)
	s.Equal(1, joined.PlayerCount)
}

func (s *LobbyTestSuite) TestJoinTwiceFails() {
	s.join(1)

	_, err := s.game.Join(PlayerIdentity{UserID: testUserID(1), Name: "again"})
	s.ErrorIs(err, ErrAlreadyJoined)
}

func (s *LobbyTestSuite) TestJoinFullGameFails() {
	for i := 1; i <= MaxPlayers; i++ {
		s.join(i)
	}

	_, err := s.game.Join(PlayerIdentity{UserID: "user-11", Name: "late"})
	s.ErrorIs(err, ErrGameFull)
}

func (s *LobbyTestSuite) TestLeaveRemovesFromLobby() {
	s.join(1)
	s.join(2)

	events, err := s.game.Leave(testUserID(1))
	s.Require().NoError(err)

	s.Len(s.game.Lobby, 1)
	s.Equal(testUserID(2), s.game.Lobby[0].UserID)

	left, ok := events[0].(PlayerLeftEvent)
	s.Require().True(ok)
	s.Equal(1, left.PlayerCount)
}

func (s *LobbyTestSuite) TestLeaveWithoutJoiningFails() {
	_, err := s.game.Leave("user-99")
	s.ErrorIs(err, ErrNotJoined)
}

func (s *LobbyTestSuite) TestStartNeedsEnoughPlayers() {
	for i := 1; i < MinPlayers; i++ {
		s.join(i)
	}

	_, err := s.game.Start(identityShuffler{})
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *LobbyTestSuite) TestStartSeatsAndDeals() {
	for i := 1; i <= 5; i++ {
		s.join(i)
	}

	events, err := s.game.Start(identityShuffler{})
	s.Require().NoError(err)

	s.Equal(StatusRunning, s.game.Status)
	s.Nil(s.game.Lobby)
	s.Equal(5, s.game.Players.Count())
	s.Len(s.game.Roles, 5)
	s.Equal(17, s.game.Deck.Size())

	// The first election opens at seat one and pre-advances the ticker
	phase, ok := s.game.Phase.(ChancellorSelection)
	s.Require().True(ok)
	s.Equal(PlayerNumber(1), phase.President)
	s.Equal(PlayerNumber(2), s.game.Election.PresidentTicker)

	s.Require().Len(events, 2)
	started, ok := events[0].(GameStartedEvent)
	s.Require().True(ok)
	s.Equal(5, started.PlayerCount)
	s.Len(started.Notices, 5)

	election, ok := events[1].(ElectionStartedEvent)
	s.Require().True(ok)
	s.Equal(PlayerNumber(1), election.President)
}

func (s *LobbyTestSuite) TestStartTwiceFails() {
	for i := 1; i <= 5; i++ {
		s.join(i)
	}

	_, err := s.game.Start(identityShuffler{})
	s.Require().NoError(err)

	_, err = s.game.Start(identityShuffler{})
	s.ErrorIs(err, ErrInvalidState)

	_, err = s.game.Join(PlayerIdentity{UserID: "user-9", Name: "late"})
	s.ErrorIs(err, ErrInvalidState)

	_, err = s.game.Leave(testUserID(1))
	s.ErrorIs(err, ErrInvalidState)
}

func (s *LobbyTestSuite) TestRoleNoticesInSmallGame() {
	game, err := newRunningGame(5)
	s.Require().NoError(err)

	notices := game.roleNotices()
	s.Require().Len(notices, 5)

	// Identity shuffle: seats 1-3 liberal, 4 fascist, 5 Hitler
	byPlayer := make(map[PlayerNumber]RoleNotice, len(notices))
	for _, notice := range notices {
		byPlayer[notice.Player] = notice
	}

	s.Equal(RoleLiberal, byPlayer[1].Role)
	s.Empty(byPlayer[1].KnownFascists)
	s.Zero(byPlayer[1].KnownHitler)

	fascist := byPlayer[4]
	s.Equal(RoleFascist, fascist.Role)
	s.Equal([]PlayerNumber{4}, fascist.KnownFascists)
	s.Equal(PlayerNumber(5), fascist.KnownHitler)

	// In five and six player games Hitler knows the fascists
	hitler := byPlayer[5]
	s.Equal(RoleHitler, hitler.Role)
	s.Equal([]PlayerNumber{4}, hitler.KnownFascists)
}

func (s *LobbyTestSuite) TestRoleNoticesInLargeGame() {
	game, err := newRunningGame(7)
	s.Require().NoError(err)

	notices := game.roleNotices()
	s.Require().Len(notices, 7)

	byPlayer := make(map[PlayerNumber]RoleNotice, len(notices))
	for _, notice := range notices {
		byPlayer[notice.Player] = notice
	}

	fascist := byPlayer[5]
	s.Equal([]PlayerNumber{5, 6}, fascist.KnownFascists)
	s.Equal(PlayerNumber(7), fascist.KnownHitler)

	// From seven players up, Hitler learns nothing
	hitler := byPlayer[7]
	s.Equal(RoleHitler, hitler.Role)
	s.Empty(hitler.KnownFascists)
}

func (s *LobbyTestSuite) TestNextLivingSeatSkipsExecuted() {
	game, err := newRunningGame(5)
	s.Require().NoError(err)

	game.Powers.Executed = []PlayerNumber{2, 3}

	s.Equal(PlayerNumber(4), game.nextLivingSeat(1))
	s.Equal(PlayerNumber(1), game.nextLivingSeat(5))
	s.Equal(3, game.aliveCount())
	s.Equal([]PlayerNumber{1, 4, 5}, game.AliveNumbers())
}
