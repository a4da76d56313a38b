package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RoleTestSuite struct {
	suite.Suite
}

func TestRoleTestSuite(t *testing.T) {
	suite.Run(t, new(RoleTestSuite))
}

func (s *RoleTestSuite) TestPartyMembership() {
	s.Equal(PartyLiberal, RoleLiberal.Party())
	s.Equal(PartyFascist, RoleFascist.Party())

	// Hitler's membership card shows fascist, never the role
	s.Equal(PartyFascist, RoleHitler.Party())
}

func (s *RoleTestSuite) TestRolePoolComposition() {
	cases := []struct {
		playerCount int
		liberals    int
		fascists    int
	}{
		{5, 3, 1},
		{6, 4, 1},
		{7, 4, 2},
		{8, 5, 2},
		{9, 5, 3},
		{10, 6, 3},
	}

	for _, tc := range cases {
		pool, err := rolePool(tc.playerCount)
		s.Require().NoError(err, "player count %d", tc.playerCount)
		s.Len(pool, tc.playerCount, "player count %d", tc.playerCount)

		var liberals, fascists, hitlers int
		for _, role := range pool {
			switch role {
			case RoleLiberal:
				liberals++
			case RoleFascist:
				fascists++
			case RoleHitler:
				hitlers++
			}
		}

		s.Equal(tc.liberals, liberals, "player count %d", tc.playerCount)
		s.Equal(tc.fascists, fascists, "player count %d", tc.playerCount)
		s.Equal(1, hitlers, "player count %d", tc.playerCount)
	}
}

func (s *RoleTestSuite) TestRolePoolRejectsBadCounts() {
	for _, count := range []int{0, 4, 11} {
		_, err := rolePool(count)
		s.ErrorIs(err, ErrInvalidPlayerCount)
	}
}

func (s *RoleTestSuite) TestAssignRolesCoversEverySeat() {
	roles, err := assignRoles(7, identityShuffler{})
	s.Require().NoError(err)

	s.Len(roles, 7)
	for seat := PlayerNumber(1); seat <= 7; seat++ {
		s.Contains(roles, seat)
	}

	// Identity shuffle deals the pool in order: liberals, fascists, Hitler
	s.Equal(RoleLiberal, roles[1])
	s.Equal(RoleFascist, roles[5])
	s.Equal(RoleHitler, roles[7])
}
