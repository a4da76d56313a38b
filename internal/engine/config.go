package engine

// Power is a presidential power unlocked by enacting fascist policies
type Power string

const (
	// PowerPolicyPeek lets the president look at the top three cards
	PowerPolicyPeek Power = "policy_peek"

	// PowerInvestigate lets the president see a player's party card
	PowerInvestigate Power = "investigate"

	// PowerSpecialElection lets the president pick the next president
	PowerSpecialElection Power = "special_election"

	// PowerExecution lets the president execute a player
	PowerExecution Power = "execution"
)

const (
	// MinPlayers is the minimum number of players required to start
	MinPlayers = 5

	// MaxPlayers is the maximum number of players allowed to join
	MaxPlayers = 10

	// lastPresidentIneligibilityThreshold is the living player count
	// above which the term-limited president is ineligible as
	// chancellor. At five or fewer, only the chancellor is limited.
	lastPresidentIneligibilityThreshold = 5
)

// Config holds the immutable rules of a game, fixed at start
type Config struct {
	// LiberalPoliciesToWin is the liberal policy count that ends the game
	LiberalPoliciesToWin int `json:"liberal_policies_to_win"`

	// FascistPoliciesToWin is the fascist policy count that ends the game
	FascistPoliciesToWin int `json:"fascist_policies_to_win"`

	// HitlerChancellorThreshold is the fascist policy count at which
	// electing Hitler as chancellor ends the game
	HitlerChancellorThreshold int `json:"hitler_chancellor_threshold"`

	// VetoUnlockThreshold is the fascist policy count at which the
	// veto power becomes available
	VetoUnlockThreshold int `json:"veto_unlock_threshold"`

	// ElectionTrackerMax is the failed election count that forces the
	// top card of the deck to be enacted
	ElectionTrackerMax int `json:"election_tracker_max"`

	// FascistPowers maps a fascist policy count to the power it unlocks
	FascistPowers map[int]Power `json:"fascist_powers"`
}

// FascistPowerAt returns the power unlocked by reaching the given
// fascist policy count, if any
func (c *Config) FascistPowerAt(count int) (Power, bool) {
	power, ok := c.FascistPowers[count]
	return power, ok
}

// StandardConfig returns the standard rules for the given player count
func StandardConfig(playerCount int) (*Config, error) {
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}

	var powers map[int]Power
	switch {
	case playerCount <= 6:
		powers = map[int]Power{
			3: PowerPolicyPeek,
			4: PowerExecution,
			5: PowerExecution,
		}
	case playerCount <= 8:
		powers = map[int]Power{
			2: PowerInvestigate,
			3: PowerSpecialElection,
			4: PowerExecution,
			5: PowerExecution,
		}
	default:
		powers = map[int]Power{
			1: PowerInvestigate,
			2: PowerInvestigate,
			3: PowerSpecialElection,
			4: PowerExecution,
			5: PowerExecution,
		}
	}

	return &Config{
		LiberalPoliciesToWin:      5,
		FascistPoliciesToWin:      6,
		HitlerChancellorThreshold: 3,
		VetoUnlockThreshold:       5,
		ElectionTrackerMax:        3,
		FascistPowers:             powers,
	}, nil
}
