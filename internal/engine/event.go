package engine

// Event describes something that happened during a transition. The
// engine only produces descriptors; turning them into Discord messages
// is the caller's job, strictly after the new state is persisted.
type Event interface {
	isEvent()
}

// WinReason explains how the game ended
type WinReason string

const (
	// WinReasonPolicyGoal means a faction enacted enough policies
	WinReasonPolicyGoal WinReason = "policy_goal"

	// WinReasonHitlerKilled means Hitler was executed
	WinReasonHitlerKilled WinReason = "hitler_killed"

	// WinReasonHitlerChancellor means Hitler was elected chancellor
	// late enough in the game
	WinReasonHitlerChancellor WinReason = "hitler_chancellor"
)

// PlayerJoinedEvent fires when a player joins a game in the lobby
type PlayerJoinedEvent struct {
	Player      PlayerIdentity
	PlayerCount int
}

func (PlayerJoinedEvent) isEvent() {}

// PlayerLeftEvent fires when a player leaves the lobby
type PlayerLeftEvent struct {
	Player      PlayerIdentity
	PlayerCount int
}

func (PlayerLeftEvent) isEvent() {}

// RoleNotice is the secret start-of-game message for one player.
// Fascists learn each other; Hitler learns the fascists only in
// five and six player games.
type RoleNotice struct {
	Player        PlayerNumber
	Role          Role
	KnownFascists []PlayerNumber
	KnownHitler   PlayerNumber
}

// GameStartedEvent fires when the lobby becomes a running game
type GameStartedEvent struct {
	PlayerCount int
	Notices     []RoleNotice
}

func (GameStartedEvent) isEvent() {}

// ElectionStartedEvent fires whenever a new president candidate is
// asked to nominate a chancellor
type ElectionStartedEvent struct {
	President PlayerNumber
}

func (ElectionStartedEvent) isEvent() {}

// ChancellorNominatedEvent fires when voting opens on a government
type ChancellorNominatedEvent struct {
	Government Government
}

func (ChancellorNominatedEvent) isEvent() {}

// VoteRecordedEvent fires for each accepted ballot
type VoteRecordedEvent struct {
	Player    PlayerNumber
	Remaining int
}

func (VoteRecordedEvent) isEvent() {}

// GovernmentElectedEvent fires when a vote passes
type GovernmentElectedEvent struct {
	Government Government
	Votes      map[PlayerNumber]Vote
}

func (GovernmentElectedEvent) isEvent() {}

// GovernmentRejectedEvent fires when a vote fails
type GovernmentRejectedEvent struct {
	Government Government
	Votes      map[PlayerNumber]Vote
	Tracker    int
}

func (GovernmentRejectedEvent) isEvent() {}

// PresidentPoliciesEvent carries the president's secret hand of three
type PresidentPoliciesEvent struct {
	President PlayerNumber
	Policies  []Policy
}

func (PresidentPoliciesEvent) isEvent() {}

// ChancellorPoliciesEvent carries the chancellor's secret hand of two
type ChancellorPoliciesEvent struct {
	Chancellor PlayerNumber
	Policies   []Policy
}

func (ChancellorPoliciesEvent) isEvent() {}

// PolicyEnactedEvent fires when a policy lands on either track
type PolicyEnactedEvent struct {
	Policy          Policy
	LiberalPolicies int
	FascistPolicies int
	ByChaos         bool
}

func (PolicyEnactedEvent) isEvent() {}

// PolicyPeekEvent carries the top three cards, for the president only
type PolicyPeekEvent struct {
	President PlayerNumber
	Policies  []Policy
}

func (PolicyPeekEvent) isEvent() {}

// PowerPendingEvent fires when a power needs a presidential target
type PowerPendingEvent struct {
	President PlayerNumber
	Power     Power
}

func (PowerPendingEvent) isEvent() {}

// InvestigationEvent carries an investigation result, for the
// president only. Party is the membership card, never the exact role.
type InvestigationEvent struct {
	President PlayerNumber
	Target    PlayerNumber
	Party     Party
}

func (InvestigationEvent) isEvent() {}

// SpecialElectionEvent fires when the president picks the next
// president candidate
type SpecialElectionEvent struct {
	President PlayerNumber
	Target    PlayerNumber
}

func (SpecialElectionEvent) isEvent() {}

// ExecutionEvent fires when a player is executed
type ExecutionEvent struct {
	President PlayerNumber
	Target    PlayerNumber
	WasHitler bool
}

func (ExecutionEvent) isEvent() {}

// VetoRequestedEvent fires when the chancellor asks to veto
type VetoRequestedEvent struct {
	Government Government
}

func (VetoRequestedEvent) isEvent() {}

// VetoApprovedEvent fires when the president agrees to the veto
type VetoApprovedEvent struct {
	Government Government
	Tracker    int
}

func (VetoApprovedEvent) isEvent() {}

// VetoRejectedEvent fires when the president refuses the veto
type VetoRejectedEvent struct {
	Government Government
}

func (VetoRejectedEvent) isEvent() {}

// GameEndedEvent fires exactly once, when a win condition is met
type GameEndedEvent struct {
	Winner Party
	Reason WinReason
	Roles  RoleMap
}

func (GameEndedEvent) isEvent() {}
