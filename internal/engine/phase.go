package engine

// Vote is a single player's ballot
type Vote string

const (
	// VoteJa is a vote in favor of the proposed government
	VoteJa Vote = "ja"

	// VoteNein is a vote against the proposed government
	VoteNein Vote = "nein"
)

// VetoStatus tracks the veto negotiation within one government
type VetoStatus string

const (
	// VetoNotRequested means the chancellor has not asked for a veto
	VetoNotRequested VetoStatus = "not_requested"

	// VetoRequested means the chancellor asked and the president has
	// not yet answered
	VetoRequested VetoStatus = "requested"

	// VetoRejected means the president refused; the chancellor must
	// enact a policy
	VetoRejected VetoStatus = "rejected"
)

// Government is the president/chancellor pair of one election cycle
type Government struct {
	President  PlayerNumber `json:"president"`
	Chancellor PlayerNumber `json:"chancellor"`
}

// Phase is the single current phase of a running game. Exactly one
// variant is active at a time; transitions replace it wholesale.
type Phase interface {
	isPhase()
}

// ChancellorSelection waits for the president candidate to nominate
// a chancellor
type ChancellorSelection struct {
	President PlayerNumber `json:"president"`
}

func (ChancellorSelection) isPhase() {}

// Voting collects ballots on a proposed government
type Voting struct {
	Government Government            `json:"government"`
	Votes      map[PlayerNumber]Vote `json:"votes"`
}

func (Voting) isPhase() {}

// PresidentPolicyChoice waits for the president to discard one of
// three drawn policies
type PresidentPolicyChoice struct {
	Government Government `json:"government"`
	Policies   []Policy   `json:"policies"`
}

func (PresidentPolicyChoice) isPhase() {}

// ChancellorPolicyChoice waits for the chancellor to enact one of two
// policies, or to negotiate a veto
type ChancellorPolicyChoice struct {
	Government Government `json:"government"`
	Policies   []Policy   `json:"policies"`
	Veto       VetoStatus `json:"veto"`
}

func (ChancellorPolicyChoice) isPhase() {}

// PowerSelection waits for the president to pick a target for an
// unlocked fascist power
type PowerSelection struct {
	President PlayerNumber `json:"president"`
	Power     Power        `json:"power"`
}

func (PowerSelection) isPhase() {}
