package engine

import "fmt"

// Faction is a party membership. FactionUnknown is the zero value and means
// the membership has not been revealed to the observing seat.
type Faction uint8

const (
	FactionUnknown Faction = iota // 0
	FactionLiberal                // 1
	FactionFascist                // 2
)

var factionNames = [...]string{"UNKNOWN", "LIBERAL", "FASCIST"}

func (f Faction) String() string {
	if int(f) < len(factionNames) {
		return factionNames[f]
	}
	return fmt.Sprintf("Faction(%d)", uint8(f))
}

// Opposite returns the other faction. Unknown stays Unknown.
func (f Faction) Opposite() Faction {
	switch f {
	case FactionLiberal:
		return FactionFascist
	case FactionFascist:
		return FactionLiberal
	}
	return FactionUnknown
}

// Sign maps a faction onto the suspicion axis: Liberal +1, Fascist -1, Unknown 0.
func (f Faction) Sign() int {
	switch f {
	case FactionLiberal:
		return 1
	case FactionFascist:
		return -1
	}
	return 0
}

// FactionFromSign is the inverse of Sign: negative → Fascist, positive → Liberal.
func FactionFromSign(n int) Faction {
	switch {
	case n < 0:
		return FactionFascist
	case n > 0:
		return FactionLiberal
	}
	return FactionUnknown
}

// ParseFaction decodes the wire name of a faction. An empty string is Unknown.
func ParseFaction(s string) (Faction, error) {
	switch s {
	case "", "UNKNOWN":
		return FactionUnknown, nil
	case "LIBERAL":
		return FactionLiberal, nil
	case "FASCIST":
		return FactionFascist, nil
	}
	return FactionUnknown, fmt.Errorf("unknown faction %q", s)
}

// Role is a secret role as revealed to the observing seat.
type Role uint8

const (
	RoleUnknown Role = iota // 0
	RoleLiberal             // 1
	RoleFascist             // 2
	RoleHitler              // 3
)

var roleNames = [...]string{"UNKNOWN", "LIBERAL", "FASCIST", "HITLER"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Faction returns the party a role belongs to. Hitler is Fascist.
func (r Role) Faction() Faction {
	switch r {
	case RoleLiberal:
		return FactionLiberal
	case RoleFascist, RoleHitler:
		return FactionFascist
	}
	return FactionUnknown
}

// KnownNonHitler reports whether the role is revealed and is not Hitler.
func (r Role) KnownNonHitler() bool {
	return r == RoleLiberal || r == RoleFascist
}

// ParseRole decodes the wire name of a role. An empty string is Unknown.
func ParseRole(s string) (Role, error) {
	switch s {
	case "", "UNKNOWN":
		return RoleUnknown, nil
	case "LIBERAL":
		return RoleLiberal, nil
	case "FASCIST":
		return RoleFascist, nil
	case "HITLER":
		return RoleHitler, nil
	}
	return RoleUnknown, fmt.Errorf("unknown role %q", s)
}

// Policy is a policy tile. PolicyNone is the zero value and never appears in a deck.
type Policy uint8

const (
	PolicyNone    Policy = iota // 0
	PolicyLiberal               // 1
	PolicyFascist               // 2
)

func (p Policy) String() string {
	switch p {
	case PolicyLiberal:
		return "LIBERAL"
	case PolicyFascist:
		return "FASCIST"
	}
	return "NONE"
}

// Faction returns the faction that benefits from the policy.
func (p Policy) Faction() Faction {
	switch p {
	case PolicyLiberal:
		return FactionLiberal
	case PolicyFascist:
		return FactionFascist
	}
	return FactionUnknown
}

// Opposite returns the other policy. PolicyNone stays PolicyNone.
func (p Policy) Opposite() Policy {
	switch p {
	case PolicyLiberal:
		return PolicyFascist
	case PolicyFascist:
		return PolicyLiberal
	}
	return PolicyNone
}

// ParsePolicy decodes the wire name of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "LIBERAL":
		return PolicyLiberal, nil
	case "FASCIST":
		return PolicyFascist, nil
	}
	return PolicyNone, fmt.Errorf("unknown policy %q", s)
}

// Vote is a ballot cast during an election.
type Vote uint8

const (
	VoteNone Vote = iota // 0: not cast (or hidden)
	VoteJa               // 1
	VoteNein             // 2
)

func (v Vote) String() string {
	switch v {
	case VoteJa:
		return "JA"
	case VoteNein:
		return "NEIN"
	}
	return "NONE"
}

// ParseVote decodes the wire name of a vote. An empty string is VoteNone.
func ParseVote(s string) (Vote, error) {
	switch s {
	case "":
		return VoteNone, nil
	case "JA":
		return VoteJa, nil
	case "NEIN":
		return VoteNein, nil
	}
	return VoteNone, fmt.Errorf("unknown vote %q", s)
}

// Phase is the step of the round the game is waiting on.
type Phase uint8

const (
	PhaseUnknown            Phase = iota // 0
	PhasePickingRunningMate              // 1
	PhaseElection                        // 2
	PhasePresidentChoice                 // 3
	PhaseChancellorChoice                // 4
	PhaseExamine                         // 5
	PhaseKill                            // 6
	PhaseVeto                            // 7
	PhaseInvestigate                     // 8
	PhaseSpecialElection                 // 9
	PhaseGameOver                        // 10
)

var phaseNames = [...]string{
	"UNKNOWN",
	"PICKING_RUNNING_MATE",
	"ELECTION",
	"PRESIDENT_CHOICE",
	"CHANCELLOR_CHOICE",
	"EXAMINE",
	"KILL",
	"VETO",
	"INVESTIGATE",
	"SPECIAL_ELECTION",
	"GAME_OVER",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// ParsePhase decodes the wire name of a phase. Names this bot does not act on
// decode to PhaseUnknown without error so that newer servers stay playable.
func ParsePhase(s string) Phase {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i)
		}
	}
	return PhaseUnknown
}

// ActionType names a gameplay action, both the ones this bot sends and the
// ones the server reports as the cause of a notification.
type ActionType string

const (
	ActionConnected              ActionType = "CONNECTED"
	ActionVote                   ActionType = "VOTE"
	ActionChooseRunningMate      ActionType = "CHOOSE_RUNNING_MATE"
	ActionPresidentChoice        ActionType = "PRESIDENT_CHOICE"
	ActionChancellorChoice       ActionType = "CHANCELLOR_CHOICE"
	ActionChancellorVeto         ActionType = "CHANCELLOR_VETO"
	ActionPresidentVeto          ActionType = "PRESIDENT_VETO"
	ActionPresidentVetoYes       ActionType = "PRESIDENT_VETO_YES"
	ActionFinishExamination      ActionType = "FINISH_EXAMINATION"
	ActionKillPlayer             ActionType = "KILL_PLAYER"
	ActionInvestigatePlayer      ActionType = "INVESTIGATE_PLAYER"
	ActionChooseNextPresidential ActionType = "CHOOSE_NEXT_PRESIDENTIAL_CANDIDATE"
	ActionNewGame                ActionType = "NEW_GAME"
	ActionGovernmentElected      ActionType = "SHUSH"
	ActionGovernmentDenied       ActionType = "DENIED"
	ActionAnarchy                ActionType = "ANARCHY"
	ActionFascistPolicy          ActionType = "FASCIST_POLICY"
	ActionLiberalPolicy          ActionType = "LIBERAL_POLICY"
)

// Action is a gameplay action with its positional string arguments.
type Action struct {
	Type ActionType
	Args []string
}

// Arg returns the i-th argument, or "" when absent.
func (a Action) Arg(i int) string {
	if i < 0 || i >= len(a.Args) {
		return ""
	}
	return a.Args[i]
}
