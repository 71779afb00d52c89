// Package engine models a Secret Hitler table as seen from one seat: the
// public board, the revealed memberships, and the rule constants the bot
// reasons with. It has no dependencies and performs no I/O.
package engine

// Player is one seat at the table as revealed to the observer.
type Player struct {
	Username string
	Host     bool
	Alive    bool
	// Faction is the confirmed membership. Unknown unless the game revealed it.
	Faction                  Faction
	Role                     Role
	President                bool
	Chancellor               bool
	PreviousGovernmentMember bool
	Vote                     Vote
	VoteReady                bool
}

// Snapshot is the full game state carried by one notification.
type Snapshot struct {
	Me      Player
	Players []Player
	Phase   Phase

	PolicyDocketSize        int
	DeniedPolicies          int // size of the discard pile
	LiberalPolicies         int // enacted
	FascistPolicies         int // enacted
	UnsuccessfulGovernments int
	DangerZone              bool // Hitler elected chancellor now wins the game
	VetoUnlocked            bool

	// PoliciesToView is populated for the president and chancellor while
	// choosing, and for the president during an examination.
	PoliciesToView []Policy
	NextPresident  string
	Winners        Faction
	NextGameID     string
}

// PlayerByName looks up a seat by username.
func (s *Snapshot) PlayerByName(name string) (Player, bool) {
	for _, p := range s.Players {
		if p.Username == name {
			return p, true
		}
	}
	return Player{}, false
}

// IndexOf returns the seat index of the named player, or -1.
func (s *Snapshot) IndexOf(name string) int {
	for i, p := range s.Players {
		if p.Username == name {
			return i
		}
	}
	return -1
}

// President returns the current president, if one is seated.
func (s *Snapshot) President() (Player, bool) {
	for _, p := range s.Players {
		if p.President {
			return p, true
		}
	}
	return Player{}, false
}

// Chancellor returns the current chancellor (or nominee), if one is seated.
func (s *Snapshot) Chancellor() (Player, bool) {
	for _, p := range s.Players {
		if p.Chancellor {
			return p, true
		}
	}
	return Player{}, false
}

// Government returns the president and chancellor that are seated, in that order.
func (s *Snapshot) Government() []Player {
	var gov []Player
	if p, ok := s.President(); ok {
		gov = append(gov, p)
	}
	if c, ok := s.Chancellor(); ok {
		gov = append(gov, c)
	}
	return gov
}

// IsMe reports whether the player is the observing seat.
func (s *Snapshot) IsMe(p Player) bool {
	return p.Username == s.Me.Username
}

// PublicView returns a copy in which nothing beyond the public board is
// revealed: every other seat's membership and role are hidden and the
// observer is presented as a Liberal. Deceptive play reasons over this view
// to estimate how the table perceives each seat.
func (s *Snapshot) PublicView() *Snapshot {
	out := *s
	out.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.Faction = FactionUnknown
		p.Role = RoleUnknown
		if p.Username == s.Me.Username {
			p.Faction = FactionLiberal
			p.Role = RoleLiberal
		}
		out.Players[i] = p
	}
	out.Me.Faction = FactionLiberal
	out.Me.Role = RoleLiberal
	out.PoliciesToView = append([]Policy(nil), s.PoliciesToView...)
	return &out
}
