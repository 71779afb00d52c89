package engine

// LivingOpponents returns every living seat other than the observer, in seat order.
func LivingOpponents(s *Snapshot) []Player {
	var out []Player
	for _, p := range s.Players {
		if p.Alive && !s.IsMe(p) {
			out = append(out, p)
		}
	}
	return out
}

// EligibleRunningMates returns the seats the observer may nominate as
// chancellor: alive, not itself, and not a member of the previous government.
func EligibleRunningMates(s *Snapshot) []Player {
	var out []Player
	for _, p := range LivingOpponents(s) {
		if !p.PreviousGovernmentMember {
			out = append(out, p)
		}
	}
	return out
}

// PreferredDiscard returns the policy a faction wants to get rid of.
func PreferredDiscard(f Faction) Policy {
	switch f {
	case FactionLiberal:
		return PolicyFascist
	case FactionFascist:
		return PolicyLiberal
	}
	return PolicyNone
}

// DiscardIndex returns the index of the first occurrence of preferred, or 0
// when the hand does not contain it.
func DiscardIndex(policies []Policy, preferred Policy) int {
	for i, p := range policies {
		if p == preferred {
			return i
		}
	}
	return 0
}

// AllSame reports whether the hand is non-empty and every tile is identical.
// Such a hand gave its holder no choice.
func AllSame(policies []Policy) bool {
	if len(policies) == 0 {
		return false
	}
	for _, p := range policies[1:] {
		if p != policies[0] {
			return false
		}
	}
	return true
}

// AllEqual reports whether the hand is non-empty and consists only of want.
func AllEqual(policies []Policy, want Policy) bool {
	return AllSame(policies) && policies[0] == want
}

// CountPolicies returns the number of liberal and fascist tiles in a hand.
func CountPolicies(policies []Policy) (liberal, fascist int) {
	for _, p := range policies {
		switch p {
		case PolicyLiberal:
			liberal++
		case PolicyFascist:
			fascist++
		}
	}
	return liberal, fascist
}

// Without returns a copy of the hand with the tile at index i removed.
func Without(policies []Policy, i int) []Policy {
	out := make([]Policy, 0, len(policies))
	for j, p := range policies {
		if j != i {
			out = append(out, p)
		}
	}
	return out
}
