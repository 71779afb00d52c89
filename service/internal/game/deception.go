// internal/game/deception.go
package game

import (
	"slices"

	engine "github.com/jason-s-yu/shbot/engine"
	"github.com/jason-s-yu/shbot/engine/agent"
)

// deceptiveRunningMate is how a deceptive fascist president nominates. Its
// ledger holds the table's view of every seat, so it can pick a teammate the
// table still trusts, or lend credibility to itself by picking a liberal. The
// odds of picking a teammate grow with the liberal policies enacted.
func (b *Bot) deceptiveRunningMate(s *engine.Snapshot, eligible []engine.Player) (engine.Player, bool) {
	if len(eligible) == 0 {
		return engine.Player{}, false
	}
	suspicion := b.deducer.Suspicion
	iAmHitler := s.Me.Role == engine.RoleHitler
	meSuspected := agent.SuspectedFascist(s, suspicion, s.Me.Username)

	if s.DangerZone && !iAmHitler {
		if hitler, ok := findRole(eligible, engine.RoleHitler); ok &&
			!meSuspected && !agent.SuspectedFascist(s, suspicion, hitler.Username) {
			return hitler, true
		}
	}

	chance := float64(s.LiberalPolicies) / float64(b.rules.MaxLiberalWins-1)
	if b.random.Float64() < chance {
		if iAmHitler {
			return mostSuspected(eligible, suspicion), true
		}
		groups := agent.GroupBySuspicion(eligible, suspicion)
		if !meSuspected {
			slices.Reverse(groups)
		}
		if p, ok := firstWithRole(groups, engine.RoleFascist); ok {
			return p, true
		}
		return mostSuspected(eligible, suspicion), true
	}

	if iAmHitler {
		return leastSuspected(eligible, suspicion), true
	}
	liberals := notRevealedFascist(eligible)
	if len(liberals) == 0 {
		return b.pick(eligible)
	}
	if b.random.Float64() < chance {
		for _, group := range agent.GroupBySuspicion(liberals, suspicion) {
			for _, p := range group {
				if !agent.SuspectedFascist(s, suspicion, p.Username) {
					return p, true
				}
			}
		}
	}
	return leastSuspected(liberals, suspicion), true
}

func findRole(players []engine.Player, role engine.Role) (engine.Player, bool) {
	for _, p := range players {
		if p.Role == role {
			return p, true
		}
	}
	return engine.Player{}, false
}

func firstWithRole(groups [][]engine.Player, role engine.Role) (engine.Player, bool) {
	for _, group := range groups {
		if p, ok := findRole(group, role); ok {
			return p, true
		}
	}
	return engine.Player{}, false
}

// notRevealedFascist returns the seats a fascist does not know as teammates.
func notRevealedFascist(players []engine.Player) []engine.Player {
	var out []engine.Player
	for _, p := range players {
		if p.Faction != engine.FactionFascist {
			out = append(out, p)
		}
	}
	return out
}

func mostSuspected(players []engine.Player, suspicion func(string) int) engine.Player {
	return agent.GroupBySuspicion(players, suspicion)[0][0]
}

func leastSuspected(players []engine.Player, suspicion func(string) int) engine.Player {
	groups := agent.GroupBySuspicion(players, suspicion)
	return groups[len(groups)-1][0]
}
