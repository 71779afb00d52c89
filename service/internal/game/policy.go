// internal/game/policy.go
package game

import (
	engine "github.com/jason-s-yu/shbot/engine"
	"github.com/jason-s-yu/shbot/engine/agent"
	"github.com/jason-s-yu/shbot/service/internal/models"
)

// pickRunningMate nominates a chancellor. A new round also re-arms the veto.
func (b *Bot) pickRunningMate(s *engine.Snapshot) *models.GameplayAction {
	b.vetoUsedThisRound = false
	if !s.Me.President {
		return nil
	}
	eligible := engine.EligibleRunningMates(s)
	mate, ok := b.chooseRunningMate(s, eligible)
	if !ok {
		b.log.Warnf("Game %s: no eligible running mate among %d seats.", b.GameID, len(s.Players))
		return nil
	}
	b.log.Infof("Game %s: %s is picking %s as running mate.", b.GameID, b.Username, mate.Username)
	return newGameplayAction(engine.ActionChooseRunningMate, seatArg(s, mate))
}

func (b *Bot) chooseRunningMate(s *engine.Snapshot, eligible []engine.Player) (engine.Player, bool) {
	if b.deceptive && s.Me.Faction == engine.FactionFascist {
		return b.deceptiveRunningMate(s, eligible)
	}
	hitlerPreferred := s.Me.Faction == engine.FactionFascist && s.DangerZone
	return b.pick(b.preferredPlayers(s, s.Me.Faction, eligible, hitlerPreferred))
}

// preferredPlayers narrows eligible down to the seats most likely to belong
// to faction, then by the Hitler preference. Hitler itself applies no Hitler
// preference.
func (b *Bot) preferredPlayers(s *engine.Snapshot, faction engine.Faction, eligible []engine.Player, hitlerPreferred bool) []engine.Player {
	party := b.partyPreference(faction, eligible)
	if s.Me.Role == engine.RoleHitler {
		return party
	}
	var byRole []engine.Player
	for _, p := range party {
		if (hitlerPreferred && p.Role == engine.RoleHitler) || (!hitlerPreferred && p.Role.KnownNonHitler()) {
			byRole = append(byRole, p)
		}
	}
	if len(byRole) > 0 {
		return byRole
	}
	return b.likelyHitlerPreference(party, hitlerPreferred)
}

// partyPreference returns the revealed members of faction, else the
// unrevealed seats most likely to be in it, else everyone eligible.
func (b *Bot) partyPreference(faction engine.Faction, eligible []engine.Player) []engine.Player {
	var team, unknown []engine.Player
	for _, p := range eligible {
		switch p.Faction {
		case faction:
			team = append(team, p)
		case engine.FactionUnknown:
			unknown = append(unknown, p)
		}
	}
	if len(team) > 0 {
		return team
	}
	if len(unknown) == 0 {
		return eligible
	}
	return b.mostLikelyMembers(unknown, faction)
}

// mostLikelyMembers returns the group of equally suspected players that
// leans furthest toward faction. Without a ledger every player qualifies.
func (b *Bot) mostLikelyMembers(players []engine.Player, faction engine.Faction) []engine.Player {
	if b.deducer == nil || len(players) == 0 {
		return players
	}
	groups := agent.GroupBySuspicion(players, b.deducer.Suspicion)
	if faction == engine.FactionFascist {
		return groups[0]
	}
	return groups[len(groups)-1]
}

// likelyHitlerPreference keeps the players whose membership in the proven
// non-Hitler set matches the preference, when any do.
func (b *Bot) likelyHitlerPreference(players []engine.Player, hitlerPreferred bool) []engine.Player {
	if b.deducer == nil {
		return players
	}
	ctx := b.deducer.Context()
	var out []engine.Player
	for _, p := range players {
		if hitlerPreferred != ctx.IsProvenNonHitler(p.Username) {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		return out
	}
	return players
}

// vote casts a ballot on the nominated government.
func (b *Bot) vote(s *engine.Snapshot) *models.GameplayAction {
	if s.Me.VoteReady || !s.Me.Alive {
		return nil
	}
	v := engine.VoteNein
	if b.voteJa(s) {
		v = engine.VoteJa
	}
	b.log.Infof("Game %s: %s is voting %s.", b.GameID, b.Username, v)
	return newGameplayAction(engine.ActionVote, v.String())
}

func (b *Bot) voteJa(s *engine.Snapshot) bool {
	gov := s.Government()
	me := s.Me.Faction
	if b.deducer != nil {
		if !b.knowsRoles(s) {
			verdict := b.deducer.Verdict(gov)
			return verdict == engine.FactionUnknown || verdict == me
		}
		return anyFaction(gov, engine.FactionFascist)
	}
	if me == engine.FactionFascist {
		return anyFaction(gov, engine.FactionFascist, engine.FactionUnknown)
	}
	for _, p := range gov {
		if p.Faction == engine.FactionFascist {
			return false
		}
	}
	return true
}

func anyFaction(players []engine.Player, factions ...engine.Faction) bool {
	for _, p := range players {
		for _, f := range factions {
			if p.Faction == f {
				return true
			}
		}
	}
	return false
}

// presidentChoice discards one of the three drawn tiles.
func (b *Bot) presidentChoice(s *engine.Snapshot) *models.GameplayAction {
	if !s.Me.President || len(s.PoliciesToView) == 0 {
		return nil
	}
	hand := s.PoliciesToView
	i := engine.DiscardIndex(hand, engine.PreferredDiscard(s.Me.Faction))
	b.recordDiscard(hand[i])
	if b.deducer != nil {
		b.deducer.RecordPresidentHand(engine.Without(hand, i))
	}
	return newGameplayAction(engine.ActionPresidentChoice, indexArg(i))
}

// chancellorChoice discards one of the two passed tiles, or asks for a veto
// once per round when both are unwanted.
func (b *Bot) chancellorChoice(s *engine.Snapshot) *models.GameplayAction {
	if !s.Me.Chancellor || len(s.PoliciesToView) == 0 {
		return nil
	}
	hand := s.PoliciesToView
	disliked := engine.PreferredDiscard(s.Me.Faction)
	if !b.vetoUsedThisRound && s.VetoUnlocked && engine.AllEqual(hand, disliked) {
		b.vetoUsedThisRound = true
		b.log.Infof("Game %s: %s is vetoing the policies.", b.GameID, b.Username)
		return newGameplayAction(engine.ActionChancellorVeto)
	}
	i := engine.DiscardIndex(hand, disliked)
	b.recordDiscard(hand[i])
	return newGameplayAction(engine.ActionChancellorChoice, indexArg(i))
}

func (b *Bot) recordDiscard(p engine.Policy) {
	b.log.Infof("Game %s: %s is discarding %s policy.", b.GameID, b.Username, p)
	if b.deducer != nil {
		b.deducer.RecordDiscard(p)
	}
}

// examine acknowledges the peek at the top of the deck. The deducer already
// noted the tiles from the snapshot.
func (b *Bot) examine(s *engine.Snapshot) *models.GameplayAction {
	if !s.Me.President {
		return nil
	}
	b.log.Infof("Game %s: %s is examining the top three policies.", b.GameID, b.Username)
	return newGameplayAction(engine.ActionFinishExamination)
}
