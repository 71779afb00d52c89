// internal/game/special_actions.go
package game

import (
	"strconv"

	engine "github.com/jason-s-yu/shbot/engine"
	"github.com/jason-s-yu/shbot/service/internal/models"
)

// kill executes a seat of the opposite faction. A liberal president prefers
// Hitler, whose death ends the game.
func (b *Bot) kill(s *engine.Snapshot) *models.GameplayAction {
	if !s.Me.President {
		return nil
	}
	me := s.Me.Faction
	preferred := b.preferredPlayers(s, me.Opposite(), engine.LivingOpponents(s), me == engine.FactionLiberal)
	victim, ok := b.pick(preferred)
	if !ok {
		return nil
	}
	b.log.Infof("Game %s: %s is killing %s.", b.GameID, b.Username, victim.Username)
	return newGameplayAction(engine.ActionKillPlayer, victim.Username)
}

// presidentVeto concurs with the chancellor's veto request when the president
// dislikes every tile it would otherwise have to enact.
func (b *Bot) presidentVeto(s *engine.Snapshot) *models.GameplayAction {
	if !s.Me.President {
		return nil
	}
	concur := engine.AllEqual(s.PoliciesToView, engine.PreferredDiscard(s.Me.Faction))
	if concur {
		b.log.Infof("Game %s: %s is agreeing to the veto.", b.GameID, b.Username)
	} else {
		b.log.Infof("Game %s: %s is refusing the veto.", b.GameID, b.Username)
	}
	return newGameplayAction(engine.ActionPresidentVeto, strconv.FormatBool(concur))
}

// investigate reveals the membership of an unrevealed seat, most suspected
// first. When every living seat is revealed any of them will do.
func (b *Bot) investigate(s *engine.Snapshot) *models.GameplayAction {
	if !s.Me.President {
		return nil
	}
	available := engine.LivingOpponents(s)
	var unknown []engine.Player
	for _, p := range available {
		if p.Faction == engine.FactionUnknown {
			unknown = append(unknown, p)
		}
	}
	preferred := available
	if len(unknown) > 0 {
		preferred = b.mostLikelyMembers(unknown, engine.FactionFascist)
	}
	target, ok := b.pick(preferred)
	if !ok {
		return nil
	}
	b.log.Infof("Game %s: %s is investigating %s.", b.GameID, b.Username, target.Username)
	return newGameplayAction(engine.ActionInvestigatePlayer, target.Username)
}

// specialElection hands the next presidency to the seat most likely on the
// president's side.
func (b *Bot) specialElection(s *engine.Snapshot) *models.GameplayAction {
	if !s.Me.President {
		return nil
	}
	preferred := b.preferredPlayers(s, s.Me.Faction, engine.LivingOpponents(s), false)
	next, ok := b.pick(preferred)
	if !ok {
		return nil
	}
	b.log.Infof("Game %s: %s is choosing %s as the next presidential candidate.", b.GameID, b.Username, next.Username)
	return newGameplayAction(engine.ActionChooseNextPresidential, seatArg(s, next))
}
