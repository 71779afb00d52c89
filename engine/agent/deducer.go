// Package agent implements the belief engine of the bot: it classifies
// game notifications into evidence and folds that evidence into a
// per-opponent suspicion ledger through a pluggable strategy.
package agent

import (
	"fmt"

	engine "github.com/jason-s-yu/shbot/engine"
)

// Dump is a copy of a ledger taken after an update, for diagnostics.
type Dump struct {
	Bot      string         `json:"bot"`
	Strategy string         `json:"strategy"`
	Trigger  string         `json:"trigger"`
	Entries  map[string]int `json:"entries"`
}

// Deducer composes the tracked game context, the evidence classifier and a
// strategy. OnEvent is the only way the ledger changes.
type Deducer struct {
	rules    engine.Rules
	strategy Strategy
	ctx      *Context

	// PublicPerspective makes a seat that knows every role reason over the
	// public view of each snapshot instead, as an uninformed liberal at the
	// table would.
	PublicPerspective bool
	// OnDump, when set, receives a ledger copy after every informative event.
	OnDump func(Dump)
}

// NewDeducer returns a deducer for the seat named self.
func NewDeducer(self string, strategy Strategy) *Deducer {
	return &Deducer{
		rules:    engine.DefaultRules(),
		strategy: strategy,
		ctx:      newContext(self),
	}
}

// Strategy returns the strategy the deducer drives.
func (d *Deducer) Strategy() Strategy { return d.strategy }

// Context returns the tracked game context. Callers must not modify it.
func (d *Deducer) Context() *Context { return d.ctx }

// Suspicion returns the signed suspicion held about name.
func (d *Deducer) Suspicion(name string) int { return d.strategy.Suspicion(name) }

// Belief returns the faction name leans toward, Unknown when it leans
// neither way.
func (d *Deducer) Belief(name string) engine.Faction {
	return engine.FactionFromSign(d.strategy.Suspicion(name))
}

// OnEvent folds one notification into the ledger and the tracked context.
func (d *Deducer) OnEvent(s *engine.Snapshot, a engine.Action) error {
	if d.PublicPerspective && d.rules.KnowsRoles(s.Me.Role, len(s.Players)) {
		s = s.PublicView()
	}
	d.ctx.Snapshot = s
	defer d.track(s)

	if d.rules.KnowsRoles(s.Me.Role, len(s.Players)) {
		return nil
	}
	if a.Type == engine.ActionGovernmentElected {
		if chancellor, ok := s.Chancellor(); ok && s.DangerZone {
			d.ctx.ProvenNonHitlers[chancellor.Username] = struct{}{}
		}
		return nil
	}

	evidence, trigger, err := d.classify(s, a)
	if err != nil {
		return fmt.Errorf("classifying %s: %w", a.Type, err)
	}
	for _, ev := range evidence {
		if err := d.apply(ev); err != nil {
			return fmt.Errorf("applying %v: %w", ev.Kind, err)
		}
	}
	d.settle(a)
	if trigger != "" {
		d.dump(trigger)
	}
	return nil
}

func (d *Deducer) apply(ev Evidence) error {
	if ev.Kind.IsTeam() {
		_, err := d.resolveTeam(ev)
		return err
	}
	if d.ctx.IsSelf(ev.Subject.Username) {
		return nil
	}
	return d.strategy.Apply(d.ctx, ev)
}

// resolveTeam handles revealed memberships the same way for every strategy
// and leaves the unrevealed case to the strategy.
func (d *Deducer) resolveTeam(ev Evidence) (engine.Faction, error) {
	switch known := confirmedFactions(ev.Team); len(known) {
	case 1:
		f := known[0]
		ev.Confirmed = true
		for _, p := range ev.Team {
			if d.ctx.IsSelf(p.Username) {
				continue
			}
			if err := d.strategy.ApplyConfirmed(d.ctx, ev, p, f); err != nil {
				return engine.FactionUnknown, err
			}
		}
		return f, nil
	case 2:
		return engine.FactionFascist, nil
	}
	return d.strategy.ResolveTeam(d.ctx, ev)
}

// Verdict returns the faction a team most likely belongs to, without
// changing any belief.
func (d *Deducer) Verdict(team []engine.Player) engine.Faction {
	switch known := confirmedFactions(team); len(known) {
	case 1:
		return known[0]
	case 2:
		return engine.FactionFascist
	}
	return d.strategy.TeamVerdict(team)
}

func confirmedFactions(team []engine.Player) []engine.Faction {
	var out []engine.Faction
	for _, p := range team {
		if p.Faction == engine.FactionUnknown {
			continue
		}
		if len(out) == 0 || out[0] != p.Faction {
			out = append(out, p.Faction)
		}
	}
	return out
}

// MostLikelyBadFaction returns the seats most likely to be fascists.
func (d *Deducer) MostLikelyBadFaction(s *engine.Snapshot) []engine.Player {
	return MostLikelyBadFaction(s, d.strategy.Suspicion)
}

// RecordDiscard notes a tile the observer discarded.
func (d *Deducer) RecordDiscard(p engine.Policy) {
	d.ctx.KnownDiscards.Add(p, 1)
}

// RecordPresidentHand notes the two tiles the observer passed to its chancellor.
func (d *Deducer) RecordPresidentHand(passed []engine.Policy) {
	d.ctx.ChancellorHadChoice = len(passed) > 1 && !engine.AllSame(passed)
}

// settle clears the per-session context an event consumed.
func (d *Deducer) settle(a engine.Action) {
	switch a.Type {
	case engine.ActionFascistPolicy, engine.ActionLiberalPolicy:
		viewed := d.ctx.ViewedOptions
		inGovernment := d.ctx.IsSelf(d.ctx.PreviousPresident) || d.ctx.IsSelf(d.ctx.PreviousChancellor)
		if engine.AllSame(viewed) && !inGovernment {
			d.ctx.KnownDiscards.Add(viewed[0], d.rules.DrawSize-1)
		}
		d.ctx.ViewedOptions = nil
		d.ctx.VetoRequestor = ""
	case engine.ActionPresidentVetoYes:
		d.ctx.ViewedOptions = nil
		d.ctx.VetoRequestor = ""
	}
}

// track updates the context from the phase the snapshot is in.
func (d *Deducer) track(s *engine.Snapshot) {
	switch s.Phase {
	case engine.PhasePresidentChoice:
		d.ctx.PreviousPresident, d.ctx.PreviousChancellor = "", ""
		if p, ok := s.President(); ok {
			d.ctx.PreviousPresident = p.Username
		}
		if c, ok := s.Chancellor(); ok {
			d.ctx.PreviousChancellor = c.Username
		}
	case engine.PhaseExamine:
		if s.Me.President {
			d.ctx.ViewedOptions = append([]engine.Policy(nil), s.PoliciesToView...)
		}
	case engine.PhasePickingRunningMate:
		if s.DeniedPolicies == 0 {
			d.ctx.KnownDiscards = PolicyCount{}
		}
	}
}

func (d *Deducer) dump(trigger string) {
	if d.OnDump == nil {
		return
	}
	entries := d.strategy.Entries()
	delete(entries, d.ctx.Self)
	d.OnDump(Dump{Bot: d.ctx.Self, Strategy: d.strategy.Name(), Trigger: trigger, Entries: entries})
}
