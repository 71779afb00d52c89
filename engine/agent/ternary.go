package agent

import (
	"fmt"

	engine "github.com/jason-s-yu/shbot/engine"
)

// Ternary believes each opponent is Fascist, Liberal or unknown, and lets
// the latest evidence overwrite the belief.
type Ternary struct {
	ledger *Ledger[engine.Faction]
}

// NewTernary returns a ternary strategy with an empty ledger.
func NewTernary() *Ternary {
	return &Ternary{ledger: NewLedger[engine.Faction]()}
}

func (t *Ternary) Name() string { return StrategyTernary }

// Belief returns the faction currently believed for name.
func (t *Ternary) Belief(name string) engine.Faction { return t.ledger.Get(name) }

func (t *Ternary) Suspicion(name string) int { return t.ledger.Get(name).Sign() }

func (t *Ternary) Entries() map[string]int {
	out := make(map[string]int)
	for name, f := range t.ledger.Entries() {
		out[name] = f.Sign()
	}
	return out
}

// Write sets the belief about p, refusing to contradict a revealed membership.
func (t *Ternary) Write(p engine.Player, f engine.Faction) error {
	if p.Faction != engine.FactionUnknown && f != engine.FactionUnknown && f != p.Faction {
		return fmt.Errorf("%s is %v, cannot suspect %v: %w", p.Username, p.Faction, f, ErrConfirmedMembershipConflict)
	}
	t.ledger.Set(p.Username, f)
	return nil
}

func (t *Ternary) Apply(_ *Context, ev Evidence) error {
	f := engine.FactionFromSign(ev.Signal)
	if f == engine.FactionUnknown {
		return nil
	}
	// A killer already under suspicion either way keeps that suspicion.
	if ev.Kind == KindPlayerEliminated && t.ledger.Get(ev.Subject.Username) != engine.FactionUnknown {
		return nil
	}
	return t.Write(ev.Subject, f)
}

func (t *Ternary) ApplyConfirmed(_ *Context, _ Evidence, member engine.Player, f engine.Faction) error {
	return t.Write(member, f)
}

func (t *Ternary) ResolveTeam(ctx *Context, ev Evidence) (engine.Faction, error) {
	beliefs := t.distinctBeliefs(ev.Team)
	var next engine.Faction
	switch len(beliefs) {
	case 0:
		return engine.FactionUnknown, nil
	case 1:
		next = beliefs[0]
	default:
		next = engine.FactionUnknown
	}
	for _, p := range ev.Team {
		if ctx.IsSelf(p.Username) {
			continue
		}
		if err := t.Write(p, next); err != nil {
			return engine.FactionUnknown, err
		}
	}
	return next, nil
}

func (t *Ternary) TeamVerdict(team []engine.Player) engine.Faction {
	if beliefs := t.distinctBeliefs(team); len(beliefs) == 1 {
		return beliefs[0]
	}
	return engine.FactionUnknown
}

func (t *Ternary) distinctBeliefs(team []engine.Player) []engine.Faction {
	var out []engine.Faction
	for _, p := range team {
		b := t.ledger.Get(p.Username)
		if b == engine.FactionUnknown {
			continue
		}
		if len(out) == 0 || out[0] != b {
			out = append(out, b)
		}
	}
	return out
}
