package agent

import (
	"fmt"

	engine "github.com/jason-s-yu/shbot/engine"
)

// Strategy names accepted by NewStrategy.
const (
	StrategyTernary  = "ternary"
	StrategyWeighted = "weighted"
)

// Strategy owns a ledger and decides how evidence moves it. Implementations
// are driven by a Deducer, which guarantees they are never asked to update
// the observer's own entry through Apply.
type Strategy interface {
	// Name identifies the strategy in logs and dumps.
	Name() string
	// Suspicion returns the signed suspicion held about a seat: negative
	// leans Fascist, positive leans Liberal, zero is no information.
	Suspicion(name string) int
	// Apply folds single-seat evidence into the ledger.
	Apply(ctx *Context, ev Evidence) error
	// ApplyConfirmed folds team evidence for a member whose partner's
	// membership has been revealed as f.
	ApplyConfirmed(ctx *Context, ev Evidence, member engine.Player, f engine.Faction) error
	// ResolveTeam folds team evidence when neither member's membership is
	// revealed, and returns the faction the team most likely belongs to.
	ResolveTeam(ctx *Context, ev Evidence) (engine.Faction, error)
	// TeamVerdict returns the same verdict as ResolveTeam without writing.
	TeamVerdict(team []engine.Player) engine.Faction
	// Entries returns a copy of the ledger as signed suspicions.
	Entries() map[string]int
}

// NewStrategy builds a strategy by name.
func NewStrategy(name string, tuning Tuning) (Strategy, error) {
	switch name {
	case StrategyTernary:
		return NewTernary(), nil
	case StrategyWeighted:
		return NewWeighted(engine.DefaultRules(), tuning), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
