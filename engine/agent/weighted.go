package agent

import (
	engine "github.com/jason-s-yu/shbot/engine"
)

// Weighted accumulates a signed suspicion per opponent. Every kind of
// evidence has its own transform, so a single strong signal can outweigh
// many weak ones. Updates are not idempotent.
type Weighted struct {
	ledger    *Ledger[int]
	tuning    Tuning
	estimator Estimator
}

// NewWeighted returns a weighted strategy with an empty ledger.
func NewWeighted(rules engine.Rules, tuning Tuning) *Weighted {
	return &Weighted{
		ledger:    NewLedger[int](),
		tuning:    tuning,
		estimator: Estimator{Rules: rules, Tuning: tuning},
	}
}

func (w *Weighted) Name() string { return StrategyWeighted }

func (w *Weighted) Suspicion(name string) int { return w.ledger.Get(name) }

func (w *Weighted) Entries() map[string]int { return w.ledger.Entries() }

// add accumulates delta onto the suspicion of name.
func (w *Weighted) add(name string, delta int) {
	if delta == 0 {
		return
	}
	w.ledger.Set(name, w.ledger.Get(name)+delta)
}

// transform maps a raw signal onto the delta for its kind.
func (w *Weighted) transform(ctx *Context, kind Kind, raw int) int {
	t := w.tuning
	switch kind {
	case KindGovernmentDeniedVote:
		return clamp(round(float64(raw)*t.DeniedVoteFactor), t.MaxVoteSuspicion)
	case KindVoteChoiceResult:
		return clamp(round(float64(raw)*t.VoteChoiceFactor), t.MaxVoteSuspicion)
	case KindFailedVeto:
		return raw * t.FailedVetoFactor
	case KindChancellorRequestedVeto:
		return raw * t.ChancellorVetoFactor
	case KindPlayerEliminated:
		return round(float64(raw) * t.KillFactor)
	case KindVetoSucceeded:
		return raw
	case KindRunningMateChosen, KindPresidentialCandidateChosen:
		return clamp(round(float64(raw)*t.TeammateFactor), t.MaxTeammateSuspicion)
	case KindPolicyPassedPresident:
		return w.policyDelta(ctx, raw, true)
	case KindPolicyPassedChancellor:
		return w.policyDelta(ctx, raw, false)
	}
	return 0
}

// policyDelta judges a member of the government that enacted a policy.
func (w *Weighted) policyDelta(ctx *Context, signal int, judgingPresident bool) int {
	if !judgingPresident && ctx.IsSelf(ctx.PreviousPresident) {
		// The observer handed this chancellor the last two tiles.
		switch {
		case !ctx.ChancellorHadChoice:
			return 0
		case signal < 0:
			return w.tuning.FascistPolicyChosen
		}
		return w.tuning.LiberalPolicyChosen
	}
	if len(ctx.ViewedOptions) > 0 {
		if _, fascist := engine.CountPolicies(ctx.ViewedOptions); fascist == 1 {
			return w.estimator.OneBad(signal, judgingPresident)
		}
		return w.estimator.TwoBad(signal)
	}
	fascist, liberal := w.estimator.Remaining(ctx.Snapshot, ctx.KnownDiscards)
	return w.estimator.Delta(signal, judgingPresident, fascist, liberal)
}

func (w *Weighted) Apply(ctx *Context, ev Evidence) error {
	w.add(ev.Subject.Username, w.transform(ctx, ev.Kind, ev.Signal))
	return nil
}

func (w *Weighted) ApplyConfirmed(ctx *Context, ev Evidence, member engine.Player, f engine.Faction) error {
	raw := f.Sign()
	switch ev.Kind {
	case KindVetoSucceeded:
		raw *= w.tuning.ConfirmedVetoSuspicion
	case KindRunningMateChosen, KindPresidentialCandidateChosen:
		raw *= w.tuning.ConfirmedTeammateSuspicion
	}
	w.add(member.Username, w.transform(ctx, ev.Kind, raw))
	return nil
}

// ResolveTeam moves each member by its partners' combined suspicion, damped
// by the kind's transform. A team whose suspicion cancels out is left alone.
// The verdict is the sign of the combined suspicion.
func (w *Weighted) ResolveTeam(ctx *Context, ev Evidence) (engine.Faction, error) {
	sum := w.sum(ev.Team)
	if sum == 0 {
		return engine.FactionUnknown, nil
	}
	deltas := make([]int, len(ev.Team))
	for i, p := range ev.Team {
		deltas[i] = w.transform(ctx, ev.Kind, sum-w.ledger.Get(p.Username))
	}
	for i, p := range ev.Team {
		if ctx.IsSelf(p.Username) {
			continue
		}
		w.add(p.Username, deltas[i])
	}
	return engine.FactionFromSign(sum), nil
}

func (w *Weighted) TeamVerdict(team []engine.Player) engine.Faction {
	return engine.FactionFromSign(w.sum(team))
}

func (w *Weighted) sum(team []engine.Player) int {
	total := 0
	for _, p := range team {
		total += w.ledger.Get(p.Username)
	}
	return total
}
