package agent

import (
	"math"

	engine "github.com/jason-s-yu/shbot/engine"
	"gonum.org/v1/gonum/stat/combin"
)

// Combinations returns n choose k, and 0 whenever k > n or either is negative.
func Combinations(n, k int) int {
	if n < 0 || k < 0 || n < k {
		return 0
	}
	return combin.Binomial(n, k)
}

// round rounds half away from zero.
func round(x float64) int {
	return int(math.Round(x))
}

// clamp limits v to [-limit, limit].
func clamp(v, limit int) int {
	switch {
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return v
}

// Estimator turns an enacted policy into a suspicion delta when the
// observer did not see the hand the government drew from. It weighs the
// blame by how likely the hand held one or two tiles of the bad faction,
// given what is left in the deck.
type Estimator struct {
	Rules  engine.Rules
	Tuning Tuning
}

// Remaining returns the fascist and liberal tiles that can still be in the
// deck: the full deck minus enacted policies and known discards.
func (e Estimator) Remaining(s *engine.Snapshot, discards PolicyCount) (fascist, liberal int) {
	fascist = max(e.Rules.FascistPolicies-s.FascistPolicies-discards.Fascist, 0)
	liberal = max(e.Rules.LiberalPolicies-s.LiberalPolicies-discards.Liberal, 0)
	return fascist, liberal
}

// Odds returns the probabilities that a draw held exactly one or exactly two
// fascist tiles. The hand that could not have produced the enacted policy
// (all liberal when a fascist passed, all fascist otherwise) is excluded from
// the sample space. ok is false when no hand remains.
func (e Estimator) Odds(fascist, liberal int, fascistPassed bool) (one, two float64, ok bool) {
	draw := e.Rules.DrawSize
	total := Combinations(fascist+liberal, draw)
	if fascistPassed {
		total -= Combinations(liberal, draw)
	} else {
		total -= Combinations(fascist, draw)
	}
	if total <= 0 {
		return 0, 0, false
	}
	oneBad := Combinations(fascist, 1) * Combinations(liberal, draw-1)
	twoBad := Combinations(fascist, 2) * Combinations(liberal, draw-2)
	return float64(oneBad) / float64(total), float64(twoBad) / float64(total), true
}

// OneBad is the delta when the hand held a single fascist tile.
func (e Estimator) OneBad(signal int, judgingPresident bool) int {
	if signal < 0 {
		if judgingPresident {
			return round(float64(e.Tuning.FascistPolicyChosen) * e.Tuning.PresidentBlameShare)
		}
		return e.Tuning.FascistPolicyChosen
	}
	return e.Tuning.LiberalPolicyChosen / 2
}

// TwoBad is the delta when the hand held two fascist tiles.
func (e Estimator) TwoBad(signal int) int {
	if signal < 0 {
		return e.Tuning.FascistPolicyChosen / 2
	}
	return e.Tuning.LiberalPolicyChosen
}

// Delta returns the expected suspicion delta for a government member after
// an enacted policy of the given sign, drawn from the given remaining deck.
func (e Estimator) Delta(signal int, judgingPresident bool, fascist, liberal int) int {
	one, two, ok := e.Odds(fascist, liberal, signal < 0)
	if !ok {
		return 0
	}
	return round(float64(e.OneBad(signal, judgingPresident))*one) + round(float64(e.TwoBad(signal))*two)
}
