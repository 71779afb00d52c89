package agent

import (
	"testing"

	engine "github.com/jason-s-yu/shbot/engine"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func testEstimator() Estimator {
	return Estimator{Rules: engine.DefaultRules(), Tuning: DefaultTuning()}
}

// TestCombinations verifies known values and the out-of-range cases.
func TestCombinations(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{17, 3, 680},
		{11, 1, 11},
		{6, 2, 15},
		{11, 2, 55},
		{6, 3, 20},
		{3, 3, 1},
		{2, 3, 0},
		{0, 0, 1},
		{-1, 0, 0},
		{4, -1, 0},
	}
	for _, tt := range tests {
		if got := Combinations(tt.n, tt.k); got != tt.want {
			t.Errorf("Combinations(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

// TestCombinationsProperties checks the boundary and symmetry laws.
func TestCombinationsProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("n < k yields zero", prop.ForAll(
		func(n, extra int) bool {
			return Combinations(n, n+extra) == 0
		},
		gen.IntRange(0, 20), gen.IntRange(1, 10),
	))

	properties.Property("symmetry", prop.ForAll(
		func(n, k int) bool {
			if k > n {
				k, n = n, k
			}
			return Combinations(n, k) == Combinations(n, n-k)
		},
		gen.IntRange(0, 20), gen.IntRange(0, 20),
	))

	properties.Property("pascal's rule", prop.ForAll(
		func(n, k int) bool {
			return Combinations(n+1, k+1) == Combinations(n, k)+Combinations(n, k+1)
		},
		gen.IntRange(0, 20), gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}

// TestEstimatorFreshDeck verifies the deltas against a full deck.
func TestEstimatorFreshDeck(t *testing.T) {
	e := testEstimator()
	tests := []struct {
		name      string
		signal    int
		president bool
		want      int
	}{
		// 660 hands: 165 with one fascist, 330 with two.
		{"fascist chancellor", -1, false, -500},
		{"fascist president", -1, true, -438},
		// 515 hands: 32 + 128.
		{"liberal chancellor", 1, false, 160},
		{"liberal president", 1, true, 160},
	}
	for _, tt := range tests {
		if got := e.Delta(tt.signal, tt.president, 11, 6); got != tt.want {
			t.Errorf("%s: Delta = %d, want %d", tt.name, got, tt.want)
		}
	}
}

// TestEstimatorOdds verifies the excluded hand depends on the enacted policy.
func TestEstimatorOdds(t *testing.T) {
	e := testEstimator()
	one, two, ok := e.Odds(11, 6, true)
	if !ok || one != 0.25 || two != 0.5 {
		t.Errorf("Odds(11, 6, fascist) = %v, %v, %v", one, two, ok)
	}
	if _, _, ok := e.Odds(2, 0, true); ok {
		t.Errorf("a deck that cannot fill a hand should report no odds")
	}
	if got := e.Delta(-1, false, 0, 0); got != 0 {
		t.Errorf("Delta on an empty deck = %d, want 0", got)
	}
}

// TestEstimatorRemaining verifies enacted and known discarded tiles leave the deck.
func TestEstimatorRemaining(t *testing.T) {
	e := testEstimator()
	s := &engine.Snapshot{FascistPolicies: 3, LiberalPolicies: 2}
	f, l := e.Remaining(s, PolicyCount{Fascist: 2, Liberal: 5})
	if f != 6 || l != 0 {
		t.Errorf("Remaining = %d/%d, want 6/0", f, l)
	}
}

// TestEstimatorBranches verifies the fixed branch values.
func TestEstimatorBranches(t *testing.T) {
	e := testEstimator()
	if got := e.OneBad(-1, true); got != -750 {
		t.Errorf("OneBad(fascist, president) = %d, want -750", got)
	}
	if got := e.OneBad(-1, false); got != -1000 {
		t.Errorf("OneBad(fascist, chancellor) = %d, want -1000", got)
	}
	if got := e.OneBad(1, true); got != 100 {
		t.Errorf("OneBad(liberal) = %d, want 100", got)
	}
	if got := e.TwoBad(-1); got != -500 {
		t.Errorf("TwoBad(fascist) = %d, want -500", got)
	}
	if got := e.TwoBad(1); got != 200 {
		t.Errorf("TwoBad(liberal) = %d, want 200", got)
	}
}

// TestRoundHalfAwayFromZero pins the rounding mode.
func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-187.5, -188}, {187.5, 188}, {0.5, 1}, {-0.5, -1}, {0.3, 0}, {-0.3, 0},
	}
	for _, tt := range tests {
		if got := round(tt.in); got != tt.want {
			t.Errorf("round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
