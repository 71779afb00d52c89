package engine

import "testing"

// TestEligibleRunningMates verifies dead, previous government and self are excluded.
func TestEligibleRunningMates(t *testing.T) {
	s := testSnapshot()
	s.Players[1].PreviousGovernmentMember = true
	got := EligibleRunningMates(s)
	if len(got) != 1 || got[0].Username != "sean" {
		t.Errorf("EligibleRunningMates = %+v, want [sean]", got)
	}
	if opp := LivingOpponents(s); len(opp) != 2 {
		t.Errorf("LivingOpponents len = %d, want 2", len(opp))
	}
}

// TestPreferredDiscard verifies each faction discards the other's policy.
func TestPreferredDiscard(t *testing.T) {
	if PreferredDiscard(FactionLiberal) != PolicyFascist {
		t.Errorf("liberals should discard fascist policies")
	}
	if PreferredDiscard(FactionFascist) != PolicyLiberal {
		t.Errorf("fascists should discard liberal policies")
	}
	if PreferredDiscard(FactionUnknown) != PolicyNone {
		t.Errorf("unknown faction has no preference")
	}
}

// TestDiscardIndex verifies the first preferred tile is chosen, falling back to 0.
func TestDiscardIndex(t *testing.T) {
	hand := []Policy{PolicyLiberal, PolicyFascist, PolicyFascist}
	if got := DiscardIndex(hand, PolicyFascist); got != 1 {
		t.Errorf("DiscardIndex = %d, want 1", got)
	}
	if got := DiscardIndex([]Policy{PolicyLiberal, PolicyLiberal}, PolicyFascist); got != 0 {
		t.Errorf("DiscardIndex fallback = %d, want 0", got)
	}
}

// TestAllSame verifies the no-choice detection, including the empty hand.
func TestAllSame(t *testing.T) {
	tests := []struct {
		hand []Policy
		want bool
	}{
		{nil, false},
		{[]Policy{PolicyFascist}, true},
		{[]Policy{PolicyFascist, PolicyFascist, PolicyFascist}, true},
		{[]Policy{PolicyFascist, PolicyLiberal, PolicyFascist}, false},
	}
	for _, tt := range tests {
		if got := AllSame(tt.hand); got != tt.want {
			t.Errorf("AllSame(%v) = %v, want %v", tt.hand, got, tt.want)
		}
	}
	if !AllEqual([]Policy{PolicyLiberal, PolicyLiberal}, PolicyLiberal) {
		t.Errorf("AllEqual should match a uniform hand")
	}
	if AllEqual([]Policy{PolicyLiberal, PolicyLiberal}, PolicyFascist) {
		t.Errorf("AllEqual should reject a different tile")
	}
}

// TestCountAndWithout verifies tile counting and removal.
func TestCountAndWithout(t *testing.T) {
	hand := []Policy{PolicyLiberal, PolicyFascist, PolicyFascist}
	lib, fas := CountPolicies(hand)
	if lib != 1 || fas != 2 {
		t.Errorf("CountPolicies = %d/%d, want 1/2", lib, fas)
	}
	rest := Without(hand, 0)
	if len(rest) != 2 || rest[0] != PolicyFascist || len(hand) != 3 {
		t.Errorf("Without(hand, 0) = %v (hand %v)", rest, hand)
	}
}
