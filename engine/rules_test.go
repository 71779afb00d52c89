package engine

import "testing"

// TestFascistCount verifies the head-count formula across table sizes.
func TestFascistCount(t *testing.T) {
	tests := []struct {
		players, want int
	}{
		{5, 2}, {6, 2}, {7, 3}, {8, 3}, {9, 4}, {10, 4},
	}
	for _, tt := range tests {
		if got := FascistCount(tt.players); got != tt.want {
			t.Errorf("FascistCount(%d) = %d, want %d", tt.players, got, tt.want)
		}
	}
}

// TestKnowsRoles verifies which seats skip deduction.
func TestKnowsRoles(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		role    Role
		players int
		want    bool
	}{
		{RoleFascist, 5, true},
		{RoleFascist, 10, true},
		{RoleHitler, 6, true},
		{RoleHitler, 7, false},
		{RoleLiberal, 5, false},
	}
	for _, tt := range tests {
		if got := r.KnowsRoles(tt.role, tt.players); got != tt.want {
			t.Errorf("KnowsRoles(%v, %d) = %v, want %v", tt.role, tt.players, got, tt.want)
		}
	}
}

// TestDefaultRulesDeck verifies the standard deck composition.
func TestDefaultRulesDeck(t *testing.T) {
	r := DefaultRules()
	if r.FascistPolicies != 11 || r.LiberalPolicies != 6 || r.DrawSize != 3 {
		t.Errorf("unexpected deck: %+v", r)
	}
}
