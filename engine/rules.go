package engine

// Rules holds the fixed deck and table constants of the game.
type Rules struct {
	FascistPolicies int // fascist tiles in a fresh deck
	LiberalPolicies int // liberal tiles in a fresh deck
	DrawSize        int // tiles the president draws each legislative session
	MinPlayers      int
	MaxPlayers      int
	MaxLiberalWins  int // liberal policies needed to win
	// SmallGameRoleReveal is the table size below which Hitler knows the fascists.
	SmallGameRoleReveal int
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		FascistPolicies:     11,
		LiberalPolicies:     6,
		DrawSize:            3,
		MinPlayers:          5,
		MaxPlayers:          10,
		MaxLiberalWins:      5,
		SmallGameRoleReveal: 7,
	}
}

// FascistCount returns the number of fascists (Hitler included) at a table
// of the given size: two at five or six players, one more per two seats after.
func FascistCount(players int) int {
	if players < 5 {
		return 2
	}
	return (players-5)/2 + 2
}

// KnowsRoles reports whether a seat with the given role already knows every
// fascist, in which case there is nothing to deduce.
func (r Rules) KnowsRoles(role Role, players int) bool {
	return role == RoleFascist || (role == RoleHitler && players < r.SmallGameRoleReveal)
}
