package agent

import "errors"

var (
	// ErrConfirmedMembershipConflict is returned when a belief would contradict
	// a membership the game has already revealed.
	ErrConfirmedMembershipConflict = errors.New("belief contradicts confirmed membership")
	// ErrPlayerNotFound is returned when an action names a seat that is not at the table.
	ErrPlayerNotFound = errors.New("player not found")
)
