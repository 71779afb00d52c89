package agent

import engine "github.com/jason-s-yu/shbot/engine"

// PolicyCount tallies policy tiles by type.
type PolicyCount struct {
	Liberal int
	Fascist int
}

// Add counts n tiles of the given policy.
func (c *PolicyCount) Add(p engine.Policy, n int) {
	switch p {
	case engine.PolicyLiberal:
		c.Liberal += n
	case engine.PolicyFascist:
		c.Fascist += n
	}
}

// Context is what a deducer remembers between notifications, alongside the
// snapshot the current notification carries. Only the Deducer mutates it.
type Context struct {
	Self     string
	Snapshot *engine.Snapshot

	// ViewedOptions are the three tiles the observer saw while examining, to
	// be drawn by the next government. Empty when nothing is pending.
	ViewedOptions []engine.Policy
	// VetoRequestor is the chancellor who asked for a veto this session.
	VetoRequestor      string
	PreviousPresident  string
	PreviousChancellor string
	// ChancellorHadChoice records whether the observer, as president, passed
	// on two different tiles.
	ChancellorHadChoice bool
	// KnownDiscards are discarded tiles whose type the observer knows, since
	// the last reshuffle.
	KnownDiscards PolicyCount
	// ProvenNonHitlers only grows: a chancellor elected in the danger zone
	// without ending the game cannot be Hitler.
	ProvenNonHitlers map[string]struct{}
}

func newContext(self string) *Context {
	return &Context{Self: self, ProvenNonHitlers: make(map[string]struct{})}
}

// IsSelf reports whether name is the observing seat.
func (c *Context) IsSelf(name string) bool { return name == c.Self }

// IsProvenNonHitler reports whether name has been proven not to be Hitler.
func (c *Context) IsProvenNonHitler(name string) bool {
	_, ok := c.ProvenNonHitlers[name]
	return ok
}
