package agent

import "maps"

// Ledger maps opponent usernames to a belief value. The zero value of V is
// the belief held about a player nothing has been learned about yet.
type Ledger[V comparable] struct {
	entries map[string]V
}

// NewLedger returns an empty ledger.
func NewLedger[V comparable]() *Ledger[V] {
	return &Ledger[V]{entries: make(map[string]V)}
}

// Get returns the belief about name, or the zero value when none is held.
func (l *Ledger[V]) Get(name string) V {
	return l.entries[name]
}

// Set replaces the belief about name.
func (l *Ledger[V]) Set(name string, v V) {
	l.entries[name] = v
}

// Entries returns a copy of the ledger.
func (l *Ledger[V]) Entries() map[string]V {
	return maps.Clone(l.entries)
}
