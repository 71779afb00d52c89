// internal/game/random.go
package game

import (
	"math/rand/v2"

	engine "github.com/jason-s-yu/shbot/engine"
)

// Random is the source of every random choice a bot makes. *rand.Rand
// satisfies it.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// NewRandom returns a seeded generator. Bots sharing a seed play identically.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// pick returns a uniformly chosen player, or false for an empty list.
func (b *Bot) pick(players []engine.Player) (engine.Player, bool) {
	if len(players) == 0 {
		return engine.Player{}, false
	}
	return players[b.random.IntN(len(players))], true
}
