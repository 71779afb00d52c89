package agent

import (
	"sort"

	engine "github.com/jason-s-yu/shbot/engine"
)

// GroupBySuspicion partitions players into groups of equal suspicion, most
// suspected (most negative) first. Seat order is kept within a group.
func GroupBySuspicion(players []engine.Player, suspicion func(string) int) [][]engine.Player {
	byScore := make(map[int][]engine.Player)
	for _, p := range players {
		s := suspicion(p.Username)
		byScore[s] = append(byScore[s], p)
	}
	scores := make([]int, 0, len(byScore))
	for s := range byScore {
		scores = append(scores, s)
	}
	sort.Ints(scores)
	groups := make([][]engine.Player, 0, len(scores))
	for _, s := range scores {
		groups = append(groups, byScore[s])
	}
	return groups
}

// MostLikelyBadFaction returns the seats most likely to be the fascists:
// every revealed fascist, then whole groups of equally suspected seats, most
// suspected first, for as long as the next group fits within the table's
// fascist head-count. Revealed liberals are never candidates, and neither is
// the observer unless revealed as a fascist.
func MostLikelyBadFaction(s *engine.Snapshot, suspicion func(string) int) []engine.Player {
	limit := engine.FascistCount(len(s.Players))
	var out, candidates []engine.Player
	for _, p := range s.Players {
		switch {
		case p.Faction == engine.FactionFascist:
			out = append(out, p)
		case p.Faction == engine.FactionLiberal, s.IsMe(p):
		default:
			candidates = append(candidates, p)
		}
	}
	for _, group := range GroupBySuspicion(candidates, suspicion) {
		if len(out)+len(group) > limit {
			break
		}
		out = append(out, group...)
	}
	return out
}

// SuspectedFascist reports whether name sits in one of the first
// head-count groups of all seats ordered by suspicion.
func SuspectedFascist(s *engine.Snapshot, suspicion func(string) int, name string) bool {
	groups := GroupBySuspicion(s.Players, suspicion)
	limit := min(engine.FascistCount(len(s.Players)), len(groups))
	for _, group := range groups[:limit] {
		for _, p := range group {
			if p.Username == name {
				return true
			}
		}
	}
	return false
}
