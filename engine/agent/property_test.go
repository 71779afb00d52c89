package agent

import (
	"errors"
	"testing"

	engine "github.com/jason-s-yu/shbot/engine"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var allFactions = []engine.Faction{engine.FactionUnknown, engine.FactionLiberal, engine.FactionFascist}

// TestTernaryNeverContradictsConfirmed checks that a ternary write either
// fails with a conflict or leaves a belief consistent with the revealed
// membership.
func TestTernaryNeverContradictsConfirmed(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("writes respect revealed memberships", prop.ForAll(
		func(confirmed, written int) bool {
			c, w := allFactions[confirmed], allFactions[written]
			tern := NewTernary()
			err := tern.Write(engine.Player{Username: "aj", Faction: c}, w)
			belief := tern.Belief("aj")
			if err != nil {
				return errors.Is(err, ErrConfirmedMembershipConflict) && belief == engine.FactionUnknown
			}
			return c == engine.FactionUnknown || belief == engine.FactionUnknown || belief == c
		},
		gen.IntRange(0, 2), gen.IntRange(0, 2),
	))

	properties.TestingRun(t)
}

// TestObserverNeverJudgesItself replays random event sequences and checks
// the observer's own entry is never written.
func TestObserverNeverJudgesItself(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	names := []string{"me", "aj", "sean", "ty", "kat"}
	events := []func(*engine.Snapshot, int) engine.Action{
		func(s *engine.Snapshot, i int) engine.Action {
			seatGovernment(s, names[i%5], names[(i+1)%5])
			s.Phase = engine.PhasePresidentChoice
			return action(engine.ActionGovernmentElected)
		},
		func(s *engine.Snapshot, i int) engine.Action {
			s.Phase = engine.PhasePickingRunningMate
			return action(engine.ActionFascistPolicy)
		},
		func(s *engine.Snapshot, i int) engine.Action {
			s.Phase = engine.PhasePickingRunningMate
			return action(engine.ActionLiberalPolicy)
		},
		func(s *engine.Snapshot, i int) engine.Action {
			return action(engine.ActionChooseNextPresidential, names[i%5], names[(i+2)%5])
		},
		func(s *engine.Snapshot, i int) engine.Action {
			return action(engine.ActionKillPlayer, names[(i+3)%5], names[i%5])
		},
		func(s *engine.Snapshot, i int) engine.Action {
			s.Phase = engine.PhaseElection
			return action(engine.ActionChooseRunningMate)
		},
		func(s *engine.Snapshot, i int) engine.Action {
			return action(engine.ActionChancellorVeto, names[i%5])
		},
		func(s *engine.Snapshot, i int) engine.Action {
			return action(engine.ActionPresidentVetoYes, names[(i+1)%5])
		},
		func(s *engine.Snapshot, i int) engine.Action {
			for j := range s.Players {
				s.Players[j].Vote = engine.Vote(1 + (i+j)%2)
			}
			syncMe(s)
			return action(engine.ActionGovernmentDenied)
		},
	}

	for _, strategy := range []string{StrategyTernary, StrategyWeighted} {
		properties.Property(strategy+" leaves the observer alone", prop.ForAll(
			func(steps []int) bool {
				st, err := NewStrategy(strategy, DefaultTuning())
				if err != nil {
					return false
				}
				s := newTable(names...)
				d := NewDeducer("me", st)
				for i, step := range steps {
					_ = d.OnEvent(s, events[step](s, i))
					if st.Suspicion("me") != 0 {
						return false
					}
				}
				return true
			},
			gen.SliceOf(gen.IntRange(0, len(events)-1)),
		))
	}

	properties.TestingRun(t)
}
