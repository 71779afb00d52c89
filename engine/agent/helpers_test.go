package agent

import (
	engine "github.com/jason-s-yu/shbot/engine"
)

// newTable seats the named players, all alive. The first name is the
// observer, a revealed Liberal.
func newTable(names ...string) *engine.Snapshot {
	s := &engine.Snapshot{Phase: engine.PhasePickingRunningMate}
	for _, name := range names {
		s.Players = append(s.Players, engine.Player{Username: name, Alive: true})
	}
	s.Players[0].Faction = engine.FactionLiberal
	s.Players[0].Role = engine.RoleLiberal
	s.Me = s.Players[0]
	return s
}

// seat returns a pointer to the named seat for in-place edits.
func seat(s *engine.Snapshot, name string) *engine.Player {
	for i := range s.Players {
		if s.Players[i].Username == name {
			return &s.Players[i]
		}
	}
	panic("no seat " + name)
}

// syncMe copies the observer's seat back into Me after edits.
func syncMe(s *engine.Snapshot) {
	s.Me = *seat(s, s.Me.Username)
}

// seatGovernment clears the government flags and seats a new one.
func seatGovernment(s *engine.Snapshot, president, chancellor string) {
	for i := range s.Players {
		s.Players[i].President = s.Players[i].Username == president
		s.Players[i].Chancellor = s.Players[i].Username == chancellor
	}
	syncMe(s)
}

// seed moves a weighted suspicion by exactly v (|v| <= 100).
func seed(w *Weighted, name string, v int) {
	ctx := newContext("seed")
	_ = w.Apply(ctx, Evidence{Kind: KindGovernmentDeniedVote, Subject: engine.Player{Username: name}, Signal: v})
}

func action(t engine.ActionType, args ...string) engine.Action {
	return engine.Action{Type: t, Args: args}
}

// electGovernment drives the deducer through a PRESIDENT_CHOICE
// notification so it records the government.
func electGovernment(d *Deducer, s *engine.Snapshot, president, chancellor string) {
	seatGovernment(s, president, chancellor)
	s.Phase = engine.PhasePresidentChoice
	_ = d.OnEvent(s, action(engine.ActionGovernmentElected))
	s.Phase = engine.PhasePickingRunningMate
}
