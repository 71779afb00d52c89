package agent

import (
	"fmt"

	engine "github.com/jason-s-yu/shbot/engine"
)

// Kind classifies a piece of evidence. Each kind has its own transform in
// the weighted strategy.
type Kind uint8

const (
	KindGovernmentDeniedVote        Kind = iota // 0: how a seat voted on a denied government
	KindFailedVeto                              // 1: a veto was requested and refused
	KindVoteChoiceResult                        // 2: how a seat voted on an enacted government
	KindPlayerEliminated                        // 3: a president executed a seat
	KindChancellorRequestedVeto                 // 4: the chancellor asked to veto a uniform hand
	KindVetoSucceeded                           // 5: president and chancellor agreed to veto
	KindRunningMateChosen                       // 6: a president nominated a chancellor
	KindPresidentialCandidateChosen             // 7: a special election picked a president
	KindPolicyPassedPresident                   // 8: the previous president's share of an enactment
	KindPolicyPassedChancellor                  // 9: the previous chancellor's share of an enactment
)

var kindNames = [...]string{
	"GOVERNMENT_DENIED_VOTE",
	"FAILED_VETO",
	"VOTE_CHOICE_RESULT",
	"PLAYER_ELIMINATED",
	"CHANCELLOR_REQUESTED_VETO",
	"VETO_SUCCEEDED",
	"RUNNING_MATE_CHOSEN",
	"PRESIDENTIAL_CANDIDATE_CHOSEN",
	"POLICY_PASSED_PRESIDENT",
	"POLICY_PASSED_CHANCELLOR",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsTeam reports whether evidence of this kind implicates a pair of seats
// jointly rather than one seat.
func (k Kind) IsTeam() bool {
	switch k {
	case KindVetoSucceeded, KindRunningMateChosen, KindPresidentialCandidateChosen:
		return true
	}
	return false
}

// Evidence is one classified observation.
type Evidence struct {
	Kind Kind
	// Subject is the implicated seat for single-seat kinds.
	Subject engine.Player
	// Team holds both implicated seats for team kinds.
	Team []engine.Player
	// Signal is the raw signed signal: the sign of a suspected faction, or a
	// victim's negated suspicion for eliminations.
	Signal int
	// Confirmed marks a team signal derived from a revealed membership.
	Confirmed bool
}

// factionEvidence builds single-seat evidence pointing at a faction.
func factionEvidence(kind Kind, p engine.Player, f engine.Faction) Evidence {
	return Evidence{Kind: kind, Subject: p, Signal: f.Sign()}
}

// classify maps one notification onto evidence. It reads the ledger but
// never writes it. The returned trigger describes the event for ledger dumps
// and is empty when the action carries no information.
func (d *Deducer) classify(s *engine.Snapshot, a engine.Action) ([]Evidence, string, error) {
	switch a.Type {
	case engine.ActionGovernmentDenied:
		return d.deniedVotes(s), "government denied", nil
	case engine.ActionAnarchy:
		d.ctx.ViewedOptions = nil
		return d.deniedVotes(s), "anarchy", nil
	case engine.ActionFascistPolicy:
		return d.policyPlayed(s, engine.PolicyFascist), "fascist policy played", nil
	case engine.ActionLiberalPolicy:
		return d.policyPlayed(s, engine.PolicyLiberal), "liberal policy played", nil
	case engine.ActionKillPlayer:
		return d.playerKilled(s, a.Arg(0), a.Arg(1))
	case engine.ActionChooseRunningMate:
		gov := s.Government()
		if len(gov) < 2 {
			return nil, "", nil
		}
		return []Evidence{{Kind: KindRunningMateChosen, Team: gov}}, "running mate was chosen", nil
	case engine.ActionChooseNextPresidential:
		team, err := lookupTeam(s, a.Arg(0), a.Arg(1))
		if err != nil {
			return nil, "", err
		}
		trigger := fmt.Sprintf("%s chose %s for the special election", a.Arg(0), a.Arg(1))
		return []Evidence{{Kind: KindPresidentialCandidateChosen, Team: team}}, trigger, nil
	case engine.ActionChancellorVeto:
		return d.chancellorVeto(s, a.Arg(0)), "chancellor asked to veto the policies", nil
	case engine.ActionPresidentVetoYes:
		president := a.Arg(0)
		if d.ctx.IsSelf(president) || d.ctx.VetoRequestor == "" {
			return nil, "", nil
		}
		team, err := lookupTeam(s, president, d.ctx.VetoRequestor)
		if err != nil {
			return nil, "", err
		}
		return []Evidence{{Kind: KindVetoSucceeded, Team: team}}, "veto succeeded", nil
	}
	return nil, "", nil
}

// deniedVotes treats every unconfirmed seat that voted like the observer as
// leaning to the observer's faction, and every other voter as the opposite.
func (d *Deducer) deniedVotes(s *engine.Snapshot) []Evidence {
	if s.Me.Vote == engine.VoteNone {
		return nil
	}
	var out []Evidence
	for _, p := range engine.LivingOpponents(s) {
		if p.Faction != engine.FactionUnknown || p.Vote == engine.VoteNone {
			continue
		}
		f := s.Me.Faction
		if p.Vote != s.Me.Vote {
			f = f.Opposite()
		}
		out = append(out, factionEvidence(KindGovernmentDeniedVote, p, f))
	}
	return out
}

// policyPlayed splits an enactment between the previous government and the
// voters. A hand the observer knew to be uniform gave nobody a choice and
// yields nothing.
func (d *Deducer) policyPlayed(s *engine.Snapshot, policy engine.Policy) []Evidence {
	if engine.AllSame(d.ctx.ViewedOptions) {
		return nil
	}
	vetoed := d.ctx.VetoRequestor != ""
	var out []Evidence
	for _, p := range engine.LivingOpponents(s) {
		if p.Faction != engine.FactionUnknown {
			continue
		}
		switch p.Username {
		case d.ctx.PreviousChancellor:
			if vetoed {
				out = append(out, factionEvidence(KindFailedVeto, p, policy.Opposite().Faction()))
			} else {
				out = append(out, factionEvidence(KindPolicyPassedChancellor, p, policy.Faction()))
			}
		case d.ctx.PreviousPresident:
			if vetoed {
				out = append(out, factionEvidence(KindFailedVeto, p, policy.Faction()))
			} else {
				out = append(out, factionEvidence(KindPolicyPassedPresident, p, policy.Faction()))
			}
		default:
			switch p.Vote {
			case engine.VoteJa:
				out = append(out, factionEvidence(KindVoteChoiceResult, p, policy.Faction()))
			case engine.VoteNein:
				out = append(out, factionEvidence(KindVoteChoiceResult, p, policy.Opposite().Faction()))
			}
		}
	}
	return out
}

// playerKilled blames or credits the killer with the victim's standing.
func (d *Deducer) playerKilled(s *engine.Snapshot, killer, victim string) ([]Evidence, string, error) {
	if d.ctx.IsSelf(killer) {
		return nil, "", nil
	}
	p, ok := s.PlayerByName(killer)
	if !ok {
		return nil, "", fmt.Errorf("killer %q: %w", killer, ErrPlayerNotFound)
	}
	if p.Faction != engine.FactionUnknown {
		return nil, "", nil
	}
	victimSuspicion := d.strategy.Suspicion(victim)
	if victimSuspicion == 0 {
		return nil, "", nil
	}
	ev := Evidence{Kind: KindPlayerEliminated, Subject: p, Signal: -victimSuspicion}
	return []Evidence{ev}, fmt.Sprintf("%s killed %s", killer, victim), nil
}

// chancellorVeto records the requestor and, when the observer is the
// president holding a uniform hand, judges the chancellor by whether the
// observer would have vetoed the same hand.
func (d *Deducer) chancellorVeto(s *engine.Snapshot, requestor string) []Evidence {
	chancellor, seated := s.Chancellor()
	if requestor == "" && seated {
		requestor = chancellor.Username
	}
	d.ctx.VetoRequestor = requestor
	if !s.Me.President || !seated || !engine.AllSame(s.PoliciesToView) {
		return nil
	}
	if chancellor.Faction != engine.FactionUnknown || d.ctx.IsSelf(chancellor.Username) {
		return nil
	}
	concur := engine.AllEqual(s.PoliciesToView, engine.PreferredDiscard(s.Me.Faction))
	f := s.Me.Faction
	if !concur {
		f = f.Opposite()
	}
	return []Evidence{factionEvidence(KindChancellorRequestedVeto, chancellor, f)}
}

func lookupTeam(s *engine.Snapshot, names ...string) ([]engine.Player, error) {
	team := make([]engine.Player, 0, len(names))
	for _, name := range names {
		p, ok := s.PlayerByName(name)
		if !ok {
			return nil, fmt.Errorf("team member %q: %w", name, ErrPlayerNotFound)
		}
		team = append(team, p)
	}
	return team, nil
}
