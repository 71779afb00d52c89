// internal/game/engine_adapter.go
package game

import (
	"fmt"
	"strconv"

	engine "github.com/jason-s-yu/shbot/engine"
	"github.com/jason-s-yu/shbot/service/internal/models"
)

// playerFromData converts a wire seat to an engine player.
func playerFromData(p models.PlayerData) (engine.Player, error) {
	faction, err := engine.ParseFaction(p.PartyMembership)
	if err != nil {
		return engine.Player{}, fmt.Errorf("player %s: %w", p.Username, err)
	}
	role, err := engine.ParseRole(p.SecretRole)
	if err != nil {
		return engine.Player{}, fmt.Errorf("player %s: %w", p.Username, err)
	}
	vote, err := engine.ParseVote(p.Vote)
	if err != nil {
		return engine.Player{}, fmt.Errorf("player %s: %w", p.Username, err)
	}
	return engine.Player{
		Username:                 p.Username,
		Host:                     p.Host,
		Alive:                    p.Alive,
		Faction:                  faction,
		Role:                     role,
		President:                p.President,
		Chancellor:               p.Chancellor,
		PreviousGovernmentMember: p.PreviousGovernmentMember,
		Vote:                     vote,
		VoteReady:                p.VoteReady,
	}, nil
}

// snapshotFromData converts the game data of a notification to an engine snapshot.
func snapshotFromData(d models.GameData) (*engine.Snapshot, error) {
	me, err := playerFromData(d.MyPlayer)
	if err != nil {
		return nil, err
	}
	s := &engine.Snapshot{
		Me:                      me,
		Players:                 make([]engine.Player, 0, len(d.Players)),
		Phase:                   engine.ParsePhase(d.Phase),
		PolicyDocketSize:        d.PolicyDocketSize,
		DeniedPolicies:          d.DeniedPolicies,
		LiberalPolicies:         d.LiberalPolicies,
		FascistPolicies:         d.FascistPolicies,
		UnsuccessfulGovernments: d.UnsuccessfulGovernments,
		DangerZone:              d.FascistDangerZone,
		VetoUnlocked:            d.VetoUnlocked,
		NextPresident:           d.NextPresident,
		NextGameID:              d.NextGameID,
	}
	for _, pd := range d.Players {
		p, err := playerFromData(pd)
		if err != nil {
			return nil, err
		}
		s.Players = append(s.Players, p)
	}
	for _, name := range d.PoliciesToView {
		p, err := engine.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		s.PoliciesToView = append(s.PoliciesToView, p)
	}
	if d.Winners != "" {
		if s.Winners, err = engine.ParseFaction(d.Winners); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// actionFromData converts the action that caused a notification. A missing
// action becomes the zero Action, which no deduction reacts to.
func actionFromData(a *models.GameplayAction) engine.Action {
	if a == nil {
		return engine.Action{}
	}
	return engine.Action{Type: engine.ActionType(a.Action), Args: a.Args}
}

// newGameplayAction builds an outgoing action. Args is never nil so that it
// serializes as an empty array.
func newGameplayAction(t engine.ActionType, args ...string) *models.GameplayAction {
	if args == nil {
		args = []string{}
	}
	return &models.GameplayAction{Action: string(t), Args: args}
}

// seatArg renders a seat index argument.
func seatArg(s *engine.Snapshot, p engine.Player) string {
	return strconv.Itoa(s.IndexOf(p.Username))
}

// indexArg renders a hand index argument.
func indexArg(i int) string {
	return strconv.Itoa(i)
}
