// internal/models/models.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerData is one seat as the server reveals it to a participant.
type PlayerData struct {
	Username                 string `json:"username"`
	Host                     bool   `json:"host"`
	Connected                bool   `json:"connected"`
	Alive                    bool   `json:"alive"`
	PartyMembership          string `json:"partyMembership"` // LIBERAL, FASCIST or UNKNOWN
	SecretRole               string `json:"secretRole"`      // LIBERAL, FASCIST, HITLER or UNKNOWN
	President                bool   `json:"president"`
	Chancellor               bool   `json:"chancellor"`
	PreviousGovernmentMember bool   `json:"previousGovernmentMember"`
	Vote                     string `json:"vote,omitempty"` // JA, NEIN or empty
	VoteReady                bool   `json:"voteReady"`
}

// GameData is the full game state attached to every gameplay notification.
type GameData struct {
	MyPlayer                PlayerData   `json:"myPlayer"`
	Players                 []PlayerData `json:"players"`
	Watchers                []string     `json:"watchers,omitempty"`
	Phase                   string       `json:"phase"`
	PolicyDocketSize        int          `json:"policyDocketSize"`
	DeniedPolicies          int          `json:"deniedPolicies"`
	LiberalPolicies         int          `json:"liberalPolicies"`
	FascistPolicies         int          `json:"fascistPolicies"`
	UnsuccessfulGovernments int          `json:"unsuccessfulGovernments"`
	FascistDangerZone       bool         `json:"fascistDangerZone"`
	VetoUnlocked            bool         `json:"vetoUnlocked"`
	History                 []string     `json:"history,omitempty"`
	PoliciesToView          []string     `json:"policiesToView,omitempty"`
	NextPresident           string       `json:"nextPresident,omitempty"`
	Winners                 string       `json:"winners,omitempty"`
	NextGameID              string       `json:"nextGameId,omitempty"`
}

// GameplayAction is an action sent by a participant, or the action that
// caused a notification.
type GameplayAction struct {
	Action string   `json:"action"`
	Args   []string `json:"args"`
}

// ParticipantGameNotification is pushed to every participant after each change.
type ParticipantGameNotification struct {
	GameData GameData        `json:"gameData"`
	Action   *GameplayAction `json:"action,omitempty"`
}

// GameParticipant is a seat in the setup lobby.
type GameParticipant struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	Connected bool   `json:"connected"`
}

// GameRequest is the lobby state pushed on the setup socket.
type GameRequest struct {
	ID                      string            `json:"id"`
	Participants            []GameParticipant `json:"participants"`
	ReadyToStart            bool              `json:"readyToStart"`
	AvailableForMorePlayers bool              `json:"availableForMorePlayers"`
	Started                 bool              `json:"started"`
}

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// LedgerRecord is a suspicion ledger dump stamped with the session it came
// from. It is what the diagnostic sinks publish and archive.
type LedgerRecord struct {
	SessionID uuid.UUID      `json:"sessionId"`
	GameID    string         `json:"gameId"`
	Bot       string         `json:"bot"`
	Strategy  string         `json:"strategy"`
	Trigger   string         `json:"trigger"`
	Entries   map[string]int `json:"entries"`
	At        time.Time      `json:"at"`
}
