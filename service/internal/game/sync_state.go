// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/shbot/service/internal/models"
)

// BotStatus is a point-in-time view of a bot for the debug server.
type BotStatus struct {
	SessionID  uuid.UUID              `json:"sessionId"`
	Username   string                 `json:"username"`
	GameID     string                 `json:"gameId"`
	Level      string                 `json:"level"`
	Strategy   string                 `json:"strategy,omitempty"`
	Phase      string                 `json:"phase"`
	Moves      int                    `json:"moves"`
	LastAction *models.GameplayAction `json:"lastAction,omitempty"`
	// Suspicion is the current ledger. Empty at the simple level.
	Suspicion map[string]int `json:"suspicion,omitempty"`
}

// Status returns the bot's current status. It is safe to call while the bot
// is handling notifications.
func (b *Bot) Status() BotStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := BotStatus{
		SessionID: b.ID,
		Username:  b.Username,
		GameID:    b.GameID,
		Level:     b.Level.String(),
		Phase:     b.previousPhase.String(),
		Moves:     b.moves,
	}
	if b.lastAction != nil {
		last := *b.lastAction
		last.Args = append([]string(nil), b.lastAction.Args...)
		st.LastAction = &last
	}
	if b.deducer != nil {
		st.Strategy = b.deducer.Strategy().Name()
		st.Suspicion = make(map[string]int)
		if s := b.deducer.Context().Snapshot; s != nil {
			for _, p := range s.Players {
				if p.Username != b.Username {
					st.Suspicion[p.Username] = b.deducer.Suspicion(p.Username)
				}
			}
		}
	}
	return st
}
