// internal/diag/sink.go
package diag

import (
	"context"
	"sort"
	"sync"

	"github.com/jason-s-yu/shbot/service/internal/models"
	"github.com/sirupsen/logrus"
)

// Sink receives ledger records as bots produce them.
type Sink interface {
	Record(ctx context.Context, rec models.LedgerRecord) error
}

// LogSink writes every record to the log at info level.
type LogSink struct {
	Log *logrus.Entry
}

func (s LogSink) Record(_ context.Context, rec models.LedgerRecord) error {
	s.Log.WithFields(logrus.Fields{
		"bot":      rec.Bot,
		"game":     rec.GameID,
		"strategy": rec.Strategy,
		"session":  rec.SessionID.String(),
	}).Infof("Game %s: %s's suspected player matrix after %s: %v", rec.GameID, rec.Bot, rec.Trigger, rec.Entries)
	return nil
}

// Latest keeps the most recent record of each bot in memory.
type Latest struct {
	mu   sync.RWMutex
	byID map[string]models.LedgerRecord
}

func NewLatest() *Latest {
	return &Latest{byID: make(map[string]models.LedgerRecord)}
}

func (l *Latest) Record(_ context.Context, rec models.LedgerRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byID[rec.Bot] = rec
	return nil
}

// Get returns the latest record of bot.
func (l *Latest) Get(bot string) (models.LedgerRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.byID[bot]
	return rec, ok
}

// All returns the latest record of every bot, ordered by bot name.
func (l *Latest) All() []models.LedgerRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.LedgerRecord, 0, len(l.byID))
	for _, rec := range l.byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bot < out[j].Bot })
	return out
}

// Multi fans a record out to every sink. A failing sink is logged and never
// stops the others or the game.
type Multi struct {
	Sinks []Sink
	Log   *logrus.Entry
}

func (m Multi) Record(ctx context.Context, rec models.LedgerRecord) error {
	for _, s := range m.Sinks {
		if err := s.Record(ctx, rec); err != nil {
			m.Log.WithError(err).Warnf("Game %s: ledger sink %T failed for %s.", rec.GameID, s, rec.Bot)
		}
	}
	return nil
}
