// internal/game/game.go
package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/shbot/engine"
	"github.com/jason-s-yu/shbot/engine/agent"
	"github.com/jason-s-yu/shbot/service/internal/models"
	"github.com/sirupsen/logrus"
)

// Level selects how much reasoning a bot does.
type Level int

const (
	LevelSimple    Level = 1 // plays by revealed memberships only
	LevelTernary   Level = 2 // ternary suspicion ledger
	LevelWeighted  Level = 3 // weighted suspicion ledger
	LevelDeceptive Level = 4 // weighted ledger, misleads the table as a fascist
)

func (l Level) String() string {
	switch l {
	case LevelSimple:
		return "simple"
	case LevelTernary:
		return "ternary"
	case LevelWeighted:
		return "weighted"
	case LevelDeceptive:
		return "deceptive"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel validates a level number given on the command line.
func ParseLevel(n int) (Level, error) {
	l := Level(n)
	if l < LevelSimple || l > LevelDeceptive {
		return 0, fmt.Errorf("unknown gameplay level %d", n)
	}
	return l, nil
}

// OnLedgerFunc receives every ledger dump of a bot, stamped with its session.
type OnLedgerFunc func(models.LedgerRecord)

// Bot plays one seat of one game. It is fed every notification of its
// gameplay session and answers with at most one action each.
type Bot struct {
	ID       uuid.UUID // session id, tags logs and ledger records
	Username string
	GameID   string
	Level    Level

	// OnLedger, when set, receives every ledger dump.
	OnLedger OnLedgerFunc

	rules     engine.Rules
	deducer   *agent.Deducer // nil at LevelSimple
	deceptive bool
	random    Random
	log       *logrus.Entry

	mu                sync.Mutex
	previousPhase     engine.Phase
	seenPhase         bool
	vetoUsedThisRound bool
	lastAction        *models.GameplayAction
	moves             int
}

// NewBot creates a bot for one game session.
func NewBot(username, gameID string, level Level, tuning agent.Tuning, random Random, log *logrus.Entry) (*Bot, error) {
	b := &Bot{
		ID:       uuid.New(),
		Username: username,
		GameID:   gameID,
		Level:    level,
		rules:    engine.DefaultRules(),
		random:   random,
	}
	b.log = log.WithFields(logrus.Fields{"bot": username, "game": gameID, "level": level.String(), "session": b.ID.String()})

	var name string
	switch level {
	case LevelSimple:
	case LevelTernary:
		name = agent.StrategyTernary
	case LevelWeighted, LevelDeceptive:
		name = agent.StrategyWeighted
	default:
		return nil, fmt.Errorf("unknown gameplay level %d", int(level))
	}
	if name != "" {
		strategy, err := agent.NewStrategy(name, tuning)
		if err != nil {
			return nil, err
		}
		b.deducer = agent.NewDeducer(username, strategy)
		b.deducer.OnDump = b.recordDump
		if level == LevelDeceptive {
			b.deceptive = true
			b.deducer.PublicPerspective = true
		}
	}
	return b, nil
}

// Deducer returns the bot's deducer, nil at LevelSimple.
func (b *Bot) Deducer() *agent.Deducer { return b.deducer }

func (b *Bot) recordDump(d agent.Dump) {
	b.log.WithField("trigger", d.Trigger).Debugf("Game %s: ledger %v", b.GameID, d.Entries)
	if b.OnLedger == nil {
		return
	}
	b.OnLedger(models.LedgerRecord{
		SessionID: b.ID,
		GameID:    b.GameID,
		Bot:       d.Bot,
		Strategy:  d.Strategy,
		Trigger:   d.Trigger,
		Entries:   d.Entries,
		At:        time.Now().UTC(),
	})
}

// HandleNotification folds a notification into the bot's beliefs and
// returns the action to send, or nil. Notifications that repeat the phase of
// the previous one are ignored entirely.
func (b *Bot) HandleNotification(n models.ParticipantGameNotification) (*models.GameplayAction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := snapshotFromData(n.GameData)
	if err != nil {
		return nil, fmt.Errorf("failed to read game data: %w", err)
	}
	if b.seenPhase && s.Phase == b.previousPhase {
		return nil, nil
	}
	b.previousPhase, b.seenPhase = s.Phase, true

	if b.deducer != nil {
		if err := b.deducer.OnEvent(s, actionFromData(n.Action)); err != nil {
			return nil, fmt.Errorf("failed to update beliefs: %w", err)
		}
	}

	action := b.decide(s)
	if action != nil {
		b.lastAction = action
		b.moves++
	}
	return action, nil
}

// decide picks the move for the phase the game is in.
func (b *Bot) decide(s *engine.Snapshot) *models.GameplayAction {
	switch s.Phase {
	case engine.PhasePickingRunningMate:
		return b.pickRunningMate(s)
	case engine.PhaseElection:
		return b.vote(s)
	case engine.PhasePresidentChoice:
		return b.presidentChoice(s)
	case engine.PhaseChancellorChoice:
		return b.chancellorChoice(s)
	case engine.PhaseExamine:
		return b.examine(s)
	case engine.PhaseKill:
		return b.kill(s)
	case engine.PhaseVeto:
		return b.presidentVeto(s)
	case engine.PhaseInvestigate:
		return b.investigate(s)
	case engine.PhaseSpecialElection:
		return b.specialElection(s)
	}
	return nil
}

// knowsRoles reports whether the seat already knows every fascist.
func (b *Bot) knowsRoles(s *engine.Snapshot) bool {
	return b.rules.KnowsRoles(s.Me.Role, len(s.Players))
}
