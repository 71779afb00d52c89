package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/jason-s-yu/shbot/engine/agent"
	"github.com/jason-s-yu/shbot/service/internal/diag"
	"github.com/jason-s-yu/shbot/service/internal/game"
	"github.com/jason-s-yu/shbot/service/internal/models"
	"github.com/jason-s-yu/shbot/service/internal/transport"
	"github.com/sirupsen/logrus"
)

const newGameCommand = "newGame"

type options struct {
	gameID  string
	newGame bool
	levels  []game.Level
}

// parseArgs reads `<gameId|newGame> <level>...`. Each level starts one robot.
func parseArgs(args []string) (options, error) {
	if len(args) < 2 {
		return options{}, fmt.Errorf("expected a game id and at least one level")
	}
	opts := options{gameID: args[0], newGame: args[0] == newGameCommand}
	if opts.newGame {
		opts.gameID = ""
	}
	for _, a := range args[1:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return options{}, fmt.Errorf("level %q is not a number", a)
		}
		level, err := game.ParseLevel(n)
		if err != nil {
			return options{}, err
		}
		opts.levels = append(opts.levels, level)
	}
	return opts, nil
}

// sessionClient is the part of *transport.Client a robot drives.
type sessionClient interface {
	Setup(ctx context.Context, gameID string, host bool, start <-chan struct{}) error
	Play(ctx context.Context, gameID string, h transport.Handler, newGame <-chan struct{}) (string, error)
}

// robot is one logged-in account. It joins a game through the setup
// session, then plays it and every game the server chains after it.
type robot struct {
	Username  string
	Level     game.Level
	Host      bool
	Tuning    agent.Tuning
	Seed      uint64
	Sink      diag.Sink
	Registry  *registry
	Transport sessionClient
	Log       *logrus.Entry

	// Enter fires when the operator presses enter. Only the host listens.
	Enter <-chan struct{}
}

func (r *robot) Run(ctx context.Context, gameID string) error {
	if err := r.Transport.Setup(ctx, gameID, r.Host, r.Enter); err != nil {
		return err
	}
	random := game.NewRandom(r.Seed)
	for gameID != "" {
		bot, err := game.NewBot(r.Username, gameID, r.Level, r.Tuning, random, r.Log)
		if err != nil {
			return err
		}
		bot.OnLedger = func(rec models.LedgerRecord) {
			_ = r.Sink.Record(ctx, rec)
		}
		r.Registry.Set(r.Username, bot)

		next, err := r.Transport.Play(ctx, gameID, bot, r.Enter)
		if err != nil {
			return err
		}
		gameID = next
	}
	r.Log.Infof("%s has left the game.", r.Username)
	return nil
}

// registry holds the bot each robot is currently playing with.
type registry struct {
	mu   sync.RWMutex
	bots map[string]*game.Bot
}

func newRegistry() *registry {
	return &registry{bots: make(map[string]*game.Bot)}
}

func (r *registry) Set(username string, b *game.Bot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bots[username] = b
}

// Statuses lists the current bots by username.
func (r *registry) Statuses() []game.BotStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]game.BotStatus, 0, len(r.bots))
	for _, b := range r.bots {
		out = append(out, b.Status())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}
