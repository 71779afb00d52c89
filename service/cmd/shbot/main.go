package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jason-s-yu/shbot/engine/agent"
	"github.com/jason-s-yu/shbot/service/internal/auth"
	"github.com/jason-s-yu/shbot/service/internal/cache"
	"github.com/jason-s-yu/shbot/service/internal/config"
	"github.com/jason-s-yu/shbot/service/internal/database"
	"github.com/jason-s-yu/shbot/service/internal/diag"
	"github.com/jason-s-yu/shbot/service/internal/transport"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.NewEntry(logger)

	if err := run(os.Args[1:], log); err != nil {
		log.WithError(err).Fatal("shbot stopped")
	}
}

func run(args []string, log *logrus.Entry) error {
	opts, err := parseArgs(args)
	if err != nil {
		return fmt.Errorf("%w\nusage: shbot <gameId|%s> <level>...", err, newGameCommand)
	}

	if err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if lvl, err := logrus.ParseLevel(config.LogLevel()); err == nil {
		log.Logger.SetLevel(lvl)
	} else {
		log.Warnf("Unknown log level %q, keeping %s.", config.LogLevel(), log.Logger.GetLevel())
	}

	tuning := agent.DefaultTuning()
	if path := config.TuningFile(); path != "" {
		if tuning, err = config.LoadTuning(path); err != nil {
			return err
		}
		log.Infof("Loaded tuning from %s.", path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	latest := diag.NewLatest()
	sinks := []diag.Sink{diag.LogSink{Log: log}, latest}
	if url := config.RedisURL(); url != "" {
		publisher, err := cache.NewLedgerPublisher(url)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
		log.Infof("Publishing ledgers on %s.", cache.LedgerChannel)
	}
	if url := config.DatabaseURL(); url != "" {
		store, err := database.Open(ctx, url)
		if err != nil {
			return err
		}
		defer store.Close()
		sinks = append(sinks, store)
		log.Info("Archiving ledgers to the database.")
	}
	sink := diag.Multi{Sinks: sinks, Log: log}

	bots := newRegistry()
	if addr := config.DebugAddr(); addr != "" {
		srv := &http.Server{Addr: addr, Handler: diag.NewRouter(latest, bots.Statuses)}
		go func() {
			log.Infof("Debug server listening on %s.", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("Debug server failed.")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if opts.newGame {
		log.Infof("Starting %d robots creating a new game.", len(opts.levels))
	} else {
		log.Infof("Starting %d robots with game id %s.", len(opts.levels), opts.gameID)
	}

	enter := readLines(ctx, bufio.NewScanner(os.Stdin))
	authClient := auth.NewClient(config.HTTPBaseURL(), config.LoginPath(), config.CreateGamePath())
	password := config.RobotPassword()

	gameID := opts.gameID
	robots := make([]*robot, 0, len(opts.levels))
	for i, level := range opts.levels {
		username := fmt.Sprintf("Robot %d", i+1)
		token, err := authClient.Login(ctx, username, password)
		if err != nil {
			return err
		}
		switch {
		case token.Opaque:
			log.Warnf("Access token of %s is not a JWT, using it as is.", username)
		case token.Expired(time.Now()):
			log.Warnf("Access token of %s expired at %s.", username, token.Expires)
		}
		log.Infof("Logged in user %s.", username)

		host := i == 0 && opts.newGame
		if host {
			if gameID, err = authClient.CreateGame(ctx, token); err != nil {
				return err
			}
			log.Infof("New game created with id %s.", gameID)
		}

		r := &robot{
			Username:  username,
			Level:     level,
			Host:      host,
			Tuning:    tuning,
			Seed:      uint64(time.Now().UnixNano()) + uint64(i),
			Sink:      sink,
			Registry:  bots,
			Transport: newTransport(token.Raw, log),
			Log:       log,
		}
		if host {
			r.Enter = enter
		}
		robots = append(robots, r)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range robots {
		g.Go(func() error { return r.Run(gctx, gameID) })
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("All robots have left.")
	return nil
}

// readLines turns every line typed on stdin into a signal for the host.
func readLines(ctx context.Context, sc *bufio.Scanner) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		for sc.Scan() {
			select {
			case out <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func newTransport(token string, log *logrus.Entry) sessionClient {
	return transport.NewClient(config.WSBaseURL(), config.SetupPath(), config.GameplayPath(), token, rate.Every(config.MoveDelay()), log)
}
