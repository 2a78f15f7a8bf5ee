package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"github.com/hakaku/arenaevents/console"
	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	"github.com/hakaku/arenaevents/engine"
	"github.com/hakaku/arenaevents/games/jugger"
	"github.com/hakaku/arenaevents/games/paintball"
	"github.com/hakaku/arenaevents/games/race"
	"github.com/hakaku/arenaevents/gateway"
	"github.com/hakaku/arenaevents/internal"
	"github.com/hakaku/arenaevents/modules"
	"github.com/hakaku/arenaevents/repositories"
	"github.com/hakaku/arenaevents/runtime/workers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and
// centralizes error reporting so deferred cleanup always executes
// before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := internal.LoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Host collaborators
	world := console.NewWorld()
	chat := console.NewMessenger(log)
	timer := console.NewTimer()
	stats := repositories.NewRaceStatsRepository(db, log)

	// 4. Engines & gateway. The gateway routes answers back to the
	// engine owning the arena that asked.
	engines := make(map[domain.ArenaID]*engine.Engine, len(config.ArenaList()))
	dispatch := func(arena domain.ArenaID, evt event.ArenaEvent) {
		if e, ok := engines[arena]; ok {
			e.Dispatch(evt)
		}
	}
	gw := gateway.New(log, stats, chat, dispatch, config.GatewayBufferSize)

	deps := engine.Deps{Roster: world, Chat: chat, Timer: timer, Actions: world, Caps: world}
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(gw)
	for _, name := range config.ArenaList() {
		arena := domain.ArenaID(name)
		e := engine.New(log, arena, deps, config.BufferSize,
			jugger.New(log, chat, world, world, world, config.JuggerCountdown),
			paintball.New(log, chat, world, world, world, config.PaintballCountdown),
			race.New(log, chat, world, world, world, world, gw, config.RaceCountdown, config.RocketPeriod),
		)
		e.AddAnytime(modules.NewFlagsToCenter(log, chat, world, world))
		engines[arena] = e
		sup.Add(e)

		// Every arena gets one flag for the elimination variant and a
		// default finish region; the terminal can add more.
		world.AddFlag(arena, 100, 100)
		world.AddRegion(arena, "finish", console.Rect{X1: 500, Y1: 500, X2: 524, Y2: 524})
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. Terminal loop
	repl := newRepl(log, world, engines, stats, timer)
	repl.run(ctx)

	// 7. Final Cleanup
	sup.Stop()
	for key := range engines {
		timer.Cancel(contract.TimerKey{Arena: key, Name: "staging"})
		timer.Cancel(contract.TimerKey{Arena: key, Name: "tick"})
	}
	log.Info("Program stopped cleanly")

	return nil
}
