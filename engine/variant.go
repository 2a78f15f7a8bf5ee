package engine

import (
	"time"

	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
)

// Outcome is a variant's verdict after handling one event.
type Outcome struct {
	Concluded bool
}

// Variant is one mini-game's win evaluator plus its session effects.
// The engine owns the lifecycle; the variant owns the game rules. A
// variant only sees game events while its session is Active, which is
// this package's rendition of the host's register/unregister-callback
// pattern.
type Variant interface {
	// Name is the key hosts use in "start <name> <options>".
	Name() string

	// Tagline is the one-line description shown by the rules command.
	Tagline() string

	// Usage is the host-facing option card.
	Usage() []string

	// Countdown is the Staging duration before go-live.
	Countdown() time.Duration

	// TickPeriod is the repeating in-session timer period; zero means
	// the variant needs no tick.
	TickPeriod() time.Duration

	// AbortMessage is announced when a host stops the session.
	AbortMessage() string

	// ParseRules turns the raw start options into a locked rule set.
	// Any error aborts session creation before state is committed.
	ParseRules(params string) (domain.RuleSet, error)

	// Stage applies countdown-phase effects and announcements.
	Stage(s *domain.Session)

	// Activate applies go-live bulk effects and zeroes counters.
	Activate(s *domain.Session)

	// HandleEvent consumes one event while Active.
	HandleEvent(s *domain.Session, evt event.ArenaEvent) Outcome

	// ShortRoster announces the end when the roster shrank below the
	// viable minimum; the engine concludes right after.
	ShortRoster(s *domain.Session, remaining []domain.Player)

	// Conclude applies cleanup effects (doors, objectives, counters).
	Conclude(s *domain.Session)
}

// Anytime is implemented by variants that answer commands and
// persistence results even with no live session (the race variant's
// time/best/trackbest surface). The session argument may be nil or
// belong to another variant. Returns true when the event was consumed.
type Anytime interface {
	HandleAnytime(s *domain.Session, evt event.ArenaEvent) bool
}
