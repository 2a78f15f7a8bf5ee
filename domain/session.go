package domain

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the session lifecycle state.
type Phase int

const (
	// Idle: no session exists in the arena.
	Idle Phase = iota
	// Staging: countdown running, rules locked, players gathering.
	Staging
	// Active: win tracking live.
	Active
	// Concluded: transient cleanup state before returning to Idle.
	Concluded
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Staging:
		return "staging"
	case Active:
		return "active"
	case Concluded:
		return "concluded"
	default:
		return "unknown"
	}
}

// Session is one run of a mini-game within one arena. At most one
// session per arena is in Staging or Active at any time; the arena's
// engine goroutine owns it exclusively.
type Session struct {
	// Generation uniquely identifies this run. Asynchronous results
	// carry it back so late arrivals for an earlier run are detected
	// and discarded.
	Generation uuid.UUID

	Arena   ArenaID
	Variant string
	Phase   Phase
	Rules   RuleSet
	Host    PlayerID

	// StartedAt is the Active transition time; zero while Staging.
	StartedAt time.Time
}

func NewSession(arena ArenaID, variant string, rules RuleSet, host PlayerID) *Session {
	return &Session{
		Generation: uuid.New(),
		Arena:      arena,
		Variant:    variant,
		Phase:      Staging,
		Rules:      rules,
		Host:       host,
	}
}

// Live reports whether the session is in Staging or Active.
func (s *Session) Live() bool {
	return s != nil && (s.Phase == Staging || s.Phase == Active)
}

// Elapsed is the time since the Active transition.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s == nil || s.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(s.StartedAt)
}
