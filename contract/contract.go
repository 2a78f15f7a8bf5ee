//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"github.com/hakaku/arenaevents/domain"
)

// Collaborator capabilities consumed by the engine. All of them are
// host-provided; the engine is constructed with implementations and
// never reaches around them. Tests substitute doubles.

// Roster enumerates the players currently in an arena. The returned
// slice is a point-in-time snapshot; callers must not hold it across
// handling steps. An error means the roster service is temporarily
// unavailable, which is advisory: skip the check, don't conclude.
type Roster interface {
	Players(arena domain.ArenaID) ([]domain.Player, error)
}

// Messenger delivers text and sound notifications. Sound codes follow
// the host's convention (2 = beep, 5 = victory, 26 = status, ...).
type Messenger interface {
	SendPlayer(p domain.PlayerID, msg string)
	SendPlayerSound(p domain.PlayerID, sound int, msg string)
	SendArena(arena domain.ArenaID, msg string)
	SendArenaSound(arena domain.ArenaID, sound int, msg string)
	SendStaff(msg string)
}

// TimerKey correlates scheduled callbacks so one arena's timers can be
// cancelled without touching another's.
type TimerKey struct {
	Arena domain.ArenaID
	Name  string
}

// Timer schedules callbacks on the host's loop. Scheduling with an
// existing key replaces the previous schedule. Period zero means fire
// once.
type Timer interface {
	Schedule(key TimerKey, initial, period time.Duration, fire func())
	Cancel(key TimerKey)
}

// Prize is a host prize/reward code.
type Prize int

const (
	PrizeStealth Prize = 4
	PrizeCloak   Prize = 5
	PrizeWarp    Prize = 7
	PrizeRocket  Prize = 27
)

// DoorMode is the arena boundary-door override value.
type DoorMode int

const (
	DoorsOpen   DoorMode = 0
	DoorsClosed DoorMode = 255
)

// Actions mutates player and arena game state.
type Actions interface {
	SetShip(p domain.PlayerID, ship domain.ShipID)
	SetFreq(p domain.PlayerID, freq domain.Freq)
	GivePrize(p domain.PlayerID, prize Prize, count int)
	ShipReset(p domain.PlayerID)
	SetDoors(arena domain.ArenaID, mode DoorMode)
}

// FlagInfo is the state of one arena flag.
type FlagInfo struct {
	Index   int
	Carried bool
	Carrier domain.PlayerID
	Freq    domain.Freq
	X, Y    int
}

// Flags queries and sets flag position and carry state.
type Flags interface {
	Flags(arena domain.ArenaID) ([]FlagInfo, error)
	SetFlag(arena domain.ArenaID, fi FlagInfo) error
}

// Regions answers named map region membership.
type Regions interface {
	Exists(arena domain.ArenaID, region string) bool
	Contains(arena domain.ArenaID, region string, x, y int) bool
}

// Balls ends a ball game when a goal-style session concludes.
type Balls interface {
	EndGame(arena domain.ArenaID)
}

const CapStaff = "staff"

// Capability gates staff-only commands.
type Capability interface {
	Has(p domain.PlayerID, capability string) bool
}

// Settings reads host arena configuration, e.g. the race track's
// display name.
type Settings interface {
	GetStr(arena domain.ArenaID, section, key string) (string, bool)
}

// RaceStats is the persistence layer for race best times. The "never
// raced" case is errors.ErrNoRecord, distinct from the store being
// unreachable.
type RaceStats interface {
	Store(rec domain.RaceRecord) error
	ArenaBest(arena domain.ArenaID) (*domain.RaceRecord, error)
	PlayerBest(arena domain.ArenaID, player domain.PlayerID) (*domain.RaceRecord, error)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
}

// Worker doesn't protect itself; the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual
// naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
