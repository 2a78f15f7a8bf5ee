// Package event defines the typed events the host delivers to an
// arena's engine, plus the engine's own internal stimuli (timer
// expiries, persistence results). Everything the engine reacts to is
// one of these values on the arena's event channel, so per-arena
// ordering is simply channel order.
package event

import (
	"github.com/hakaku/arenaevents/domain"
)

type ArenaEvent interface {
	EventArena() domain.ArenaID
}

// --- game events delivered by the host ---

// Kill reports one player eliminating another.
type Kill struct {
	Arena  domain.ArenaID
	Killer domain.PlayerID
	Killed domain.PlayerID
	Bounty int
}

func (e Kill) EventArena() domain.ArenaID { return e.Arena }

// Goal reports a ball entering a goal, credited to the scorer's team.
type Goal struct {
	Arena  domain.ArenaID
	Scorer domain.PlayerID
	Freq   domain.Freq
	X, Y   int
}

func (e Goal) EventArena() domain.ArenaID { return e.Arena }

// RegionCross reports a player entering or leaving a named map region.
type RegionCross struct {
	Arena    domain.ArenaID
	Player   domain.PlayerID
	Region   string
	Entering bool
	X, Y     int
}

func (e RegionCross) EventArena() domain.ArenaID { return e.Arena }

// ShipFreqChange reports a ship or frequency change, including moves
// to and from spectator mode.
type ShipFreqChange struct {
	Arena   domain.ArenaID
	Player  domain.PlayerID
	NewShip domain.ShipID
	OldShip domain.ShipID
	NewFreq domain.Freq
	OldFreq domain.Freq
}

func (e ShipFreqChange) EventArena() domain.ArenaID { return e.Arena }

// PlayerEntered reports a player entering the arena (or re-entering
// the game after a reconnect).
type PlayerEntered struct {
	Arena  domain.ArenaID
	Player domain.PlayerID
}

func (e PlayerEntered) EventArena() domain.ArenaID { return e.Arena }

// PlayerLeft reports a player leaving the arena or disconnecting.
type PlayerLeft struct {
	Arena  domain.ArenaID
	Player domain.PlayerID
}

func (e PlayerLeft) EventArena() domain.ArenaID { return e.Arena }

// FlagPickup reports a player picking up the arena's movable flag.
type FlagPickup struct {
	Arena  domain.ArenaID
	Player domain.PlayerID
}

func (e FlagPickup) EventArena() domain.ArenaID { return e.Arena }

// FlagLost reports a player dropping the arena's movable flag.
type FlagLost struct {
	Arena  domain.ArenaID
	Player domain.PlayerID
}

func (e FlagLost) EventArena() domain.ArenaID { return e.Arena }
