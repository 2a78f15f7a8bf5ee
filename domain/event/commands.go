package event

import "github.com/hakaku/arenaevents/domain"

// Commands are host-dispatched like any other event so they interleave
// with game events in arrival order.

// StartCommand requests a session start. Non-staff issuers get their
// request relayed to staff instead of starting anything.
type StartCommand struct {
	Arena   domain.ArenaID
	Issuer  domain.PlayerID
	Variant string
	Params  string
}

func (e StartCommand) EventArena() domain.ArenaID { return e.Arena }

// StopCommand requests conclusion of whatever session is live.
type StopCommand struct {
	Arena  domain.ArenaID
	Issuer domain.PlayerID
}

func (e StopCommand) EventArena() domain.ArenaID { return e.Arena }

// RulesCommand asks for the live variant's tagline.
type RulesCommand struct {
	Arena  domain.ArenaID
	Issuer domain.PlayerID
}

func (e RulesCommand) EventArena() domain.ArenaID { return e.Arena }

// TimeCommand asks for the elapsed race time (race variant).
type TimeCommand struct {
	Arena  domain.ArenaID
	Issuer domain.PlayerID
}

func (e TimeCommand) EventArena() domain.ArenaID { return e.Arena }

// BestCommand asks for a player's best recorded race time. Subject
// defaults to the issuer when empty.
type BestCommand struct {
	Arena   domain.ArenaID
	Issuer  domain.PlayerID
	Subject domain.PlayerID
}

func (e BestCommand) EventArena() domain.ArenaID { return e.Arena }

// TrackBestCommand asks for the arena's overall best race time.
type TrackBestCommand struct {
	Arena  domain.ArenaID
	Issuer domain.PlayerID
}

func (e TrackBestCommand) EventArena() domain.ArenaID { return e.Arena }

// CenterFlagsCommand asks for all uncarried flags to be re-racked at
// the arena center. Params may carry "-c" to keep flag ownership.
type CenterFlagsCommand struct {
	Arena  domain.ArenaID
	Issuer domain.PlayerID
	Params string
}

func (e CenterFlagsCommand) EventArena() domain.ArenaID { return e.Arena }
