package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/hakaku/arenaevents/domain"
)

// Internal stimuli: timer expiries scheduled by the engine and results
// delivered by the persistence gateway. They travel the same channel
// as host events, so a result can legitimately arrive after the
// session it was issued for has been replaced; Generation lets the
// consumer notice.

// StagingExpired fires when the staging countdown runs out.
type StagingExpired struct {
	Arena      domain.ArenaID
	Generation uuid.UUID
}

func (e StagingExpired) EventArena() domain.ArenaID { return e.Arena }

// Tick is the repeating in-session timer (the race variant's rocket
// region sweep).
type Tick struct {
	Arena      domain.ArenaID
	Generation uuid.UUID
	At         time.Time
}

func (e Tick) EventArena() domain.ArenaID { return e.Arena }

// BestQueryKind says which flow asked the persistence gateway.
type BestQueryKind int

const (
	// ArenaBestRefresh updates the session's cached track record.
	// Results are dropped when Generation no longer matches.
	ArenaBestRefresh BestQueryKind = iota
	// PlayerBestReply answers ?best (or arena entry) for ReplyTo.
	PlayerBestReply
	// TrackBestReply answers ?trackbest for ReplyTo.
	TrackBestReply
)

// BestTimeResult is the gateway's answer to a best-time query. A nil
// Record with nil Err is the "no prior record" case, which is distinct
// from the store being unreachable (Err set).
type BestTimeResult struct {
	Arena      domain.ArenaID
	Generation uuid.UUID
	Kind       BestQueryKind
	ReplyTo    domain.PlayerID
	Subject    domain.PlayerID
	Record     *domain.RaceRecord
	Err        error
}

func (e BestTimeResult) EventArena() domain.ArenaID { return e.Arena }
