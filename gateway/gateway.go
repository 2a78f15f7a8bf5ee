// Package gateway serves race best-time persistence off the arena
// loops. Engine handlers enqueue requests and return immediately; the
// gateway worker answers by dispatching result events back into the
// owning arena's loop, tagged with the session generation the request
// was issued under. Whether a result is still relevant is the
// consumer's call; the gateway only carries the tag.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	apperrors "github.com/hakaku/arenaevents/errors"
)

// Dispatcher posts an event into an arena's ordered event stream.
type Dispatcher func(arena domain.ArenaID, evt event.ArenaEvent)

type request interface{}

type storeRequest struct {
	rec domain.RaceRecord
}

type arenaBestRequest struct {
	arena      domain.ArenaID
	generation uuid.UUID
	kind       event.BestQueryKind
	replyTo    domain.PlayerID
}

type playerBestRequest struct {
	arena   domain.ArenaID
	subject domain.PlayerID
	replyTo domain.PlayerID
}

// Gateway is a supervised worker. All store access happens on its
// goroutine; callers never block on persistence.
type Gateway struct {
	log      *slog.Logger
	stats    contract.RaceStats
	chat     contract.Messenger
	dispatch Dispatcher
	requests chan request
}

func New(log *slog.Logger, stats contract.RaceStats, chat contract.Messenger, dispatch Dispatcher, bufferSize int) *Gateway {
	return &Gateway{
		log:      log,
		stats:    stats,
		chat:     chat,
		dispatch: dispatch,
		requests: make(chan request, bufferSize),
	}
}

// RecordTime is fire-and-forget: persist one finished time. A full
// queue drops the write; gameplay never waits on the store.
func (g *Gateway) RecordTime(rec domain.RaceRecord) {
	g.enqueue(storeRequest{rec: rec})
}

// QueryArenaBest asks for the arena's best-known time. The answer
// comes back as an event.BestTimeResult carrying generation, so a
// session that has since ended can recognize and drop it.
func (g *Gateway) QueryArenaBest(arena domain.ArenaID, generation uuid.UUID, kind event.BestQueryKind, replyTo domain.PlayerID) {
	g.enqueue(arenaBestRequest{arena: arena, generation: generation, kind: kind, replyTo: replyTo})
}

// QueryPlayerBest asks for subject's personal best, answered to replyTo.
func (g *Gateway) QueryPlayerBest(arena domain.ArenaID, subject, replyTo domain.PlayerID) {
	g.enqueue(playerBestRequest{arena: arena, subject: subject, replyTo: replyTo})
}

func (g *Gateway) enqueue(req request) {
	select {
	case g.requests <- req:
	default:
		g.log.Warn("Gateway queue full, dropping request")
	}
}

// Run serves requests until the context is canceled.
func (g *Gateway) Run(ctx context.Context) error {
	for {
		select {
		case req := <-g.requests:
			g.serve(req)
		case <-ctx.Done():
			g.log.Debug("Context done, stopping gateway")
			return nil
		}
	}
}

func (g *Gateway) serve(req request) {
	switch req := req.(type) {
	case storeRequest:
		if err := g.stats.Store(req.rec); err != nil {
			g.unreachable("write", err)
		}
	case arenaBestRequest:
		rec, err := g.stats.ArenaBest(req.arena)
		if errors.Is(err, apperrors.ErrNoRecord) {
			// Nobody raced there yet; not a store failure.
			rec, err = nil, nil
		} else if err != nil {
			g.unreachable("read", err)
		}
		g.dispatch(req.arena, event.BestTimeResult{
			Arena:      req.arena,
			Generation: req.generation,
			Kind:       req.kind,
			ReplyTo:    req.replyTo,
			Record:     rec,
			Err:        err,
		})
	case playerBestRequest:
		rec, err := g.stats.PlayerBest(req.arena, req.subject)
		if errors.Is(err, apperrors.ErrNoRecord) {
			rec, err = nil, nil
		} else if err != nil {
			g.unreachable("read", err)
		}
		g.dispatch(req.arena, event.BestTimeResult{
			Arena:   req.arena,
			Kind:    event.PlayerBestReply,
			ReplyTo: req.replyTo,
			Subject: req.subject,
			Record:  rec,
			Err:     err,
		})
	}
}

// unreachable emits the one-line operator notice. The store being down
// never blocks gameplay; the affected request is simply dropped.
func (g *Gateway) unreachable(op string, err error) {
	g.log.Error("Race stats store unreachable", "op", op, "error", err)
	g.chat.SendStaff(fmt.Sprintf("Race stats %s failed: %v", op, err))
}
