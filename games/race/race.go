// Package race implements the point-to-point variant: doors pen the
// field in during staging, then everyone runs for the "finish" region.
// Each eligible player finishes at most once, placements count up from
// 1, and times go to the persistence gateway for record keeping. The
// session ends when the last unfinished participant crosses the line.
package race

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	"github.com/hakaku/arenaevents/engine"
)

const (
	finishRegion = "finish"
	rocketRegion = "rocket"
)

// Recorder is the persistence gateway surface the race consumes.
// Everything is fire-and-forget; answers come back through the arena
// event stream as event.BestTimeResult.
type Recorder interface {
	RecordTime(rec domain.RaceRecord)
	QueryArenaBest(arena domain.ArenaID, generation uuid.UUID, kind event.BestQueryKind, replyTo domain.PlayerID)
	QueryPlayerBest(arena domain.ArenaID, subject, replyTo domain.PlayerID)
}

type Game struct {
	log        *slog.Logger
	chat       contract.Messenger
	roster     contract.Roster
	actions    contract.Actions
	regions    contract.Regions
	settings   contract.Settings
	recorder   Recorder
	countdown  time.Duration
	tickPeriod time.Duration
	now        func() time.Time

	// Session-scoped: which players already crossed, and how many.
	won      map[domain.PlayerID]bool
	finished int

	// Arena-lifetime caches of persisted state, refreshed by gateway
	// results. trackBest mirrors the store's arena best; playerBest
	// holds each player's best-known time in millis.
	trackBest  *domain.RaceRecord
	playerBest map[domain.PlayerID]int64
}

func New(log *slog.Logger, chat contract.Messenger, roster contract.Roster,
	actions contract.Actions, regions contract.Regions, settings contract.Settings,
	recorder Recorder, countdown, tickPeriod time.Duration) *Game {
	return &Game{
		log:        log,
		chat:       chat,
		roster:     roster,
		actions:    actions,
		regions:    regions,
		settings:   settings,
		recorder:   recorder,
		countdown:  countdown,
		tickPeriod: tickPeriod,
		now:        time.Now,
		won:        make(map[domain.PlayerID]bool),
		playerBest: make(map[domain.PlayerID]int64),
	}
}

func (g *Game) Name() string    { return "race" }
func (g *Game) Tagline() string { return "First player to the finish line wins." }

func (g *Game) Usage() []string {
	return []string{
		"Parameters:  ships: -s(#)",
		"      mystery mode: -m",
		"Example: ?start race -s(1,4,5) -m",
	}
}

func (g *Game) Countdown() time.Duration  { return g.countdown }
func (g *Game) TickPeriod() time.Duration { return g.tickPeriod }
func (g *Game) AbortMessage() string      { return "Current race aborted!" }

func (g *Game) ParseRules(params string) (domain.RuleSet, error) {
	rules := domain.RuleSet{
		Mystery:    domain.Flag(params, 'm'),
		MinPlayers: 0,
	}

	if value, present, err := domain.Option(params, 's'); err != nil {
		return domain.RuleSet{}, err
	} else if present {
		allowed, defaultShip, err := domain.ParseShipList(value)
		if err != nil {
			return domain.RuleSet{}, err
		}
		rules.Allowed = allowed
		rules.DefaultShip = defaultShip
	}

	return rules, nil
}

func (g *Game) Stage(s *domain.Session) {
	// Prime the track-record cache; the result is generation-tagged so
	// it cannot leak into a later session.
	g.recorder.QueryArenaBest(s.Arena, s.Generation, event.ArenaBestRefresh, "")

	g.actions.SetDoors(s.Arena, contract.DoorsClosed)

	players, err := g.roster.Players(s.Arena)
	if err == nil {
		for _, p := range players {
			g.actions.GivePrize(p.ID, contract.PrizeWarp, 1)
			g.actions.ShipReset(p.ID)
		}
	}

	g.chat.SendArenaSound(s.Arena, 2, fmt.Sprintf("%s is starting in %d seconds! Enter if you want to play!",
		g.trackName(s.Arena), int(g.countdown.Seconds())))
	if s.Rules.Restricted() {
		g.chat.SendArena(s.Arena, fmt.Sprintf("Allowed ships: %s", s.Rules.Allowed))
	}
	if s.Rules.Mystery {
		g.chat.SendArena(s.Arena, "Mystery mode activated! Everyone gets cloak and stealth!")
	}
}

func (g *Game) Activate(s *domain.Session) {
	g.won = make(map[domain.PlayerID]bool)
	g.finished = 0

	g.actions.SetDoors(s.Arena, contract.DoorsOpen)

	players, err := g.roster.Players(s.Arena)
	if err == nil {
		for _, p := range players {
			if !p.Playing() {
				continue
			}
			g.actions.ShipReset(p.ID)
			g.actions.GivePrize(p.ID, contract.PrizeRocket, 1)
			if s.Rules.Mystery {
				g.actions.GivePrize(p.ID, contract.PrizeCloak, 1)
				g.actions.GivePrize(p.ID, contract.PrizeStealth, 1)
			}
		}
	}

	g.chat.SendArenaSound(s.Arena, 104, "Race started.")
}

func (g *Game) HandleEvent(s *domain.Session, evt event.ArenaEvent) engine.Outcome {
	switch evt := evt.(type) {
	case event.RegionCross:
		return g.handleRegionCross(s, evt)
	case event.Tick:
		g.sweepRocketRegion(s)
	case event.PlayerEntered:
		g.recorder.QueryPlayerBest(s.Arena, evt.Player, evt.Player)
		g.recorder.QueryArenaBest(s.Arena, s.Generation, event.ArenaBestRefresh, "")
	}
	return engine.Outcome{}
}

// handleRegionCross scores a finish-line crossing: once per player,
// strictly increasing placements, time persisted via the gateway.
func (g *Game) handleRegionCross(s *domain.Session, evt event.RegionCross) engine.Outcome {
	if !evt.Entering || evt.Region != finishRegion {
		return engine.Outcome{}
	}
	p, ok := g.find(s.Arena, evt.Player)
	if !ok || !p.Playing() || g.won[evt.Player] {
		return engine.Outcome{}
	}

	g.won[evt.Player] = true
	g.finished++

	elapsed := s.Elapsed(g.now())
	millis := elapsed.Milliseconds()
	g.chat.SendArenaSound(s.Arena, 103, fmt.Sprintf(
		"%s reached the finish line %d%s with a time of %.3f seconds!",
		p.Name, g.finished, placementSuffix(g.finished), elapsed.Seconds()))

	g.setScore(s, p, millis)

	if g.remaining(s.Arena) == 0 {
		g.chat.SendArena(s.Arena, "Race over!")
		return engine.Outcome{Concluded: true}
	}
	return engine.Outcome{}
}

// setScore persists the time and runs the record announcements off the
// local caches. The fresh arena-best query keeps the cache honest for
// the next comparison; its result is generation-checked on arrival.
func (g *Game) setScore(s *domain.Session, p domain.Player, millis int64) {
	g.recorder.QueryArenaBest(s.Arena, s.Generation, event.ArenaBestRefresh, "")

	rec := domain.RaceRecord{
		Arena:  s.Arena,
		Player: p.ID,
		Name:   p.Name,
		Ship:   p.Ship,
		Millis: millis,
		SetAt:  g.now(),
	}
	g.recorder.RecordTime(rec)

	if millis <= 0 {
		return
	}
	best, known := g.playerBest[p.ID]
	if known && millis >= best {
		return
	}
	g.playerBest[p.ID] = millis

	if g.trackBest == nil {
		g.chat.SendArenaSound(s.Arena, 7, fmt.Sprintf(
			"%s sets the bar for this track with %.3f seconds on the clock!", p.Name, rec.Seconds()))
		g.trackBest = &rec
		return
	}
	if millis < g.trackBest.Millis {
		diff := float64(g.trackBest.Millis-millis) / 1000
		g.chat.SendArenaSound(s.Arena, 7, fmt.Sprintf(
			"%s broke the track record by %.3f seconds! Previous record was %.3f seconds (ship %d).",
			p.Name, diff, g.trackBest.Seconds(), g.trackBest.Ship.Number()))
		g.trackBest = &rec
	}
}

// sweepRocketRegion prizes a rocket to anyone inside a "rocket" region.
func (g *Game) sweepRocketRegion(s *domain.Session) {
	if !g.regions.Exists(s.Arena, rocketRegion) {
		return
	}
	players, err := g.roster.Players(s.Arena)
	if err != nil {
		return
	}
	for _, p := range players {
		if p.Playing() && g.regions.Contains(s.Arena, rocketRegion, p.X, p.Y) {
			g.actions.GivePrize(p.ID, contract.PrizeRocket, 1)
		}
	}
}

func (g *Game) ShortRoster(s *domain.Session, remaining []domain.Player) {
	g.chat.SendArenaSound(s.Arena, 1, "Game stopped. There were not enough players.")
}

func (g *Game) Conclude(s *domain.Session) {
	g.actions.SetDoors(s.Arena, contract.DoorsClosed)
	g.won = make(map[domain.PlayerID]bool)
	g.finished = 0
}

// HandleAnytime answers the race command surface and gateway results
// whether or not a race is live.
func (g *Game) HandleAnytime(s *domain.Session, evt event.ArenaEvent) bool {
	switch evt := evt.(type) {
	case event.TimeCommand:
		g.handleTime(s, evt)
		return true
	case event.BestCommand:
		subject := evt.Subject
		if subject == "" {
			subject = evt.Issuer
		}
		g.recorder.QueryPlayerBest(evt.Arena, subject, evt.Issuer)
		return true
	case event.TrackBestCommand:
		g.recorder.QueryArenaBest(evt.Arena, uuid.Nil, event.TrackBestReply, evt.Issuer)
		return true
	case event.BestTimeResult:
		g.handleBestResult(s, evt)
		return true
	}
	return false
}

func (g *Game) handleTime(s *domain.Session, evt event.TimeCommand) {
	if s != nil && s.Variant == g.Name() && s.Phase == domain.Active {
		g.chat.SendPlayer(evt.Issuer, fmt.Sprintf("Time passed: %.01f seconds", s.Elapsed(g.now()).Seconds()))
		return
	}
	g.chat.SendPlayer(evt.Issuer, "There is no race currently started.")
}

func (g *Game) handleBestResult(s *domain.Session, evt event.BestTimeResult) {
	if evt.Err != nil {
		// Already surfaced to operators by the gateway.
		return
	}
	switch evt.Kind {
	case event.ArenaBestRefresh:
		// A refresh issued for an earlier session must not touch the
		// state a later session is playing against.
		if s == nil || s.Generation != evt.Generation {
			g.log.Debug("Dropping stale arena-best result", "generation", evt.Generation)
			return
		}
		if evt.Record != nil {
			g.trackBest = evt.Record
		}
	case event.PlayerBestReply:
		if evt.Record == nil {
			g.chat.SendPlayer(evt.ReplyTo, "You've never raced in here.")
			return
		}
		g.chat.SendPlayer(evt.ReplyTo, fmt.Sprintf("Your best record: %.3f seconds using ship %d on %s",
			evt.Record.Seconds(), evt.Record.Ship.Number(), evt.Record.SetAt.Format("2006-01-02")))
		g.playerBest[evt.Subject] = evt.Record.Millis
	case event.TrackBestReply:
		if evt.Record == nil {
			g.chat.SendPlayer(evt.ReplyTo, "No record found.")
			return
		}
		g.chat.SendPlayer(evt.ReplyTo, fmt.Sprintf("Top Record: %.3f seconds, set by %s using ship %d on %s",
			evt.Record.Seconds(), evt.Record.Name, evt.Record.Ship.Number(), evt.Record.SetAt.Format("2006-01-02")))
		g.trackBest = evt.Record
	}
}

// TrackBest exposes the cached arena record (diagnostics and tests).
func (g *Game) TrackBest() *domain.RaceRecord {
	return g.trackBest
}

// Finished exposes the finish count (diagnostics and tests).
func (g *Game) Finished() int {
	return g.finished
}

// remaining counts non-spectating players who have not finished.
func (g *Game) remaining(arena domain.ArenaID) int {
	players, err := g.roster.Players(arena)
	if err != nil {
		return -1
	}
	count := 0
	for _, p := range players {
		if p.Playing() && !g.won[p.ID] {
			count++
		}
	}
	return count
}

func (g *Game) find(arena domain.ArenaID, id domain.PlayerID) (domain.Player, bool) {
	players, err := g.roster.Players(arena)
	if err != nil {
		return domain.Player{}, false
	}
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Player{}, false
}

// trackName prefers the host-configured long name over the arena key.
func (g *Game) trackName(arena domain.ArenaID) string {
	if name, ok := g.settings.GetStr(arena, "Race", "LongName"); ok && len(name) >= 2 {
		return name
	}
	return string(arena)
}

func placementSuffix(placement int) string {
	switch placement {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
