// Package engine runs one session state machine per arena. Every
// external stimulus (host command, game event, timer expiry,
// persistence result) is a value on the arena's event channel,
// consumed by a single goroutine, so handlers never race and per-arena
// ordering is channel order. Handlers never block: persistence work
// goes through the gateway, waiting is a scheduled timer callback that
// re-enters through Dispatch.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	apperrors "github.com/hakaku/arenaevents/errors"
)

const (
	stagingTimer = "staging"
	tickTimer    = "tick"
)

// Deps are the collaborator capabilities the state machine itself
// consumes. Variants carry their own.
type Deps struct {
	Roster  contract.Roster
	Chat    contract.Messenger
	Timer   contract.Timer
	Actions contract.Actions
	Caps    contract.Capability
}

type Engine struct {
	log      *slog.Logger
	arena    domain.ArenaID
	deps     Deps
	variants map[string]Variant
	order    []string
	extras   []Anytime
	events   chan event.ArenaEvent

	// Owned exclusively by the Run goroutine.
	session *domain.Session
	live    Variant

	now func() time.Time
}

func New(log *slog.Logger, arena domain.ArenaID, deps Deps, bufferSize int, variants ...Variant) *Engine {
	e := &Engine{
		log:      log.With("arena", arena),
		arena:    arena,
		deps:     deps,
		variants: make(map[string]Variant, len(variants)),
		events:   make(chan event.ArenaEvent, bufferSize),
		now:      time.Now,
	}
	for _, v := range variants {
		e.variants[v.Name()] = v
		e.order = append(e.order, v.Name())
	}
	return e
}

func (e *Engine) Arena() domain.ArenaID { return e.arena }

// AddAnytime registers a handler for events no variant owns, e.g.
// arena utility commands. Handlers run after the variants' own
// anytime handling, in registration order.
func (e *Engine) AddAnytime(h Anytime) {
	e.extras = append(e.extras, h)
}

// Dispatch posts an event into the arena's ordered stream. It never
// blocks; a full channel drops the event with a warning.
func (e *Engine) Dispatch(evt event.ArenaEvent) {
	select {
	case e.events <- evt:
	default:
		e.log.Warn("Event channel full, dropping event", "event", fmt.Sprintf("%T", evt))
	}
}

// Run consumes the arena's events until the context is canceled.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-e.events:
			e.handle(evt)
		case <-ctx.Done():
			e.log.Debug("Context done, stopping arena engine")
			return nil
		}
	}
}

// HandleNow processes one event synchronously. Tests drive the machine
// with it; production traffic goes through Dispatch/Run.
func (e *Engine) HandleNow(evt event.ArenaEvent) {
	e.handle(evt)
}

// Session exposes the live session for inspection; nil while Idle.
func (e *Engine) Session() *domain.Session {
	return e.session
}

func (e *Engine) handle(evt event.ArenaEvent) {
	switch evt := evt.(type) {
	case event.StartCommand:
		e.handleStart(evt)
	case event.StopCommand:
		e.handleStop(evt)
	case event.RulesCommand:
		e.handleRules(evt)
	case event.StagingExpired:
		if e.session.Live() && e.session.Phase == domain.Staging && e.session.Generation == evt.Generation {
			e.activate()
		}
	case event.Tick:
		if e.activeFor(evt.Generation) {
			e.finishIfConcluded(e.live.HandleEvent(e.session, evt))
		}
	case event.ShipFreqChange:
		e.handleShipFreqChange(evt)
	case event.PlayerLeft:
		if e.session.Live() && e.session.Phase == domain.Active {
			e.checkRoster(evt.Player)
			if e.session != nil {
				e.finishIfConcluded(e.live.HandleEvent(e.session, evt))
			}
		}
	case event.PlayerEntered, event.Kill, event.Goal, event.RegionCross, event.FlagPickup, event.FlagLost:
		if e.session.Live() && e.session.Phase == domain.Active {
			e.finishIfConcluded(e.live.HandleEvent(e.session, evt))
		}
	default:
		e.handleAnytime(evt)
	}
}

// handleAnytime offers commands and persistence results to variants
// that answer them regardless of session state.
func (e *Engine) handleAnytime(evt event.ArenaEvent) {
	for _, name := range e.order {
		if a, ok := e.variants[name].(Anytime); ok && a.HandleAnytime(e.session, evt) {
			return
		}
	}
	for _, a := range e.extras {
		if a.HandleAnytime(e.session, evt) {
			return
		}
	}
}

func (e *Engine) handleStart(cmd event.StartCommand) {
	if !e.deps.Caps.Has(cmd.Issuer, contract.CapStaff) {
		e.relayHostRequest(cmd)
		return
	}
	if cmd.Variant == "" {
		e.sendUsage(cmd.Issuer)
		return
	}

	switch err := e.beginStaging(cmd); {
	case err == nil:
	case errors.Is(err, apperrors.ErrUnknownVariant):
		e.deps.Chat.SendPlayer(cmd.Issuer, fmt.Sprintf("Unknown event %q. Type ?start for the list of events.", cmd.Variant))
	case errors.Is(err, apperrors.ErrSessionRunning):
		e.deps.Chat.SendPlayer(cmd.Issuer, "There is already a game running. Please use ?stop to end the current game.")
	default:
		e.log.Debug("Start rejected", "variant", cmd.Variant, "error", err)
		e.deps.Chat.SendPlayer(cmd.Issuer, "Game aborted: Invalid syntax. Please type '?start' for more help.")
	}
}

// beginStaging validates the request and moves the arena into Staging.
func (e *Engine) beginStaging(cmd event.StartCommand) error {
	v, ok := e.variants[cmd.Variant]
	if !ok {
		return apperrors.ErrUnknownVariant
	}
	if e.session.Live() {
		return apperrors.ErrSessionRunning
	}

	rules, err := v.ParseRules(cmd.Params)
	if err != nil {
		return err
	}

	e.session = domain.NewSession(e.arena, v.Name(), rules, cmd.Issuer)
	e.live = v
	e.log.Info("Session staging", "variant", v.Name(), "generation", e.session.Generation)

	v.Stage(e.session)
	e.sweepLegalShips()

	generation := e.session.Generation
	e.deps.Timer.Schedule(contract.TimerKey{Arena: e.arena, Name: stagingTimer}, v.Countdown(), 0, func() {
		e.Dispatch(event.StagingExpired{Arena: e.arena, Generation: generation})
	})
	return nil
}

// relayHostRequest forwards a non-staff start/host request to staff
// instead of starting anything.
func (e *Engine) relayHostRequest(cmd event.StartCommand) {
	request := cmd.Params
	if cmd.Variant != "" {
		request = fmt.Sprintf("%s %s", cmd.Variant, cmd.Params)
	}
	if request == "" || request == " " {
		e.deps.Chat.SendPlayer(cmd.Issuer, "Invalid syntax. Please use ?host <arena/event> to request an event be hosted.")
		return
	}
	e.deps.Chat.SendStaff(fmt.Sprintf("(Host) {%s} %s: %s", e.arena, e.playerName(cmd.Issuer), request))
	e.deps.Chat.SendPlayer(cmd.Issuer, "Message has been sent to online staff")
}

func (e *Engine) sendUsage(to domain.PlayerID) {
	for _, name := range e.order {
		v := e.variants[name]
		e.deps.Chat.SendPlayer(to, "-------------------------------------------------------------------")
		e.deps.Chat.SendPlayer(to, fmt.Sprintf("| %-9s | %-50s |", v.Name(), v.Tagline()))
		e.deps.Chat.SendPlayer(to, "-------------------------------------------------------------------")
		for _, line := range v.Usage() {
			e.deps.Chat.SendPlayer(to, line)
		}
	}
}

func (e *Engine) handleStop(cmd event.StopCommand) {
	if err := e.endSession(); errors.Is(err, apperrors.ErrNoSession) {
		e.deps.Chat.SendPlayer(cmd.Issuer, "There does not appear to be a game going on here.")
	}
}

// endSession aborts the live session, ErrNoSession while Idle.
func (e *Engine) endSession() error {
	if !e.session.Live() {
		return apperrors.ErrNoSession
	}
	e.deps.Chat.SendArenaSound(e.arena, 26, e.live.AbortMessage())
	e.conclude()
	return nil
}

func (e *Engine) handleRules(cmd event.RulesCommand) {
	if e.session.Live() {
		e.deps.Chat.SendPlayer(cmd.Issuer, e.live.Tagline())
		return
	}
	for _, name := range e.order {
		e.deps.Chat.SendPlayer(cmd.Issuer, fmt.Sprintf("%s: %s", name, e.variants[name].Tagline()))
	}
}

func (e *Engine) activate() {
	s := e.session
	s.Phase = domain.Active
	s.StartedAt = e.now()
	e.log.Info("Session active", "variant", s.Variant, "generation", s.Generation)

	e.live.Activate(s)
	e.sweepLegalShips()

	if period := e.live.TickPeriod(); period > 0 {
		generation := s.Generation
		e.deps.Timer.Schedule(contract.TimerKey{Arena: e.arena, Name: tickTimer}, period, period, func() {
			e.Dispatch(event.Tick{Arena: e.arena, Generation: generation, At: time.Now()})
		})
	}
}

// conclude tears the session down: timers canceled, variant cleanup
// applied, state back to Idle. Safe to call from any live phase.
func (e *Engine) conclude() {
	e.deps.Timer.Cancel(contract.TimerKey{Arena: e.arena, Name: stagingTimer})
	e.deps.Timer.Cancel(contract.TimerKey{Arena: e.arena, Name: tickTimer})

	s := e.session
	s.Phase = domain.Concluded
	e.live.Conclude(s)
	e.log.Info("Session concluded", "variant", s.Variant, "generation", s.Generation)

	e.session = nil
	e.live = nil
}

func (e *Engine) finishIfConcluded(outcome Outcome) {
	if outcome.Concluded && e.session != nil {
		e.conclude()
	}
}

func (e *Engine) activeFor(generation uuid.UUID) bool {
	return e.session.Live() && e.session.Phase == domain.Active &&
		e.session.Generation == generation
}

func (e *Engine) handleShipFreqChange(evt event.ShipFreqChange) {
	if !e.session.Live() || e.session.Phase != domain.Active {
		return
	}
	if evt.NewShip == domain.ShipSpec {
		e.checkRoster(evt.Player)
		if e.session != nil {
			e.finishIfConcluded(e.live.HandleEvent(e.session, evt))
		}
		return
	}

	rules := e.session.Rules
	if rules.SpecialFreq != nil && evt.NewFreq == *rules.SpecialFreq {
		if verdict, target := rules.JudgeSpecial(evt.NewShip); verdict == domain.ShipReassign {
			e.deps.Actions.SetShip(evt.Player, target)
		}
	} else if verdict, target := rules.Judge(evt.NewShip); verdict == domain.ShipReassign {
		e.deps.Actions.SetShip(evt.Player, target)
	}

	e.finishIfConcluded(e.live.HandleEvent(e.session, evt))
}

// sweepLegalShips re-validates every non-spectating occupant against
// the locked rule set, including players on the distinguished role's
// frequency, which is judged against its own restriction.
func (e *Engine) sweepLegalShips() {
	s := e.session
	if s == nil {
		return
	}
	rules := s.Rules
	if !rules.Restricted() && rules.SpecialShip == nil {
		return
	}

	players, err := e.deps.Roster.Players(e.arena)
	if err != nil {
		e.log.Warn("Roster unavailable, skipping legal-ship sweep", "error", err)
		return
	}
	for _, p := range players {
		if !p.Playing() {
			continue
		}
		if rules.SpecialFreq != nil && p.Freq == *rules.SpecialFreq {
			if verdict, target := rules.JudgeSpecial(p.Ship); verdict == domain.ShipReassign {
				e.deps.Actions.SetShip(p.ID, target)
			}
			continue
		}
		if verdict, target := rules.Judge(p.Ship); verdict == domain.ShipReassign {
			e.deps.Actions.SetShip(p.ID, target)
		}
	}
}

// checkRoster concludes the session when the count of non-spectating
// participants, excluding the player who just left or specced, has
// dropped to the rule set's floor. A roster service error skips the
// check; it never concludes a session on its own.
func (e *Engine) checkRoster(exclude domain.PlayerID) {
	players, err := e.deps.Roster.Players(e.arena)
	if err != nil {
		e.log.Warn("Roster unavailable, skipping player check", "error", err)
		return
	}
	remaining := lo.Filter(players, func(p domain.Player, _ int) bool {
		return p.Playing() && p.ID != exclude
	})
	if len(remaining) <= e.session.Rules.MinPlayers {
		e.live.ShortRoster(e.session, remaining)
		e.conclude()
	}
}

func (e *Engine) playerName(id domain.PlayerID) string {
	players, err := e.deps.Roster.Players(e.arena)
	if err == nil {
		if p, ok := lo.Find(players, func(p domain.Player) bool { return p.ID == id }); ok {
			return p.Name
		}
	}
	return string(id)
}
