package engine

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	apperrors "github.com/hakaku/arenaevents/errors"
	"github.com/hakaku/arenaevents/mocks"
)

const testArena = domain.ArenaID("testarena")

// stubVariant records lifecycle calls and plays back configured
// outcomes so the state machine can be driven without real game logic.
type stubVariant struct {
	name      string
	rules     domain.RuleSet
	parseErr  error
	countdown time.Duration
	tick      time.Duration

	staged    int
	activated int
	concluded int
	shortened int
	events    []event.ArenaEvent
	outcome   Outcome
}

func (v *stubVariant) Name() string               { return v.name }
func (v *stubVariant) Tagline() string            { return "stub game" }
func (v *stubVariant) Usage() []string            { return []string{"Example: ?start " + v.name} }
func (v *stubVariant) Countdown() time.Duration   { return v.countdown }
func (v *stubVariant) TickPeriod() time.Duration  { return v.tick }
func (v *stubVariant) AbortMessage() string       { return "Stub aborted!" }
func (v *stubVariant) Stage(s *domain.Session)    { v.staged++ }
func (v *stubVariant) Activate(s *domain.Session) { v.activated++ }
func (v *stubVariant) Conclude(s *domain.Session) { v.concluded++ }

func (v *stubVariant) ParseRules(params string) (domain.RuleSet, error) {
	if v.parseErr != nil {
		return domain.RuleSet{}, v.parseErr
	}
	return v.rules, nil
}

func (v *stubVariant) HandleEvent(s *domain.Session, evt event.ArenaEvent) Outcome {
	v.events = append(v.events, evt)
	return v.outcome
}

func (v *stubVariant) ShortRoster(s *domain.Session, remaining []domain.Player) {
	v.shortened++
}

type fixture struct {
	ctrl    *gomock.Controller
	roster  *mocks.MockRoster
	chat    *mocks.MockMessenger
	timer   *mocks.MockTimer
	actions *mocks.MockActions
	caps    *mocks.MockCapability
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:    ctrl,
		roster:  mocks.NewMockRoster(ctrl),
		chat:    mocks.NewMockMessenger(ctrl),
		timer:   mocks.NewMockTimer(ctrl),
		actions: mocks.NewMockActions(ctrl),
		caps:    mocks.NewMockCapability(ctrl),
	}
	// Notification text is not under test here; the variants own it.
	f.chat.EXPECT().SendPlayer(gomock.Any(), gomock.Any()).AnyTimes()
	f.chat.EXPECT().SendPlayerSound(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.chat.EXPECT().SendArena(gomock.Any(), gomock.Any()).AnyTimes()
	f.chat.EXPECT().SendArenaSound(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) deps() Deps {
	return Deps{Roster: f.roster, Chat: f.chat, Timer: f.timer, Actions: f.actions, Caps: f.caps}
}

func (f *fixture) staffIssuer() {
	f.caps.EXPECT().Has(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
}

func (f *fixture) anyTimers() {
	f.timer.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.timer.EXPECT().Cancel(gomock.Any()).AnyTimes()
}

func (f *fixture) playersAre(players ...domain.Player) {
	f.roster.EXPECT().Players(testArena).Return(players, nil).AnyTimes()
}

func player(id string, ship domain.ShipID, freq domain.Freq) domain.Player {
	return domain.Player{ID: domain.PlayerID(id), Name: id, Arena: testArena, Ship: ship, Freq: freq}
}

func start(e *Engine, variant, params string) {
	e.HandleNow(event.StartCommand{Arena: testArena, Issuer: "host", Variant: variant, Params: params})
}

func TestEngine_NonStaffStartIsRelayed(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.caps.EXPECT().Has(domain.PlayerID("visitor"), gomock.Any()).Return(false)
	f.playersAre(player("visitor", domain.Warbird, 0))
	f.chat.EXPECT().SendStaff("(Host) {testarena} visitor: stub -k(5)")

	v := &stubVariant{name: "stub"}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	e.HandleNow(event.StartCommand{Arena: testArena, Issuer: "visitor", Variant: "stub", Params: "-k(5)"})

	req.Nil(e.Session())
	req.Zero(v.staged)
}

func TestEngine_UnknownVariantRejected(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()

	e := New(slog.Default(), testArena, f.deps(), 16, &stubVariant{name: "stub"})

	start(e, "nosuch", "")

	req.Nil(e.Session())
}

func TestEngine_StartStagesThenActivates(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()
	f.playersAre(player("a", domain.Warbird, 0))

	v := &stubVariant{name: "stub", countdown: 20 * time.Second}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "")
	req.NotNil(e.Session())
	req.Equal(domain.Staging, e.Session().Phase)
	req.Equal(1, v.staged)

	e.HandleNow(event.StagingExpired{Arena: testArena, Generation: e.Session().Generation})
	req.Equal(domain.Active, e.Session().Phase)
	req.Equal(1, v.activated)
}

func TestEngine_StaleStagingExpiryIgnored(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()
	f.playersAre(player("a", domain.Warbird, 0))

	v := &stubVariant{name: "stub"}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "")

	e.HandleNow(event.StagingExpired{Arena: testArena, Generation: uuid.New()})

	req.Equal(domain.Staging, e.Session().Phase)
	req.Zero(v.activated)
}

func TestEngine_SecondStartRejectedWhileLive(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()
	f.playersAre(player("a", domain.Warbird, 0))

	v := &stubVariant{name: "stub"}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "")
	first := e.Session().Generation

	start(e, "stub", "")

	req.Equal(first, e.Session().Generation)
	req.Equal(1, v.staged)
}

func TestEngine_InvalidRulesAbortStart(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()

	v := &stubVariant{name: "stub", parseErr: apperrors.ErrOptionMissing}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "-z")

	req.Nil(e.Session())
}

func TestEngine_StopConcludesLiveSession(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()
	f.playersAre(player("a", domain.Warbird, 0))

	v := &stubVariant{name: "stub"}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "")
	e.HandleNow(event.StopCommand{Arena: testArena, Issuer: "host"})

	req.Nil(e.Session())
	req.Equal(1, v.concluded)
}

func TestEngine_StopWhileIdleDoesNothing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	v := &stubVariant{name: "stub"}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	e.HandleNow(event.StopCommand{Arena: testArena, Issuer: "host"})

	req.Nil(e.Session())
	req.Zero(v.concluded)
}

func TestEngine_GameEventsGatedToActivePhase(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()
	f.playersAre(player("a", domain.Warbird, 0), player("b", domain.Warbird, 0))

	v := &stubVariant{name: "stub"}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	kill := event.Kill{Arena: testArena, Killer: "a", Killed: "b"}

	e.HandleNow(kill)
	req.Empty(v.events)

	start(e, "stub", "")
	e.HandleNow(kill)
	req.Empty(v.events)

	e.HandleNow(event.StagingExpired{Arena: testArena, Generation: e.Session().Generation})
	e.HandleNow(kill)
	req.Len(v.events, 1)
}

func TestEngine_ConcludedOutcomeTearsDown(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()
	f.playersAre(player("a", domain.Warbird, 0), player("b", domain.Warbird, 0))

	v := &stubVariant{name: "stub", outcome: Outcome{Concluded: true}}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "")
	e.HandleNow(event.StagingExpired{Arena: testArena, Generation: e.Session().Generation})
	e.HandleNow(event.Kill{Arena: testArena, Killer: "a", Killed: "b"})

	req.Nil(e.Session())
	req.Equal(1, v.concluded)
}

func TestEngine_RosterFloorConcludes(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()

	// Two players; once one leaves the remaining count hits the floor.
	f.roster.EXPECT().Players(testArena).
		Return([]domain.Player{
			player("a", domain.Warbird, 0),
			player("b", domain.Warbird, 0),
		}, nil).AnyTimes()

	v := &stubVariant{name: "stub", rules: domain.RuleSet{MinPlayers: 1}}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "")
	e.HandleNow(event.StagingExpired{Arena: testArena, Generation: e.Session().Generation})

	e.HandleNow(event.PlayerLeft{Arena: testArena, Player: "b"})

	req.Nil(e.Session())
	req.Equal(1, v.shortened)
	req.Equal(1, v.concluded)
}

func TestEngine_IllegalShipChangeReassigned(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()
	f.playersAre(player("a", domain.Warbird, 0), player("b", domain.Warbird, 0))

	var allowed domain.ShipSet
	allowed.Add(domain.Warbird)
	v := &stubVariant{name: "stub", rules: domain.RuleSet{Allowed: allowed, DefaultShip: domain.Warbird}}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "")
	e.HandleNow(event.StagingExpired{Arena: testArena, Generation: e.Session().Generation})

	f.actions.EXPECT().SetShip(domain.PlayerID("a"), domain.Warbird)
	e.HandleNow(event.ShipFreqChange{
		Arena: testArena, Player: "a",
		NewShip: domain.Javelin, OldShip: domain.Warbird,
	})

	req.Len(v.events, 1)
}

func TestEngine_SpecialFreqJudgedAgainstRoleShip(t *testing.T) {
	f := newFixture(t)
	f.staffIssuer()
	f.anyTimers()
	f.playersAre(player("a", domain.Warbird, 0), player("b", domain.Warbird, 0))

	role := domain.Shark
	roleFreq := domain.Freq(100)
	v := &stubVariant{name: "stub", rules: domain.RuleSet{SpecialShip: &role, SpecialFreq: &roleFreq}}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	start(e, "stub", "")
	e.HandleNow(event.StagingExpired{Arena: testArena, Generation: e.Session().Generation})

	f.actions.EXPECT().SetShip(domain.PlayerID("a"), domain.Shark)
	e.HandleNow(event.ShipFreqChange{
		Arena: testArena, Player: "a",
		NewShip: domain.Javelin, OldShip: domain.Warbird,
		NewFreq: roleFreq,
	})
}

type stubAnytime struct {
	stubVariant
	seen []event.ArenaEvent
}

func (v *stubAnytime) HandleAnytime(s *domain.Session, evt event.ArenaEvent) bool {
	v.seen = append(v.seen, evt)
	return true
}

func TestEngine_AnytimeEventsReachVariantWithoutSession(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	v := &stubAnytime{stubVariant: stubVariant{name: "stub"}}
	e := New(slog.Default(), testArena, f.deps(), 16, v)

	e.HandleNow(event.TimeCommand{Arena: testArena, Issuer: "a"})

	req.Len(v.seen, 1)
}
