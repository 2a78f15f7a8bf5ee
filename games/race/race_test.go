package race

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	"github.com/hakaku/arenaevents/mocks"
)

const testArena = domain.ArenaID("pirates")

// fakeRecorder records gateway traffic so assertions can inspect what
// would have been persisted or queried.
type fakeRecorder struct {
	stored     []domain.RaceRecord
	arenaBest  int
	playerBest []domain.PlayerID
}

func (r *fakeRecorder) RecordTime(rec domain.RaceRecord) {
	r.stored = append(r.stored, rec)
}

func (r *fakeRecorder) QueryArenaBest(arena domain.ArenaID, generation uuid.UUID, kind event.BestQueryKind, replyTo domain.PlayerID) {
	r.arenaBest++
}

func (r *fakeRecorder) QueryPlayerBest(arena domain.ArenaID, subject, replyTo domain.PlayerID) {
	r.playerBest = append(r.playerBest, subject)
}

type fixture struct {
	ctrl     *gomock.Controller
	chat     *mocks.MockMessenger
	roster   *mocks.MockRoster
	actions  *mocks.MockActions
	regions  *mocks.MockRegions
	settings *mocks.MockSettings
	recorder *fakeRecorder
	game     *Game
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		chat:     mocks.NewMockMessenger(ctrl),
		roster:   mocks.NewMockRoster(ctrl),
		actions:  mocks.NewMockActions(ctrl),
		regions:  mocks.NewMockRegions(ctrl),
		settings: mocks.NewMockSettings(ctrl),
		recorder: &fakeRecorder{},
	}
	f.chat.EXPECT().SendArena(gomock.Any(), gomock.Any()).AnyTimes()
	f.chat.EXPECT().SendArenaSound(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.game = New(slog.Default(), f.chat, f.roster, f.actions, f.regions, f.settings,
		f.recorder, 20*time.Second, 2*time.Second)
	return f
}

func (f *fixture) playersAre(players ...domain.Player) {
	f.roster.EXPECT().Players(testArena).Return(players, nil).AnyTimes()
}

func player(id string, ship domain.ShipID) domain.Player {
	return domain.Player{ID: domain.PlayerID(id), Name: id, Arena: testArena, Ship: ship}
}

func session(t *testing.T, g *Game, params string) *domain.Session {
	t.Helper()
	rules, err := g.ParseRules(params)
	require.NoError(t, err)
	s := domain.NewSession(testArena, g.Name(), rules, "host")
	s.Phase = domain.Active
	s.StartedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return s.StartedAt.Add(42500 * time.Millisecond) }
	return s
}

func cross(id string) event.RegionCross {
	return event.RegionCross{Arena: testArena, Player: domain.PlayerID(id), Region: finishRegion, Entering: true}
}

func TestParseRules(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	rules, err := f.game.ParseRules("-s(1,4,5) -m")

	req.NoError(err)
	req.True(rules.Mystery)
	req.True(rules.Allowed.Contains(domain.Warbird))
	req.True(rules.Allowed.Contains(domain.Leviathan))
	req.True(rules.Allowed.Contains(domain.Terrier))
	req.Equal(domain.Warbird, rules.DefaultShip)
	req.Zero(rules.Threshold)
	req.Zero(rules.MinPlayers)
}

func TestFinish_PlacementsCountUp(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.playersAre(player("a", domain.Warbird), player("b", domain.Javelin))

	s := session(t, f.game, "")

	outcome := f.game.HandleEvent(s, cross("a"))
	req.False(outcome.Concluded)
	req.Equal(1, f.game.Finished())
	req.Len(f.recorder.stored, 1)
	req.Equal(int64(42500), f.recorder.stored[0].Millis)

	outcome = f.game.HandleEvent(s, cross("b"))
	req.True(outcome.Concluded)
	req.Equal(2, f.game.Finished())
}

func TestFinish_DuplicateCrossingIgnored(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.playersAre(player("a", domain.Warbird), player("b", domain.Javelin))

	s := session(t, f.game, "")

	f.game.HandleEvent(s, cross("a"))
	f.game.HandleEvent(s, cross("a"))

	req.Equal(1, f.game.Finished())
	req.Len(f.recorder.stored, 1)
}

func TestFinish_SpectatorIgnored(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.playersAre(player("watcher", domain.ShipSpec), player("b", domain.Javelin))

	s := session(t, f.game, "")

	outcome := f.game.HandleEvent(s, cross("watcher"))

	req.False(outcome.Concluded)
	req.Zero(f.game.Finished())
	req.Empty(f.recorder.stored)
}

func TestFinish_LeavingRegionIgnored(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.playersAre(player("a", domain.Warbird))

	s := session(t, f.game, "")

	evt := cross("a")
	evt.Entering = false
	f.game.HandleEvent(s, evt)

	req.Zero(f.game.Finished())
}

func TestFinish_FirstRecordSetsTheBar(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.playersAre(player("a", domain.Warbird), player("b", domain.Javelin))

	s := session(t, f.game, "")

	f.game.HandleEvent(s, cross("a"))

	req.NotNil(f.game.TrackBest())
	req.Equal(domain.PlayerID("a"), f.game.TrackBest().Player)
}

func TestFinish_SlowerTimeKeepsRecord(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.playersAre(player("a", domain.Warbird), player("b", domain.Javelin))

	s := session(t, f.game, "")

	prior := &domain.RaceRecord{Arena: testArena, Player: "b", Name: "b", Millis: 30000}
	f.game.HandleAnytime(s, event.BestTimeResult{
		Arena: testArena, Generation: s.Generation,
		Kind: event.ArenaBestRefresh, Record: prior,
	})

	f.game.HandleEvent(s, cross("a"))

	req.Equal(domain.PlayerID("b"), f.game.TrackBest().Player)
}

func TestFinish_FasterTimeBreaksRecord(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.playersAre(player("a", domain.Warbird), player("b", domain.Javelin))

	s := session(t, f.game, "")

	prior := &domain.RaceRecord{Arena: testArena, Player: "b", Name: "b", Millis: 60000}
	f.game.HandleAnytime(s, event.BestTimeResult{
		Arena: testArena, Generation: s.Generation,
		Kind: event.ArenaBestRefresh, Record: prior,
	})

	f.game.HandleEvent(s, cross("a"))

	req.Equal(domain.PlayerID("a"), f.game.TrackBest().Player)
	req.Equal(int64(42500), f.game.TrackBest().Millis)
}

func TestBestResult_StaleRefreshDropped(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	s := session(t, f.game, "")

	handled := f.game.HandleAnytime(s, event.BestTimeResult{
		Arena: testArena, Generation: uuid.New(),
		Kind:   event.ArenaBestRefresh,
		Record: &domain.RaceRecord{Arena: testArena, Player: "ghost", Millis: 1},
	})

	req.True(handled)
	req.Nil(f.game.TrackBest())
}

func TestBestResult_RefreshWithoutSessionDropped(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	handled := f.game.HandleAnytime(nil, event.BestTimeResult{
		Arena: testArena, Generation: uuid.New(),
		Kind:   event.ArenaBestRefresh,
		Record: &domain.RaceRecord{Arena: testArena, Player: "ghost", Millis: 1},
	})

	req.True(handled)
	req.Nil(f.game.TrackBest())
}

func TestBestResult_PlayerWithoutHistory(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.chat.EXPECT().SendPlayer(domain.PlayerID("a"), "You've never raced in here.")

	handled := f.game.HandleAnytime(nil, event.BestTimeResult{
		Arena: testArena, Kind: event.PlayerBestReply, ReplyTo: "a",
	})

	req.True(handled)
}

func TestTimeCommand(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	s := session(t, f.game, "")

	f.chat.EXPECT().SendPlayer(domain.PlayerID("a"), "Time passed: 42.5 seconds")
	handled := f.game.HandleAnytime(s, event.TimeCommand{Arena: testArena, Issuer: "a"})
	req.True(handled)
}

func TestTimeCommand_NoRaceRunning(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.chat.EXPECT().SendPlayer(domain.PlayerID("a"), "There is no race currently started.")
	handled := f.game.HandleAnytime(nil, event.TimeCommand{Arena: testArena, Issuer: "a"})
	req.True(handled)
}

func TestBestCommand_DefaultsToIssuer(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.game.HandleAnytime(nil, event.BestCommand{Arena: testArena, Issuer: "a"})
	f.game.HandleAnytime(nil, event.BestCommand{Arena: testArena, Issuer: "a", Subject: "b"})

	req.Equal([]domain.PlayerID{"a", "b"}, f.recorder.playerBest)
}

func TestTick_RocketRegionSweep(t *testing.T) {
	f := newFixture(t)
	inside := player("inside", domain.Warbird)
	inside.X, inside.Y = 300, 300
	outside := player("outside", domain.Javelin)
	outside.X, outside.Y = 10, 10
	f.playersAre(inside, outside)

	s := session(t, f.game, "")

	f.regions.EXPECT().Exists(testArena, rocketRegion).Return(true)
	f.regions.EXPECT().Contains(testArena, rocketRegion, 300, 300).Return(true)
	f.regions.EXPECT().Contains(testArena, rocketRegion, 10, 10).Return(false)
	f.actions.EXPECT().GivePrize(domain.PlayerID("inside"), contract.PrizeRocket, 1)

	f.game.HandleEvent(s, event.Tick{Arena: testArena, Generation: s.Generation, At: time.Now()})
}

func TestTick_NoRocketRegion(t *testing.T) {
	f := newFixture(t)

	s := session(t, f.game, "")

	f.regions.EXPECT().Exists(testArena, rocketRegion).Return(false)

	f.game.HandleEvent(s, event.Tick{Arena: testArena, Generation: s.Generation, At: time.Now()})
}
