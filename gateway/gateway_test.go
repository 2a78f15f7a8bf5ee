package gateway

import (
	"context"
	"errors"
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

const testArena = domain.ArenaID("pirates")

// collectingDispatcher gathers dispatched events on a channel so the
// test can wait for the gateway goroutine.
func collectingDispatcher() (Dispatcher, chan event.ArenaEvent) {
	events := make(chan event.ArenaEvent, 8)
	return func(arena domain.ArenaID, evt event.ArenaEvent) {
		events <- evt
	}, events
}

func awaitResult(t *testing.T, events chan event.ArenaEvent) event.BestTimeResult {
	t.Helper()
	select {
	case evt := <-events:
		result, ok := evt.(event.BestTimeResult)
		require.True(t, ok)
		return result
	case <-time.After(time.Second):
		t.Fatal("No result dispatched")
		return event.BestTimeResult{}
	}
}

func TestGateway_StoreRequest(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockRaceStats(ctrl)
	chat := mocks.NewMockMessenger(ctrl)
	dispatch, _ := collectingDispatcher()

	rec := domain.RaceRecord{Arena: testArena, Player: "racer", Millis: 42500}
	stored := make(chan domain.RaceRecord, 1)
	stats.EXPECT().Store(rec).DoAndReturn(func(r domain.RaceRecord) error {
		stored <- r
		return nil
	})

	g := New(slog.Default(), stats, chat, dispatch, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = g.Run(ctx) }()

	g.RecordTime(rec)

	select {
	case got := <-stored:
		req.Equal(rec, got)
	case <-time.After(time.Second):
		req.Fail("Store was never called")
	}
}

func TestGateway_ArenaBestCarriesGeneration(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockRaceStats(ctrl)
	chat := mocks.NewMockMessenger(ctrl)
	dispatch, events := collectingDispatcher()

	best := &domain.RaceRecord{Arena: testArena, Player: "fast", Millis: 30000}
	stats.EXPECT().ArenaBest(testArena).Return(best, nil)

	g := New(slog.Default(), stats, chat, dispatch, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = g.Run(ctx) }()

	generation := uuid.New()
	g.QueryArenaBest(testArena, generation, event.ArenaBestRefresh, "")

	result := awaitResult(t, events)
	req.Equal(generation, result.Generation)
	req.Equal(event.ArenaBestRefresh, result.Kind)
	req.Equal(best, result.Record)
	req.NoError(result.Err)
}

func TestGateway_PlayerBestCarriesSubject(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockRaceStats(ctrl)
	chat := mocks.NewMockMessenger(ctrl)
	dispatch, events := collectingDispatcher()

	stats.EXPECT().PlayerBest(testArena, domain.PlayerID("subject")).Return(nil, nil)

	g := New(slog.Default(), stats, chat, dispatch, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = g.Run(ctx) }()

	g.QueryPlayerBest(testArena, "subject", "asker")

	result := awaitResult(t, events)
	req.Equal(event.PlayerBestReply, result.Kind)
	req.Equal(domain.PlayerID("asker"), result.ReplyTo)
	req.Equal(domain.PlayerID("subject"), result.Subject)
	req.Nil(result.Record)
	req.NoError(result.Err)
}

func TestGateway_NoRecordIsNotAFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockRaceStats(ctrl)
	chat := mocks.NewMockMessenger(ctrl)
	dispatch, events := collectingDispatcher()

	stats.EXPECT().ArenaBest(testArena).Return(nil, apperrors.ErrNoRecord)

	g := New(slog.Default(), stats, chat, dispatch, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = g.Run(ctx) }()

	g.QueryArenaBest(testArena, uuid.New(), event.TrackBestReply, "asker")

	result := awaitResult(t, events)
	req.Nil(result.Record)
	req.NoError(result.Err)
}

func TestGateway_StoreFailureNotifiesStaff(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockRaceStats(ctrl)
	chat := mocks.NewMockMessenger(ctrl)
	dispatch, _ := collectingDispatcher()

	boom := errors.New("disk gone")
	stats.EXPECT().Store(gomock.Any()).Return(boom)

	notified := make(chan string, 1)
	chat.EXPECT().SendStaff(gomock.Any()).Do(func(msg string) {
		notified <- msg
	})

	g := New(slog.Default(), stats, chat, dispatch, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = g.Run(ctx) }()

	g.RecordTime(domain.RaceRecord{Arena: testArena, Player: "racer", Millis: 1})

	select {
	case msg := <-notified:
		req.Contains(msg, "write")
	case <-time.After(time.Second):
		req.Fail("Staff never notified")
	}
}

func TestGateway_ReadFailureStillDispatchesResult(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockRaceStats(ctrl)
	chat := mocks.NewMockMessenger(ctrl)
	chat.EXPECT().SendStaff(gomock.Any()).AnyTimes()
	dispatch, events := collectingDispatcher()

	boom := errors.New("disk gone")
	stats.EXPECT().ArenaBest(testArena).Return(nil, boom)

	g := New(slog.Default(), stats, chat, dispatch, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = g.Run(ctx) }()

	g.QueryArenaBest(testArena, uuid.New(), event.TrackBestReply, "asker")

	result := awaitResult(t, events)
	req.Error(result.Err)
	req.Nil(result.Record)
}
