//go:generate go run go.uber.org/mock/mockgen -source=racestats.go -destination=../mocks/mock_racestats.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/hakaku/arenaevents/domain"
	apperrors "github.com/hakaku/arenaevents/errors"
)

type IRaceStatsRepository interface {
	Store(rec domain.RaceRecord) error
	ArenaBest(arena domain.ArenaID) (*domain.RaceRecord, error)
	PlayerBest(arena domain.ArenaID, player domain.PlayerID) (*domain.RaceRecord, error)
	TopTimes(arena domain.ArenaID, limit int) ([]domain.RaceRecord, error)
}

// RaceStatsRepository persists race times in BadgerDB.
//
// Two key families per arena:
//  1. "race:{arena}:t:{millis_padded}:{player}": every recorded time,
//     zero-padded to 19 digits so lexicographical order is fastest
//     first and the arena best is simply the first key of the prefix.
//  2. "race:{arena}:p:{player}": that player's personal best,
//     overwritten only by a faster time.
type RaceStatsRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRaceStatsRepository(db *badger.DB, log *slog.Logger) RaceStatsRepository {
	return RaceStatsRepository{db: db, log: log}
}

func timeKey(rec domain.RaceRecord) []byte {
	return []byte(fmt.Sprintf("race:%s:t:%019d:%s", rec.Arena, rec.Millis, rec.Player))
}

func playerKey(arena domain.ArenaID, player domain.PlayerID) []byte {
	return []byte(fmt.Sprintf("race:%s:p:%s", arena, player))
}

func arenaPrefix(arena domain.ArenaID) []byte {
	return []byte(fmt.Sprintf("race:%s:t:", arena))
}

// Store appends the time and refreshes the player's personal best when
// this run beats it.
func (r RaceStatsRepository) Store(rec domain.RaceRecord) error {
	bytes, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(timeKey(rec), bytes); err != nil {
			return err
		}
		best, err := getRecord(txn, playerKey(rec.Arena, rec.Player))
		if err != nil && !errors.Is(err, apperrors.ErrNoRecord) {
			return err
		}
		if best == nil || rec.Millis < best.Millis {
			return txn.Set(playerKey(rec.Arena, rec.Player), bytes)
		}
		return nil
	})
}

// ArenaBest returns the fastest recorded time for the arena, or
// ErrNoRecord when nobody has raced there yet.
func (r RaceStatsRepository) ArenaBest(arena domain.ArenaID) (*domain.RaceRecord, error) {
	var best *domain.RaceRecord
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := arenaPrefix(arena)
		it.Seek(prefix)
		if !it.ValidForPrefix(prefix) {
			return apperrors.ErrNoRecord
		}
		return it.Item().Value(func(val []byte) error {
			var rec domain.RaceRecord
			if err := json.Unmarshal(val, &rec); err != nil {
				return err
			}
			best = &rec
			return nil
		})
	})
	return best, err
}

// PlayerBest returns the player's fastest time in the arena, or
// ErrNoRecord when they never raced there.
func (r RaceStatsRepository) PlayerBest(arena domain.ArenaID, player domain.PlayerID) (*domain.RaceRecord, error) {
	var best *domain.RaceRecord
	err := r.db.View(func(txn *badger.Txn) error {
		rec, err := getRecord(txn, playerKey(arena, player))
		best = rec
		return err
	})
	return best, err
}

// TopTimes returns up to limit fastest recorded times for the arena,
// fastest first.
func (r RaceStatsRepository) TopTimes(arena domain.ArenaID, limit int) ([]domain.RaceRecord, error) {
	var records []domain.RaceRecord
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := arenaPrefix(arena)
		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(records) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec domain.RaceRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

func getRecord(txn *badger.Txn, key []byte) (*domain.RaceRecord, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, apperrors.ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	var rec domain.RaceRecord
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	}); err != nil {
		return nil, err
	}
	return &rec, nil
}
