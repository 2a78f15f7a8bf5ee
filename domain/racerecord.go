package domain

import "time"

// RaceRecord is one finished race time as persisted by the stats store.
type RaceRecord struct {
	Arena  ArenaID
	Player PlayerID
	Name   string
	Ship   ShipID
	Millis int64
	SetAt  time.Time
}

// Seconds renders the time for messages ("%.3f seconds").
func (r RaceRecord) Seconds() float64 {
	return float64(r.Millis) / 1000
}
