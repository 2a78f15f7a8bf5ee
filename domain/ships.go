// Package domain contains core concepts of the arena event system.
// This file defines ships, frequencies and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strconv"
	"strings"
)

type ArenaID string

type Freq int

// ShipID is the zero-based ship index. Player-facing text uses 1-8.
type ShipID int

const (
	Warbird ShipID = iota
	Javelin
	Spider
	Leviathan
	Terrier
	Weasel
	Lancaster
	Shark

	// ShipSpec marks a spectating player.
	ShipSpec ShipID = 8
)

const shipCount = 8

func (s ShipID) Valid() bool {
	return s >= Warbird && s < shipCount
}

// Number is the one-based ship number used in messages and options.
func (s ShipID) Number() int {
	return int(s) + 1
}

// ShipSet is a set of legal ships. The empty set means unrestricted.
type ShipSet uint8

func (s ShipSet) Empty() bool {
	return s == 0
}

func (s ShipSet) Contains(ship ShipID) bool {
	if !ship.Valid() {
		return false
	}
	return s&(1<<uint(ship)) != 0
}

func (s *ShipSet) Add(ship ShipID) {
	if ship.Valid() {
		*s |= 1 << uint(ship)
	}
}

// String renders the set the way hosts type it, e.g. "1,2,3".
func (s ShipSet) String() string {
	var numbers []string
	for ship := Warbird; ship < shipCount; ship++ {
		if s.Contains(ship) {
			numbers = append(numbers, strconv.Itoa(ship.Number()))
		}
	}
	return strings.Join(numbers, ",")
}
