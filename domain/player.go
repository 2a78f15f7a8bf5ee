package domain

type PlayerID string

// Player is a point-in-time roster snapshot of one connected player.
// The roster service owns the live state; the engine never mutates these.
type Player struct {
	ID    PlayerID
	Name  string
	Arena ArenaID
	Ship  ShipID
	Freq  Freq

	// Tile coordinates, used for region membership checks.
	X, Y int
}

// Playing reports whether the player occupies a ship (is not spectating).
func (p Player) Playing() bool {
	return p.Ship != ShipSpec
}
