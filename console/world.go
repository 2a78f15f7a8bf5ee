package console

import (
	"sync"

	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
)

// Rect is an axis-aligned named region.
type Rect struct {
	X1, Y1, X2, Y2 int
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// World is the in-memory arena state behind the local process. It
// implements the roster, actions, flag, region, settings, capability
// and ball collaborators. All methods are safe for concurrent use;
// engines read it from their own goroutines while the terminal loop
// mutates it.
type World struct {
	mu       sync.Mutex
	players  map[domain.PlayerID]*domain.Player
	flags    map[domain.ArenaID][]contract.FlagInfo
	regions  map[domain.ArenaID]map[string]Rect
	settings map[domain.ArenaID]map[string]string
	staff    map[domain.PlayerID]bool
	doors    map[domain.ArenaID]contract.DoorMode
}

func NewWorld() *World {
	return &World{
		players:  make(map[domain.PlayerID]*domain.Player),
		flags:    make(map[domain.ArenaID][]contract.FlagInfo),
		regions:  make(map[domain.ArenaID]map[string]Rect),
		settings: make(map[domain.ArenaID]map[string]string),
		staff:    make(map[domain.PlayerID]bool),
		doors:    make(map[domain.ArenaID]contract.DoorMode),
	}
}

// AddPlayer places a player in an arena, replacing any previous entry.
func (w *World) AddPlayer(p domain.Player) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cp := p
	w.players[p.ID] = &cp
}

func (w *World) RemovePlayer(id domain.PlayerID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.players, id)
}

// MovePlayer updates a player's map position.
func (w *World) MovePlayer(id domain.PlayerID, x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		p.X, p.Y = x, y
	}
}

func (w *World) Player(id domain.PlayerID) (domain.Player, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		return *p, true
	}
	return domain.Player{}, false
}

func (w *World) MakeStaff(id domain.PlayerID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.staff[id] = true
}

// AddFlag registers one more flag in an arena.
func (w *World) AddFlag(arena domain.ArenaID, x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fi := contract.FlagInfo{Index: len(w.flags[arena]), X: x, Y: y}
	w.flags[arena] = append(w.flags[arena], fi)
}

// AddRegion registers a named rectangular region.
func (w *World) AddRegion(arena domain.ArenaID, name string, r Rect) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.regions[arena] == nil {
		w.regions[arena] = make(map[string]Rect)
	}
	w.regions[arena][name] = r
}

// SetSetting stores one arena configuration value under "section.key".
func (w *World) SetSetting(arena domain.ArenaID, section, key, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.settings[arena] == nil {
		w.settings[arena] = make(map[string]string)
	}
	w.settings[arena][section+"."+key] = value
}

// Players implements contract.Roster.
func (w *World) Players(arena domain.ArenaID) ([]domain.Player, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []domain.Player
	for _, p := range w.players {
		if p.Arena == arena {
			out = append(out, *p)
		}
	}
	return out, nil
}

// Actions implementation. Mutations are applied immediately; the real
// host would round-trip through the client.

func (w *World) SetShip(id domain.PlayerID, ship domain.ShipID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		p.Ship = ship
	}
}

func (w *World) SetFreq(id domain.PlayerID, freq domain.Freq) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		p.Freq = freq
	}
}

func (w *World) GivePrize(id domain.PlayerID, prize contract.Prize, count int) {}

func (w *World) ShipReset(id domain.PlayerID) {}

func (w *World) SetDoors(arena domain.ArenaID, mode contract.DoorMode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.doors[arena] = mode
}

func (w *World) Doors(arena domain.ArenaID) contract.DoorMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doors[arena]
}

// Flags implementation.

func (w *World) Flags(arena domain.ArenaID) ([]contract.FlagInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]contract.FlagInfo, len(w.flags[arena]))
	copy(out, w.flags[arena])
	return out, nil
}

func (w *World) SetFlag(arena domain.ArenaID, fi contract.FlagInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	flags := w.flags[arena]
	if fi.Index < 0 || fi.Index >= len(flags) {
		return nil
	}
	flags[fi.Index] = fi
	return nil
}

// Regions implementation.

func (w *World) Exists(arena domain.ArenaID, region string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.regions[arena][region]
	return ok
}

func (w *World) Contains(arena domain.ArenaID, region string, x, y int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	r, ok := w.regions[arena][region]
	return ok && r.contains(x, y)
}

// Balls implementation.

func (w *World) EndGame(arena domain.ArenaID) {}

// Capability implementation.

func (w *World) Has(id domain.PlayerID, capability string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return capability == contract.CapStaff && w.staff[id]
}

// Settings implementation.

func (w *World) GetStr(arena domain.ArenaID, section, key string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.settings[arena][section+"."+key]
	return v, ok
}
