// Package console provides a stand-in host for running the arena
// engines as a local process: a colored terminal messenger, a real
// timer, and an in-memory world that backs the roster, actions, flag,
// region, settings and capability collaborators.
package console

import (
	"log/slog"

	"github.com/gookit/color"

	"github.com/hakaku/arenaevents/domain"
)

// Messenger renders notifications on the terminal. Arena broadcasts,
// player whispers and staff alerts each get their own color so a
// session transcript stays readable.
type Messenger struct {
	log *slog.Logger
}

func NewMessenger(log *slog.Logger) *Messenger {
	return &Messenger{log: log}
}

func (m *Messenger) SendPlayer(p domain.PlayerID, msg string) {
	color.Cyan.Printf("[to %s] %s\n", p, msg)
}

func (m *Messenger) SendPlayerSound(p domain.PlayerID, sound int, msg string) {
	color.Cyan.Printf("[to %s] (%%%d) %s\n", p, sound, msg)
}

func (m *Messenger) SendArena(arena domain.ArenaID, msg string) {
	color.Green.Printf("[%s] %s\n", arena, msg)
}

func (m *Messenger) SendArenaSound(arena domain.ArenaID, sound int, msg string) {
	color.Green.Printf("[%s] (%%%d) %s\n", arena, sound, msg)
}

func (m *Messenger) SendStaff(msg string) {
	color.Yellow.Printf("[staff] %s\n", msg)
}
