// Package modules holds arena utility handlers that run alongside the
// game variants.
package modules

import (
	"log/slog"
	"strings"

	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
)

// Flags are racked in rows of six starting at the arena center.
const (
	centerX = 509
	centerY = 512
	rowEndX = 515
)

const neutralFreq domain.Freq = -1

// FlagsToCenter re-racks all uncarried flags at the arena center on a
// staff command. Unless "-c" is passed, the flags are also
// neutralized so no team keeps credit for them.
type FlagsToCenter struct {
	log   *slog.Logger
	chat  contract.Messenger
	flags contract.Flags
	caps  contract.Capability
}

func NewFlagsToCenter(log *slog.Logger, chat contract.Messenger, flags contract.Flags,
	caps contract.Capability) *FlagsToCenter {
	return &FlagsToCenter{log: log, chat: chat, flags: flags, caps: caps}
}

func (f *FlagsToCenter) HandleAnytime(_ *domain.Session, evt event.ArenaEvent) bool {
	cmd, ok := evt.(event.CenterFlagsCommand)
	if !ok {
		return false
	}
	if !f.caps.Has(cmd.Issuer, contract.CapStaff) {
		return true
	}
	f.center(cmd.Arena, !strings.Contains(cmd.Params, "-c"))
	return true
}

func (f *FlagsToCenter) center(arena domain.ArenaID, neutralize bool) {
	flags, err := f.flags.Flags(arena)
	if err != nil {
		f.log.Warn("Flag state unavailable", "arena", arena, "error", err)
		return
	}

	x, y := centerX, centerY
	for _, fi := range flags {
		if fi.Carried {
			continue
		}
		if x == rowEndX {
			x = centerX
			y++
		}
		fi.X, fi.Y = x, y
		x++
		if neutralize {
			fi.Carrier = ""
			fi.Freq = neutralFreq
		}
		if err := f.flags.SetFlag(arena, fi); err != nil {
			f.log.Warn("Flag update failed", "arena", arena, "flag", fi.Index, "error", err)
		}
	}
	f.chat.SendArenaSound(arena, 26, "All uncarried flags have been sent to center!")
}
