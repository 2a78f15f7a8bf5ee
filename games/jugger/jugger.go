// Package jugger implements the elimination variant: everyone starts
// on the human frequency, finding the flag makes you the juggernaut,
// and the first player to reach the configured kill count while
// holding the role wins. Eliminating the juggernaut takes the role.
package jugger

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	"github.com/hakaku/arenaevents/engine"
)

const (
	// JuggerFreq carries the role; HumanFreq is everyone else.
	JuggerFreq domain.Freq = 100
	HumanFreq  domain.Freq = 0

	minKills = 1
	maxKills = 50
)

type Game struct {
	log       *slog.Logger
	chat      contract.Messenger
	roster    contract.Roster
	actions   contract.Actions
	flags     contract.Flags
	countdown time.Duration

	// kills is per-session player data, zeroed on activation and on
	// arena entry. Meaningless while no session is active.
	kills map[domain.PlayerID]int
}

func New(log *slog.Logger, chat contract.Messenger, roster contract.Roster,
	actions contract.Actions, flags contract.Flags, countdown time.Duration) *Game {
	return &Game{
		log:       log,
		chat:      chat,
		roster:    roster,
		actions:   actions,
		flags:     flags,
		countdown: countdown,
		kills:     make(map[domain.PlayerID]int),
	}
}

func (g *Game) Name() string    { return "jugger" }
func (g *Game) Tagline() string { return "Who will be the juggernaught to rule them all?" }

func (g *Game) Usage() []string {
	return []string{
		"Parameters: kills: -k(#)",
		"            ships: -s(#)",
		"      jugger ship: -j(#)",
		"Example: ?start jugger -k(5) -s(1,2,3) -j(1)",
	}
}

func (g *Game) Countdown() time.Duration  { return g.countdown }
func (g *Game) TickPeriod() time.Duration { return 0 }
func (g *Game) AbortMessage() string      { return "Game of jugger aborted!" }

func (g *Game) ParseRules(params string) (domain.RuleSet, error) {
	kills, err := domain.NumericOption(params, 'k', minKills, maxKills)
	if err != nil {
		return domain.RuleSet{}, err
	}

	juggerFreq := JuggerFreq
	rules := domain.RuleSet{
		Threshold:   kills,
		MinPlayers:  1,
		SpecialFreq: &juggerFreq,
	}

	if value, present, err := domain.Option(params, 's'); err != nil {
		return domain.RuleSet{}, err
	} else if present {
		allowed, defaultShip, err := domain.ParseShipList(value)
		if err != nil {
			return domain.RuleSet{}, err
		}
		rules.Allowed = allowed
		rules.DefaultShip = defaultShip
	}

	if n, err := domain.OptionalNumericOption(params, 'j', 1, 8); err != nil {
		return domain.RuleSet{}, err
	} else if n != nil {
		ship := domain.ShipID(*n - 1)
		rules.SpecialShip = &ship
	}

	return rules, nil
}

func (g *Game) Stage(s *domain.Session) {
	g.hideFlag(s.Arena)

	g.chat.SendArenaSound(s.Arena, 2, fmt.Sprintf("Jugger will start in %d seconds, enter if playing.", int(g.countdown.Seconds())))
	if s.Rules.Restricted() {
		g.chat.SendArena(s.Arena, fmt.Sprintf("Allowed ships: %s", s.Rules.Allowed))
	}
	if s.Rules.SpecialShip != nil {
		g.chat.SendArena(s.Arena, fmt.Sprintf("Jugger ship: %d", s.Rules.SpecialShip.Number()))
	}
}

func (g *Game) Activate(s *domain.Session) {
	g.kills = make(map[domain.PlayerID]int)

	players, err := g.roster.Players(s.Arena)
	if err == nil {
		for _, p := range players {
			if !p.Playing() {
				continue
			}
			g.actions.SetFreq(p.ID, HumanFreq)
			g.actions.GivePrize(p.ID, contract.PrizeWarp, 1)
		}
	}

	g.showFlag(s.Arena)

	g.chat.SendArenaSound(s.Arena, 104, fmt.Sprintf(
		"Juggernaut has started! The first person to get %d %s as the juggernaut wins!",
		s.Rules.Threshold, plural(s.Rules.Threshold, "kill")))
}

func (g *Game) HandleEvent(s *domain.Session, evt event.ArenaEvent) engine.Outcome {
	switch evt := evt.(type) {
	case event.Kill:
		return g.handleKill(s, evt)
	case event.FlagPickup:
		return g.handleFlagPickup(s, evt)
	case event.ShipFreqChange:
		g.handleShipFreqChange(s, evt)
	case event.PlayerEntered:
		g.kills[evt.Player] = 0
		g.chat.SendPlayerSound(evt.Player, 26, fmt.Sprintf(
			"We are playing Jugger to %d %s.", s.Rules.Threshold, plural(s.Rules.Threshold, "kill")))
	}
	return engine.Outcome{}
}

// handleKill either credits the juggernaut or hands over the role.
func (g *Game) handleKill(s *domain.Session, evt event.Kill) engine.Outcome {
	g.herdFreqs(s)

	killer, ok := g.find(s.Arena, evt.Killer)
	if !ok {
		return engine.Outcome{}
	}

	switch killer.Freq {
	case JuggerFreq:
		g.kills[evt.Killer]++
		return g.checkWin(s, killer)
	case HumanFreq:
		g.actions.SetFreq(evt.Killer, JuggerFreq)
		g.actions.SetFreq(evt.Killed, HumanFreq)
		g.enforceSpecialShip(s, killer)
		g.transferFlag(s.Arena, evt.Killer)
		// The takedown itself counts toward the threshold.
		g.kills[evt.Killer]++

		left := s.Rules.Threshold - g.kills[evt.Killer]
		g.chat.SendArenaSound(s.Arena, 2, fmt.Sprintf("%s just killed the juggernaut and is now the new juggernaut!", killer.Name))
		g.chat.SendArenaSound(s.Arena, 2, fmt.Sprintf("%s only needs %d more %s to win!", killer.Name, left, plural(left, "kill")))
		return g.checkWin(s, killer)
	}
	return engine.Outcome{}
}

// handleFlagPickup transfers the role when someone who is not the
// juggernaut grabs the objective.
func (g *Game) handleFlagPickup(s *domain.Session, evt event.FlagPickup) engine.Outcome {
	p, ok := g.find(s.Arena, evt.Player)
	if !ok || p.Freq == JuggerFreq {
		return engine.Outcome{}
	}

	players, err := g.roster.Players(s.Arena)
	if err == nil {
		for _, former := range players {
			if former.Freq == JuggerFreq {
				g.actions.SetFreq(former.ID, HumanFreq)
			}
		}
	}
	g.actions.SetFreq(evt.Player, JuggerFreq)
	g.enforceSpecialShip(s, p)
	g.transferFlag(s.Arena, evt.Player)

	left := s.Rules.Threshold - g.kills[evt.Player]
	g.chat.SendArenaSound(s.Arena, 2, fmt.Sprintf("%s found the flag and is now the new Juggernaut!", p.Name))
	g.chat.SendArenaSound(s.Arena, 2, fmt.Sprintf("%s only needs %d more %s to win!", p.Name, left, plural(left, "kill")))
	return g.checkWin(s, p)
}

func (g *Game) handleShipFreqChange(s *domain.Session, evt event.ShipFreqChange) {
	g.herdFreqs(s)
	if evt.NewShip == domain.ShipSpec {
		return
	}
	// The engine already re-assigned an illegal ship; a role-holder
	// who just got corrected still needs the flag pinned back.
	if evt.NewFreq == JuggerFreq && s.Rules.SpecialShip != nil && evt.NewShip != *s.Rules.SpecialShip {
		g.transferFlag(s.Arena, evt.Player)
	}
}

func (g *Game) checkWin(s *domain.Session, p domain.Player) engine.Outcome {
	if g.kills[p.ID] >= s.Rules.Threshold {
		g.chat.SendArenaSound(s.Arena, 5, fmt.Sprintf(
			"Game over! %s was the fastest killer as juggernaut and is the juggernaut winner!", p.Name))
		return engine.Outcome{Concluded: true}
	}
	return engine.Outcome{}
}

func (g *Game) ShortRoster(s *domain.Session, remaining []domain.Player) {
	if len(remaining) == 1 {
		g.chat.SendArenaSound(s.Arena, 5, fmt.Sprintf("Game Over! This round's winner is %s.", remaining[0].Name))
		return
	}
	g.chat.SendArenaSound(s.Arena, 1, "Game Aborted: There are no players left in the game.")
}

func (g *Game) Conclude(s *domain.Session) {
	players, err := g.roster.Players(s.Arena)
	if err == nil {
		for _, p := range players {
			g.actions.GivePrize(p.ID, contract.PrizeWarp, 1)
		}
	}
	g.kills = make(map[domain.PlayerID]int)
}

// Kills exposes a player's current counter (diagnostics and tests).
func (g *Game) Kills(p domain.PlayerID) int {
	return g.kills[p]
}

// herdFreqs pushes anyone who wandered onto a frequency that is
// neither human nor juggernaut back to the human team.
func (g *Game) herdFreqs(s *domain.Session) {
	players, err := g.roster.Players(s.Arena)
	if err != nil {
		return
	}
	for _, p := range players {
		if p.Playing() && p.Freq != HumanFreq && p.Freq != JuggerFreq {
			g.actions.SetFreq(p.ID, HumanFreq)
		}
	}
}

func (g *Game) enforceSpecialShip(s *domain.Session, p domain.Player) {
	if verdict, target := s.Rules.JudgeSpecial(p.Ship); verdict == domain.ShipReassign {
		g.actions.SetShip(p.ID, target)
	}
}

func (g *Game) find(arena domain.ArenaID, id domain.PlayerID) (domain.Player, bool) {
	players, err := g.roster.Players(arena)
	if err != nil {
		return domain.Player{}, false
	}
	return lo.Find(players, func(p domain.Player) bool { return p.ID == id })
}

// hideFlag parks the objective off the playfield while staging runs.
func (g *Game) hideFlag(arena domain.ArenaID) {
	infos, err := g.flags.Flags(arena)
	if err != nil || len(infos) == 0 {
		return
	}
	fi := infos[0]
	fi.Carried = false
	fi.Carrier = ""
	fi.Freq = -1
	fi.X, fi.Y = 100, 100
	if err := g.flags.SetFlag(arena, fi); err != nil {
		g.log.Warn("Failed to hide flag", "error", err)
	}
}

// showFlag reveals the objective at a random spot in the drop box.
func (g *Game) showFlag(arena domain.ArenaID) {
	infos, err := g.flags.Flags(arena)
	if err != nil || len(infos) == 0 {
		return
	}
	fi := infos[0]
	fi.Carried = false
	fi.Carrier = ""
	fi.Freq = -1
	fi.X = rand.Intn(225) + 400
	fi.Y = rand.Intn(200) + 425
	if fi.Y > 603 {
		fi.Y = 440
	}
	if err := g.flags.SetFlag(arena, fi); err != nil {
		g.log.Warn("Failed to show flag", "error", err)
	}
}

func (g *Game) transferFlag(arena domain.ArenaID, to domain.PlayerID) {
	infos, err := g.flags.Flags(arena)
	if err != nil || len(infos) == 0 {
		return
	}
	fi := infos[0]
	fi.Carried = true
	fi.Carrier = to
	if err := g.flags.SetFlag(arena, fi); err != nil {
		g.log.Warn("Failed to transfer flag", "error", err)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
