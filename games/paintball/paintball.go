// Package paintball implements the team-goal variant: two fixed
// frequencies push a ball, first team at the configured goal count
// wins.
package paintball

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hakaku/arenaevents/contract"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	"github.com/hakaku/arenaevents/engine"
)

const (
	BlueFreq  domain.Freq = 0
	GreenFreq domain.Freq = 1

	minGoals = 1
	maxGoals = 15
)

type Game struct {
	log       *slog.Logger
	chat      contract.Messenger
	roster    contract.Roster
	actions   contract.Actions
	balls     contract.Balls
	countdown time.Duration

	// Session-scoped score. Zeroed on activation and conclusion.
	blue  int
	green int
}

func New(log *slog.Logger, chat contract.Messenger, roster contract.Roster,
	actions contract.Actions, balls contract.Balls, countdown time.Duration) *Game {
	return &Game{
		log:       log,
		chat:      chat,
		roster:    roster,
		actions:   actions,
		balls:     balls,
		countdown: countdown,
	}
}

func (g *Game) Name() string { return "paintball" }
func (g *Game) Tagline() string {
	return "Two teams face off in a game of paintball (aka soccer, powerball, deathball)."
}

func (g *Game) Usage() []string {
	return []string{
		"Parameters: goals: -g(#)",
		"            ships: -s(#)",
		"Example: ?start paintball -g(5) -s(1,2,3)",
	}
}

func (g *Game) Countdown() time.Duration  { return g.countdown }
func (g *Game) TickPeriod() time.Duration { return 0 }
func (g *Game) AbortMessage() string      { return "Game of paintball aborted!" }

func (g *Game) ParseRules(params string) (domain.RuleSet, error) {
	goals, err := domain.NumericOption(params, 'g', minGoals, maxGoals)
	if err != nil {
		return domain.RuleSet{}, err
	}

	rules := domain.RuleSet{
		Threshold:  goals,
		MinPlayers: 1,
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

	return rules, nil
}

func (g *Game) Stage(s *domain.Session) {
	g.actions.SetDoors(s.Arena, contract.DoorsClosed)

	g.chat.SendArenaSound(s.Arena, 2, fmt.Sprintf("Paintball will start in %d seconds, get ready!", int(g.countdown.Seconds())))
	if s.Rules.Restricted() {
		g.chat.SendArena(s.Arena, fmt.Sprintf("Allowed ships: %s", s.Rules.Allowed))
	}
}

func (g *Game) Activate(s *domain.Session) {
	g.blue, g.green = 0, 0
	g.actions.SetDoors(s.Arena, contract.DoorsOpen)

	players, err := g.roster.Players(s.Arena)
	if err == nil {
		for _, p := range players {
			g.actions.GivePrize(p.ID, contract.PrizeWarp, 1)
		}
	}

	g.chat.SendArenaSound(s.Arena, 104, fmt.Sprintf(
		"Paintball has started! First team to get %d %s wins!",
		s.Rules.Threshold, plural(s.Rules.Threshold, "goal")))
	g.chat.SendArena(s.Arena, "Team 0: EVENS (Blue Team), Team 1: ODDS (Green Team)")
}

func (g *Game) HandleEvent(s *domain.Session, evt event.ArenaEvent) engine.Outcome {
	switch evt := evt.(type) {
	case event.Goal:
		return g.handleGoal(s, evt)
	case event.PlayerEntered:
		g.chat.SendPlayerSound(evt.Player, 26, fmt.Sprintf(
			"We are playing Paintball to %d %s by a team.", s.Rules.Threshold, plural(s.Rules.Threshold, "goal")))
	}
	return engine.Outcome{}
}

func (g *Game) handleGoal(s *domain.Session, evt event.Goal) engine.Outcome {
	switch evt.Freq {
	case BlueFreq:
		g.blue++
		g.chat.SendArenaSound(s.Arena, 2, "Blue Team has scored!")
	case GreenFreq:
		g.green++
		g.chat.SendArenaSound(s.Arena, 2, "Green Team has scored!")
	default:
		return engine.Outcome{}
	}
	g.chat.SendArena(s.Arena, fmt.Sprintf("SCORE: Blue: %d Green: %d", g.blue, g.green))

	if g.blue >= s.Rules.Threshold {
		g.chat.SendArenaSound(s.Arena, 5, "Blue Team (freq 0) wins Paintball!")
		g.balls.EndGame(s.Arena)
		return engine.Outcome{Concluded: true}
	}
	if g.green >= s.Rules.Threshold {
		g.chat.SendArenaSound(s.Arena, 5, "Green Team (freq 1) wins Paintball!")
		g.balls.EndGame(s.Arena)
		return engine.Outcome{Concluded: true}
	}
	return engine.Outcome{}
}

func (g *Game) ShortRoster(s *domain.Session, remaining []domain.Player) {
	g.chat.SendArenaSound(s.Arena, 1, "Game stopped. There were not enough players.")
}

func (g *Game) Conclude(s *domain.Session) {
	g.actions.SetDoors(s.Arena, contract.DoorsClosed)

	players, err := g.roster.Players(s.Arena)
	if err == nil {
		for _, p := range players {
			g.actions.GivePrize(p.ID, contract.PrizeWarp, 1)
		}
	}
	g.blue, g.green = 0, 0
}

// Score exposes the running score (diagnostics and tests).
func (g *Game) Score() (blue, green int) {
	return g.blue, g.green
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
