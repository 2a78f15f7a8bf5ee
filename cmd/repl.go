package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/hakaku/arenaevents/console"
	"github.com/hakaku/arenaevents/domain"
	"github.com/hakaku/arenaevents/domain/event"
	"github.com/hakaku/arenaevents/engine"
	"github.com/hakaku/arenaevents/repositories"
)

// repl drives the engines from the terminal. Each line either mutates
// the simulated world or dispatches an event, the same way the real
// host would on player activity.
type repl struct {
	log     *slog.Logger
	world   *console.World
	engines map[domain.ArenaID]*engine.Engine
	stats   repositories.IRaceStatsRepository
	timer   *console.Timer
}

func newRepl(log *slog.Logger, world *console.World, engines map[domain.ArenaID]*engine.Engine,
	stats repositories.IRaceStatsRepository, timer *console.Timer) *repl {
	return &repl{log: log, world: world, engines: engines, stats: stats, timer: timer}
}

func (r *repl) run(ctx context.Context) {
	fmt.Println("Arena event console. Type 'help' for commands, 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		r.eval(line)
	}
}

func (r *repl) eval(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		r.help()
	case "enter":
		r.enter(fields[1:])
	case "leave":
		r.leave(fields[1:])
	case "staff":
		if len(fields) == 2 {
			r.world.MakeStaff(domain.PlayerID(fields[1]))
		}
	case "ship":
		r.ship(fields[1:])
	case "kill":
		r.kill(fields[1:])
	case "goal":
		r.goal(fields[1:])
	case "move":
		r.move(fields[1:])
	case "cross":
		r.cross(fields[1:])
	case "pickup":
		r.flagEvent(fields[1:], true)
	case "drop":
		r.flagEvent(fields[1:], false)
	case "region":
		r.region(fields[1:])
	case "say":
		r.say(fields[1:])
	case "top":
		r.top(fields[1:])
	default:
		fmt.Println("Unknown command. Type 'help'.")
	}
}

func (r *repl) help() {
	fmt.Print(`  enter <arena> <player> [ship 1-8] [freq]   place a player
  leave <player>                             remove a player
  staff <player>                             grant staff capability
  ship <player> <ship 1-8|spec> [freq]       change ship/freq
  kill <killer> <killed> [bounty]            report a kill
  goal <player> [x y]                        report a goal
  move <player> <x> <y>                      update position
  cross <player> <region> [out]              region crossing
  pickup <player> / drop <player>            flag events
  region <arena> <name> <x1> <y1> <x2> <y2>  define a region
  say <player> ?<command...>                 player chat command
  top <arena> [n]                            best recorded times
`)
}

func (r *repl) dispatch(arena domain.ArenaID, evt event.ArenaEvent) {
	if e, ok := r.engines[arena]; ok {
		e.Dispatch(evt)
		return
	}
	fmt.Printf("No engine for arena %q\n", arena)
}

func (r *repl) player(name string) (domain.Player, bool) {
	p, ok := r.world.Player(domain.PlayerID(name))
	if !ok {
		fmt.Printf("Unknown player %q\n", name)
	}
	return p, ok
}

func (r *repl) enter(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: enter <arena> <player> [ship] [freq]")
		return
	}
	p := domain.Player{
		ID:    domain.PlayerID(args[1]),
		Name:  args[1],
		Arena: domain.ArenaID(args[0]),
		Ship:  domain.ShipSpec,
	}
	if len(args) > 2 {
		p.Ship = parseShip(args[2])
	}
	if len(args) > 3 {
		n, _ := strconv.Atoi(args[3])
		p.Freq = domain.Freq(n)
	}
	r.world.AddPlayer(p)
	r.dispatch(p.Arena, event.PlayerEntered{Arena: p.Arena, Player: p.ID})
}

func (r *repl) leave(args []string) {
	if len(args) != 1 {
		return
	}
	p, ok := r.player(args[0])
	if !ok {
		return
	}
	r.world.RemovePlayer(p.ID)
	r.dispatch(p.Arena, event.PlayerLeft{Arena: p.Arena, Player: p.ID})
}

func (r *repl) ship(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: ship <player> <ship 1-8|spec> [freq]")
		return
	}
	p, ok := r.player(args[0])
	if !ok {
		return
	}
	old := p
	p.Ship = parseShip(args[1])
	if len(args) > 2 {
		n, _ := strconv.Atoi(args[2])
		p.Freq = domain.Freq(n)
	}
	r.world.AddPlayer(p)
	r.dispatch(p.Arena, event.ShipFreqChange{
		Arena:   p.Arena,
		Player:  p.ID,
		NewShip: p.Ship,
		OldShip: old.Ship,
		NewFreq: p.Freq,
		OldFreq: old.Freq,
	})
}

func (r *repl) kill(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: kill <killer> <killed> [bounty]")
		return
	}
	killer, ok := r.player(args[0])
	if !ok {
		return
	}
	bounty := 0
	if len(args) > 2 {
		bounty, _ = strconv.Atoi(args[2])
	}
	r.dispatch(killer.Arena, event.Kill{
		Arena:  killer.Arena,
		Killer: killer.ID,
		Killed: domain.PlayerID(args[1]),
		Bounty: bounty,
	})
}

func (r *repl) goal(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: goal <player> [x y]")
		return
	}
	p, ok := r.player(args[0])
	if !ok {
		return
	}
	x, y := p.X, p.Y
	if len(args) > 2 {
		x, _ = strconv.Atoi(args[1])
		y, _ = strconv.Atoi(args[2])
	}
	r.dispatch(p.Arena, event.Goal{Arena: p.Arena, Scorer: p.ID, Freq: p.Freq, X: x, Y: y})
}

func (r *repl) move(args []string) {
	if len(args) != 3 {
		fmt.Println("usage: move <player> <x> <y>")
		return
	}
	p, ok := r.player(args[0])
	if !ok {
		return
	}
	x, _ := strconv.Atoi(args[1])
	y, _ := strconv.Atoi(args[2])
	r.world.MovePlayer(p.ID, x, y)
}

func (r *repl) cross(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: cross <player> <region> [out]")
		return
	}
	p, ok := r.player(args[0])
	if !ok {
		return
	}
	entering := len(args) < 3 || args[2] != "out"
	r.dispatch(p.Arena, event.RegionCross{
		Arena:    p.Arena,
		Player:   p.ID,
		Region:   args[1],
		Entering: entering,
		X:        p.X,
		Y:        p.Y,
	})
}

func (r *repl) flagEvent(args []string, pickup bool) {
	if len(args) != 1 {
		return
	}
	p, ok := r.player(args[0])
	if !ok {
		return
	}
	if pickup {
		r.dispatch(p.Arena, event.FlagPickup{Arena: p.Arena, Player: p.ID})
		return
	}
	r.dispatch(p.Arena, event.FlagLost{Arena: p.Arena, Player: p.ID})
}

func (r *repl) region(args []string) {
	if len(args) != 6 {
		fmt.Println("usage: region <arena> <name> <x1> <y1> <x2> <y2>")
		return
	}
	x1, _ := strconv.Atoi(args[2])
	y1, _ := strconv.Atoi(args[3])
	x2, _ := strconv.Atoi(args[4])
	y2, _ := strconv.Atoi(args[5])
	r.world.AddRegion(domain.ArenaID(args[0]), args[1], console.Rect{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// say parses a player chat command and dispatches the matching event.
func (r *repl) say(args []string) {
	if len(args) < 2 || !strings.HasPrefix(args[1], "?") {
		fmt.Println("usage: say <player> ?<command...>")
		return
	}
	p, ok := r.player(args[0])
	if !ok {
		return
	}
	rest := strings.Join(args[2:], " ")
	switch args[1] {
	case "?start", "?host":
		variant, params, _ := strings.Cut(rest, " ")
		r.dispatch(p.Arena, event.StartCommand{Arena: p.Arena, Issuer: p.ID, Variant: variant, Params: params})
	case "?stop":
		r.dispatch(p.Arena, event.StopCommand{Arena: p.Arena, Issuer: p.ID})
	case "?rules":
		r.dispatch(p.Arena, event.RulesCommand{Arena: p.Arena, Issuer: p.ID})
	case "?time":
		r.dispatch(p.Arena, event.TimeCommand{Arena: p.Arena, Issuer: p.ID})
	case "?best":
		r.dispatch(p.Arena, event.BestCommand{Arena: p.Arena, Issuer: p.ID, Subject: domain.PlayerID(rest)})
	case "?trackbest":
		r.dispatch(p.Arena, event.TrackBestCommand{Arena: p.Arena, Issuer: p.ID})
	case "?flagstocenter":
		r.dispatch(p.Arena, event.CenterFlagsCommand{Arena: p.Arena, Issuer: p.ID, Params: rest})
	default:
		fmt.Printf("Unknown chat command %q\n", args[1])
	}
}

// top renders the arena's fastest recorded times as a table.
func (r *repl) top(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: top <arena> [n]")
		return
	}
	limit := 10
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			limit = n
		}
	}
	records, err := r.stats.TopTimes(domain.ArenaID(args[0]), limit)
	if err != nil {
		fmt.Printf("Lookup failed: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("No recorded times.")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Player", "Time (s)", "Ship", "Date"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, rec := range records {
		table.Append([]string{
			strconv.Itoa(i+1),
			rec.Name,
			fmt.Sprintf("%.3f", rec.Seconds()),
			strconv.Itoa(rec.Ship.Number()),
			rec.SetAt.Format("2006-01-02"),
		})
	}
	table.Render()
}

func parseShip(s string) domain.ShipID {
	if s == "spec" {
		return domain.ShipSpec
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 8 {
		return domain.ShipSpec
	}
	return domain.ShipID(n - 1)
}
