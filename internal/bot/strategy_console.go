package bot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

// ConsoleStrategy drives a faction from terminal input. It prints the
// unit roster and menus of legal actions, and collects orders until the
// player ends the turn.
type ConsoleStrategy struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsoleStrategy reads from stdin and writes to stdout.
func NewConsoleStrategy() *ConsoleStrategy {
	return &ConsoleStrategy{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
}

// NewConsoleStrategyIO allows injecting reader and writer for tests.
func NewConsoleStrategyIO(r io.Reader, w io.Writer) *ConsoleStrategy {
	return &ConsoleStrategy{in: bufio.NewScanner(r), out: w}
}

func (s *ConsoleStrategy) Name() string { return "console" }

func (s *ConsoleStrategy) ChooseActions(snap *tgcsm.Snapshot, legal []tgcsm.Action) []tgcsm.Action {
	fmt.Fprintf(s.out, "\n--- %s player, turn %d ---\n", snap.ActingFaction, snap.Turn)
	s.printRoster(snap)

	moves := filterActions(legal, tgcsm.ActionMove)
	attacks := filterActions(legal, tgcsm.ActionAttack)
	fortifies := filterActions(legal, tgcsm.ActionFortify)
	arty := filterActions(legal, tgcsm.ActionArtillerySupport)

	var chosen []tgcsm.Action
	for {
		fmt.Fprintf(s.out, "\n1) move  2) attack  3) fortify  4) artillery  5) end turn\n")
		switch s.prompt("choice: ") {
		case "1":
			if a, ok := s.pickAction(moves); ok {
				chosen = append(chosen, a)
				moves = dropUnitActions(moves, a.UnitID)
			}
		case "2":
			if a, ok := s.pickAction(attacks); ok {
				chosen = append(chosen, a)
			}
		case "3":
			if a, ok := s.pickAction(fortifies); ok {
				chosen = append(chosen, a)
				fortifies = dropUnitActions(fortifies, a.UnitID)
			}
		case "4":
			if a, ok := s.pickAction(arty); ok {
				chosen = append(chosen, a)
			}
		case "5", "":
			if len(chosen) == 0 {
				return []tgcsm.Action{{Kind: tgcsm.ActionPass}}
			}
			return chosen
		}
		if len(chosen) > 0 {
			fmt.Fprintf(s.out, "orders so far: %d\n", len(chosen))
		}
	}
}

func (s *ConsoleStrategy) printRoster(snap *tgcsm.Snapshot) {
	for _, u := range snap.Units {
		if u.Faction != snap.ActingFaction || u.Strength <= 0 {
			continue
		}
		fmt.Fprintf(s.out, "  %s: %s at %s (str %d, moved %v, attacked %v)\n",
			u.ID, u.Type, u.Location, u.Strength, u.HasMoved, u.HasAttacked)
	}
}

// pickAction lists up to 10 options and reads an index.
func (s *ConsoleStrategy) pickAction(opts []tgcsm.Action) (tgcsm.Action, bool) {
	if len(opts) == 0 {
		fmt.Fprintln(s.out, "  nothing available")
		return tgcsm.Action{}, false
	}
	limit := len(opts)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(s.out, "  %d: %s\n", i, opts[i].Describe())
	}
	raw := s.prompt("index (or 'back'): ")
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= len(opts) {
		return tgcsm.Action{}, false
	}
	return opts[idx], true
}

func (s *ConsoleStrategy) prompt(msg string) string {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func filterActions(legal []tgcsm.Action, kind tgcsm.ActionKind) []tgcsm.Action {
	var out []tgcsm.Action
	for _, a := range legal {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

func dropUnitActions(opts []tgcsm.Action, unitID string) []tgcsm.Action {
	var out []tgcsm.Action
	for _, a := range opts {
		if a.UnitID != unitID {
			out = append(out, a)
		}
	}
	return out
}
