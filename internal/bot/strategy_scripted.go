package bot

import (
	"sort"

	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

// ScriptedStrategy is the rule-based baseline. The invader presses every
// adjacent attack and advances on Taipei, then Kaohsiung; the defender
// counterattacks, moves to intercept the nearest invader and fortifies
// victory-point garrisons.
type ScriptedStrategy struct {
	grid *tgcsm.Grid
}

func (s *ScriptedStrategy) Name() string { return "scripted" }

func (s *ScriptedStrategy) ChooseActions(snap *tgcsm.Snapshot, legal []tgcsm.Action) []tgcsm.Action {
	if len(legal) == 0 {
		return []tgcsm.Action{{Kind: tgcsm.ActionPass}}
	}
	grid := s.gridFor(snap)

	var chosen []tgcsm.Action
	acted := make(map[string]bool)

	myUnits := unitsOf(snap, snap.ActingFaction)

	// Attacks first. Declaring commits every bundled hex-mate.
	for _, a := range legal {
		if a.Kind != tgcsm.ActionAttack {
			continue
		}
		fresh := false
		for _, uid := range a.AttackerIDs {
			if !acted[uid] {
				fresh = true
				break
			}
		}
		if fresh {
			chosen = append(chosen, a)
			for _, uid := range a.AttackerIDs {
				acted[uid] = true
			}
		}
	}

	if snap.ActingFaction == tgcsm.PLA {
		objective := tgcsm.CapitalHexID
		if snap.Hexes[objective].Owner == tgcsm.PLA {
			objective = "G2" // Kaohsiung
		}
		for _, u := range myUnits {
			if acted[u.ID] || u.Location == "" {
				continue
			}
			if mv, ok := bestMoveToward(grid, legal, u, objective); ok {
				chosen = append(chosen, mv)
				acted[u.ID] = true
			}
		}
	} else {
		enemies := unitsOf(snap, tgcsm.PLA)
		if len(enemies) == 0 {
			return []tgcsm.Action{{Kind: tgcsm.ActionPass}}
		}
		for _, u := range myUnits {
			if acted[u.ID] || u.Location == "" {
				continue
			}
			target := nearestUnit(grid, u.Location, enemies)
			if mv, ok := bestMoveToward(grid, legal, u, target.Location); ok {
				chosen = append(chosen, mv)
				acted[u.ID] = true
			}
		}
		for _, u := range myUnits {
			if acted[u.ID] || u.Location == "" {
				continue
			}
			if !snap.Hexes[u.Location].IsVictoryPoint {
				continue
			}
			for _, a := range legal {
				if a.Kind == tgcsm.ActionFortify && a.UnitID == u.ID {
					chosen = append(chosen, a)
					acted[u.ID] = true
					break
				}
			}
		}
	}

	if len(chosen) == 0 {
		return []tgcsm.Action{{Kind: tgcsm.ActionPass}}
	}
	return chosen
}

// gridFor lazily builds the spatial index from the snapshot's hex IDs.
// The map never changes mid-game, so one build is enough.
func (s *ScriptedStrategy) gridFor(snap *tgcsm.Snapshot) *tgcsm.Grid {
	if s.grid != nil {
		return s.grid
	}
	ids := make([]string, 0, len(snap.Hexes))
	for id := range snap.Hexes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	g, err := tgcsm.NewGrid(ids)
	if err != nil {
		return nil
	}
	s.grid = g
	return g
}

func unitsOf(snap *tgcsm.Snapshot, f tgcsm.Faction) []tgcsm.UnitSnapshot {
	var out []tgcsm.UnitSnapshot
	for _, u := range snap.Units {
		if u.Faction == f && u.Strength > 0 {
			out = append(out, u)
		}
	}
	return out
}

// bestMoveToward picks the unit's legal move whose destination is
// strictly closer to the target than standing still.
func bestMoveToward(grid *tgcsm.Grid, legal []tgcsm.Action, u tgcsm.UnitSnapshot, target string) (tgcsm.Action, bool) {
	if grid == nil || target == "" {
		return tgcsm.Action{}, false
	}
	best := tgcsm.Action{}
	found := false
	minDist := grid.Distance(u.Location, target)
	for _, a := range legal {
		if a.Kind != tgcsm.ActionMove || a.UnitID != u.ID || len(a.Path) == 0 {
			continue
		}
		d := grid.Distance(a.Path[len(a.Path)-1], target)
		if d < minDist {
			minDist = d
			best = a
			found = true
		}
	}
	return best, found
}

func nearestUnit(grid *tgcsm.Grid, from string, units []tgcsm.UnitSnapshot) tgcsm.UnitSnapshot {
	best := units[0]
	if grid == nil {
		return best
	}
	bestDist := tgcsm.DistanceInfinite + 1
	for _, u := range units {
		if u.Location == "" {
			continue
		}
		if d := grid.Distance(from, u.Location); d < bestDist {
			bestDist = d
			best = u
		}
	}
	return best
}
