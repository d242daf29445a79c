// Package report computes and prints post-game summaries from a final
// engine snapshot.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

// Casualties aggregates one faction's losses over a game.
type Casualties struct {
	UnitsDestroyed int `json:"units_destroyed"`
	UnitsDamaged   int `json:"units_damaged"`
	StrengthLost   int `json:"total_strength_lost"`
}

// ForceStatus summarizes a faction's surviving forces.
type ForceStatus struct {
	Units         int            `json:"units"`
	TotalStrength int            `json:"total_strength"`
	ByType        map[string]int `json:"by_type"`
}

// Summary is the full post-game report.
type Summary struct {
	Winner        tgcsm.Faction `json:"winner"`
	Turns         int           `json:"turns"`
	DurationDays  float64       `json:"duration_days"`
	PLAForces     ForceStatus   `json:"pla_forces"`
	ROCForces     ForceStatus   `json:"roc_forces"`
	PLACasualties Casualties    `json:"pla_casualties"`
	ROCCasualties Casualties    `json:"roc_casualties"`
	PLAHexes      int           `json:"pla_hexes"`
	ROCHexes      int           `json:"roc_hexes"`
	PoolRemaining int           `json:"pool_remaining"`
}

// Build assembles a summary from the final snapshot, the scenario the
// game was built from, and the terminal engine outcome.
func Build(snap *tgcsm.Snapshot, sc *tgcsm.Scenario, winner tgcsm.Faction, turns, poolRemaining int) *Summary {
	s := &Summary{
		Winner:        winner,
		Turns:         turns,
		DurationDays:  float64(turns) * tgcsm.TurnDurationDays,
		PLAForces:     forceStatus(snap, tgcsm.PLA),
		ROCForces:     forceStatus(snap, tgcsm.ROC),
		PoolRemaining: poolRemaining,
	}

	for _, h := range snap.Hexes {
		if h.Owner == tgcsm.PLA {
			s.PLAHexes++
		} else {
			s.ROCHexes++
		}
	}

	s.ROCCasualties = defenderCasualties(snap, sc)
	s.PLACasualties = invaderCasualties(snap, sc, poolRemaining)
	return s
}

func forceStatus(snap *tgcsm.Snapshot, f tgcsm.Faction) ForceStatus {
	fs := ForceStatus{ByType: make(map[string]int)}
	for _, u := range snap.Units {
		if u.Faction != f || u.Strength <= 0 {
			continue
		}
		fs.Units++
		fs.TotalStrength += u.Strength
		fs.ByType[u.Type]++
	}
	return fs
}

// defenderCasualties compares the defender's order of battle against
// the surviving roster. Missing units count their full initial
// strength as lost.
func defenderCasualties(snap *tgcsm.Snapshot, sc *tgcsm.Scenario) Casualties {
	alive := make(map[string]tgcsm.UnitSnapshot)
	for _, u := range snap.Units {
		if u.Faction == tgcsm.ROC {
			alive[u.ID] = u
		}
	}

	var c Casualties
	for _, rec := range sc.DefenderOOB {
		u, ok := alive[rec.ID]
		if !ok {
			c.UnitsDestroyed++
			c.StrengthLost += rec.InitialStrength
			continue
		}
		if u.Strength < rec.InitialStrength {
			c.UnitsDamaged++
			c.StrengthLost += rec.InitialStrength - u.Strength
		}
	}
	return c
}

// invaderCasualties counts losses among landed invader units only.
// Units still in the reinforcement pool were never at risk.
func invaderCasualties(snap *tgcsm.Snapshot, sc *tgcsm.Scenario, poolRemaining int) Casualties {
	var c Casualties
	inPlay := 0
	for _, u := range snap.Units {
		if u.Faction != tgcsm.PLA {
			continue
		}
		inPlay++
		if u.Strength < u.InitialStrength {
			c.UnitsDamaged++
			c.StrengthLost += u.InitialStrength - u.Strength
		}
	}

	deployed := len(sc.InvaderPool) - poolRemaining
	if destroyed := deployed - inPlay; destroyed > 0 {
		c.UnitsDestroyed = destroyed
		c.StrengthLost += destroyed * 100
	}
	return c
}

// Print writes a human-readable report.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "============ FINAL GAME SUMMARY ============")
	fmt.Fprintf(w, "Duration: %d turns (%.1f days)\n", s.Turns, s.DurationDays)
	switch s.Winner {
	case tgcsm.PLA:
		fmt.Fprintln(w, "Winner: PLA (conquest, capital captured)")
	case tgcsm.ROC:
		fmt.Fprintln(w, "Winner: ROC (survival)")
	default:
		fmt.Fprintln(w, "Result: undecided")
	}

	printForce(w, "PLA", s.PLAForces)
	printForce(w, "ROC", s.ROCForces)

	total := s.PLAHexes + s.ROCHexes
	if total > 0 {
		fmt.Fprintf(w, "\nTerritory: PLA %d hexes (%.1f%%), ROC %d hexes (%.1f%%)\n",
			s.PLAHexes, 100*float64(s.PLAHexes)/float64(total),
			s.ROCHexes, 100*float64(s.ROCHexes)/float64(total))
	}

	printCasualties(w, "PLA", s.PLACasualties)
	printCasualties(w, "ROC", s.ROCCasualties)

	if s.PoolRemaining > 0 {
		fmt.Fprintf(w, "\nUncommitted PLA reserves: %d battalions\n", s.PoolRemaining)
	}
}

func printForce(w io.Writer, name string, fs ForceStatus) {
	fmt.Fprintf(w, "\n%s forces: %d units, total strength %d\n", name, fs.Units, fs.TotalStrength)
	types := make([]string, 0, len(fs.ByType))
	for t := range fs.ByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(w, "  %s: %d\n", t, fs.ByType[t])
	}
}

func printCasualties(w io.Writer, name string, c Casualties) {
	fmt.Fprintf(w, "\n%s casualties: %d strength points (%d destroyed, %d damaged)\n",
		name, c.StrengthLost, c.UnitsDestroyed, c.UnitsDamaged)
}

// WriteJSON emits the summary and final snapshot as one JSON document.
func WriteJSON(w io.Writer, s *Summary, snap *tgcsm.Snapshot) error {
	out := struct {
		Summary    *Summary        `json:"summary"`
		FinalState *tgcsm.Snapshot `json:"final_state"`
	}{Summary: s, FinalState: snap}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
