package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

func buildTestSnapshot() *tgcsm.Snapshot {
	return &tgcsm.Snapshot{
		Turn:  4,
		Phase: "End of Turn",
		Hexes: map[string]tgcsm.HexSnapshot{
			"B1":  {Owner: tgcsm.PLA, Terrain: tgcsm.TerrainCoastal},
			"B2":  {Owner: tgcsm.ROC, Terrain: tgcsm.TerrainCoastal},
			"A10": {Owner: tgcsm.ROC, Terrain: tgcsm.TerrainUrban, IsVictoryPoint: true},
		},
		Units: []tgcsm.UnitSnapshot{
			// Sole defender survivor, mauled.
			{ID: "ROC_ARM_542_BN1", Faction: tgcsm.ROC, Type: "Armor", Strength: 40, InitialStrength: 100},
			// One landed invader battalion, damaged.
			{ID: "PLA_AMPH_1_BN1", Faction: tgcsm.PLA, Type: "Armor", Strength: 70, InitialStrength: 100},
		},
	}
}

func TestBuildCasualtyMath(t *testing.T) {
	sc := tgcsm.DefaultScenario()
	snap := buildTestSnapshot()

	// 3 of 12 pool battalions landed; only one is still standing.
	s := Build(snap, sc, tgcsm.ROC, 4, 9)

	if s.Winner != tgcsm.ROC || s.Turns != 4 {
		t.Errorf("header = %s/%d, want ROC/4", s.Winner, s.Turns)
	}
	if s.DurationDays != 14 {
		t.Errorf("duration = %v days, want 14", s.DurationDays)
	}
	if s.PLAHexes != 1 || s.ROCHexes != 2 {
		t.Errorf("territory = %d/%d, want 1/2", s.PLAHexes, s.ROCHexes)
	}

	// Defender: 19 of 20 battalions gone outright, the survivor down 60.
	if s.ROCCasualties.UnitsDestroyed != 19 {
		t.Errorf("ROC destroyed = %d, want 19", s.ROCCasualties.UnitsDestroyed)
	}
	if s.ROCCasualties.UnitsDamaged != 1 {
		t.Errorf("ROC damaged = %d, want 1", s.ROCCasualties.UnitsDamaged)
	}
	if s.ROCCasualties.StrengthLost != 19*100+60 {
		t.Errorf("ROC strength lost = %d, want %d", s.ROCCasualties.StrengthLost, 19*100+60)
	}

	// Invader: 2 landed battalions destroyed, 1 damaged for 30.
	if s.PLACasualties.UnitsDestroyed != 2 {
		t.Errorf("PLA destroyed = %d, want 2", s.PLACasualties.UnitsDestroyed)
	}
	if s.PLACasualties.UnitsDamaged != 1 {
		t.Errorf("PLA damaged = %d, want 1", s.PLACasualties.UnitsDamaged)
	}
	if s.PLACasualties.StrengthLost != 230 {
		t.Errorf("PLA strength lost = %d, want 230", s.PLACasualties.StrengthLost)
	}

	if s.PLAForces.Units != 1 || s.PLAForces.TotalStrength != 70 {
		t.Errorf("PLA forces = %d units / %d strength, want 1/70", s.PLAForces.Units, s.PLAForces.TotalStrength)
	}
	if s.ROCForces.ByType["Armor"] != 1 {
		t.Errorf("ROC armor count = %d, want 1", s.ROCForces.ByType["Armor"])
	}
}

func TestPrint(t *testing.T) {
	sc := tgcsm.DefaultScenario()
	s := Build(buildTestSnapshot(), sc, tgcsm.ROC, 4, 9)

	var buf bytes.Buffer
	s.Print(&buf)

	out := buf.String()
	for _, want := range []string{
		"FINAL GAME SUMMARY",
		"Winner: ROC (survival)",
		"4 turns",
		"Uncommitted PLA reserves: 9",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	sc := tgcsm.DefaultScenario()
	snap := buildTestSnapshot()
	s := Build(snap, sc, tgcsm.PLA, 6, 0)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, s, snap); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Summary    *Summary        `json:"summary"`
		FinalState *tgcsm.Snapshot `json:"final_state"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Summary == nil || decoded.Summary.Winner != tgcsm.PLA {
		t.Error("summary did not round-trip")
	}
	if decoded.FinalState == nil || decoded.FinalState.Turn != snap.Turn {
		t.Errorf("final state turn = %v, want %d", decoded.FinalState, snap.Turn)
	}
}
