package bot

import (
	"testing"

	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

// testSnapshot builds a minimal snapshot over the given hexes, all
// plains and defender-owned unless adjusted by the caller.
func testSnapshot(f tgcsm.Faction, hexIDs []string, units []tgcsm.UnitSnapshot) *tgcsm.Snapshot {
	hexes := make(map[string]tgcsm.HexSnapshot, len(hexIDs))
	for _, id := range hexIDs {
		hexes[id] = tgcsm.HexSnapshot{Name: id, Terrain: tgcsm.TerrainPlains, Owner: tgcsm.ROC}
	}
	return &tgcsm.Snapshot{
		Turn:          1,
		ActingFaction: f,
		Hexes:         hexes,
		Units:         units,
	}
}

// northCorridor is a straight line of hexes ending at the capital.
var northCorridor = []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10"}

func TestParseFactionConfig(t *testing.T) {
	tests := []struct {
		in       string
		pla, roc string
	}{
		{"", "scripted", "scripted"},
		{"pla=gonnx,roc=console", "gonnx", "console"},
		{"*=random", "random", "random"},
		{"pla=hold", "hold", "scripted"},
		{"roc=hold,*=random", "random", "hold"},
		{"PLA=hold, roc = console", "hold", "console"},
		{"garbage", "scripted", "scripted"},
	}
	for _, tc := range tests {
		got := ParseFactionConfig(tc.in)
		if got[tgcsm.PLA] != tc.pla || got[tgcsm.ROC] != tc.roc {
			t.Errorf("ParseFactionConfig(%q) = pla:%s roc:%s, want pla:%s roc:%s",
				tc.in, got[tgcsm.PLA], got[tgcsm.ROC], tc.pla, tc.roc)
		}
	}
}

func TestStrategyForName(t *testing.T) {
	for name, want := range map[string]string{
		"hold":    "hold",
		"random":  "random",
		"console": "console",
	} {
		s := StrategyForName(name)
		if s == nil || s.Name() != want {
			t.Errorf("StrategyForName(%q).Name() = %q, want %q", name, s.Name(), want)
		}
	}

	// Unknown names fall back to the scripted baseline.
	if s := StrategyForName("nope"); s.Name() != "scripted" {
		t.Errorf("unknown name resolved to %q, want scripted", s.Name())
	}
	// With no model on disk, gonnx still returns a usable strategy.
	if s := StrategyForName("gonnx"); s == nil {
		t.Error("gonnx resolved to nil")
	}
}

func TestHoldStrategy(t *testing.T) {
	legal := []tgcsm.Action{
		{Kind: tgcsm.ActionMove, UnitID: "U1", Path: []string{"A1", "A2"}},
		{Kind: tgcsm.ActionFortify, UnitID: "U1"},
		{Kind: tgcsm.ActionFortify, UnitID: "U2"},
		{Kind: tgcsm.ActionPass},
	}
	chosen := HoldStrategy{}.ChooseActions(nil, legal)
	if len(chosen) != 2 {
		t.Fatalf("chose %d actions, want 2 fortifies", len(chosen))
	}
	for _, a := range chosen {
		if a.Kind != tgcsm.ActionFortify {
			t.Errorf("chose %s, want only fortifies", a.Kind)
		}
	}

	chosen = HoldStrategy{}.ChooseActions(nil, []tgcsm.Action{{Kind: tgcsm.ActionPass}})
	if len(chosen) != 1 || chosen[0].Kind != tgcsm.ActionPass {
		t.Errorf("with nothing to fortify chose %v, want pass", chosen)
	}
}

func TestRandomStrategyOnePerUnit(t *testing.T) {
	SeedBotRng(42)
	defer ResetBotRng()

	legal := []tgcsm.Action{
		{Kind: tgcsm.ActionMove, UnitID: "U1", Path: []string{"A1", "A2"}},
		{Kind: tgcsm.ActionMove, UnitID: "U1", Path: []string{"A1", "A2", "A3"}},
		{Kind: tgcsm.ActionFortify, UnitID: "U1"},
		{Kind: tgcsm.ActionMove, UnitID: "U2", Path: []string{"A5", "A4"}},
		{Kind: tgcsm.ActionFortify, UnitID: "U2"},
		{Kind: tgcsm.ActionPass},
	}
	chosen := RandomStrategy{}.ChooseActions(nil, legal)

	if len(chosen) == 0 {
		t.Fatal("random strategy chose nothing despite available orders")
	}
	perUnit := make(map[string]int)
	for _, a := range chosen {
		if a.Kind == tgcsm.ActionPass {
			continue
		}
		perUnit[a.UnitID]++
	}
	for uid, n := range perUnit {
		if n > 1 {
			t.Errorf("unit %s was given %d orders", uid, n)
		}
	}
}

func TestScriptedInvaderAdvancesOnCapital(t *testing.T) {
	units := []tgcsm.UnitSnapshot{
		{ID: "U1", Faction: tgcsm.PLA, Strength: 100, Location: "A1"},
	}
	snap := testSnapshot(tgcsm.PLA, northCorridor, units)
	legal := []tgcsm.Action{
		{Kind: tgcsm.ActionMove, UnitID: "U1", Path: []string{"A1", "A2"}},
		{Kind: tgcsm.ActionMove, UnitID: "U1", Path: []string{"A1", "A2", "A3"}},
		{Kind: tgcsm.ActionFortify, UnitID: "U1"},
		{Kind: tgcsm.ActionPass},
	}

	chosen := (&ScriptedStrategy{}).ChooseActions(snap, legal)

	if len(chosen) != 1 || chosen[0].Kind != tgcsm.ActionMove {
		t.Fatalf("chose %v, want a single move", chosen)
	}
	if dest := chosen[0].Path[len(chosen[0].Path)-1]; dest != "A3" {
		t.Errorf("advanced to %s, want the deepest hex A3", dest)
	}
}

func TestScriptedAttacksBeforeMoving(t *testing.T) {
	units := []tgcsm.UnitSnapshot{
		{ID: "U1", Faction: tgcsm.PLA, Strength: 100, Location: "A1"},
		{ID: "DEF", Faction: tgcsm.ROC, Strength: 100, Location: "A2"},
	}
	snap := testSnapshot(tgcsm.PLA, northCorridor, units)
	legal := []tgcsm.Action{
		{Kind: tgcsm.ActionAttack, AttackerIDs: []string{"U1"}, TargetHex: "A2"},
		{Kind: tgcsm.ActionMove, UnitID: "U1", Path: []string{"A1", "A2"}},
		{Kind: tgcsm.ActionPass},
	}

	chosen := (&ScriptedStrategy{}).ChooseActions(snap, legal)

	if len(chosen) != 1 || chosen[0].Kind != tgcsm.ActionAttack {
		t.Fatalf("chose %v, want only the attack", chosen)
	}
}

func TestScriptedDefenderIntercepts(t *testing.T) {
	units := []tgcsm.UnitSnapshot{
		{ID: "U1", Faction: tgcsm.ROC, Strength: 100, Location: "A8"},
		{ID: "INV", Faction: tgcsm.PLA, Strength: 100, Location: "A1"},
	}
	snap := testSnapshot(tgcsm.ROC, northCorridor, units)
	legal := []tgcsm.Action{
		{Kind: tgcsm.ActionMove, UnitID: "U1", Path: []string{"A8", "A9"}},
		{Kind: tgcsm.ActionMove, UnitID: "U1", Path: []string{"A8", "A7"}},
		{Kind: tgcsm.ActionPass},
	}

	chosen := (&ScriptedStrategy{}).ChooseActions(snap, legal)

	if len(chosen) != 1 || chosen[0].Kind != tgcsm.ActionMove {
		t.Fatalf("chose %v, want a single move", chosen)
	}
	if dest := chosen[0].Path[len(chosen[0].Path)-1]; dest != "A7" {
		t.Errorf("moved to %s, want A7 toward the invader", dest)
	}
}

func TestScriptedDefenderGarrisonsVictoryPoints(t *testing.T) {
	units := []tgcsm.UnitSnapshot{
		{ID: "U1", Faction: tgcsm.ROC, Strength: 100, Location: "A10"},
		{ID: "INV", Faction: tgcsm.PLA, Strength: 100, Location: "A1"},
	}
	snap := testSnapshot(tgcsm.ROC, northCorridor, units)
	capital := snap.Hexes["A10"]
	capital.IsVictoryPoint = true
	snap.Hexes["A10"] = capital

	// Nowhere to move: the garrison digs in.
	legal := []tgcsm.Action{
		{Kind: tgcsm.ActionFortify, UnitID: "U1"},
		{Kind: tgcsm.ActionPass},
	}
	chosen := (&ScriptedStrategy{}).ChooseActions(snap, legal)

	if len(chosen) != 1 || chosen[0].Kind != tgcsm.ActionFortify {
		t.Fatalf("chose %v, want the garrison fortify", chosen)
	}
}
