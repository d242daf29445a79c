package tgcsm

import "testing"

func TestDefaultScenarioMap(t *testing.T) {
	sc := DefaultScenario()

	if len(sc.Hexes) != 130 {
		t.Fatalf("map has %d hexes, want 130", len(sc.Hexes))
	}

	seen := make(map[string]bool)
	for _, h := range sc.Hexes {
		if seen[h.ID] {
			t.Errorf("duplicate hex id %s", h.ID)
		}
		seen[h.ID] = true
		if h.InitialOwner != ROC {
			t.Errorf("hex %s initial owner = %s, want ROC", h.ID, h.InitialOwner)
		}
		if _, ok := sc.Terrain[h.Terrain]; !ok {
			t.Errorf("hex %s has unknown terrain %q", h.ID, h.Terrain)
		}
	}

	capital := false
	for _, h := range sc.Hexes {
		if h.ID == CapitalHexID {
			capital = true
			if !h.IsVictoryPoint {
				t.Error("capital hex is not a victory point")
			}
		}
	}
	if !capital {
		t.Fatalf("capital hex %s missing from map", CapitalHexID)
	}
}

func TestDefaultScenarioOrdersOfBattle(t *testing.T) {
	sc := DefaultScenario()

	if len(sc.DefenderOOB) != 20 {
		t.Errorf("defender OOB has %d units, want 20", len(sc.DefenderOOB))
	}
	if len(sc.InvaderPool) != 12 {
		t.Errorf("invader pool has %d units, want 12", len(sc.InvaderPool))
	}

	hexes := make(map[string]bool)
	for _, h := range sc.Hexes {
		hexes[h.ID] = true
	}

	for _, rec := range sc.DefenderOOB {
		if rec.Location == "" || !hexes[rec.Location] {
			t.Errorf("defender unit %s placed at unknown hex %q", rec.ID, rec.Location)
		}
		if _, ok := sc.Templates[rec.TemplateID]; !ok {
			t.Errorf("defender unit %s uses unknown template %q", rec.ID, rec.TemplateID)
		}
	}
	for _, rec := range sc.InvaderPool {
		if rec.Location != "" {
			t.Errorf("pool unit %s should start without a location", rec.ID)
		}
		if rec.LiftCost <= 0 {
			t.Errorf("pool unit %s has no lift cost", rec.ID)
		}
		if _, ok := sc.Templates[rec.TemplateID]; !ok {
			t.Errorf("pool unit %s uses unknown template %q", rec.ID, rec.TemplateID)
		}
	}

	for id, tmpl := range sc.Templates {
		for _, entry := range tmpl.Equipment {
			if _, ok := sc.Equipment[entry.EquipmentID]; !ok {
				t.Errorf("template %s references unknown equipment %q", id, entry.EquipmentID)
			}
		}
	}
}

func TestCombatTableCellsParse(t *testing.T) {
	sc := DefaultScenario()
	for row := range sc.CRT {
		for col := range sc.CRT[row] {
			cell := sc.CRT[row][col]
			r, err := ParseCombatResult(cell)
			if err != nil {
				t.Errorf("CRT[%d][%d] = %q: %v", row, col, cell, err)
				continue
			}
			switch r.Special {
			case NoSpecial, DefenderRetreat, AttackerRetreat, DefenderEliminated, AttackerEliminated:
			default:
				t.Errorf("CRT[%d][%d] = %q has unexpected special %q", row, col, cell, r.Special)
			}
		}
	}
}

func TestTerrainModifierFallback(t *testing.T) {
	sc := DefaultScenario()
	m := sc.TerrainModifierFor(TerrainType("Swamp"))
	if m.MoveCost != 1.0 || m.DefenseMultiplier != 1.0 {
		t.Errorf("unknown terrain modifiers = %+v, want neutral", m)
	}
	if got := sc.TerrainModifierFor(TerrainMountain); got.MoveCost != 4.0 || got.DefenseMultiplier != 1.8 {
		t.Errorf("mountain modifiers = %+v", got)
	}
}

func TestWithBeachhead(t *testing.T) {
	sc := DefaultScenario().WithBeachhead("B1", "B2")
	flipped := 0
	for _, h := range sc.Hexes {
		if h.ID == "B1" || h.ID == "B2" {
			if h.InitialOwner != PLA {
				t.Errorf("hex %s owner = %s, want PLA", h.ID, h.InitialOwner)
			}
			flipped++
		} else if h.InitialOwner != ROC {
			t.Errorf("hex %s owner flipped unexpectedly", h.ID)
		}
	}
	if flipped != 2 {
		t.Errorf("flipped %d hexes, want 2", flipped)
	}
}
