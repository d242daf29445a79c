package tgcsm

import (
	"sort"
	"testing"
)

// corridorScenario is a bare ten-hex west-east strip with no units,
// handy for pinning down movement and supply-line behavior.
func corridorScenario() *Scenario {
	sc := DefaultScenario()
	sc.Hexes = nil
	for _, id := range []string{"A1", "B1", "C1", "D1", "E1", "F1", "G1", "H1", "I1", "J1"} {
		sc.Hexes = append(sc.Hexes, HexRecord{ID: id, Name: "Corridor", Terrain: TerrainPlains, InitialOwner: ROC})
	}
	sc.DefenderOOB = nil
	sc.InvaderPool = nil
	return sc
}

func moveDestinations(actions []Action, unitID string) []string {
	var dests []string
	for _, a := range actions {
		if a.Kind == ActionMove && a.UnitID == unitID {
			dests = append(dests, a.Path[len(a.Path)-1])
		}
	}
	sort.Strings(dests)
	return dests
}

func TestLegalActionsAlwaysHasPass(t *testing.T) {
	e := newCombatTestEngine(t)

	actions := e.LegalActions(ROC)
	if len(actions) != 1 || actions[0].Kind != ActionPass {
		t.Fatalf("actions for empty faction = %v, want just pass", actions)
	}
}

func TestLegalActionsSpentUnit(t *testing.T) {
	e := newTestEngine(t, corridorScenario())
	u := &Unit{ID: "U1", Faction: ROC, Type: Infantry, Strength: 100, MovementPoints: 4, Location: "B1", HasMoved: true}
	placeTestUnit(e, u)

	actions := e.LegalActions(ROC)
	if len(actions) != 1 || actions[0].Kind != ActionPass {
		t.Errorf("spent unit generated %v, want just pass", actions)
	}
}

// An immobile unit never moves regardless of the ground it sits on,
// but keeps its attack, fortify and pass options on every terrain in
// the terrain table.
func TestLegalActionsZeroMovement(t *testing.T) {
	var terrains []string
	for tt := range DefaultScenario().Terrain {
		terrains = append(terrains, string(tt))
	}
	sort.Strings(terrains)

	for _, terrain := range terrains {
		t.Run(terrain, func(t *testing.T) {
			sc := corridorScenario()
			for i := range sc.Hexes {
				sc.Hexes[i].Terrain = TerrainType(terrain)
			}
			e := newTestEngine(t, sc)
			u := &Unit{ID: "U1", Faction: ROC, Type: Infantry, Strength: 100, MovementPoints: 0, Location: "B1"}
			enemy := &Unit{ID: "E1U", Faction: PLA, Type: Infantry, Strength: 100, Location: "A1"}
			placeTestUnit(e, u)
			placeTestUnit(e, enemy)

			actions := e.LegalActions(ROC)

			var kinds []ActionKind
			for _, a := range actions {
				kinds = append(kinds, a.Kind)
			}
			if len(moveDestinations(actions, "U1")) != 0 {
				t.Errorf("immobile unit generated moves: %v", kinds)
			}
			var sawAttack, sawFortify bool
			for _, a := range actions {
				switch a.Kind {
				case ActionAttack:
					sawAttack = true
					if a.TargetHex != "A1" {
						t.Errorf("attack target = %s, want A1", a.TargetHex)
					}
				case ActionFortify:
					sawFortify = true
				}
			}
			if !sawAttack || !sawFortify {
				t.Errorf("actions missing attack or fortify: %v", kinds)
			}
			if actions[len(actions)-1].Kind != ActionPass {
				t.Error("pass should close the action list")
			}
		})
	}
}

// Zone of control lets a unit enter a controlled hex but not push past
// it: an armor battalion at A1 facing enemy armor at D1 can reach B1
// and stop in C1, but never threads through to E1 and beyond.
func TestMoveActionsStopInZOC(t *testing.T) {
	e := newTestEngine(t, corridorScenario())
	u := &Unit{ID: "U1", Faction: ROC, Type: Armor, Strength: 100, MovementPoints: 6, Location: "A1"}
	enemy := &Unit{ID: "E1U", Faction: PLA, Type: Armor, Strength: 100, Location: "D1"}
	placeTestUnit(e, u)
	placeTestUnit(e, enemy)

	dests := moveDestinations(e.LegalActions(ROC), "U1")
	want := []string{"B1", "C1"}
	if len(dests) != len(want) {
		t.Fatalf("destinations = %v, want %v", dests, want)
	}
	for i := range want {
		if dests[i] != want[i] {
			t.Fatalf("destinations = %v, want %v", dests, want)
		}
	}
}

func TestMoveActionsTerrainCost(t *testing.T) {
	// On the stock map B10 sits between hills and mountains; a movement
	// allowance of 2 buys exactly the adjacent hill hexes.
	e := newCombatTestEngine(t)
	u := &Unit{ID: "U1", Faction: ROC, Type: Infantry, Strength: 100, MovementPoints: 2, Location: "B10"}
	placeTestUnit(e, u)

	moves := 0
	for _, a := range e.LegalActions(ROC) {
		if a.Kind != ActionMove {
			continue
		}
		moves++
		if a.Path[0] != "B10" {
			t.Errorf("path %v does not start at the unit's hex", a.Path)
		}
		total := 0.0
		for _, hid := range a.Path[1:] {
			total += e.scenario.TerrainModifierFor(e.hexes[hid].Terrain).MoveCost
		}
		if total > 2 {
			t.Errorf("path %v costs %v on 2 movement points", a.Path, total)
		}
	}
	if moves == 0 {
		t.Error("no moves generated from B10")
	}
}

// Two friendly units stacked next to an enemy hex produce a single
// attack declaration carrying both of them.
func TestAttackDeduplication(t *testing.T) {
	e := newTestEngine(t, corridorScenario())
	u1 := &Unit{ID: "U1", Faction: ROC, Type: Armor, Strength: 100, MovementPoints: 6, Location: "B1"}
	u2 := &Unit{ID: "U2", Faction: ROC, Type: Infantry, Strength: 100, MovementPoints: 4, Location: "B1"}
	enemy := &Unit{ID: "E1U", Faction: PLA, Type: Infantry, Strength: 100, Location: "A1"}
	placeTestUnit(e, u1)
	placeTestUnit(e, u2)
	placeTestUnit(e, enemy)

	var attacks []Action
	for _, a := range e.LegalActions(ROC) {
		if a.Kind == ActionAttack {
			attacks = append(attacks, a)
		}
	}
	if len(attacks) != 1 {
		t.Fatalf("attack declarations = %d, want 1", len(attacks))
	}
	if attacks[0].TargetHex != "A1" {
		t.Errorf("target = %s, want A1", attacks[0].TargetHex)
	}
	if len(attacks[0].AttackerIDs) != 2 {
		t.Errorf("attackers = %v, want both stacked units", attacks[0].AttackerIDs)
	}
}

func TestArtilleryActions(t *testing.T) {
	e := newTestEngine(t, corridorScenario())
	arty := &Unit{ID: "ARTY", Faction: ROC, Type: Artillery, Strength: 100, MovementPoints: 4, Location: "C1"}
	near := &Unit{ID: "NEAR", Faction: PLA, Type: Infantry, Strength: 100, Location: "B1"}
	far := &Unit{ID: "FAR", Faction: PLA, Type: Infantry, Strength: 100, Location: "G1"}
	placeTestUnit(e, arty)
	placeTestUnit(e, near)
	placeTestUnit(e, far)

	var supports []string
	for _, a := range e.LegalActions(ROC) {
		switch a.Kind {
		case ActionAttack:
			t.Errorf("artillery initiated an attack on %s", a.TargetHex)
		case ActionArtillerySupport:
			supports = append(supports, a.TargetHex)
		}
	}
	// B1 is adjacent, G1 is four hexes out.
	if len(supports) != 1 || supports[0] != "B1" {
		t.Errorf("support targets = %v, want [B1]", supports)
	}
}
