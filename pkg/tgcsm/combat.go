package tgcsm

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"
)

// SpecialResult is the optional suffix of a combat result code.
type SpecialResult string

const (
	NoSpecial          SpecialResult = ""
	DefenderRetreat    SpecialResult = "DR"
	AttackerRetreat    SpecialResult = "AR"
	DefenderEliminated SpecialResult = "DX"
	AttackerEliminated SpecialResult = "AX"
)

// CombatResult is a decoded combat results table cell.
type CombatResult struct {
	AttackerLoss int
	DefenderLoss int
	Special      SpecialResult
}

var combatResultPattern = regexp.MustCompile(`^A-(\d+)/D-(\d+)(?:_([A-Z]+))?$`)

// ParseCombatResult decodes a result code of the form
// "A-<n>/D-<n>[_DR|_AR|_DX|_AX]".
func ParseCombatResult(code string) (CombatResult, error) {
	m := combatResultPattern.FindStringSubmatch(code)
	if m == nil {
		return CombatResult{}, fmt.Errorf("malformed combat result %q", code)
	}
	aLoss, _ := strconv.Atoi(m[1])
	dLoss, _ := strconv.Atoi(m[2])
	r := CombatResult{AttackerLoss: aLoss, DefenderLoss: dLoss}
	switch SpecialResult(m[3]) {
	case NoSpecial, DefenderRetreat, AttackerRetreat, DefenderEliminated, AttackerEliminated:
		r.Special = SpecialResult(m[3])
	default:
		return CombatResult{}, fmt.Errorf("unknown special result in %q", code)
	}
	return r, nil
}

// oddsColumn maps an odds ratio to a combat table column index.
// Columns: 1:2, 1:1, 2:1, 3:1, 4:1+.
func oddsColumn(odds float64) int {
	switch {
	case odds < 0.75:
		return 0
	case odds < 1.5:
		return 1
	case odds < 2.5:
		return 2
	case odds < 3.5:
		return 3
	default:
		return 4
	}
}

// rollBand maps a d20 roll to a combat table row index.
// Bands: 1-5, 6-10, 11-15, 16-19, 20.
func rollBand(roll int) int {
	switch {
	case roll <= 5:
		return 0
	case roll <= 10:
		return 1
	case roll <= 15:
		return 2
	case roll <= 19:
		return 3
	default:
		return 4
	}
}

// pendingCombat is a combat worked up from a declaration: the live
// attacker and defender groups plus the contested hex.
type pendingCombat struct {
	attackers []*Unit
	defenders []*Unit
	targetHex *Hex
}

// resolveCombat resolves one declared attack. Declarations that went
// stale between declaration and resolution degrade gracefully: no
// surviving attackers is a no-op, and an emptied target hex is captured
// without a fight.
func (e *Engine) resolveCombat(decl Action) {
	var attackers []*Unit
	for _, uid := range decl.AttackerIDs {
		if u, ok := e.units[uid]; ok {
			attackers = append(attackers, u)
		}
	}
	if len(attackers) == 0 {
		return
	}

	targetHex, ok := e.hexes[decl.TargetHex]
	if !ok {
		return
	}

	var defenders []*Unit
	for _, uid := range targetHex.UnitIDs {
		if u := e.units[uid]; u != nil && u.Faction != attackers[0].Faction {
			defenders = append(defenders, u)
		}
	}

	if len(defenders) == 0 {
		targetHex.Owner = attackers[0].Faction
		log.Debug().Str("hex", targetHex.ID).Str("owner", string(targetHex.Owner)).
			Msg("combat cancelled, empty hex captured")
		return
	}

	pc := pendingCombat{attackers: attackers, defenders: defenders, targetHex: targetHex}
	roll := e.rng.Intn(DieSides) + 1
	e.resolveCombatRoll(pc, roll)
}

// resolveCombatRoll applies combat math and the table result for a
// fixed die roll.
func (e *Engine) resolveCombatRoll(pc pendingCombat, roll int) {
	attackPower := 0.0
	for _, u := range pc.attackers {
		attackPower += u.CurrentAttack()
	}
	defensePower := 0.0
	for _, u := range pc.defenders {
		defensePower += u.CurrentDefense()
	}

	defensePower *= e.scenario.TerrainModifierFor(pc.targetHex.Terrain).DefenseMultiplier
	for _, d := range pc.defenders {
		if d.Fortified {
			defensePower *= FortifiedDefenseBonus
			break
		}
	}
	if e.casAvailable[pc.attackers[0].Faction] {
		attackPower *= CloseAirSupportBonus
	}
	for _, a := range pc.attackers {
		if a.Supply == OutOfSupply {
			attackPower *= OutOfSupplyPenalty
			break
		}
	}
	for _, d := range pc.defenders {
		if d.Supply == OutOfSupply {
			defensePower *= OutOfSupplyPenalty
			break
		}
	}

	odds := OverrunOdds
	if defensePower > 0 {
		odds = attackPower / defensePower
	}

	code := e.scenario.CRT[rollBand(roll)][oddsColumn(odds)]
	result, err := ParseCombatResult(code)
	if err != nil {
		log.Warn().Err(err).Str("hex", pc.targetHex.ID).Msg("skipping combat with bad table cell")
		return
	}

	log.Debug().
		Str("hex", pc.targetHex.ID).
		Float64("attack", attackPower).
		Float64("defense", defensePower).
		Float64("odds", odds).
		Int("roll", roll).
		Str("result", code).
		Msg("combat resolved")

	e.applyCombatResult(result, pc)
}

// applyCombatResult applies losses, special outcomes and hex capture.
func (e *Engine) applyCombatResult(r CombatResult, pc pendingCombat) {
	if r.AttackerLoss > 0 {
		for _, u := range pc.attackers {
			u.TakeDamage(r.AttackerLoss)
		}
	}
	if r.DefenderLoss > 0 {
		for _, u := range pc.defenders {
			u.TakeDamage(r.DefenderLoss)
		}
	}

	retreated := make(map[string]bool)
	switch r.Special {
	case DefenderRetreat:
		var toRetreat []*Unit
		for _, d := range pc.defenders {
			if d.Strength > 0 {
				toRetreat = append(toRetreat, d)
				retreated[d.ID] = true
			}
		}
		e.retreatUnits(toRetreat, pc.targetHex, pc.defenders[0].Faction)
	case AttackerRetreat:
		// Attackers fall back to the hexes they attacked from, which is
		// where they already stand.
	case DefenderEliminated:
		for _, d := range pc.defenders {
			d.Strength = 0
		}
	case AttackerEliminated:
		for _, a := range pc.attackers {
			a.Strength = 0
		}
	}

	survivors := false
	for _, d := range pc.defenders {
		if d.Strength > 0 && !retreated[d.ID] {
			survivors = true
			break
		}
	}
	if !survivors && pc.targetHex.Owner != pc.attackers[0].Faction {
		pc.targetHex.Owner = pc.attackers[0].Faction
		log.Debug().Str("hex", pc.targetHex.ID).Str("owner", string(pc.targetHex.Owner)).
			Msg("hex captured")
	}
}

// retreatUnits moves the given units to a random adjacent hex free of
// enemy units and enemy zone of control. With no eligible hex the units
// stand and take extra losses instead.
func (e *Engine) retreatUnits(units []*Unit, from *Hex, f Faction) {
	if len(units) == 0 {
		return
	}

	var eligible []string
	for _, nid := range e.grid.Neighbors(from.ID) {
		if e.hexHoldsEnemy(nid, f) || e.inEnemyZOC(nid, f) {
			continue
		}
		eligible = append(eligible, nid)
	}

	if len(eligible) == 0 {
		for _, u := range units {
			u.TakeDamage(NoRetreatDamage)
		}
		return
	}

	dest := e.hexes[eligible[e.rng.Intn(len(eligible))]]
	for _, u := range units {
		from.removeUnit(u.ID)
		dest.addUnit(u.ID)
		u.Location = dest.ID
		log.Debug().Str("unit", u.ID).Str("to", dest.ID).Msg("unit retreats")
	}
}
