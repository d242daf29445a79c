package tgcsm

import "github.com/rs/zerolog/log"

// supplyPhase re-evaluates supply for every deployed unit. A unit in
// supply resets its out-of-supply counter; one cut off increments it.
func (e *Engine) supplyPhase() {
	e.phase = PhaseSupply
	for _, id := range e.unitOrder {
		u, ok := e.units[id]
		if !ok || u.Location == "" {
			continue
		}
		if e.unitInSupply(u) {
			u.Supply = InSupply
			u.TurnsOutOfSupply = 0
		} else {
			u.Supply = OutOfSupply
			u.TurnsOutOfSupply++
			log.Debug().Str("unit", u.ID).Int("turns", u.TurnsOutOfSupply).
				Msg("unit out of supply")
		}
	}
}

// unitInSupply searches outward from the unit's hex for a supply
// source within MaxSupplyDistance hops. The line may not pass through
// hexes in enemy zone of control; the unit's own hex always counts
// even when contested.
func (e *Engine) unitInSupply(u *Unit) bool {
	type node struct {
		hexID string
		depth int
	}

	queue := []node{{hexID: u.Location}}
	visited := map[string]bool{u.Location: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if e.isSupplySource(cur.hexID, u.Faction) {
			return true
		}
		if cur.depth >= MaxSupplyDistance {
			continue
		}
		for _, nid := range e.grid.Neighbors(cur.hexID) {
			if visited[nid] || e.inEnemyZOC(nid, u.Faction) {
				continue
			}
			visited[nid] = true
			queue = append(queue, node{hexID: nid, depth: cur.depth + 1})
		}
	}
	return false
}

// isSupplySource reports whether a hex can anchor a supply line for the
// faction. The defender draws supply from the easternmost column band;
// the invader needs an owned operational port or airfield, or any owned
// coastal hex during the beachhead grace turns.
func (e *Engine) isSupplySource(hexID string, f Faction) bool {
	h, ok := e.hexes[hexID]
	if !ok {
		return false
	}

	if f == ROC {
		c, ok := e.grid.Coord(hexID)
		return ok && c.Q >= DefenderSupplyColumn
	}

	if h.Owner == PLA {
		if h.IsPort && h.PortStatus == Operational {
			return true
		}
		if h.IsAirfield && h.AirfieldStatus == Operational {
			return true
		}
		if e.turn <= BeachheadGraceTurns && h.Terrain == TerrainCoastal {
			return true
		}
	}
	return false
}

// logisticsPhase lands invader reinforcements. Each turn spends up to
// the current lift capacity, taking pool units in order and skipping
// any too expensive for the remaining budget. Units come ashore at the
// invader-owned coastal hex with the fewest occupants.
func (e *Engine) logisticsPhase() {
	e.phase = PhaseLogistics

	budget := e.liftCapacity
	var landingZones []*Hex
	for _, hid := range e.hexOrder {
		h := e.hexes[hid]
		if h.Terrain == TerrainCoastal && h.Owner == PLA {
			landingZones = append(landingZones, h)
		}
	}
	if len(landingZones) == 0 {
		if len(e.pool) > 0 {
			log.Debug().Int("pool", len(e.pool)).Msg("no landing zones for reinforcements")
		}
		return
	}

	remaining := e.pool[:0]
	for _, u := range e.pool {
		if float64(u.LiftCost) > budget {
			remaining = append(remaining, u)
			continue
		}
		budget -= float64(u.LiftCost)

		zone := landingZones[0]
		for _, h := range landingZones[1:] {
			if len(h.UnitIDs) < len(zone.UnitIDs) {
				zone = h
			}
		}
		u.Location = zone.ID
		e.units[u.ID] = u
		e.unitOrder = append(e.unitOrder, u.ID)
		zone.addUnit(u.ID)
		log.Debug().Str("unit", u.ID).Str("hex", zone.ID).Float64("lift_remaining", budget).
			Msg("reinforcement landed")
	}
	e.pool = remaining
}
