package tgcsm

// LegalActions generates every valid action for the faction in the
// current state. Pass is always present, so the slice is never empty.
func (e *Engine) LegalActions(f Faction) []Action {
	var actions []Action
	declaredTargets := make(map[string]bool)

	for _, id := range e.unitOrder {
		u, ok := e.units[id]
		if !ok || u.Faction != f || !u.CanAct() || u.Location == "" {
			continue
		}

		actions = append(actions, e.moveActions(u)...)

		// One attack declaration per target hex per faction. Artillery
		// and engineers cannot initiate an assault, though hex-mates of
		// an initiating unit still join it.
		if u.Type != Artillery && u.Type != Engineer {
			for _, nid := range e.grid.Neighbors(u.Location) {
				if declaredTargets[nid] {
					continue
				}
				if !e.hexHoldsEnemy(nid, f) {
					continue
				}
				var attackers []string
				for _, aid := range e.hexes[u.Location].UnitIDs {
					a := e.units[aid]
					if a != nil && a.Faction == f && !a.HasAttacked {
						attackers = append(attackers, aid)
					}
				}
				if len(attackers) > 0 {
					actions = append(actions, Action{
						Kind:        ActionAttack,
						AttackerIDs: attackers,
						TargetHex:   nid,
					})
					declaredTargets[nid] = true
				}
			}
		}

		if u.Type == Artillery {
			for _, hid := range e.hexOrder {
				if e.hexHoldsEnemy(hid, f) && e.grid.Distance(u.Location, hid) <= ArtilleryRange {
					actions = append(actions, Action{
						Kind:      ActionArtillerySupport,
						UnitID:    u.ID,
						TargetHex: hid,
					})
				}
			}
		}

		actions = append(actions, Action{Kind: ActionFortify, UnitID: u.ID})
	}

	actions = append(actions, Action{Kind: ActionPass})
	return actions
}

// moveActions runs a breadth-first reachability search from the unit's
// hex under its movement-point budget. Entering a hex costs that hex's
// terrain factor. A hex in enemy zone of control may be entered but
// never moved through.
func (e *Engine) moveActions(u *Unit) []Action {
	type node struct {
		hexID       string
		path        []string
		remainingMP float64
	}

	var actions []Action
	queue := []node{{hexID: u.Location, path: []string{u.Location}, remainingMP: float64(u.MovementPoints)}}
	visited := map[string]bool{u.Location: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.hexID != u.Location {
			actions = append(actions, Action{
				Kind:   ActionMove,
				UnitID: u.ID,
				Path:   cur.path,
			})
		}

		if len(cur.path) > 1 && e.inEnemyZOC(cur.hexID, u.Faction) {
			continue
		}

		for _, nid := range e.grid.Neighbors(cur.hexID) {
			if visited[nid] {
				continue
			}
			cost := e.scenario.TerrainModifierFor(e.hexes[nid].Terrain).MoveCost
			if cur.remainingMP >= cost {
				visited[nid] = true
				path := append(append([]string(nil), cur.path...), nid)
				queue = append(queue, node{hexID: nid, path: path, remainingMP: cur.remainingMP - cost})
			}
		}
	}
	return actions
}

// inEnemyZOC reports whether a hex is adjacent to an enemy unit that
// projects zone of control.
func (e *Engine) inEnemyZOC(hexID string, friendly Faction) bool {
	enemy := friendly.Enemy()
	for _, nid := range e.grid.Neighbors(hexID) {
		h, ok := e.hexes[nid]
		if !ok {
			continue
		}
		for _, uid := range h.UnitIDs {
			u := e.units[uid]
			if u != nil && u.Faction == enemy && u.ProjectsZOC() {
				return true
			}
		}
	}
	return false
}

// hexHoldsEnemy reports whether any unit of the opposing faction
// occupies the hex.
func (e *Engine) hexHoldsEnemy(hexID string, friendly Faction) bool {
	h, ok := e.hexes[hexID]
	if !ok {
		return false
	}
	for _, uid := range h.UnitIDs {
		u := e.units[uid]
		if u != nil && u.Faction != friendly {
			return true
		}
	}
	return false
}
