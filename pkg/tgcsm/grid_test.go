package tgcsm

import "testing"

func TestParseHexID(t *testing.T) {
	tests := []struct {
		id   string
		q, r int
	}{
		{"A1", 0, 1},
		{"A10", 0, 10},
		{"B1", 1, 1},
		{"C1", 2, 0},
		{"J1", 9, -3},
		{"J13", 9, 9},
	}
	for _, tc := range tests {
		q, r, err := parseHexID(tc.id)
		if err != nil {
			t.Fatalf("parseHexID(%q): %v", tc.id, err)
		}
		if q != tc.q || r != tc.r {
			t.Errorf("parseHexID(%q) = (%d,%d), want (%d,%d)", tc.id, q, r, tc.q, tc.r)
		}
	}

	for _, bad := range []string{"", "A", "1A", "Ax", "a1"} {
		if _, _, err := parseHexID(bad); err == nil {
			t.Errorf("parseHexID(%q) should fail", bad)
		}
	}
}

func TestGridDistance(t *testing.T) {
	g, err := NewGrid(DefaultScenario().HexIDs())
	if err != nil {
		t.Fatal(err)
	}

	if d := g.Distance("A10", "A10"); d != 0 {
		t.Errorf("self distance = %d, want 0", d)
	}
	if a, b := g.Distance("A10", "G2"), g.Distance("G2", "A10"); a != b {
		t.Errorf("distance not symmetric: %d vs %d", a, b)
	}
	if d := g.Distance("A1", "Z9"); d != DistanceInfinite {
		t.Errorf("distance to missing hex = %d, want DistanceInfinite", d)
	}
	if d := g.Distance("Z9", "A1"); d != DistanceInfinite {
		t.Errorf("distance from missing hex = %d, want DistanceInfinite", d)
	}
}

func TestGridNeighbors(t *testing.T) {
	g, err := NewGrid(DefaultScenario().HexIDs())
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range DefaultScenario().HexIDs() {
		ns := g.Neighbors(id)
		if len(ns) == 0 || len(ns) > 6 {
			t.Errorf("hex %s has %d neighbors", id, len(ns))
		}
		for _, n := range ns {
			if d := g.Distance(id, n); d != 1 {
				t.Errorf("neighbor %s-%s distance = %d, want 1", id, n, d)
			}
			// Adjacency must be mutual.
			found := false
			for _, back := range g.Neighbors(n) {
				if back == id {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("adjacency %s->%s not mutual", id, n)
			}
		}
	}
}

func TestGridCorridorAdjacency(t *testing.T) {
	// Same-row hexes in consecutive columns are adjacent under the
	// offset layout, forming a west-east corridor.
	ids := []string{"A1", "B1", "C1", "D1", "E1", "F1", "G1", "H1", "I1", "J1"}
	g, err := NewGrid(ids)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i+1 < len(ids); i++ {
		if d := g.Distance(ids[i], ids[i+1]); d != 1 {
			t.Errorf("%s-%s distance = %d, want 1", ids[i], ids[i+1], d)
		}
	}
	if d := g.Distance("A1", "J1"); d != 9 {
		t.Errorf("corridor length = %d, want 9", d)
	}
}
