package tgcsm

import (
	"fmt"
	"strconv"
)

// DistanceInfinite is returned for distances involving a hex that does
// not exist on the map.
const DistanceInfinite = 1 << 30

// axialDirections are the six axial unit offsets of a hex neighborhood.
var axialDirections = [6][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// AxialCoord is a hex position in axial coordinates.
type AxialCoord struct {
	Q, R int
}

// Grid precomputes the coordinate and adjacency structure of a hex map.
// Hex IDs use the "odd-q" vertical offset scheme: a column letter followed
// by a 1-based row number (e.g. "A10"). Built once and shared by all
// pathfinding and range queries.
type Grid struct {
	coords    map[string]AxialCoord
	byCoord   map[AxialCoord]string
	neighbors map[string][]string
}

// NewGrid builds a grid from the given hex IDs.
func NewGrid(hexIDs []string) (*Grid, error) {
	g := &Grid{
		coords:    make(map[string]AxialCoord, len(hexIDs)),
		byCoord:   make(map[AxialCoord]string, len(hexIDs)),
		neighbors: make(map[string][]string, len(hexIDs)),
	}

	for _, id := range hexIDs {
		q, r, err := parseHexID(id)
		if err != nil {
			return nil, err
		}
		c := AxialCoord{Q: q, R: r}
		g.coords[id] = c
		g.byCoord[c] = id
	}

	for id, c := range g.coords {
		for _, d := range axialDirections {
			if n, ok := g.byCoord[AxialCoord{Q: c.Q + d[0], R: c.R + d[1]}]; ok {
				g.neighbors[id] = append(g.neighbors[id], n)
			}
		}
	}
	return g, nil
}

// parseHexID converts an offset hex ID to axial coordinates.
func parseHexID(id string) (q, r int, err error) {
	if len(id) < 2 || id[0] < 'A' || id[0] > 'Z' {
		return 0, 0, fmt.Errorf("malformed hex id %q", id)
	}
	row, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed hex id %q: %w", id, err)
	}
	q = int(id[0] - 'A')
	r = row - (q-(q&1))/2
	return q, r, nil
}

// Contains reports whether the hex exists on the map.
func (g *Grid) Contains(id string) bool {
	_, ok := g.coords[id]
	return ok
}

// Coord returns the axial coordinates of a hex.
func (g *Grid) Coord(id string) (AxialCoord, bool) {
	c, ok := g.coords[id]
	return c, ok
}

// Neighbors returns the existing neighbors of a hex. Edge hexes have
// fewer than six.
func (g *Grid) Neighbors(id string) []string {
	return g.neighbors[id]
}

// Distance returns the hex distance between two hexes, or
// DistanceInfinite if either does not exist.
func (g *Grid) Distance(a, b string) int {
	ca, ok := g.coords[a]
	if !ok {
		return DistanceInfinite
	}
	cb, ok := g.coords[b]
	if !ok {
		return DistanceInfinite
	}
	dq := ca.Q - cb.Q
	dr := ca.R - cb.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
