package bot

import (
	"sort"
	"sync"

	gonnx "github.com/advancedclimatesystems/gonnx"
	"github.com/rs/zerolog/log"
	"gorgonia.org/tensor"

	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

// GonnxModelPath is the path to the policy ONNX model. Set at startup
// from the ONNX_MODEL_PATH env var or default to "models/policy.onnx".
var GonnxModelPath string

// boardFeatures is the per-hex feature width fed to the policy network.
const boardFeatures = 6

// newGonnxOrFallback attempts to create a GonnxStrategy. If loading
// fails, it falls back to the scripted heuristic so the game can run.
func newGonnxOrFallback() tgcsm.Strategy {
	s, err := newGonnxStrategy()
	if err != nil {
		log.Warn().Err(err).Msg("gonnx requested but model load failed; falling back to scripted")
		return &ScriptedStrategy{}
	}
	return s
}

// GonnxStrategy scores hexes with a policy network and steers each unit
// toward high-value ground. Attacks on well-scored target hexes are
// declared first; remaining units take the move whose destination the
// network likes best.
type GonnxStrategy struct {
	policy   *gonnx.Model
	fallback ScriptedStrategy
	mu       sync.Mutex
}

func newGonnxStrategy() (*GonnxStrategy, error) {
	path := GonnxModelPath
	if path == "" {
		path = "models/policy.onnx"
	}
	policy, err := gonnx.NewModelFromFile(path)
	if err != nil {
		return nil, err
	}
	return &GonnxStrategy{policy: policy}, nil
}

func (s *GonnxStrategy) Name() string { return "gonnx" }

func (s *GonnxStrategy) ChooseActions(snap *tgcsm.Snapshot, legal []tgcsm.Action) []tgcsm.Action {
	scores := s.runPolicy(snap)
	if scores == nil {
		log.Warn().Str("faction", string(snap.ActingFaction)).
			Msg("policy inference failed, falling back to scripted")
		return s.fallback.ChooseActions(snap, legal)
	}

	var chosen []tgcsm.Action
	committed := make(map[string]bool)

	// Declare every attack whose target hex scores above the mean.
	mean := float32(0)
	for _, v := range scores {
		mean += v
	}
	mean /= float32(len(scores))

	for _, a := range legal {
		if a.Kind != tgcsm.ActionAttack {
			continue
		}
		if scores[a.TargetHex] >= mean {
			chosen = append(chosen, a)
			for _, uid := range a.AttackerIDs {
				committed[uid] = true
			}
		}
	}

	// Best-scoring destination per remaining unit; standing still
	// competes as the unit's current hex score.
	type best struct {
		action tgcsm.Action
		score  float32
		found  bool
	}
	byUnit := make(map[string]*best)
	for _, u := range snap.Units {
		if u.Faction == snap.ActingFaction && !committed[u.ID] && u.Location != "" {
			byUnit[u.ID] = &best{score: scores[u.Location]}
		}
	}
	for _, a := range legal {
		if a.Kind != tgcsm.ActionMove || len(a.Path) == 0 {
			continue
		}
		b, ok := byUnit[a.UnitID]
		if !ok {
			continue
		}
		if sc := scores[a.Path[len(a.Path)-1]]; sc > b.score {
			b.score = sc
			b.action = a
			b.found = true
		}
	}
	for _, a := range legal {
		if a.Kind != tgcsm.ActionMove {
			continue
		}
		b := byUnit[a.UnitID]
		if b != nil && b.found && samePath(b.action, a) {
			chosen = append(chosen, a)
			b.found = false
		}
	}

	if len(chosen) == 0 {
		return []tgcsm.Action{{Kind: tgcsm.ActionPass}}
	}
	return chosen
}

func samePath(a, b tgcsm.Action) bool {
	if a.UnitID != b.UnitID || len(a.Path) != len(b.Path) {
		return false
	}
	for i := range a.Path {
		if a.Path[i] != b.Path[i] {
			return false
		}
	}
	return true
}

// runPolicy encodes the snapshot, runs the model and returns a score
// per hex ID. Returns nil on any failure.
func (s *GonnxStrategy) runPolicy(snap *tgcsm.Snapshot) map[string]float32 {
	ids := make([]string, 0, len(snap.Hexes))
	for id := range snap.Hexes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	board := encodeBoard(snap, ids)
	boardTensor := tensor.New(
		tensor.WithShape(1, len(ids), boardFeatures),
		tensor.Of(tensor.Float32),
		tensor.WithBacking(board),
	)

	s.mu.Lock()
	outputs, err := s.policy.Run(gonnx.Tensors{"board": boardTensor})
	s.mu.Unlock()
	if err != nil {
		log.Warn().Err(err).Msg("policy run error")
		return nil
	}

	out, ok := outputs["hex_scores"]
	if !ok {
		for _, v := range outputs {
			out = v
			break
		}
	}
	if out == nil {
		return nil
	}

	var flat []float32
	switch d := out.Data().(type) {
	case []float32:
		flat = d
	case []float64:
		flat = make([]float32, len(d))
		for i, v := range d {
			flat[i] = float32(v)
		}
	default:
		log.Warn().Msgf("unexpected policy output type %T", d)
		return nil
	}
	if len(flat) < len(ids) {
		return nil
	}

	scores := make(map[string]float32, len(ids))
	for i, id := range ids {
		scores[id] = flat[i]
	}
	return scores
}

// encodeBoard flattens the snapshot into per-hex features: ownership,
// friendly and enemy strength, victory-point flag and a terrain code.
func encodeBoard(snap *tgcsm.Snapshot, ids []string) []float32 {
	strengthAt := make(map[string][2]float32)
	for _, u := range snap.Units {
		if u.Location == "" {
			continue
		}
		cell := strengthAt[u.Location]
		if u.Faction == snap.ActingFaction {
			cell[0] += float32(u.Strength) / 100
		} else {
			cell[1] += float32(u.Strength) / 100
		}
		strengthAt[u.Location] = cell
	}

	terrainCode := map[tgcsm.TerrainType]float32{
		tgcsm.TerrainPlains:        0.1,
		tgcsm.TerrainHills:         0.2,
		tgcsm.TerrainMountain:      0.3,
		tgcsm.TerrainUrban:         0.4,
		tgcsm.TerrainForest:        0.5,
		tgcsm.TerrainRiverCrossing: 0.6,
		tgcsm.TerrainCoastal:       0.7,
		tgcsm.TerrainOcean:         0.8,
	}

	board := make([]float32, 0, len(ids)*boardFeatures)
	for _, id := range ids {
		h := snap.Hexes[id]
		owned := float32(0)
		if h.Owner == snap.ActingFaction {
			owned = 1
		}
		vp := float32(0)
		if h.IsVictoryPoint {
			vp = 1
		}
		cell := strengthAt[id]
		board = append(board,
			owned,
			1-owned,
			cell[0],
			cell[1],
			vp,
			terrainCode[h.Terrain],
		)
	}
	return board
}
