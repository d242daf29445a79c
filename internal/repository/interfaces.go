package repository

import (
	"context"
	"encoding/json"

	"github.com/freeeve/strait-gambit/internal/model"
)

// RunRepository defines simulation run persistence operations.
type RunRepository interface {
	SaveRun(ctx context.Context, run *model.SimRun) (*model.SimRun, error)
	FindByID(ctx context.Context, id string) (*model.SimRun, error)
	ListRecent(ctx context.Context, limit int) ([]model.SimRun, error)
}

// SnapshotCache defines live game state operations (Redis). A running
// game publishes its per-turn snapshot so external viewers can follow
// along.
type SnapshotCache interface {
	PublishSnapshot(ctx context.Context, runID string, turn int, snap json.RawMessage) error
	LatestSnapshot(ctx context.Context, runID string) (json.RawMessage, error)
	ClearRun(ctx context.Context, runID string) error
}
