package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/freeeve/strait-gambit/internal/model"
)

// RunRepo handles simulation run database operations.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo creates a RunRepo.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// SaveRun inserts a completed run and returns it with ID and timestamp
// populated.
func (r *RunRepo) SaveRun(ctx context.Context, run *model.SimRun) (*model.SimRun, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO sim_runs
		   (name, winner, turns, seed, pla_strategy, roc_strategy,
		    pla_casualties, roc_casualties, pla_hexes, roc_hexes,
		    pool_remaining, final_state)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at`,
		run.Name, run.Winner, run.Turns, run.Seed, run.PLAStrategy, run.ROCStrategy,
		run.PLACasualties, run.ROCCasualties, run.PLAHexes, run.ROCHexes,
		run.PoolRemaining, []byte(run.FinalState),
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert sim run: %w", err)
	}
	return run, nil
}

// FindByID looks up a run by its UUID.
func (r *RunRepo) FindByID(ctx context.Context, id string) (*model.SimRun, error) {
	var run model.SimRun
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, winner, turns, seed, pla_strategy, roc_strategy,
		        pla_casualties, roc_casualties, pla_hexes, roc_hexes,
		        pool_remaining, final_state, created_at
		 FROM sim_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &run.Name, &run.Winner, &run.Turns, &run.Seed,
		&run.PLAStrategy, &run.ROCStrategy,
		&run.PLACasualties, &run.ROCCasualties, &run.PLAHexes, &run.ROCHexes,
		&run.PoolRemaining, &run.FinalState, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find sim run: %w", err)
	}
	return &run, nil
}

// ListRecent returns the most recent runs, newest first.
func (r *RunRepo) ListRecent(ctx context.Context, limit int) ([]model.SimRun, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, winner, turns, seed, pla_strategy, roc_strategy,
		        pla_casualties, roc_casualties, pla_hexes, roc_hexes,
		        pool_remaining, created_at
		 FROM sim_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sim runs: %w", err)
	}
	defer rows.Close()

	var runs []model.SimRun
	for rows.Next() {
		var run model.SimRun
		if err := rows.Scan(&run.ID, &run.Name, &run.Winner, &run.Turns, &run.Seed,
			&run.PLAStrategy, &run.ROCStrategy,
			&run.PLACasualties, &run.ROCCasualties, &run.PLAHexes, &run.ROCHexes,
			&run.PoolRemaining, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sim run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
