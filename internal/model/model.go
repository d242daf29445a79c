package model

import (
	"encoding/json"
	"time"
)

// SimRun is one completed simulation run as stored in Postgres.
type SimRun struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Winner        string          `json:"winner"`
	Turns         int             `json:"turns"`
	Seed          int64           `json:"seed"`
	PLAStrategy   string          `json:"pla_strategy"`
	ROCStrategy   string          `json:"roc_strategy"`
	PLACasualties int             `json:"pla_casualties"`
	ROCCasualties int             `json:"roc_casualties"`
	PLAHexes      int             `json:"pla_hexes"`
	ROCHexes      int             `json:"roc_hexes"`
	PoolRemaining int             `json:"pool_remaining"`
	FinalState    json.RawMessage `json:"final_state,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
