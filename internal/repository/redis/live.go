package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Key patterns for live run state.
func snapshotKey(runID string) string { return "run:" + runID + ":snapshot" }
func turnKey(runID string) string     { return "run:" + runID + ":turn" }

// PublishSnapshot stores the latest turn snapshot for a running game.
func (c *Client) PublishSnapshot(ctx context.Context, runID string, turn int, snap json.RawMessage) error {
	if err := c.rdb.Set(ctx, snapshotKey(runID), []byte(snap), 0).Err(); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	if err := c.rdb.Set(ctx, turnKey(runID), strconv.Itoa(turn), 0).Err(); err != nil {
		return fmt.Errorf("publish turn: %w", err)
	}
	return nil
}

// LatestSnapshot retrieves the most recently published snapshot, or nil
// if the run is unknown.
func (c *Client) LatestSnapshot(ctx context.Context, runID string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, snapshotKey(runID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return json.RawMessage(data), nil
}

// ClearRun removes a run's live keys once the game is over.
func (c *Client) ClearRun(ctx context.Context, runID string) error {
	return c.rdb.Del(ctx, snapshotKey(runID), turnKey(runID)).Err()
}
