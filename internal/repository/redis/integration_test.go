//go:build integration

package redis

import (
	"context"
	"encoding/json"
	"testing"

	goredis "github.com/redis/go-redis/v9"

	"github.com/freeeve/strait-gambit/internal/testutil"
)

var testRDB *goredis.Client

func setup(t *testing.T) *Client {
	t.Helper()
	if testRDB == nil {
		testRDB = testutil.SetupRedis(t)
	}
	testutil.CleanupRedis(t, testRDB)
	return NewClientFromPool(testRDB)
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	runID := "test-run-1"

	snap := json.RawMessage(`{"turn_number":3,"current_phase":"COMBAT","unit_data":[]}`)

	if err := c.PublishSnapshot(ctx, runID, 3, snap); err != nil {
		t.Fatalf("publish snapshot: %v", err)
	}

	got, err := c.LatestSnapshot(ctx, runID)
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil snapshot")
	}

	var fetched map[string]any
	json.Unmarshal(got, &fetched)
	if fetched["turn_number"].(float64) != 3 {
		t.Fatalf("snapshot round-trip failed: %s", string(got))
	}

	turn := testRDB.Get(ctx, turnKey(runID)).Val()
	if turn != "3" {
		t.Fatalf("expected turn key 3, got %q", turn)
	}
}

func TestSnapshotOverwrite(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	runID := "test-run-2"

	c.PublishSnapshot(ctx, runID, 1, json.RawMessage(`{"turn_number":1}`))
	c.PublishSnapshot(ctx, runID, 2, json.RawMessage(`{"turn_number":2}`))

	got, err := c.LatestSnapshot(ctx, runID)
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	var fetched map[string]any
	json.Unmarshal(got, &fetched)
	if fetched["turn_number"].(float64) != 2 {
		t.Fatalf("expected latest turn 2, got %s", string(got))
	}
}

func TestSnapshotUnknownRun(t *testing.T) {
	c := setup(t)

	got, err := c.LatestSnapshot(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("latest snapshot for missing run: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for unknown run")
	}
}

func TestClearRun(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	runID := "test-run-3"

	c.PublishSnapshot(ctx, runID, 5, json.RawMessage(`{"turn_number":5}`))

	if err := c.ClearRun(ctx, runID); err != nil {
		t.Fatalf("clear run: %v", err)
	}

	got, _ := c.LatestSnapshot(ctx, runID)
	if got != nil {
		t.Fatal("expected snapshot cleared")
	}
	exists := testRDB.Exists(ctx, turnKey(runID)).Val()
	if exists != 0 {
		t.Fatal("expected turn key cleared")
	}
}
