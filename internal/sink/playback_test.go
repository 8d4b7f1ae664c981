package sink

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"buildmon/internal/telemetry"
)

type collectWriter struct{ snaps []telemetry.Snapshot }

func (c *collectWriter) WriteSnapshot(s telemetry.Snapshot) error {
	c.snaps = append(c.snaps, s)
	return nil
}

func TestReplayLog(t *testing.T) {
	snaps := []telemetry.Snapshot{
		{BuildingID: "hq-01", Occupancy: 3, Timestamp: time.Unix(0, 0)},
		{BuildingID: "hq-01", Occupancy: 5, Timestamp: time.Unix(1, 0)},
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, s := range snaps {
		if err := enc.Encode(s); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	cw := &collectWriter{}
	if err := ReplayLog(&buf, cw, 0); err != nil {
		t.Fatalf("ReplayLog: %v", err)
	}
	if len(cw.snaps) != len(snaps) {
		t.Fatalf("expected %d snapshots, got %d", len(snaps), len(cw.snaps))
	}
	for i, s := range snaps {
		if cw.snaps[i].Occupancy != s.Occupancy {
			t.Fatalf("snapshot %d mismatch: %+v vs %+v", i, cw.snaps[i], s)
		}
	}
}
