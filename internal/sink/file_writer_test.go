package sink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"buildmon/internal/telemetry"
)

func TestFileWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	snapPath := filepath.Join(dir, "snapshots.jsonl")
	alertPath := filepath.Join(dir, "alerts.jsonl")

	fw, err := NewFileWriter(snapPath, alertPath, "")
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}

	snap := telemetry.Snapshot{
		BuildingID: "hq-01",
		Occupancy:  7,
		Timestamp:  time.Unix(42, 0).UTC(),
	}
	if err := fw.WriteSnapshot(snap); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	if err := fw.WriteAlerts([]telemetry.Alert{{ID: "a1", Message: "high temperature"}}); err != nil {
		t.Fatalf("WriteAlerts: %v", err)
	}
	if err := fw.WriteStats(telemetry.Stats{TotalReadings: 1}); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(snapPath)
	if err != nil {
		t.Fatalf("read snapshots: %v", err)
	}
	var got telemetry.Snapshot
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if got.BuildingID != snap.BuildingID || got.Occupancy != snap.Occupancy || !got.Timestamp.Equal(snap.Timestamp) {
		t.Fatalf("snapshot mismatch: %+v", got)
	}

	adata, err := os.ReadFile(alertPath)
	if err != nil {
		t.Fatalf("read alerts: %v", err)
	}
	if !strings.Contains(string(adata), "high temperature") {
		t.Fatalf("alert log missing entry: %s", adata)
	}
}

func TestFileWriterReplayable(t *testing.T) {
	dir := t.TempDir()
	snapPath := filepath.Join(dir, "snapshots.jsonl")

	fw, err := NewFileWriter(snapPath, "", "")
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	for i := 0; i < 3; i++ {
		snap := telemetry.Snapshot{
			BuildingID: "hq-01",
			Occupancy:  i,
			Timestamp:  time.Unix(int64(i), 0).UTC(),
		}
		if err := fw.WriteSnapshot(snap); err != nil {
			t.Fatalf("WriteSnapshot: %v", err)
		}
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	cw := &collectWriter{}
	if err := ReplayLogFile(snapPath, cw, 0); err != nil {
		t.Fatalf("ReplayLogFile: %v", err)
	}
	if len(cw.snaps) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(cw.snaps))
	}
	if cw.snaps[2].Occupancy != 2 {
		t.Fatalf("last occupancy = %d, want 2", cw.snaps[2].Occupancy)
	}
}
