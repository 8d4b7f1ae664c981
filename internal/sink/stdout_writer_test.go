package sink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"buildmon/internal/telemetry"
)

func TestStdoutWriterSnapshot(t *testing.T) {
	var buf bytes.Buffer
	w := &StdoutWriter{out: &buf}

	snap := telemetry.Snapshot{
		BuildingID: "hq-01",
		Reading: telemetry.DerivedReading{
			Reading: telemetry.Reading{Temperature: 22.5, Humidity: 40, LightLevel: 0.6, Timestamp: time.Unix(0, 0).UTC()},
		},
		Occupancy: 4,
		Findings: []telemetry.ComplianceFinding{
			{Regulation: "energy-usage", Level: telemetry.ComplianceWarning},
		},
		Timestamp: time.Unix(0, 0).UTC(),
	}
	if err := w.WriteSnapshot(snap); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	var row telemetry.SnapshotRow
	if err := json.Unmarshal(buf.Bytes(), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if row.BuildingID != "hq-01" || row.Temperature != 22.5 || row.Occupancy != 4 {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.Warnings != 1 {
		t.Fatalf("expected 1 compliance warning, got %d", row.Warnings)
	}
}

func TestStdoutWriterAlertsAndStats(t *testing.T) {
	var buf bytes.Buffer
	w := &StdoutWriter{out: &buf}

	alerts := []telemetry.Alert{
		{ID: "a1", Message: "high temperature", Severity: telemetry.SeverityCritical},
		{ID: "a2", Message: "low humidity", Severity: telemetry.SeverityInfo},
	}
	if err := w.WriteAlerts(alerts); err != nil {
		t.Fatalf("WriteAlerts: %v", err)
	}
	if err := w.WriteStats(telemetry.Stats{TotalReadings: 10}); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	var a telemetry.Alert
	if err := json.Unmarshal([]byte(lines[0]), &a); err != nil {
		t.Fatalf("unmarshal alert: %v", err)
	}
	if a.ID != "a1" {
		t.Fatalf("alert id = %s, want a1", a.ID)
	}
	var s telemetry.Stats
	if err := json.Unmarshal([]byte(lines[2]), &s); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if s.TotalReadings != 10 {
		t.Fatalf("readings = %d, want 10", s.TotalReadings)
	}
}
