package sink

import (
	"context"
	"testing"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"

	"buildmon/internal/telemetry"
)

type mockGreptimeClient struct {
	table *table.Table
}

func (m *mockGreptimeClient) Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	if len(tables) > 0 {
		m.table = tables[0]
	}
	return &gpb.GreptimeResponse{}, nil
}

func TestGreptimeWriterSnapshotRow(t *testing.T) {
	ts := time.Unix(0, 0).UTC()
	snap := telemetry.Snapshot{
		BuildingID: "hq-01",
		Reading: telemetry.DerivedReading{
			Reading: telemetry.Reading{
				Temperature: 21.5,
				Humidity:    45,
				LightLevel:  0.5,
				Timestamp:   ts,
			},
			TemperatureStatus: "Comfortable",
			HumidityStatus:    "Comfortable",
			LightCategory:     "Moderate",
			IndicatorColor:    telemetry.ColorGreen,
		},
		Equipment: telemetry.EquipmentStatus{
			Ventilating:       true,
			FanSpeed:          3,
			EnergyConsumption: 3.1,
		},
		Occupancy: 12,
		Findings: []telemetry.ComplianceFinding{
			{Regulation: "humidity-band", Level: telemetry.ComplianceWarning, DetectedAt: ts},
		},
		Timestamp: ts,
	}

	m := &mockGreptimeClient{}
	w := &GreptimeWriter{client: m, table: "building_snapshots"}

	if err := w.WriteSnapshot(snap); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	if m.table == nil {
		t.Fatalf("expected table to be captured")
	}

	schema := m.table.GetRows().Schema
	if len(schema) != 22 {
		t.Fatalf("unexpected schema length: %d", len(schema))
	}
	if schema[0].ColumnName != "building_id" {
		t.Fatalf("first column = %s, want building_id", schema[0].ColumnName)
	}
	if schema[0].SemanticType != gpb.SemanticType_TAG {
		t.Fatalf("building_id semantic type = %v, want TAG", schema[0].SemanticType)
	}
	if schema[21].SemanticType != gpb.SemanticType_TIMESTAMP {
		t.Fatalf("ts semantic type = %v, want TIMESTAMP", schema[21].SemanticType)
	}

	values := m.table.GetRows().Rows[0].Values
	if got := values[0].GetStringValue(); got != "hq-01" {
		t.Fatalf("building_id = %s, want hq-01", got)
	}
	if got := values[1].GetF64Value(); got != 21.5 {
		t.Fatalf("temperature = %v, want 21.5", got)
	}
	if got := values[12].GetI64Value(); got != 3 {
		t.Fatalf("fan_speed = %v, want 3", got)
	}
	if got := values[19].GetI64Value(); got != 1 {
		t.Fatalf("compliance_warnings = %v, want 1", got)
	}
}
