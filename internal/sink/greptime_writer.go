package sink

import (
	"context"
	"log/slog"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"buildmon/internal/telemetry"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeWriter writes flat snapshot rows to GreptimeDB via the ingester
// client. The table is auto-created on first write.
type GreptimeWriter struct {
	client greptimeClient
	table  string
	log    *slog.Logger
}

// NewGreptimeWriter connects to a GreptimeDB endpoint.
func NewGreptimeWriter(endpoint, database string, log *slog.Logger) (*GreptimeWriter, error) {
	cfg := greptime.NewConfig(endpoint).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &GreptimeWriter{
		client: client,
		table:  telemetry.SnapshotTableName,
		log:    log,
	}, nil
}

// WriteSnapshot inserts one flat row per cycle.
func (w *GreptimeWriter) WriteSnapshot(s telemetry.Snapshot) error {
	row := s.Flatten()

	tbl, err := table.New(w.table)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("building_id", types.STRING); err != nil {
		return err
	}
	fields := []struct {
		name string
		typ  types.ColumnType
	}{
		{"temperature", types.FLOAT64},
		{"humidity", types.FLOAT64},
		{"light_level", types.FLOAT64},
		{"temperature_status", types.STRING},
		{"humidity_status", types.STRING},
		{"light_category", types.STRING},
		{"indicator_color", types.STRING},
		{"alert_triggered", types.BOOLEAN},
		{"heating", types.BOOLEAN},
		{"cooling", types.BOOLEAN},
		{"ventilating", types.BOOLEAN},
		{"fan_speed", types.INT64},
		{"energy_consumption", types.FLOAT64},
		{"occupancy", types.INT64},
		{"energy_total", types.FLOAT64},
		{"energy_cost", types.FLOAT64},
		{"carbon_footprint", types.FLOAT64},
		{"efficiency_score", types.FLOAT64},
		{"compliance_warnings", types.INT64},
		{"compliance_violations", types.INT64},
	}
	for _, f := range fields {
		if err := tbl.AddFieldColumn(f.name, f.typ); err != nil {
			return err
		}
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}

	if err := tbl.AddRow(
		row.BuildingID,
		row.Temperature,
		row.Humidity,
		row.LightLevel,
		row.TemperatureStatus,
		row.HumidityStatus,
		row.LightCategory,
		row.IndicatorColor,
		row.AlertTriggered,
		row.Heating,
		row.Cooling,
		row.Ventilating,
		int64(row.FanSpeed),
		row.EnergyConsumption,
		int64(row.Occupancy),
		row.EnergyTotal,
		row.EnergyCost,
		row.CarbonFootprint,
		row.EfficiencyScore,
		int64(row.Warnings),
		int64(row.Violations),
		row.Timestamp,
	); err != nil {
		return err
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		if w.log != nil {
			w.log.Error("greptime write failed", "err", err)
		}
		return err
	}
	return nil
}
