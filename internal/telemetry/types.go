// Record types shared by the monitoring pipeline and its sinks
package telemetry

import (
	"os"
	"time"
)

// Reading is one sampled set of environmental values. Immutable once produced.
type Reading struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	LightLevel  float64   `json:"light_level"`
	Timestamp   time.Time `json:"ts"`
}

// DerivedReading is a Reading plus the categorical statuses derived from it.
type DerivedReading struct {
	Reading
	TemperatureStatus string `json:"temperature_status"`
	HumidityStatus    string `json:"humidity_status"`
	LightCategory     string `json:"light_category"`
	IndicatorColor    string `json:"indicator_color"`
	AlertTriggered    bool   `json:"alert_triggered"`
}

// Indicator colors, evaluated in priority order by the classifier.
const (
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorGreen  = "green"
)

// Alert severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Alert is a fired threshold rule recorded with severity and timestamp.
type Alert struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	Severity    string    `json:"severity"`
	TriggeredAt time.Time `json:"triggered_at"`
	Active      bool      `json:"active"`
}

// EquipmentStatus reports the HVAC state for one cycle. Read-only to the core.
type EquipmentStatus struct {
	Heating           bool    `json:"heating"`
	Cooling           bool    `json:"cooling"`
	Ventilating       bool    `json:"ventilating"`
	FanSpeed          int     `json:"fan_speed"`
	EnergyConsumption float64 `json:"energy_consumption"`
}

// EnergyMetrics summarizes energy usage reported by the equipment collaborator.
type EnergyMetrics struct {
	TotalUsed       float64 `json:"total_used"`
	Cost            float64 `json:"cost"`
	CarbonFootprint float64 `json:"carbon_footprint"`
	EfficiencyScore float64 `json:"efficiency_score"`
}

// Compliance levels.
const (
	ComplianceOK        = "compliant"
	ComplianceWarning   = "warning"
	ComplianceViolation = "violation"
)

// ComplianceFinding is one regulatory rule evaluation result. Stateless,
// recomputed every cycle.
type ComplianceFinding struct {
	Regulation  string    `json:"regulation"`
	Requirement string    `json:"requirement"`
	Level       string    `json:"level"`
	DetectedAt  time.Time `json:"detected_at"`
}

// Snapshot is the consolidated per-cycle result handed to sinks by value.
type Snapshot struct {
	BuildingID string              `json:"building_id"`
	Reading    DerivedReading      `json:"reading"`
	Equipment  EquipmentStatus     `json:"equipment"`
	Occupancy  int                 `json:"occupancy"`
	Energy     EnergyMetrics       `json:"energy"`
	Findings   []ComplianceFinding `json:"findings"`
	Timestamp  time.Time           `json:"ts"`
}

// Stats is the process-wide counters value for periodic status reporting.
type Stats struct {
	TotalReadings     int       `json:"total_readings"`
	TotalAlerts       int       `json:"total_alerts"`
	StartTime         time.Time `json:"start_time"`
	UptimeMinutes     float64   `json:"uptime_minutes"`
	AverageIntervalMs float64   `json:"average_interval_ms"`
}

// SnapshotTableName holds the table name used when writing snapshots to
// GreptimeDB. It defaults to "building_snapshots" but can be overridden via
// the GREPTIMEDB_TABLE environment variable.
var SnapshotTableName = func() string {
	if env := os.Getenv("GREPTIMEDB_TABLE"); env != "" {
		return env
	}
	return "building_snapshots"
}()
