package telemetry

import "time"

// SnapshotRow is the flat one-row-per-cycle form of a Snapshot, suitable for
// JSONL logs and the GreptimeDB sink.
type SnapshotRow struct {
	BuildingID        string    `json:"building_id"` // TAG
	Temperature       float64   `json:"temperature"`
	Humidity          float64   `json:"humidity"`
	LightLevel        float64   `json:"light_level"`
	TemperatureStatus string    `json:"temperature_status"`
	HumidityStatus    string    `json:"humidity_status"`
	LightCategory     string    `json:"light_category"`
	IndicatorColor    string    `json:"indicator_color"`
	AlertTriggered    bool      `json:"alert_triggered"`
	Heating           bool      `json:"heating"`
	Cooling           bool      `json:"cooling"`
	Ventilating       bool      `json:"ventilating"`
	FanSpeed          int       `json:"fan_speed"`
	EnergyConsumption float64   `json:"energy_consumption"`
	Occupancy         int       `json:"occupancy"`
	EnergyTotal       float64   `json:"energy_total"`
	EnergyCost        float64   `json:"energy_cost"`
	CarbonFootprint   float64   `json:"carbon_footprint"`
	EfficiencyScore   float64   `json:"efficiency_score"`
	Warnings          int       `json:"compliance_warnings"`
	Violations        int       `json:"compliance_violations"`
	Timestamp         time.Time `json:"ts"` // TIME INDEX
}

func (SnapshotRow) TableName() string {
	return SnapshotTableName
}

// Flatten converts a Snapshot into its flat row form. Compliance findings are
// folded into per-level counts; the structured document keeps the full list.
func (s Snapshot) Flatten() SnapshotRow {
	row := SnapshotRow{
		BuildingID:        s.BuildingID,
		Temperature:       s.Reading.Temperature,
		Humidity:          s.Reading.Humidity,
		LightLevel:        s.Reading.LightLevel,
		TemperatureStatus: s.Reading.TemperatureStatus,
		HumidityStatus:    s.Reading.HumidityStatus,
		LightCategory:     s.Reading.LightCategory,
		IndicatorColor:    s.Reading.IndicatorColor,
		AlertTriggered:    s.Reading.AlertTriggered,
		Heating:           s.Equipment.Heating,
		Cooling:           s.Equipment.Cooling,
		Ventilating:       s.Equipment.Ventilating,
		FanSpeed:          s.Equipment.FanSpeed,
		EnergyConsumption: s.Equipment.EnergyConsumption,
		Occupancy:         s.Occupancy,
		EnergyTotal:       s.Energy.TotalUsed,
		EnergyCost:        s.Energy.Cost,
		CarbonFootprint:   s.Energy.CarbonFootprint,
		EfficiencyScore:   s.Energy.EfficiencyScore,
		Timestamp:         s.Timestamp,
	}
	for _, f := range s.Findings {
		switch f.Level {
		case ComplianceWarning:
			row.Warnings++
		case ComplianceViolation:
			row.Violations++
		}
	}
	return row
}
