package monitor

import (
	"time"

	"buildmon/internal/telemetry"
)

// CheckCompliance evaluates the fixed regulatory rule set against a reading
// and the current equipment status. Pure and stateless: all applicable rules
// fire every cycle, in declaration order.
func CheckCompliance(r telemetry.Reading, eq telemetry.EquipmentStatus, at time.Time) []telemetry.ComplianceFinding {
	var findings []telemetry.ComplianceFinding
	add := func(regulation, requirement, level string) {
		findings = append(findings, telemetry.ComplianceFinding{
			Regulation:  regulation,
			Requirement: requirement,
			Level:       level,
			DetectedAt:  at,
		})
	}

	if r.Temperature < 16.0 {
		add("workplace-temperature", "minimum temperature 16°C", telemetry.ComplianceViolation)
	}
	if r.Temperature > 30.0 && !eq.Cooling {
		add("workplace-temperature", "cooling required above 30°C", telemetry.ComplianceWarning)
	}
	if r.Humidity > 70.0 {
		add("humidity-band", "humidity should be 40-70%", telemetry.ComplianceWarning)
	}
	if eq.EnergyConsumption > 4.0 {
		add("energy-usage", "high energy consumption", telemetry.ComplianceWarning)
	}
	return findings
}
