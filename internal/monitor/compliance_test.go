package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildmon/internal/telemetry"
)

func TestCheckCompliance_MinimumTemperature(t *testing.T) {
	at := time.Unix(0, 0).UTC()
	r := telemetry.Reading{Temperature: 15.0, Humidity: 50, LightLevel: 0.5}
	findings := CheckCompliance(r, telemetry.EquipmentStatus{}, at)

	require.Len(t, findings, 1)
	assert.Equal(t, telemetry.ComplianceViolation, findings[0].Level)
	assert.Equal(t, "workplace-temperature", findings[0].Regulation)
	assert.Contains(t, findings[0].Requirement, "minimum temperature 16")
	assert.Equal(t, at, findings[0].DetectedAt)
}

func TestCheckCompliance_CoolingRequired(t *testing.T) {
	at := time.Unix(0, 0).UTC()
	r := telemetry.Reading{Temperature: 31.0, Humidity: 50, LightLevel: 0.5}

	withoutCooling := CheckCompliance(r, telemetry.EquipmentStatus{Cooling: false}, at)
	require.Len(t, withoutCooling, 1)
	assert.Equal(t, telemetry.ComplianceWarning, withoutCooling[0].Level)
	assert.Contains(t, withoutCooling[0].Requirement, "cooling required")

	withCooling := CheckCompliance(r, telemetry.EquipmentStatus{Cooling: true}, at)
	assert.Empty(t, withCooling)
}

func TestCheckCompliance_FindingsIndependent(t *testing.T) {
	// A reading that trips every rule except the cooling one; findings must
	// appear in declaration order.
	at := time.Unix(0, 0).UTC()
	r := telemetry.Reading{Temperature: 15.0, Humidity: 80, LightLevel: 0.5}
	eq := telemetry.EquipmentStatus{EnergyConsumption: 5.0}

	findings := CheckCompliance(r, eq, at)
	require.Len(t, findings, 3)
	assert.Equal(t, "workplace-temperature", findings[0].Regulation)
	assert.Equal(t, "humidity-band", findings[1].Regulation)
	assert.Equal(t, "energy-usage", findings[2].Regulation)
}

func TestCheckCompliance_Stateless(t *testing.T) {
	at := time.Unix(0, 0).UTC()
	r := telemetry.Reading{Temperature: 15.0, Humidity: 50, LightLevel: 0.5}
	first := CheckCompliance(r, telemetry.EquipmentStatus{}, at)
	second := CheckCompliance(r, telemetry.EquipmentStatus{}, at)
	assert.Equal(t, first, second)
}

func TestCheckCompliance_AllCompliant(t *testing.T) {
	at := time.Unix(0, 0).UTC()
	r := telemetry.Reading{Temperature: 21.0, Humidity: 45, LightLevel: 0.5}
	findings := CheckCompliance(r, telemetry.EquipmentStatus{EnergyConsumption: 2.0}, at)
	assert.Empty(t, findings)
}
