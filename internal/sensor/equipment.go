package sensor

import (
	"math/rand"
	"sync"

	"buildmon/internal/config"
	"buildmon/internal/telemetry"
)

// SimulatedEquipment models a single HVAC unit with a thermostat. It tracks a
// simulated ambient temperature that drifts toward the target whenever heating
// or cooling is active.
type SimulatedEquipment struct {
	mu sync.Mutex

	target      float64
	ambient     float64
	baseLoadKW  float64
	rateEUR     float64
	fanSpeed    int
	ventilating bool
	totalUsed   float64
	rand        *rand.Rand
}

// NewSimulatedEquipment creates the unit with ambient at the configured target.
func NewSimulatedEquipment(cfg config.Equipment, rnd *rand.Rand) *SimulatedEquipment {
	return &SimulatedEquipment{
		target:     cfg.TargetTemperature,
		ambient:    cfg.TargetTemperature + 1.5,
		baseLoadKW: cfg.BaseLoadKW,
		rateEUR:    cfg.EnergyRateEUR,
		fanSpeed:   1,
		rand:       rnd,
	}
}

// Status advances the thermostat simulation one step and reports the result.
func (e *SimulatedEquipment) Status() telemetry.EquipmentStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Ambient drifts randomly, then toward target while the unit is active.
	e.ambient += (e.rand.Float64()*2 - 1) * 0.4
	heating := e.ambient < e.target-0.5
	cooling := e.ambient > e.target+0.5
	if heating {
		e.ambient += 0.3
	}
	if cooling {
		e.ambient -= 0.3
	}

	consumption := e.baseLoadKW + float64(e.fanSpeed)*0.3
	if heating || cooling {
		consumption += 1.8
	}
	if e.ventilating {
		consumption += 0.4
	}
	e.totalUsed += consumption / 60 // approximate kWh per cycle

	return telemetry.EquipmentStatus{
		Heating:           heating,
		Cooling:           cooling,
		Ventilating:       e.ventilating,
		FanSpeed:          e.fanSpeed,
		EnergyConsumption: consumption,
	}
}

// SetTargetTemperature adjusts the thermostat set point.
func (e *SimulatedEquipment) SetTargetTemperature(celsius float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.target = celsius
	return nil
}

// OptimizeForOccupancy scales ventilation and fan speed with the occupant count.
func (e *SimulatedEquipment) OptimizeForOccupancy(occupants int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ventilating = occupants > 0
	speed := 1 + occupants/5
	if speed > 5 {
		speed = 5
	}
	e.fanSpeed = speed
	return nil
}

// EnergyMetrics reports accumulated usage and derived cost figures.
func (e *SimulatedEquipment) EnergyMetrics() telemetry.EnergyMetrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	efficiency := 100 - (e.baseLoadKW+float64(e.fanSpeed)*0.3)*8
	if efficiency < 0 {
		efficiency = 0
	}
	return telemetry.EnergyMetrics{
		TotalUsed:       e.totalUsed,
		Cost:            e.totalUsed * e.rateEUR,
		CarbonFootprint: e.totalUsed * 0.4, // kg CO2 per kWh, grid average
		EfficiencyScore: efficiency,
	}
}
