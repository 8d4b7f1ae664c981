// Collaborator interfaces consumed by the monitoring core
package sensor

import (
	"errors"

	"buildmon/internal/telemetry"
)

// ErrTransientRead reports that a sensor could not produce a value this
// cycle. The cycle is skipped and the loop continues.
var ErrTransientRead = errors.New("transient sensor read failure")

// Reader produces raw environmental samples. Implementations may be simulated
// or backed by real sensors; the core must not depend on which one is wired.
type Reader interface {
	ReadTemperature() (float64, error)
	ReadHumidity() (float64, error)
	ReadLightLevel() (float64, error)
}

// EquipmentController exposes building equipment state and best-effort
// corrective commands.
type EquipmentController interface {
	Status() telemetry.EquipmentStatus
	SetTargetTemperature(celsius float64) error
	OptimizeForOccupancy(occupants int) error
	EnergyMetrics() telemetry.EnergyMetrics
}

// OccupancySource reports the current occupant count.
type OccupancySource interface {
	Count() int
}
