// Aggregator orchestrating sampling, derivation, and snapshot assembly
package monitor

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"buildmon/internal/sensor"
	"buildmon/internal/telemetry"
)

// SnapshotWriter is the sink interface for consolidated snapshots.
type SnapshotWriter interface {
	WriteSnapshot(telemetry.Snapshot) error
}

// Optional: writers may also consume alerts fired during a cycle.
type alertWriter interface {
	WriteAlerts([]telemetry.Alert) error
}

// Optional: writers may also consume periodic stats.
type statsWriter interface {
	WriteStats(telemetry.Stats) error
}

// ErrIncompleteSnapshot reports a snapshot assembled with a missing field.
// The cycle is abandoned; partial snapshots are never emitted.
var ErrIncompleteSnapshot = errors.New("incomplete snapshot")

// Aggregator runs the sampling cycle: it pulls readings and equipment state,
// derives statuses, evaluates alert and compliance rules, issues corrective
// commands, and hands the consolidated snapshot to the writer.
type Aggregator struct {
	buildingID string
	reader     sensor.Reader
	equipment  sensor.EquipmentController
	occupancy  sensor.OccupancySource
	alerts     *AlertEngine
	stats      *StatsTracker
	writer     SnapshotWriter

	tickInterval time.Duration
	now          func() time.Time

	mu   sync.Mutex
	last *telemetry.Snapshot
}

// NewAggregator wires the aggregator with its collaborators. This is the
// single composition point; no global state is involved.
func NewAggregator(buildingID string, reader sensor.Reader, equipment sensor.EquipmentController, occupancy sensor.OccupancySource, writer SnapshotWriter, tickInterval time.Duration, alertCapacity int) *Aggregator {
	a := &Aggregator{
		buildingID:   buildingID,
		reader:       reader,
		equipment:    equipment,
		occupancy:    occupancy,
		writer:       writer,
		tickInterval: tickInterval,
		now:          time.Now,
		stats:        NewStatsTracker(),
	}
	a.alerts = NewAlertEngine(alertCapacity, a.stats.RecordAlert)
	return a
}

// RunCycle executes one sampling cycle and returns the assembled snapshot.
// On a transient read failure the cycle is abandoned: no snapshot is emitted
// and the stats tracker is left untouched.
func (a *Aggregator) RunCycle() (telemetry.Snapshot, error) {
	reading, err := a.sample()
	if err != nil {
		return telemetry.Snapshot{}, err
	}

	derived := Classify(reading)
	derived.AlertTriggered = a.alerts.Evaluate(reading)
	newAlerts := a.alerts.firedSince(reading.Timestamp)

	status := a.equipment.Status()
	occupants := a.occupancy.Count()
	energy := a.equipment.EnergyMetrics()
	findings := CheckCompliance(reading, status, reading.Timestamp)

	a.correct(reading, status, occupants)

	snap := telemetry.Snapshot{
		BuildingID: a.buildingID,
		Reading:    derived,
		Equipment:  status,
		Occupancy:  occupants,
		Energy:     energy,
		Findings:   findings,
		Timestamp:  reading.Timestamp,
	}
	if err := verifySnapshot(snap); err != nil {
		return telemetry.Snapshot{}, err
	}

	a.stats.RecordReading()
	a.mu.Lock()
	a.last = &snap
	a.mu.Unlock()

	if a.writer != nil {
		if err := a.writer.WriteSnapshot(snap); err != nil {
			return snap, fmt.Errorf("write snapshot: %w", err)
		}
		if aw, ok := a.writer.(alertWriter); ok && len(newAlerts) > 0 {
			if err := aw.WriteAlerts(newAlerts); err != nil {
				return snap, fmt.Errorf("write alerts: %w", err)
			}
		}
		if sw, ok := a.writer.(statsWriter); ok {
			if err := sw.WriteStats(a.stats.Snapshot()); err != nil {
				return snap, fmt.Errorf("write stats: %w", err)
			}
		}
	}
	return snap, nil
}

// sample pulls one reading set from the reader. Non-finite values are treated
// the same as a transient read failure.
func (a *Aggregator) sample() (telemetry.Reading, error) {
	temp, err := a.reader.ReadTemperature()
	if err != nil {
		return telemetry.Reading{}, fmt.Errorf("read temperature: %w", err)
	}
	hum, err := a.reader.ReadHumidity()
	if err != nil {
		return telemetry.Reading{}, fmt.Errorf("read humidity: %w", err)
	}
	light, err := a.reader.ReadLightLevel()
	if err != nil {
		return telemetry.Reading{}, fmt.Errorf("read light level: %w", err)
	}
	for _, v := range []float64{temp, hum, light} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return telemetry.Reading{}, fmt.Errorf("non-finite sensor value: %w", sensor.ErrTransientRead)
		}
	}
	return telemetry.Reading{
		Temperature: temp,
		Humidity:    hum,
		LightLevel:  light,
		Timestamp:   a.now().UTC(),
	}, nil
}

// correct issues best-effort corrective commands. Failures are ignored here;
// the commands are fire-and-forget and not part of the snapshot.
func (a *Aggregator) correct(r telemetry.Reading, status telemetry.EquipmentStatus, occupants int) {
	if occupants > 0 {
		_ = a.equipment.OptimizeForOccupancy(occupants)
	}
	if r.Temperature > 25.0 && !status.Cooling {
		_ = a.equipment.SetTargetTemperature(22.0)
	}
}

// verifySnapshot enforces the completeness invariant before hand-off.
func verifySnapshot(s telemetry.Snapshot) error {
	switch {
	case s.BuildingID == "":
		return fmt.Errorf("%w: missing building id", ErrIncompleteSnapshot)
	case s.Reading.TemperatureStatus == "" || s.Reading.HumidityStatus == "" || s.Reading.LightCategory == "":
		return fmt.Errorf("%w: missing derived statuses", ErrIncompleteSnapshot)
	case s.Reading.IndicatorColor == "":
		return fmt.Errorf("%w: missing indicator color", ErrIncompleteSnapshot)
	case s.Timestamp.IsZero():
		return fmt.Errorf("%w: missing timestamp", ErrIncompleteSnapshot)
	}
	return nil
}

// LastSnapshot returns a copy of the most recent snapshot, if any.
func (a *Aggregator) LastSnapshot() (telemetry.Snapshot, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.last == nil {
		return telemetry.Snapshot{}, false
	}
	return *a.last, true
}

// ActiveAlerts returns the currently active alerts.
func (a *Aggregator) ActiveAlerts() []telemetry.Alert {
	return a.alerts.ActiveAlerts()
}

// Stats returns the current monitoring stats.
func (a *Aggregator) Stats() telemetry.Stats {
	return a.stats.Snapshot()
}

// BuildingID returns the monitored building identifier.
func (a *Aggregator) BuildingID() string {
	return a.buildingID
}
