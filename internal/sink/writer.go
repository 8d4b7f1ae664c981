// Sink interfaces for consolidated snapshots
package sink

import "buildmon/internal/telemetry"

// SnapshotWriter consumes one consolidated snapshot per cycle.
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
