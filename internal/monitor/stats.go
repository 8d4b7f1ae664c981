package monitor

import (
	"sync"
	"time"

	"buildmon/internal/telemetry"
)

// StatsTracker records sampling and alert events and derives uptime and
// sampling-rate figures. Counters only increase for the process lifetime;
// only the first and last reading timestamps are retained.
type StatsTracker struct {
	mu            sync.Mutex
	totalReadings int
	totalAlerts   int
	startTime     time.Time
	firstReading  time.Time
	lastReading   time.Time
	now           func() time.Time
}

// NewStatsTracker starts the uptime clock at construction.
func NewStatsTracker() *StatsTracker {
	t := &StatsTracker{now: time.Now}
	t.startTime = t.now()
	return t
}

// RecordReading counts one successful sampling cycle.
func (t *StatsTracker) RecordReading() {
	t.mu.Lock()
	defer t.mu.Unlock()
	ts := t.now()
	if t.totalReadings == 0 {
		t.firstReading = ts
	}
	t.lastReading = ts
	t.totalReadings++
}

// RecordAlert counts one fired alert.
func (t *StatsTracker) RecordAlert() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalAlerts++
}

// Snapshot computes the current stats. The average sampling interval is the
// span between first and last reading divided by the reading count, in
// milliseconds; it is zero until at least two readings exist.
func (t *StatsTracker) Snapshot() telemetry.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := telemetry.Stats{
		TotalReadings: t.totalReadings,
		TotalAlerts:   t.totalAlerts,
		StartTime:     t.startTime,
		UptimeMinutes: t.now().Sub(t.startTime).Minutes(),
	}
	if t.totalReadings >= 2 {
		span := t.lastReading.Sub(t.firstReading)
		s.AverageIntervalMs = float64(span.Milliseconds()) / float64(t.totalReadings)
	}
	return s
}
