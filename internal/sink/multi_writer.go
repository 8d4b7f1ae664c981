package sink

import "buildmon/internal/telemetry"

// MultiWriter fans snapshots, alerts, and stats out to multiple writers.
type MultiWriter struct {
	writers []SnapshotWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(writers ...SnapshotWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteSnapshot sends a snapshot to all writers.
func (mw *MultiWriter) WriteSnapshot(s telemetry.Snapshot) error {
	for _, w := range mw.writers {
		if err := w.WriteSnapshot(s); err != nil {
			return err
		}
	}
	return nil
}

// WriteAlerts sends alerts to all writers that accept them.
func (mw *MultiWriter) WriteAlerts(alerts []telemetry.Alert) error {
	for _, w := range mw.writers {
		if aw, ok := w.(alertWriter); ok {
			if err := aw.WriteAlerts(alerts); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteStats sends stats to all writers that accept them.
func (mw *MultiWriter) WriteStats(s telemetry.Stats) error {
	for _, w := range mw.writers {
		if sw, ok := w.(statsWriter); ok {
			if err := sw.WriteStats(s); err != nil {
				return err
			}
		}
	}
	return nil
}
