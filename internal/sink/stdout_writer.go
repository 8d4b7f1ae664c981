// Writer implementation printing snapshots to STDOUT
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"buildmon/internal/telemetry"
)

// StdoutWriter prints flat snapshot rows as JSON lines.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a StdoutWriter writing to os.Stdout.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{out: os.Stdout}
}

// WriteSnapshot outputs the flat row form of a snapshot.
func (w *StdoutWriter) WriteSnapshot(s telemetry.Snapshot) error {
	data, _ := json.Marshal(s.Flatten())
	fmt.Fprintln(w.out, string(data))
	return nil
}

// WriteAlerts outputs one JSON line per alert.
func (w *StdoutWriter) WriteAlerts(alerts []telemetry.Alert) error {
	for _, a := range alerts {
		data, _ := json.Marshal(a)
		fmt.Fprintln(w.out, string(data))
	}
	return nil
}

// WriteStats outputs the stats value as one JSON line.
func (w *StdoutWriter) WriteStats(s telemetry.Stats) error {
	data, _ := json.Marshal(s)
	fmt.Fprintln(w.out, string(data))
	return nil
}
