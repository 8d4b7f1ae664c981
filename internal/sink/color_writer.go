// ColorWriter prints human-friendly, colorized snapshots to STDOUT.
package sink

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"buildmon/internal/config"
	"buildmon/internal/telemetry"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// ColorWriter prints snapshot rows using ANSI colors, preceded by a one-time
// configuration overview.
type ColorWriter struct {
	cfg  *config.MonitorConfig
	out  io.Writer
	once sync.Once
}

// NewColorWriter creates a ColorWriter writing to os.Stdout.
func NewColorWriter(cfg *config.MonitorConfig) *ColorWriter {
	return &ColorWriter{cfg: cfg, out: os.Stdout}
}

func (w *ColorWriter) printOverview() {
	if w.cfg == nil {
		return
	}
	fmt.Fprintf(w.out, "Monitoring %s (%s)\n", w.cfg.Building.Name, w.cfg.Building.ID)
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Target Temperature:\t%.1f°C\n", w.cfg.Equipment.TargetTemperature)
	fmt.Fprintf(tw, "Alert Registry Capacity:\t%d\n", w.cfg.Alerts.RegistryCapacity)
	fmt.Fprintf(tw, "Max Occupants:\t%d\n", w.cfg.Occupancy.MaxOccupants)
	tw.Flush()
	fmt.Fprintln(w.out)
}

func indicatorANSI(color string) string {
	switch color {
	case telemetry.ColorRed:
		return colorRed
	case telemetry.ColorBlue:
		return colorBlue
	case telemetry.ColorPurple:
		return colorMagenta
	default:
		return colorGreen
	}
}

func severityANSI(severity string) string {
	switch severity {
	case telemetry.SeverityCritical:
		return colorRed
	case telemetry.SeverityWarning:
		return colorYellow
	default:
		return colorCyan
	}
}

// WriteSnapshot outputs a single snapshot in colorized format.
func (w *ColorWriter) WriteSnapshot(s telemetry.Snapshot) error {
	w.once.Do(w.printOverview)

	r := s.Reading
	ind := indicatorANSI(r.IndicatorColor)
	fmt.Fprintf(w.out, "%s[%s]%s ", colorGray, s.Timestamp.Format(time.RFC3339), colorReset)
	fmt.Fprintf(w.out, "%sbuilding=%s%s ", colorBlue, s.BuildingID, colorReset)
	fmt.Fprintf(w.out, "%s●%s ", ind, colorReset)
	fmt.Fprintf(w.out, "%stemp=%.1f(%s)%s ", colorGreen, r.Temperature, r.TemperatureStatus, colorReset)
	fmt.Fprintf(w.out, "%shum=%.1f(%s)%s ", colorYellow, r.Humidity, r.HumidityStatus, colorReset)
	fmt.Fprintf(w.out, "%slight=%.2f(%s)%s ", colorMagenta, r.LightLevel, r.LightCategory, colorReset)
	fmt.Fprintf(w.out, "%socc=%d%s ", colorCyan, s.Occupancy, colorReset)
	fmt.Fprintf(w.out, "%senergy=%.1fkW%s", colorYellow, s.Equipment.EnergyConsumption, colorReset)
	if s.Equipment.Heating {
		fmt.Fprintf(w.out, " %sheating%s", colorRed, colorReset)
	}
	if s.Equipment.Cooling {
		fmt.Fprintf(w.out, " %scooling%s", colorBlue, colorReset)
	}
	if s.Equipment.Ventilating {
		fmt.Fprintf(w.out, " %sventilating%s", colorCyan, colorReset)
	}
	for _, f := range s.Findings {
		level := colorYellow
		if f.Level == telemetry.ComplianceViolation {
			level = colorRed
		}
		fmt.Fprintf(w.out, " %s%s:%s%s", level, f.Level, f.Regulation, colorReset)
	}
	fmt.Fprintln(w.out)
	return nil
}

// WriteAlerts prints one ALERT line per fired alert.
func (w *ColorWriter) WriteAlerts(alerts []telemetry.Alert) error {
	w.once.Do(w.printOverview)
	for _, a := range alerts {
		fmt.Fprintf(w.out, "%s[%s]%s %sALERT%s severity=%s msg=%q id=%s\n",
			colorGray, a.TriggeredAt.Format(time.RFC3339), colorReset,
			severityANSI(a.Severity), colorReset, a.Severity, a.Message, a.ID)
	}
	return nil
}

// WriteStats prints a STATS summary line.
func (w *ColorWriter) WriteStats(s telemetry.Stats) error {
	w.once.Do(w.printOverview)
	fmt.Fprintf(w.out, "%sSTATS%s readings=%d alerts=%d uptime=%.1fm avg_interval=%.0fms\n",
		colorBlue, colorReset, s.TotalReadings, s.TotalAlerts, s.UptimeMinutes, s.AverageIntervalMs)
	return nil
}
