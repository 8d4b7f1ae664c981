package monitor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"buildmon/internal/telemetry"
)

// defaultRegistryCapacity bounds the alert registry when no capacity is
// configured. The registry is a fixed-capacity ring: once full, the oldest
// alert is evicted to make room.
const defaultRegistryCapacity = 256

// AlertEngine evaluates threshold rules against readings and keeps a bounded
// registry of fired alerts.
type AlertEngine struct {
	mu       sync.Mutex
	capacity int
	registry []telemetry.Alert
	onAlert  func()
	now      func() time.Time
}

// NewAlertEngine creates an engine with the given registry capacity. onAlert,
// if non-nil, is invoked once per newly fired alert.
func NewAlertEngine(capacity int, onAlert func()) *AlertEngine {
	if capacity <= 0 {
		capacity = defaultRegistryCapacity
	}
	return &AlertEngine{
		capacity: capacity,
		registry: make([]telemetry.Alert, 0, capacity),
		onAlert:  onAlert,
		now:      time.Now,
	}
}

// Evaluate checks all alert rules against the reading and records one alert
// per fired rule. Temperature and humidity rules are first-match within their
// category; the light rule is independent. Returns true iff at least one rule
// fired this cycle.
func (e *AlertEngine) Evaluate(r telemetry.Reading) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	fired := false
	if r.Temperature > 35 {
		e.record("high temperature", telemetry.SeverityCritical)
		fired = true
	} else if r.Temperature > 30 {
		e.record("temperature rising", telemetry.SeverityWarning)
		fired = true
	} else if r.Temperature < 5 {
		e.record("freezing temperature", telemetry.SeverityCritical)
		fired = true
	}

	if r.Humidity > 85 {
		e.record("condensation risk", telemetry.SeverityWarning)
		fired = true
	} else if r.Humidity < 20 {
		e.record("dry conditions", telemetry.SeverityInfo)
		fired = true
	}

	if r.LightLevel < 0.1 {
		e.record("low light, night mode", telemetry.SeverityInfo)
		fired = true
	}
	return fired
}

// record appends a new active alert, evicting the oldest entry when the
// registry is at capacity.
func (e *AlertEngine) record(message, severity string) {
	if len(e.registry) >= e.capacity {
		e.registry = e.registry[1:]
	}
	e.registry = append(e.registry, telemetry.Alert{
		ID:          uuid.New().String(),
		Message:     message,
		Severity:    severity,
		TriggeredAt: e.now(),
		Active:      true,
	})
	if e.onAlert != nil {
		e.onAlert()
	}
}

// firedSince returns alerts triggered at or after t, in insertion order.
func (e *AlertEngine) firedSince(t time.Time) []telemetry.Alert {
	e.mu.Lock()
	defer e.mu.Unlock()
	var fired []telemetry.Alert
	for i := len(e.registry) - 1; i >= 0; i-- {
		if e.registry[i].TriggeredAt.Before(t) {
			break
		}
		fired = append([]telemetry.Alert{e.registry[i]}, fired...)
	}
	return fired
}

// ActiveAlerts returns all active alerts in insertion order.
func (e *AlertEngine) ActiveAlerts() []telemetry.Alert {
	e.mu.Lock()
	defer e.mu.Unlock()
	alerts := make([]telemetry.Alert, 0, len(e.registry))
	for _, a := range e.registry {
		if a.Active {
			alerts = append(alerts, a)
		}
	}
	return alerts
}

// Size returns the number of alerts currently held in the registry.
func (e *AlertEngine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.registry)
}
