package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	tmpFile := filepath.Join(dir, "monitor.yaml")
	yaml := `
building:
  id: test-01
  name: Test Site
sensors:
  temperature: {baseline: 21.0, variance: 5.0, failure_rate: 0.0}
  humidity: {baseline: 45.0, variance: 10.0, failure_rate: 0.0}
  light: {baseline: 0.5, variance: 0.3, failure_rate: 0.0}
alerts:
  registry_capacity: 16
equipment:
  target_temperature: 22.0
  base_load_kw: 2.0
  energy_rate_eur: 0.3
occupancy:
  max_occupants: 10
`
	if err := os.WriteFile(tmpFile, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := Load(tmpFile, "../../schemas/monitor.cue")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Building.ID != "test-01" {
		t.Errorf("unexpected building id: %q", cfg.Building.ID)
	}
	if cfg.Alerts.RegistryCapacity != 16 {
		t.Errorf("unexpected registry capacity: %d", cfg.Alerts.RegistryCapacity)
	}
	if cfg.Sensors.Temperature.Baseline != 21.0 {
		t.Errorf("unexpected temperature baseline: %v", cfg.Sensors.Temperature.Baseline)
	}
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	tmpFile := filepath.Join(dir, "monitor.yaml")
	// failure_rate above 1 violates the schema
	yaml := `
building:
  id: test-01
  name: Test Site
sensors:
  temperature: {baseline: 21.0, variance: 5.0, failure_rate: 2.0}
  humidity: {baseline: 45.0, variance: 10.0, failure_rate: 0.0}
  light: {baseline: 0.5, variance: 0.3, failure_rate: 0.0}
alerts:
  registry_capacity: 16
equipment:
  target_temperature: 22.0
  base_load_kw: 2.0
  energy_rate_eur: 0.3
occupancy:
  max_occupants: 10
`
	if err := os.WriteFile(tmpFile, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	if _, err := Load(tmpFile, "../../schemas/monitor.cue"); err == nil {
		t.Fatal("expected schema validation error, got nil")
	}
}
