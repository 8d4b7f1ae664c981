// YAML config loader with CUE schema validation
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Building identifies the monitored site.
type Building struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Sensor defines the simulated behavior of one environmental sensor.
type Sensor struct {
	Baseline    float64 `yaml:"baseline"`
	Variance    float64 `yaml:"variance"`
	FailureRate float64 `yaml:"failure_rate"`
}

// Sensors groups the three environmental sensors.
type Sensors struct {
	Temperature Sensor `yaml:"temperature"`
	Humidity    Sensor `yaml:"humidity"`
	Light       Sensor `yaml:"light"`
}

// Alerts holds alert engine tuning.
type Alerts struct {
	RegistryCapacity int `yaml:"registry_capacity"`
}

// Equipment holds parameters for the simulated HVAC unit.
type Equipment struct {
	TargetTemperature float64 `yaml:"target_temperature"`
	BaseLoadKW        float64 `yaml:"base_load_kw"`
	EnergyRateEUR     float64 `yaml:"energy_rate_eur"`
}

// Occupancy holds parameters for the simulated occupancy source.
type Occupancy struct {
	MaxOccupants int `yaml:"max_occupants"`
}

// MonitorConfig is the root configuration for the building monitor.
type MonitorConfig struct {
	Building  Building  `yaml:"building"`
	Sensors   Sensors   `yaml:"sensors"`
	Alerts    Alerts    `yaml:"alerts"`
	Equipment Equipment `yaml:"equipment"`
	Occupancy Occupancy `yaml:"occupancy"`
	AdminAddr string    `yaml:"admin_addr"`
}

// Load reads a YAML config file and validates it against a CUE schema.
func Load(configPath, cueSchemaPath string) (*MonitorConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg MonitorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
