package sensor

import (
	"math/rand"

	"buildmon/internal/config"
)

// SimulatedReader produces environmental samples by random-walking around the
// configured baselines. A configurable failure rate injects transient read
// failures so the skip-cycle path gets exercised.
type SimulatedReader struct {
	cfg  config.Sensors
	rand *rand.Rand

	temperature float64
	humidity    float64
	light       float64
}

// NewSimulatedReader seeds the reader at the configured baselines.
func NewSimulatedReader(cfg config.Sensors, rnd *rand.Rand) *SimulatedReader {
	return &SimulatedReader{
		cfg:         cfg,
		rand:        rnd,
		temperature: cfg.Temperature.Baseline,
		humidity:    cfg.Humidity.Baseline,
		light:       cfg.Light.Baseline,
	}
}

// ReadTemperature returns the next simulated temperature in °C.
func (r *SimulatedReader) ReadTemperature() (float64, error) {
	if r.rand.Float64() < r.cfg.Temperature.FailureRate {
		return 0, ErrTransientRead
	}
	r.temperature = r.walk(r.temperature, r.cfg.Temperature)
	return r.temperature, nil
}

// ReadHumidity returns the next simulated relative humidity in percent.
func (r *SimulatedReader) ReadHumidity() (float64, error) {
	if r.rand.Float64() < r.cfg.Humidity.FailureRate {
		return 0, ErrTransientRead
	}
	r.humidity = clamp(r.walk(r.humidity, r.cfg.Humidity), 0, 100)
	return r.humidity, nil
}

// ReadLightLevel returns the next simulated light level in [0,1].
func (r *SimulatedReader) ReadLightLevel() (float64, error) {
	if r.rand.Float64() < r.cfg.Light.FailureRate {
		return 0, ErrTransientRead
	}
	r.light = clamp(r.walk(r.light, r.cfg.Light), 0, 1)
	return r.light, nil
}

// walk nudges the value by a fraction of the variance and pulls it gently
// back toward the baseline so long runs stay in a plausible band.
func (r *SimulatedReader) walk(value float64, s config.Sensor) float64 {
	step := (r.rand.Float64()*2 - 1) * s.Variance * 0.25
	drift := (s.Baseline - value) * 0.05
	return value + step + drift
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
