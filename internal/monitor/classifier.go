// Status classification for environmental readings
package monitor

import "buildmon/internal/telemetry"

// Temperature status labels, in ascending breakpoint order.
const (
	TempFreezing    = "Freezing"
	TempChilly      = "Chilly"
	TempComfortable = "Comfortable"
	TempWarm        = "Warm"
	TempHot         = "Hot"
)

// Humidity status labels.
const (
	HumidityDry         = "Dry"
	HumidityComfortable = "Comfortable"
	HumidityHumid       = "Humid"
	HumidityVeryHumid   = "Very Humid"
)

// Light category labels.
const (
	LightDark   = "Dark"
	LightDim    = "Dim"
	LightNormal = "Normal"
	LightBright = "Bright"
)

// TemperatureStatus maps a temperature in °C to its status label.
func TemperatureStatus(t float64) string {
	switch {
	case t < 10:
		return TempFreezing
	case t < 18:
		return TempChilly
	case t < 24:
		return TempComfortable
	case t < 30:
		return TempWarm
	default:
		return TempHot
	}
}

// HumidityStatus maps a relative humidity in percent to its status label.
func HumidityStatus(h float64) string {
	switch {
	case h < 30:
		return HumidityDry
	case h < 50:
		return HumidityComfortable
	case h < 70:
		return HumidityHumid
	default:
		return HumidityVeryHumid
	}
}

// LightCategory maps a light level in [0,1] to its category label.
func LightCategory(l float64) string {
	switch {
	case l < 0.2:
		return LightDark
	case l < 0.4:
		return LightDim
	case l < 0.7:
		return LightNormal
	default:
		return LightBright
	}
}

// IndicatorColor derives the single indicator signal for a reading. Rules are
// checked in strict priority order; the first match wins.
func IndicatorColor(r telemetry.Reading) string {
	switch {
	case r.Temperature > 32 || r.Humidity > 75:
		return telemetry.ColorRed
	case r.Temperature < 15 || r.Humidity < 25:
		return telemetry.ColorBlue
	case r.LightLevel < 0.2:
		return telemetry.ColorPurple
	default:
		return telemetry.ColorGreen
	}
}

// Classify derives all categorical statuses for a reading. Pure function; the
// AlertTriggered flag is filled in by the alert engine afterwards.
func Classify(r telemetry.Reading) telemetry.DerivedReading {
	return telemetry.DerivedReading{
		Reading:           r,
		TemperatureStatus: TemperatureStatus(r.Temperature),
		HumidityStatus:    HumidityStatus(r.Humidity),
		LightCategory:     LightCategory(r.LightLevel),
		IndicatorColor:    IndicatorColor(r),
	}
}
