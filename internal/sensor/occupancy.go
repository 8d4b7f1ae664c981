package sensor

import (
	"math/rand"
	"time"
)

// SimulatedOccupancy models occupant counts with a simple working-hours curve:
// near-empty overnight, ramping toward the configured maximum during the day.
type SimulatedOccupancy struct {
	max  int
	rand *rand.Rand
	now  func() time.Time
}

// NewSimulatedOccupancy creates an occupancy source for up to max occupants.
func NewSimulatedOccupancy(max int, rnd *rand.Rand) *SimulatedOccupancy {
	return &SimulatedOccupancy{max: max, rand: rnd, now: time.Now}
}

// Count returns the current simulated occupant count.
func (o *SimulatedOccupancy) Count() int {
	if o.max <= 0 {
		return 0
	}
	hour := o.now().Hour()
	var share float64
	switch {
	case hour >= 9 && hour < 17:
		share = 0.6 + o.rand.Float64()*0.4
	case hour >= 7 && hour < 9, hour >= 17 && hour < 20:
		share = 0.1 + o.rand.Float64()*0.3
	default:
		share = o.rand.Float64() * 0.05
	}
	return int(share * float64(o.max))
}
