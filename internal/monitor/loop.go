package monitor

import (
	"context"
	"errors"
	"time"

	"buildmon/internal/logging"
	"buildmon/internal/sensor"
)

// Run executes sampling cycles on a fixed period until the context is done.
// Cancellation is observed between cycles; a failed cycle never stops the
// loop.
func (a *Aggregator) Run(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Info("starting monitor", "building_id", a.buildingID, "tick_interval", a.tickInterval)
	ticker := time.NewTicker(a.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := a.RunCycle(); err != nil {
				if errors.Is(err, sensor.ErrTransientRead) {
					log.Warn("cycle skipped", "err", err)
				} else {
					log.Error("cycle failed", "err", err)
				}
			}
		case <-ctx.Done():
			log.Info("stopping monitor")
			return
		}
	}
}
