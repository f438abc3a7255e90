package sim

import (
	"context"
	"errors"
	"time"
)

// Clock reports wall time. time.Now is the usual one.
type Clock func() time.Time

// Run advances the simulation from clock once per tick period until ctx is
// cancelled, Stop is called or a tick fails.
func (s *Sim) Run(ctx context.Context, clock Clock) error {
	if clock == nil {
		clock = time.Now
	}
	ticker := time.NewTicker(time.Duration(s.dt * float64(time.Second)))
	defer ticker.Stop()

	s.logger.Info("simulation running", "tick_rate", s.conf.Sim.TickRate)
	last := clock()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("simulation cancelled", "tick", s.w.Tick)
			return ctx.Err()
		case <-ticker.C:
			now := clock()
			err := s.Advance(now.Sub(last).Seconds())
			last = now
			if errors.Is(err, ErrStopped) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}
