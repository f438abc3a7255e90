package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// CheckInvariants verifies the fighter and combo invariants at the end of a
// tick. A violation is a bug in the simulation.
func CheckInvariants(w *world.World) error {
	var errs []error
	fail := func(e donburi.Entity, format string, args ...any) {
		errs = append(errs, fmt.Errorf("entity %d: %s", world.ID(e), fmt.Sprintf(format, args...)))
	}

	world.Each(w, components.Fighter, func(e donburi.Entity, f *components.FighterData) {
		if f.Facing != 1 && f.Facing != -1 {
			fail(e, "facing %v", f.Facing)
		}
		if f.Meter.Current < 0 || f.Meter.Current > f.Meter.Maximum {
			fail(e, "meter %v outside [0, %v]", f.Meter.Current, f.Meter.Maximum)
		}
		if f.State == cfg.Hitstun && f.Hitstun <= 0 {
			fail(e, "hitstun state with timer %v", f.Hitstun)
		}
		if f.State == cfg.Blockstun && f.Blockstun <= 0 {
			fail(e, "blockstun state with timer %v", f.Blockstun)
		}
		if f.Hitstun < 0 || f.Blockstun < 0 {
			fail(e, "negative stun %v/%v", f.Hitstun, f.Blockstun)
		}
	})
	world.Each(w, components.Health, func(e donburi.Entity, h *components.HealthData) {
		if h.Maximum <= 0 {
			fail(e, "health maximum %v", h.Maximum)
		}
		if h.Current < 0 || h.Current > h.Maximum {
			fail(e, "health %v outside [0, %v]", h.Current, h.Maximum)
		}
	})
	conf := w.Config.Combo
	world.Each(w, components.Combo, func(e donburi.Entity, c *components.ComboData) {
		if c.Scaling < conf.MinScaling || c.Scaling > 1 {
			fail(e, "combo scaling %v", c.Scaling)
		}
		if c.HitstunDecay < conf.MinHitstunDecay || c.HitstunDecay > 1 {
			fail(e, "combo hitstun decay %v", c.HitstunDecay)
		}
	})
	return errors.Join(errs...)
}
