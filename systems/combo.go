package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateCombos decays running combos and breaks the ones that timed out.
func UpdateCombos(w *world.World) {
	world.Each(w, components.Combo, func(e donburi.Entity, c *components.ComboData) {
		if hits := c.Tick(w.Dt); hits > 0 {
			events.Publish(w.Events, events.ComboBrokenEvent, w.Tick, events.ComboBroken{
				Attacker: e,
				Hits:     hits,
			})
		}
	})
}
