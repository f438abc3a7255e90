package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateDeaths removes knocked out fighters once their death timer is spent
// and the knockdown clip has finished.
func UpdateDeaths(w *world.World) {
	var done []donburi.Entity
	world.Each(w, components.Death, func(e donburi.Entity, d *components.DeathData) {
		d.Timer -= w.Dt
		if d.Timer > 0 {
			return
		}
		if anim, ok := world.Get(w, e, components.Animation); ok && !anim.Finished {
			return
		}
		done = append(done, e)
	})
	for _, e := range done {
		w.Logger.Debug("fighter removed", "tick", w.Tick, "entity", world.ID(e))
		w.Destroy(e)
	}
}
