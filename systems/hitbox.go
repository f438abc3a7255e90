package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateHitboxes ends activations whose active window has run out.
func UpdateHitboxes(w *world.World) {
	var expired []donburi.Entity
	world.Each(w, components.Hitbox, func(e donburi.Entity, hb *components.HitboxData) {
		hb.ActiveTime -= w.Dt
		if hb.ActiveTime <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		world.Remove(w, e, components.Hitbox)
	}
}
