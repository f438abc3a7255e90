package factory

import (
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// AttachHitbox starts a new attack activation on owner. A hitbox already
// out is replaced, so the new activation may strike every defender again.
func AttachHitbox(w *world.World, owner donburi.Entity, def cfg.HitboxDef, active float64) {
	world.Add(w, owner, components.Hitbox, components.NewHitbox(def, active))
}

// DetachHitbox ends the current activation of owner, if any.
func DetachHitbox(w *world.World, owner donburi.Entity) {
	world.Remove(w, owner, components.Hitbox)
}
