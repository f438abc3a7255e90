package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateAnimations keeps each fighter's clip in step with its state and
// advances the clip clock.
func UpdateAnimations(w *world.World) {
	world.Each(w, components.Animation, func(e donburi.Entity, anim *components.AnimationData) {
		if f, ok := world.Get(w, e, components.Fighter); ok {
			anim.SetAnimation(f.State, cfg.AnimationFor(f.State))
		}
		anim.Advance(w.Dt)
	})
}
