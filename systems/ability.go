package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateAbilities runs ability timers and ends plane flights with them.
func UpdateAbilities(w *world.World) {
	world.Each(w, components.Ability, func(e donburi.Entity, a *components.AbilityData) {
		if !a.Tick(w.Dt) || !a.Def.PlaneSummon {
			return
		}
		if mech, ok := world.Get(w, e, components.Mechanics); ok {
			if plane, ok := mech.Mechanic.(*components.PlaneMechanic); ok {
				plane.Flying = false
				plane.Bombs = 0
			}
		}
	})
}
